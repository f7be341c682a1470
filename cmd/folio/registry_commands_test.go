package main

import (
	"encoding/json"
	"testing"
)

func TestVenuesCommandListsRegistry(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCollections(t, env)

	out, _, err := runCLI(t, env, "venues")
	if err != nil {
		t.Fatalf("venues: %v", err)
	}
	requireContains(t, out, "acl")
	requireContains(t, out, "semeval")
	requireContains(t, out, "Workshop Proceedings")
}

func TestVenuesCommandJSONCounts(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCollections(t, env)

	out, _, err := runCLI(t, env, "venues", "--json")
	if err != nil {
		t.Fatalf("venues --json: %v", err)
	}

	var views []venueView
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	counts := make(map[string]int, len(views))
	for _, view := range views {
		counts[view.Code] = view.Volumes
	}
	if counts["acl"] != 1 || counts["ws"] != 1 || counts["semeval"] != 1 || counts["jcl"] != 0 {
		t.Fatalf("unexpected volume counts: %+v", counts)
	}
}

func TestSIGsCommandListsRegistry(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCollections(t, env)

	out, _, err := runCLI(t, env, "sigs")
	if err != nil {
		t.Fatalf("sigs: %v", err)
	}
	requireContains(t, out, "SIGLEX")
	requireContains(t, out, "Special Interest Group on the Lexicon")
}
