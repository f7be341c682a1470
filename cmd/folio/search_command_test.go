package main

import (
	"encoding/json"
	"strings"
	"testing"

	"folio/internal/search"
)

func TestSearchCommandRanksByTitle(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCollections(t, env)

	out, _, err := runCLI(t, env, "search", "neural", "parsing")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "P18-1001")
	requireContains(t, out, "Neural Parsing")
	requireContains(t, out, "papers matched")
}

func TestSearchCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCollections(t, env)

	out, _, err := runCLI(t, env, "search", "--json", "neural", "parsing")
	if err != nil {
		t.Fatalf("search --json: %v", err)
	}

	var results []search.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if results[0].PaperID != "P18-1001" {
		t.Fatalf("top hit = %+v, want P18-1001", results[0])
	}
	if results[0].Score <= 0 {
		t.Fatalf("top score = %v, want > 0", results[0].Score)
	}
}

func TestSearchCommandNoMatches(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCollections(t, env)

	out, _, err := runCLI(t, env, "search", "quantum", "chromodynamics")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "No matching papers")
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "search")
	if err == nil {
		t.Fatal("expected error for missing query")
	}
	if !strings.Contains(err.Error(), "arg") {
		t.Fatalf("unexpected error: %v", err)
	}
}
