package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/config"
)

// WriteCollection writes one collection XML file into the config's data
// directory. The papers argument holds the serialized <paper> elements
// without the enclosing <collection> tag.
func WriteCollection(t testing.TB, cfg *config.Config, id, papers string) string {
	t.Helper()

	doc := fmt.Sprintf("<collection id=%q>\n%s\n</collection>\n", id, papers)
	path := filepath.Join(cfg.Paths.DataDir, id+".xml")
	writeFixture(t, path, doc)
	return path
}

// WriteVenues replaces the config's venue registry file.
func WriteVenues(t testing.TB, cfg *config.Config, yaml string) {
	t.Helper()

	writeFixture(t, cfg.Paths.VenuesFile, yaml)
}

// WriteSIG writes one SIG definition into the config's SIG directory. The
// file name is derived from the short name, matching the one-file-per-SIG
// layout the loader expects.
func WriteSIG(t testing.TB, cfg *config.Config, shortName, yaml string) {
	t.Helper()

	name := strings.ToLower(shortName) + ".yaml"
	writeFixture(t, filepath.Join(cfg.Paths.SIGsDir, name), yaml)
}

func writeFixture(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
