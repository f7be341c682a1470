package testsupport

import (
	"testing"

	"folio/internal/config"
	"folio/internal/export"
)

// MustOpenStore opens an export.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *export.Store {
	t.Helper()

	store, err := export.Open(cfg.Paths.ExportDB)
	if err != nil {
		t.Fatalf("export.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
