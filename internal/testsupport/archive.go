package testsupport

import (
	"testing"

	"folio/internal/archive"
	"folio/internal/config"
	"folio/internal/logging"
)

// MustLoadArchive loads the archive described by the config with a silent
// logger, failing the test on any load error.
func MustLoadArchive(t testing.TB, cfg *config.Config) *archive.Archive {
	t.Helper()

	arc, err := archive.Load(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("archive.Load: %v", err)
	}
	return arc
}
