package preflight

import (
	"path/filepath"

	"folio/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable check for the given config. Directories
// the tool creates on demand pass when absent; inputs a load requires fail
// when missing or malformed.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Data directory", cfg.Paths.DataDir))
	results = append(results, CheckCollectionFiles(cfg.Paths.DataDir))
	results = append(results, CheckVenueRegistry(cfg.Paths.VenuesFile))
	results = append(results, CheckSIGDirectory(cfg.Paths.SIGsDir))

	if cfg.Paths.LogDir != "" {
		results = append(results, CheckWritableDirectory("Log directory", cfg.Paths.LogDir))
	}
	if cfg.Paths.ExportDB != "" {
		results = append(results, CheckWritableDirectory("Export directory", filepath.Dir(cfg.Paths.ExportDB)))
	}

	return results
}
