package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"folio/internal/config"
)

// DefaultVenuesYAML seeds new test configs with a small venue registry
// covering the collection letters the shared fixtures use.
const DefaultVenuesYAML = `acl:
  acronym: acl
  name: Annual Meeting of the Association for Computational Linguistics
  oldstyle_letter: P
  is_toplevel: true
ws:
  acronym: ws
  name: Workshop Proceedings
  oldstyle_letter: W
  is_toplevel: true
jcl:
  acronym: jcl
  name: Journal of Computational Linguistics
  oldstyle_letter: J
  is_toplevel: true
semeval:
  acronym: semeval
  name: International Workshop on Semantic Evaluation
  is_toplevel: false
`

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t          testing.TB
	baseDir    string
	cfg        *config.Config
	venuesYAML string
}

// NewConfig produces a config seeded with unique temp directories per test.
// The data and SIG directories are created empty and the venue registry is
// written with DefaultVenuesYAML unless an option overrides it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.VenuesFile = filepath.Join(base, "venues.yaml")
	cfgVal.Paths.SIGsDir = filepath.Join(base, "sigs")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.ExportDB = filepath.Join(base, "folio.db")

	builder := &configBuilder{
		t:          t,
		baseDir:    base,
		cfg:        &cfgVal,
		venuesYAML: DefaultVenuesYAML,
	}

	for _, opt := range opts {
		opt(builder)
	}

	for _, dir := range []string{builder.cfg.Paths.DataDir, builder.cfg.Paths.SIGsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	WriteVenues(t, builder.cfg, builder.venuesYAML)

	return builder.cfg
}

// WithVenues replaces the venue registry content written for the test.
func WithVenues(yaml string) ConfigOption {
	return func(b *configBuilder) {
		b.venuesYAML = yaml
	}
}

// WithLogFormat overrides the logging format on the test config.
func WithLogFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Format = format
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.VenuesFile)
}
