// Package preflight provides readiness checks for the filesystem paths and
// registries an archive load depends on.
//
// The CLI "folio config validate" command runs RunAll to report problems
// before a load is attempted: a missing data directory, an unparseable venue
// registry, or an unwritable export target. Each check returns a Result
// rather than an error so every problem is reported in one pass.
package preflight
