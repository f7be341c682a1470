// Package volume derives proceedings volumes from front-matter records.
//
// A Volume is built exactly once per front-matter paper, at archive load
// time. Construction inherits the front matter's attributes (its authors
// become the volume's editors), derives the canonical URL and journal
// metadata, and resolves venue and SIG associations through the indexes it is
// handed. Registering with the venue index mutates index state, so callers
// construct volumes in a deterministic order.
package volume
