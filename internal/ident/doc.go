// Package ident resolves the archive's identifier schemes and provides the
// algebra for building, splitting, and validating canonical identifiers.
//
// The archive carries two identifier generations. Legacy identifiers start
// with a collection code (letter plus two-digit year, e.g. P18) whose leading
// letter selects a Scheme: workshops subdivide volumes by two digits, journals
// publish no physical front matter, and everything else follows the standard
// one-digit rule. New-style identifiers are year-first (2020.xyz-main.4) and
// carry their venue slug explicitly.
//
// Resolve a Scheme once from the raw prefix and branch on it; scattering
// first-character comparisons across call sites is how the legacy formats
// drifted apart in the first place.
package ident
