// Package bibdata holds the canonical constants the archive publishes:
// deep-link URL templates, journal title resolution, month-name mapping, and
// the registry of list-valued attributes.
//
// Everything here is fixed data. Values derived from it (volume URLs, journal
// metadata) are computed at archive load time and must never be recomputed
// against a different template afterwards.
package bibdata
