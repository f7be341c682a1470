package bibdata

import (
	"net/url"
	"strings"
)

// Canonical URL prefixes. Every published link is derived from these; the
// archive never stores absolute self-links in its collection files.
const (
	ArchivePrefix    = "https://folio-archive.org"
	PDFPrefix        = ArchivePrefix + "/pdf"
	AttachmentPrefix = ArchivePrefix + "/attachments"
)

// ArchiveURL returns the canonical landing page for an identifier.
func ArchiveURL(id string) string {
	return ArchivePrefix + "/" + id
}

// PDFURL returns the canonical PDF link for a relative document name.
// Absolute URLs pass through unchanged.
func PDFURL(name string) string {
	if isAbsoluteURL(name) {
		return name
	}
	return PDFPrefix + "/" + name + ".pdf"
}

// AttachmentURL resolves an attachment filename against the attachment
// prefix. Absolute URLs pass through unchanged.
func AttachmentURL(filename string) string {
	if isAbsoluteURL(filename) {
		return filename
	}
	return AttachmentPrefix + "/" + filename
}

// InferURL resolves a relative document name against the archive prefix.
// Absolute URLs pass through unchanged.
func InferURL(name string) string {
	if isAbsoluteURL(name) {
		return name
	}
	return ArchivePrefix + "/" + name
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Host != ""
}

// Journal display titles keyed by the legacy collection letter.
const (
	flagshipJournalTitle  = "Journal of Computational Linguistics"
	quarterlyJournalTitle = "Quarterly Transactions on Language Processing"
)

// JournalTitle resolves the journal name used in volume metadata. Journal
// collections map to their fixed display titles; every other collection keeps
// the volume title it was given.
func JournalTitle(topLevelID, title string) string {
	if topLevelID == "" {
		return title
	}
	switch topLevelID[0] {
	case 'J':
		return flagshipJournalTitle
	case 'Q':
		return quarterlyJournalTitle
	default:
		return title
	}
}

var monthNumbers = map[string]int{
	"january":   1,
	"february":  2,
	"march":     3,
	"april":     4,
	"may":       5,
	"june":      6,
	"july":      7,
	"august":    8,
	"september": 9,
	"october":   10,
	"november":  11,
	"december":  12,
}

// MonthNumber converts an English month name to its number, e.g. February to
// 2. The lookup is locale-independent on purpose: collection files always
// spell months in English regardless of the host system.
func MonthNumber(name string) (int, bool) {
	n, ok := monthNumbers[strings.ToLower(name)]
	return n, ok
}

// ListAttributes names the attribute keys that accumulate multiple values
// during parsing instead of overwriting.
var ListAttributes = map[string]bool{
	"author":     true,
	"editor":     true,
	"attachment": true,
}
