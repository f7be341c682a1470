package volume

import (
	"regexp"

	"folio/internal/attrib"
	"folio/internal/bibdata"
)

var (
	volumeNoPattern = regexp.MustCompile(`(?i)Volume\s*(\d+)`)
	issueNoPattern  = regexp.MustCompile(`(?i)(Number|Issue)\s*(\d+-?\d*)`)
)

// metaInfo derives the journal metadata a volume publishes. The journal
// title is stored unconditionally; volume and issue numbers appear only when
// the title carries them, verbatim as matched. Issue numbers may be ranges
// like "12-13".
func metaInfo(topLevelID, title string) *attrib.Map {
	m := attrib.New()
	m.Set("meta_journal_title", bibdata.JournalTitle(topLevelID, title))
	if match := volumeNoPattern.FindStringSubmatch(title); match != nil {
		m.Set("meta_volume", match[1])
	}
	if match := issueNoPattern.FindStringSubmatch(title); match != nil {
		m.Set("meta_issue", match[2])
	}
	return m
}
