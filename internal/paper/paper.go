package paper

import (
	"errors"

	"folio/internal/attrib"
	"folio/internal/ident"
	"folio/internal/markup"
)

// ErrMissingID reports a paper element without an id attribute.
var ErrMissingID = errors.New("paper element missing id attribute")

// Paper is one published record. ParentVolumeID is empty until a volume
// claims the paper; reassignment after that point is an ownership conflict
// the volume reports.
type Paper struct {
	ID             string
	TopLevelID     string
	Attrib         *attrib.Map
	ParentVolumeID string
}

// New returns an empty paper with an initialized attribute map.
func New(id, topLevelID string) *Paper {
	return &Paper{ID: id, TopLevelID: topLevelID, Attrib: attrib.New()}
}

// FullID returns the canonical archive identifier, collection prefix and
// paper number joined by a hyphen.
func (p *Paper) FullID() string {
	return p.TopLevelID + "-" + p.ID
}

// IsFrontMatter reports whether this record is a volume's front matter, i.e.
// its paper number component is zero. Front-matter records seed volumes.
func (p *Paper) IsFrontMatter() bool {
	return ident.IsVolumeID(p.FullID())
}

// Title renders the paper title in the requested markup form. Papers without
// a title yield the empty string.
func (p *Paper) Title(form markup.Form) (string, error) {
	return p.renderMarkup("xml_title", form)
}

// BookTitle renders the containing proceedings title in the requested form.
func (p *Paper) BookTitle(form markup.Form) (string, error) {
	return p.renderMarkup("xml_booktitle", form)
}

// Abstract renders the abstract in the requested form.
func (p *Paper) Abstract(form markup.Form) (string, error) {
	return p.renderMarkup("xml_abstract", form)
}

func (p *Paper) renderMarkup(key string, form markup.Form) (string, error) {
	src, ok := p.Attrib.GetString(key)
	if !ok {
		return "", nil
	}
	return markup.Render(src, form)
}
