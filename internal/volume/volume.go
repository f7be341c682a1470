package volume

import (
	"errors"
	"fmt"

	"folio/internal/attrib"
	"folio/internal/bibdata"
	"folio/internal/ident"
	"folio/internal/markup"
	"folio/internal/paper"
)

// ErrAlreadyOwned reports an append that re-parented a paper which already
// belonged to a volume. The append still completes; the caller decides how
// loudly to surface the conflict.
var ErrAlreadyOwned = errors.New("paper already belongs to a volume")

// VenueIndex resolves the venues a volume belongs to. Register runs during
// construction against the partially built volume: identity and attributes
// are in place, content is not. Register may record the volume in index
// state.
type VenueIndex interface {
	Register(v *Volume) []string
}

// SIGIndex resolves special-interest-group sponsorships. The lookup key is
// the front matter's own full ID, not the derived volume ID.
type SIGIndex interface {
	AssociatedSIGs(frontMatterFullID string) []string
}

// Volume is one proceedings volume: identity copied from its front matter,
// an attribute map derived from it, and the member papers in publication
// order.
type Volume struct {
	FrontMatterID string
	TopLevelID    string
	Attrib        *attrib.Map

	scheme  ident.Scheme
	content []*paper.Paper
}

// New builds a volume from its front-matter record.
//
// The front matter's attributes are inherited (authors renamed to editors,
// paper-scoped fields dropped), the canonical URL is set from the volume ID,
// venues and SIGs are resolved through the indexes, and journal metadata is
// derived from the title. Schemes that carry a physical front-matter
// document get the front matter itself as the first content entry; journal
// schemes stay metadata-only.
//
// The returned error is non-nil only when the front matter already belonged
// to another volume; the volume is fully constructed regardless.
func New(frontMatter *paper.Paper, venues VenueIndex, sigs SIGIndex) (*Volume, error) {
	v := &Volume{
		FrontMatterID: frontMatter.ID,
		TopLevelID:    frontMatter.TopLevelID,
		Attrib:        deriveVolumeAttributes(frontMatter.Attrib),
		scheme:        ident.SchemeFor(frontMatter.TopLevelID),
	}
	v.Attrib.Set("url", bibdata.ArchiveURL(v.FullID()))
	v.Attrib.Set("venues", venues.Register(v))
	v.Attrib.Set("sigs", sigs.AssociatedSIGs(frontMatter.FullID()))
	title, _ := v.Attrib.GetString("title")
	meta := metaInfo(v.TopLevelID, title)
	for _, key := range meta.Keys() {
		v.Attrib.Set(key, meta.Get(key))
	}
	if v.scheme.HasFrontMatter() {
		return v, v.Append(frontMatter)
	}
	return v, nil
}

// deriveVolumeAttributes builds a volume's attribute map from its front
// matter's: the map is cloned, front-matter authors become the volume's
// editors, and paper-scoped fields are removed.
func deriveVolumeAttributes(src *attrib.Map) *attrib.Map {
	dst := src.Clone()
	dst.Rename("author", "editor")
	for _, key := range []string{"revision", "erratum", "pages"} {
		dst.Delete(key)
	}
	return dst
}

// FullID returns the volume identifier: the collection prefix joined with
// the scheme-defined number of leading front-matter digits, two for workshop
// collections and one for everything else.
func (v *Volume) FullID() string {
	digits := v.scheme.VolumeDigits()
	if digits > len(v.FrontMatterID) {
		digits = len(v.FrontMatterID)
	}
	return v.TopLevelID + "-" + v.FrontMatterID[:digits]
}

// Append adds a paper to the volume's content and claims ownership of it. A
// paper that already had a parent volume is re-parented anyway; the returned
// error wraps ErrAlreadyOwned with both identifiers so the caller can report
// the conflict.
func (v *Volume) Append(p *paper.Paper) error {
	v.content = append(v.content, p)
	var err error
	if p.ParentVolumeID != "" {
		err = fmt.Errorf("%w: appending %s to %s, owned by %s",
			ErrAlreadyOwned, p.FullID(), v.FullID(), p.ParentVolumeID)
	}
	p.ParentVolumeID = v.FullID()
	return err
}

// Get returns the named attribute, nil when absent.
func (v *Volume) Get(name string) any {
	return v.Attrib.Get(name)
}

// GetDefault returns the named attribute, or def when absent.
func (v *Volume) GetDefault(name string, def any) any {
	return v.Attrib.GetDefault(name, def)
}

// Title renders the volume title in the requested markup form. Volumes
// without a title yield the empty string.
func (v *Volume) Title(form markup.Form) (string, error) {
	src, ok := v.Attrib.GetString("xml_title")
	if !ok {
		return "", nil
	}
	return markup.Render(src, form)
}

// PaperIDs projects the content to full IDs in publication order.
func (v *Volume) PaperIDs() []string {
	ids := make([]string, len(v.content))
	for i, p := range v.content {
		ids[i] = p.FullID()
	}
	return ids
}

// Papers returns the member papers in publication order.
func (v *Volume) Papers() []*paper.Paper {
	out := make([]*paper.Paper, len(v.content))
	copy(out, v.content)
	return out
}
