package people

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Name is a personal name as recorded in a collection file. ID carries the
// optional disambiguation key from the source element and is empty for most
// names.
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
	ID    string `json:"id,omitempty"`
}

// Full returns the display form, "First Last", falling back to the family
// name alone when no given name was recorded.
func (n Name) Full() string {
	if n.First == "" {
		return n.Last
	}
	return n.First + " " + n.Last
}

// LastFirst returns the bibliographic form, "Last, First".
func (n Name) LastFirst() string {
	if n.First == "" {
		return n.Last
	}
	return n.Last + ", " + n.First
}

func (n Name) String() string {
	return n.Full()
}

// Slug returns a stable lowercase ASCII key for the name: diacritics folded,
// non-alphanumeric runs collapsed to single hyphens. Names that fold to
// nothing produce an empty slug.
func (n Name) Slug() string {
	return Slugify(n.Full())
}

var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify folds an arbitrary string the same way Name.Slug does.
func Slugify(s string) string {
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
