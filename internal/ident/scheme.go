package ident

// Scheme classifies a legacy collection prefix. The scheme decides both the
// width of the volume component inside a full identifier and whether a
// proceedings volume owns a retrievable front-matter document.
type Scheme int

const (
	// SchemeStandard covers conference collections: one-digit volumes with
	// physical front matter.
	SchemeStandard Scheme = iota
	// SchemeWorkshop covers W-prefixed collections, which subdivide volumes
	// by two digits.
	SchemeWorkshop
	// SchemeJournal covers the J and Q collections. Journal issues are
	// metadata-only: their front-matter record never appears as content.
	SchemeJournal
)

// SchemeFor resolves the scheme from a top-level collection identifier such
// as "W15" or "J89". Empty input resolves to SchemeStandard.
func SchemeFor(topLevelID string) Scheme {
	if topLevelID == "" {
		return SchemeStandard
	}
	switch topLevelID[0] {
	case 'W':
		return SchemeWorkshop
	case 'J', 'Q':
		return SchemeJournal
	default:
		return SchemeStandard
	}
}

func (s Scheme) String() string {
	switch s {
	case SchemeWorkshop:
		return "workshop"
	case SchemeJournal:
		return "journal"
	default:
		return "standard"
	}
}

// VolumeDigits reports how many leading digits of a front-matter paper number
// form the volume component of the canonical identifier.
func (s Scheme) VolumeDigits() int {
	if s == SchemeWorkshop {
		return 2
	}
	return 1
}

// HasFrontMatter reports whether volumes under this scheme include their
// front-matter record as the first content item.
func (s Scheme) HasFrontMatter() bool {
	return s != SchemeJournal
}
