package ident

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedID reports an identifier that does not follow either the legacy
// or the new-style format.
var ErrMalformedID = errors.New("malformed identifier")

var legacyIDPattern = regexp.MustCompile(`^([A-Z]\d{2})-(\d{1,4})$`)

// JournalVenueIDs lists the venue slugs that denote journals under the
// new-style scheme, where the collection prefix no longer encodes the kind.
var JournalVenueIDs = []string{"jcl", "qtlp"}

// Parts holds the components of a canonical identifier. Paper is empty for
// volume-level identifiers.
type Parts struct {
	Collection string
	Volume     string
	Paper      string
}

// IsNewStyle reports whether an identifier belongs to the year-first
// generation (e.g. "2020.jcl-1.4"). Legacy identifiers start with a letter.
func IsNewStyle(id string) bool {
	return id != "" && id[0] >= '0' && id[0] <= '9'
}

// IsJournal reports whether the identifier denotes a journal publication.
// New-style identifiers are checked against the journal venue slugs; legacy
// identifiers resolve through their scheme letter.
func IsJournal(id string) bool {
	if IsNewStyle(id) {
		collection := id
		if i := strings.Index(collection, "-"); i >= 0 {
			collection = collection[:i]
		}
		if i := strings.LastIndex(collection, "."); i >= 0 {
			collection = collection[i+1:]
		}
		for _, slug := range JournalVenueIDs {
			if collection == slug {
				return true
			}
		}
		return false
	}
	return SchemeFor(id) == SchemeJournal
}

// Join builds a width-padded canonical identifier from its components, e.g.
// ("P18", "1", "1") becomes "P18-1001". An empty paper component produces a
// volume-level identifier. Legacy collections starting with "W", the "C69"
// collection, and "D19" volumes five and above pad the volume to two digits.
func Join(collection, volume, paper string) (string, error) {
	if IsNewStyle(collection) {
		if paper == "" {
			return collection + "-" + volume, nil
		}
		return collection + "-" + volume + "." + paper, nil
	}

	volumeNo, err := strconv.Atoi(volume)
	if err != nil {
		return "", fmt.Errorf("%w: volume %q in %q", ErrMalformedID, volume, collection)
	}

	var id string
	if wideVolume(collection, volumeNo) {
		id = fmt.Sprintf("%s-%02d", collection, volumeNo)
		if paper != "" {
			paperNo, err := strconv.Atoi(paper)
			if err != nil {
				return "", fmt.Errorf("%w: paper %q in %q", ErrMalformedID, paper, collection)
			}
			id += fmt.Sprintf("%02d", paperNo)
		}
	} else {
		id = fmt.Sprintf("%s-%d", collection, volumeNo)
		if paper != "" {
			paperNo, err := strconv.Atoi(paper)
			if err != nil {
				return "", fmt.Errorf("%w: paper %q in %q", ErrMalformedID, paper, collection)
			}
			id += fmt.Sprintf("%03d", paperNo)
		}
	}
	return id, nil
}

// Split breaks a canonical identifier into collection, volume, and paper
// components, undoing the width padding Join applies:
//
//	P18-1007  -> {P18, 1, 7}
//	W18-6310  -> {W18, 63, 10}
//	D19-5702  -> {D19, 57, 2}
//	P18-1     -> {P18, 1, }
//
// Four digits after the hyphen denote a paper, fewer denote a bare volume.
func Split(id string) (Parts, error) {
	if IsNewStyle(id) {
		collection, rest, ok := strings.Cut(id, "-")
		if !ok {
			return Parts{}, fmt.Errorf("%w: %q", ErrMalformedID, id)
		}
		volume, paper, _ := strings.Cut(rest, ".")
		return Parts{Collection: collection, Volume: volume, Paper: paper}, nil
	}

	if strings.Count(id, "-") != 1 {
		return Parts{}, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	collection, rest, _ := strings.Cut(id, "-")

	restNo, err := strconv.Atoi(rest)
	if err != nil || rest == "" {
		return Parts{}, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}

	if wideVolume(collection, leadingDigit(rest)) {
		if len(rest) == 4 {
			return Parts{
				Collection: collection,
				Volume:     trimZeros(rest[0:2]),
				Paper:      trimZeros(rest[2:]),
			}, nil
		}
		return Parts{Collection: collection, Volume: strconv.Itoa(restNo)}, nil
	}
	if len(rest) == 4 {
		return Parts{
			Collection: collection,
			Volume:     rest[0:1],
			Paper:      trimZeros(rest[1:]),
		}, nil
	}
	return Parts{Collection: collection, Volume: strconv.Itoa(restNo)}, nil
}

// IsValid reports whether a legacy identifier is well-formed as either a
// paper or a volume identifier. Volume identifiers carry two digits under
// wide collections and one elsewhere; paper identifiers always carry four.
func IsValid(id string) bool {
	match := legacyIDPattern.FindStringSubmatch(id)
	if match == nil {
		return false
	}
	collection, rest := match[1], match[2]
	if len(rest) == 4 {
		return true
	}
	if wideVolume(collection, leadingDigit(rest)) {
		return len(rest) == 2
	}
	return len(rest) == 1
}

// IsVolumeID reports whether a full paper identifier denotes a volume's own
// front-matter record, i.e. its paper component is zero.
func IsVolumeID(id string) bool {
	parts, err := Split(id)
	if err != nil {
		return false
	}
	return parts.Paper == "0"
}

// InferYear derives the publication year from a collection identifier. Legacy
// collections encode the last two digits of the year ("P18" -> 2018, "C69" ->
// 1969, wrapping at 60); new-style collections carry the year literally.
func InferYear(collection string) (string, error) {
	if IsNewStyle(collection) {
		year, _, _ := strings.Cut(collection, ".")
		return year, nil
	}
	if len(collection) != 3 {
		return "", fmt.Errorf("%w: collection %q", ErrMalformedID, collection)
	}
	digits := collection[1:]
	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", fmt.Errorf("%w: collection %q", ErrMalformedID, collection)
	}
	if n >= 60 {
		return "19" + digits, nil
	}
	return "20" + digits, nil
}

// wideVolume reports whether a legacy collection pads volumes to two digits.
// The set is historical: every workshop collection, the C69 proceedings, and
// the D19 collection from volume five onward.
func wideVolume(collection string, volumeNo int) bool {
	if strings.HasPrefix(collection, "W") || collection == "C69" {
		return true
	}
	return collection == "D19" && volumeNo >= 5
}

func leadingDigit(s string) int {
	if s == "" {
		return 0
	}
	return int(s[0] - '0')
}

func trimZeros(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	return strconv.Itoa(n)
}
