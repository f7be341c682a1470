package venues

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"folio/internal/volume"
)

// Venue describes one registry entry. OldStyleLetter is the legacy
// collection prefix the venue published under, empty for venues that only
// ever appear as joint-proceedings codes.
type Venue struct {
	Acronym        string `yaml:"acronym"`
	Name           string `yaml:"name"`
	OldStyleLetter string `yaml:"oldstyle_letter"`
	IsTopLevel     bool   `yaml:"is_toplevel"`
}

// Index resolves volumes to venue codes and records which volumes each venue
// accumulated. Registration happens during volume construction; the index is
// not safe for concurrent mutation.
type Index struct {
	venues   map[string]Venue
	byLetter map[byte]string
	volumes  map[string][]string
}

// NewIndex builds an index over the given registry entries. Two venues
// claiming the same legacy letter is a registry error.
func NewIndex(entries map[string]Venue) (*Index, error) {
	idx := &Index{
		venues:   make(map[string]Venue, len(entries)),
		byLetter: make(map[byte]string),
		volumes:  make(map[string][]string),
	}
	codes := make([]string, 0, len(entries))
	for code := range entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		venue := entries[code]
		idx.venues[code] = venue
		if venue.OldStyleLetter == "" {
			continue
		}
		if len(venue.OldStyleLetter) != 1 {
			return nil, fmt.Errorf("venue %s: oldstyle letter %q is not a single letter", code, venue.OldStyleLetter)
		}
		letter := venue.OldStyleLetter[0]
		if prev, ok := idx.byLetter[letter]; ok {
			return nil, fmt.Errorf("venues %s and %s both claim letter %q", prev, code, venue.OldStyleLetter)
		}
		idx.byLetter[letter] = code
	}
	return idx, nil
}

// Load reads the venue registry from a YAML file.
func Load(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read venue registry: %w", err)
	}
	var entries map[string]Venue
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse venue registry %s: %w", path, err)
	}
	return NewIndex(entries)
}

// Register resolves the venues of a volume and records its full ID under
// each. The legacy main venue comes from the collection letter; joint
// proceedings add codes through the volume's "venue" attribute. Codes
// missing from the registry are ignored. Returns the resolved code set in
// resolution order.
func (idx *Index) Register(v *volume.Volume) []string {
	var codes []string
	seen := make(map[string]bool)
	record := func(code string) {
		if seen[code] {
			return
		}
		if _, ok := idx.venues[code]; !ok {
			return
		}
		seen[code] = true
		codes = append(codes, code)
		idx.volumes[code] = append(idx.volumes[code], v.FullID())
	}
	if v.TopLevelID != "" {
		if code, ok := idx.byLetter[v.TopLevelID[0]]; ok {
			record(code)
		}
	}
	for _, code := range extraCodes(v.Get("venue")) {
		record(code)
	}
	return codes
}

// extraCodes normalizes the volume's "venue" attribute, which is either a
// whitespace-separated string or a string list.
func extraCodes(value any) []string {
	switch v := value.(type) {
	case string:
		return strings.Fields(v)
	case []string:
		return v
	default:
		return nil
	}
}

// ByCode returns the registry entry for a venue code.
func (idx *Index) ByCode(code string) (Venue, bool) {
	venue, ok := idx.venues[code]
	return venue, ok
}

// ByLetter returns the venue code registered for a legacy collection letter.
func (idx *Index) ByLetter(letter byte) (string, bool) {
	code, ok := idx.byLetter[letter]
	return code, ok
}

// VolumeIDs returns the volumes registered under a venue code, in
// registration order.
func (idx *Index) VolumeIDs(code string) []string {
	ids := idx.volumes[code]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Codes returns all registered venue codes, sorted.
func (idx *Index) Codes() []string {
	codes := make([]string, 0, len(idx.venues))
	for code := range idx.venues {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
