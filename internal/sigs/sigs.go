package sigs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// SIG is one special interest group. Meetings maps a year to the
// front-matter IDs of the volumes the SIG sponsored that year.
type SIG struct {
	Name      string              `yaml:"name"`
	ShortName string              `yaml:"shortname"`
	URL       string              `yaml:"url"`
	Meetings  map[string][]string `yaml:"meetings"`
}

// Index is the loaded SIG registry with a reverse map from sponsored
// front-matter IDs to SIG shortnames.
type Index struct {
	sigs      map[string]SIG
	byMeeting map[string][]string
}

// LoadDir reads every *.yaml file in dir, one SIG per file. Files are read
// in sorted order so reverse-map ordering is reproducible.
func LoadDir(dir string) (*Index, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scan SIG registry: %w", err)
	}
	sort.Strings(paths)
	idx := &Index{
		sigs:      make(map[string]SIG, len(paths)),
		byMeeting: make(map[string][]string),
	}
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read SIG file: %w", err)
		}
		var sig SIG
		if err := yaml.Unmarshal(raw, &sig); err != nil {
			return nil, fmt.Errorf("parse SIG file %s: %w", path, err)
		}
		if sig.ShortName == "" {
			return nil, fmt.Errorf("SIG file %s has no shortname", path)
		}
		if _, ok := idx.sigs[sig.ShortName]; ok {
			return nil, fmt.Errorf("SIG %s defined more than once", sig.ShortName)
		}
		idx.sigs[sig.ShortName] = sig
		idx.indexMeetings(sig)
	}
	return idx, nil
}

func (idx *Index) indexMeetings(sig SIG) {
	years := make([]string, 0, len(sig.Meetings))
	for year := range sig.Meetings {
		years = append(years, year)
	}
	sort.Strings(years)
	for _, year := range years {
		for _, id := range sig.Meetings[year] {
			if containsString(idx.byMeeting[id], sig.ShortName) {
				continue
			}
			idx.byMeeting[id] = append(idx.byMeeting[id], sig.ShortName)
		}
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// AssociatedSIGs returns the shortnames of every SIG that sponsored the
// given front-matter ID, in registry load order. Unsponsored volumes get an
// empty set.
func (idx *Index) AssociatedSIGs(frontMatterFullID string) []string {
	names := idx.byMeeting[frontMatterFullID]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// ByShortName returns the registry entry for a SIG shortname.
func (idx *Index) ByShortName(name string) (SIG, bool) {
	sig, ok := idx.sigs[name]
	return sig, ok
}

// ShortNames returns all registered SIG shortnames, sorted.
func (idx *Index) ShortNames() []string {
	names := make([]string, 0, len(idx.sigs))
	for name := range idx.sigs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MeetingIDs flattens a SIG's meetings to front-matter IDs, years in sorted
// order, file order within a year.
func (idx *Index) MeetingIDs(shortname string) []string {
	sig, ok := idx.sigs[shortname]
	if !ok {
		return nil
	}
	years := make([]string, 0, len(sig.Meetings))
	for year := range sig.Meetings {
		years = append(years, year)
	}
	sort.Strings(years)
	var ids []string
	for _, year := range years {
		ids = append(ids, sig.Meetings[year]...)
	}
	return ids
}
