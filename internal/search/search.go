// Package search ranks archive papers against free-text queries using
// IDF-weighted title fingerprints.
package search

import (
	"sort"

	"folio/internal/archive"
	"folio/internal/textutil"
)

// Result is one ranked hit.
type Result struct {
	PaperID string  `json:"paper_id"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
}

type entry struct {
	id    string
	title string
	fp    *textutil.Fingerprint
}

// Index holds a fingerprint per titled paper. Front matter is indexed too,
// so volume titles are reachable through their front-matter records.
type Index struct {
	entries []entry
	idf     map[string]float64
}

// NewIndex fingerprints every paper title in the archive and reweights the
// vectors by inverse document frequency, so boilerplate shared across
// proceedings titles does not dominate the ranking. Papers without a usable
// title are left out.
func NewIndex(arc *archive.Archive) *Index {
	ids := arc.PaperIDs()
	entries := make([]entry, 0, len(ids))
	corpus := textutil.NewCorpus()
	for _, id := range ids {
		p, ok := arc.Paper(id)
		if !ok {
			continue
		}
		title, _ := p.Attrib.GetString("title")
		fp := textutil.NewFingerprint(title)
		if fp == nil {
			continue
		}
		corpus.Add(fp)
		entries = append(entries, entry{id: id, title: title, fp: fp})
	}

	idx := &Index{entries: entries, idf: corpus.IDF()}
	for i := range idx.entries {
		// A title made entirely of ubiquitous terms weighs out to nil;
		// keep its raw vector so the entry stays matchable.
		if weighted := idx.entries[i].fp.WithIDF(idx.idf); weighted != nil {
			idx.entries[i].fp = weighted
		}
	}
	return idx
}

// Len returns the number of indexed papers.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Query ranks indexed papers against text. Results are ordered by
// descending score with ties broken by paper ID; a positive limit caps the
// result count. Queries that share no terms with any title return nothing.
func (idx *Index) Query(text string, limit int) []Result {
	query := textutil.NewFingerprint(text).WithIDF(idx.idf)

	results := make([]Result, 0, len(idx.entries))
	for _, e := range idx.entries {
		score := textutil.CosineSimilarity(query, e.fp)
		if score == 0 {
			continue
		}
		results = append(results, Result{PaperID: e.id, Title: e.title, Score: score})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].PaperID < results[j].PaperID
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
