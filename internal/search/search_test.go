package search_test

import (
	"testing"

	"folio/internal/search"
	"folio/internal/testsupport"
)

func buildIndex(t *testing.T) *search.Index {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCollection(t, cfg, "P18", `
<paper id="1000">
  <title>Proceedings of the 56th Annual Meeting</title>
</paper>
<paper id="1001">
  <title>Neural Dependency Parsing</title>
</paper>
<paper id="1002">
  <title>Statistical Machine Translation Revisited</title>
</paper>
<paper id="1003">
  <title>Neural Machine Translation</title>
</paper>`)
	arc := testsupport.MustLoadArchive(t, cfg)
	return search.NewIndex(arc)
}

func TestNewIndexCountsTitledPapers(t *testing.T) {
	idx := buildIndex(t)
	if idx.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", idx.Len())
	}
}

func TestQueryRanksDistinctiveTitleFirst(t *testing.T) {
	idx := buildIndex(t)

	results := idx.Query("neural dependency parsing", 0)
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if results[0].PaperID != "P18-1001" {
		t.Fatalf("top hit = %s (%q), want P18-1001", results[0].PaperID, results[0].Title)
	}
	if results[0].Score <= 0 {
		t.Fatalf("top score = %v, want > 0", results[0].Score)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not in descending score order: %v", results)
		}
	}
}

func TestQueryLimitCapsResults(t *testing.T) {
	idx := buildIndex(t)

	results := idx.Query("machine translation", 1)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

func TestQueryNoSharedTermsReturnsNothing(t *testing.T) {
	idx := buildIndex(t)

	if results := idx.Query("quantum chromodynamics", 0); len(results) != 0 {
		t.Fatalf("expected no results, got %v", results)
	}
}

func TestQueryEmptyTextReturnsNothing(t *testing.T) {
	idx := buildIndex(t)

	if results := idx.Query("", 0); len(results) != 0 {
		t.Fatalf("expected no results, got %v", results)
	}
}

func TestQueryBreaksTiesByPaperID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCollection(t, cfg, "P18", `
<paper id="1000">
  <title>Proceedings of the Annual Meeting</title>
</paper>
<paper id="1001">
  <title>Coreference Resolution Advances</title>
</paper>
<paper id="1002">
  <title>Coreference Resolution Advances</title>
</paper>`)
	arc := testsupport.MustLoadArchive(t, cfg)
	idx := search.NewIndex(arc)

	results := idx.Query("coreference resolution", 0)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %v", len(results), results)
	}
	if results[0].PaperID != "P18-1001" || results[1].PaperID != "P18-1002" {
		t.Fatalf("tie order = %s, %s; want P18-1001, P18-1002",
			results[0].PaperID, results[1].PaperID)
	}
	if results[0].Score != results[1].Score {
		t.Fatalf("identical titles scored %v and %v", results[0].Score, results[1].Score)
	}
}
