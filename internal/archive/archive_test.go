package archive_test

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"testing"

	"folio/internal/archive"
	"folio/internal/logging"
	"folio/internal/markup"
	"folio/internal/paper"
	"folio/internal/testsupport"
)

const siglexYAML = `name: Special Interest Group on the Lexicon
shortname: SIGLEX
url: https://example.org/siglex
meetings:
  "2015":
    - W15-1000
`

func TestLoadBuildsVolumesAndOwnership(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCollection(t, cfg, "P18", `
<paper id="1000">
  <title>Proceedings of the 56th Annual Meeting</title>
  <editor><first>Ann</first><last>Chair</last></editor>
  <month>July</month>
</paper>
<paper id="1001">
  <title>Neural <fixed-case>NLP</fixed-case> Models</title>
  <author><first>Jo</first><last>Author</last></author>
  <pages>1--10</pages>
</paper>
<paper id="1002">
  <title>A Second Study</title>
</paper>`)
	testsupport.WriteCollection(t, cfg, "W15", `
<paper id="1000">
  <title>Proceedings of the Ninth Workshop on Semantic Evaluation</title>
  <venue>semeval</venue>
</paper>
<paper id="1001">
  <title>Task Overview</title>
</paper>`)
	testsupport.WriteSIG(t, cfg, "SIGLEX", siglexYAML)

	arc := testsupport.MustLoadArchive(t, cfg)

	stats := arc.Stats()
	if stats.Collections != 2 || stats.Volumes != 2 || stats.Papers != 5 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if arc.RunID == "" {
		t.Fatal("expected a run ID")
	}

	ids := arc.VolumeIDs()
	if len(ids) != 2 || ids[0] != "P18-1" || ids[1] != "W15-10" {
		t.Fatalf("unexpected volume IDs: %v", ids)
	}

	if owner, ok := arc.OwnerOf("P18-1001"); !ok || owner != "P18-1" {
		t.Fatalf("OwnerOf(P18-1001) = %q, %v", owner, ok)
	}
	if owner, ok := arc.OwnerOf("P18-1000"); !ok || owner != "P18-1" {
		t.Fatalf("front matter owner = %q, %v", owner, ok)
	}

	members := arc.PapersOf("P18-1")
	want := []string{"P18-1000", "P18-1001", "P18-1002"}
	if len(members) != len(want) {
		t.Fatalf("PapersOf(P18-1) = %v, want %v", members, want)
	}
	for i := range want {
		if members[i] != want[i] {
			t.Fatalf("PapersOf(P18-1) = %v, want %v", members, want)
		}
	}

	vol, ok := arc.Volume("W15-10")
	if !ok {
		t.Fatal("missing volume W15-10")
	}
	codes, ok := vol.Get("venues").([]string)
	if !ok || len(codes) != 2 || codes[0] != "ws" || codes[1] != "semeval" {
		t.Fatalf("unexpected venues: %v", vol.Get("venues"))
	}
	sigNames, ok := vol.Get("sigs").([]string)
	if !ok || len(sigNames) != 1 || sigNames[0] != "SIGLEX" {
		t.Fatalf("unexpected sigs: %v", vol.Get("sigs"))
	}

	p, ok := arc.Paper("P18-1001")
	if !ok {
		t.Fatal("missing paper P18-1001")
	}
	title, err := p.Title(markup.FormPlain)
	if err != nil {
		t.Fatalf("Title: %v", err)
	}
	if title != "Neural NLP Models" {
		t.Fatalf("title = %q", title)
	}
}

func TestLoadJournalFrontMatterUnowned(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCollection(t, cfg, "J18", `
<paper id="1000">
  <title>Computational Linguistics, Volume 44, Issue 1</title>
</paper>
<paper id="1001">
  <title>An Article on Parsing</title>
</paper>`)

	arc := testsupport.MustLoadArchive(t, cfg)

	vol, ok := arc.Volume("J18-1")
	if !ok {
		t.Fatal("missing volume J18-1")
	}
	if _, ok := arc.Paper("J18-1000"); !ok {
		t.Fatal("front matter should still be loadable as a paper")
	}
	if owner, ok := arc.OwnerOf("J18-1000"); ok {
		t.Fatalf("journal front matter should be unowned, got %q", owner)
	}
	if owner, ok := arc.OwnerOf("J18-1001"); !ok || owner != "J18-1" {
		t.Fatalf("OwnerOf(J18-1001) = %q, %v", owner, ok)
	}
	if got := vol.PaperIDs(); len(got) != 1 || got[0] != "J18-1001" {
		t.Fatalf("journal volume content = %v", got)
	}
	if got := arc.PapersOf("J18-1"); len(got) != 1 || got[0] != "J18-1001" {
		t.Fatalf("PapersOf(J18-1) = %v", got)
	}

	if got := vol.Get("meta_journal_title"); got != "Journal of Computational Linguistics" {
		t.Fatalf("meta_journal_title = %v", got)
	}
	if got := vol.Get("meta_volume"); got != "44" {
		t.Fatalf("meta_volume = %v", got)
	}
	if got := vol.Get("meta_issue"); got != "1" {
		t.Fatalf("meta_issue = %v", got)
	}
}

func TestLoadOrphanPaperFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCollection(t, cfg, "P18", `
<paper id="1001">
  <title>Appears Before Any Front Matter</title>
</paper>`)

	_, err := archive.Load(cfg, logging.NewNop())
	if !errors.Is(err, archive.ErrOrphanPaper) {
		t.Fatalf("expected orphan paper error, got %v", err)
	}
}

func TestLoadDuplicateVolumeFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCollection(t, cfg, "P18", `
<paper id="1000">
  <title>Proceedings, First Take</title>
</paper>
<paper id="1001">
  <title>A Paper</title>
</paper>
<paper id="1000">
  <title>Proceedings, Second Take</title>
</paper>`)

	_, err := archive.Load(cfg, logging.NewNop())
	if !errors.Is(err, archive.ErrDuplicateVolume) {
		t.Fatalf("expected duplicate volume error, got %v", err)
	}
}

func TestLoadDuplicatePaperFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCollection(t, cfg, "P18", `
<paper id="1000">
  <title>Proceedings</title>
</paper>
<paper id="1001">
  <title>First Definition</title>
</paper>
<paper id="1001">
  <title>Second Definition</title>
</paper>`)

	_, err := archive.Load(cfg, logging.NewNop())
	if err == nil || !strings.Contains(err.Error(), "P18-1001") {
		t.Fatalf("expected duplicate paper error, got %v", err)
	}
	if errors.Is(err, archive.ErrDuplicateVolume) {
		t.Fatalf("duplicate paper misreported as duplicate volume: %v", err)
	}
}

func TestLoadPaperMissingIDFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCollection(t, cfg, "P18", `
<paper>
  <title>No Identifier</title>
</paper>`)

	_, err := archive.Load(cfg, logging.NewNop())
	if !errors.Is(err, paper.ErrMissingID) {
		t.Fatalf("expected missing id error, got %v", err)
	}
}

func TestLoadEmptyDataDir(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	arc := testsupport.MustLoadArchive(t, cfg)

	if stats := arc.Stats(); stats != (archive.Stats{}) {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
	if files := arc.SourceFiles(); len(files) != 0 {
		t.Fatalf("expected no source files, got %v", files)
	}
	if arc.RunID == "" {
		t.Fatal("expected a run ID even for an empty archive")
	}
}

func TestLoadSourceFilesSortedWithFingerprints(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCollection(t, cfg, "W15", `
<paper id="1000">
  <title>Workshop Proceedings</title>
</paper>`)
	testsupport.WriteCollection(t, cfg, "P18", `
<paper id="1000">
  <title>Conference Proceedings</title>
</paper>`)

	arc := testsupport.MustLoadArchive(t, cfg)

	files := arc.SourceFiles()
	if len(files) != 2 || files[0].Collection != "P18" || files[1].Collection != "W15" {
		t.Fatalf("unexpected file order: %+v", files)
	}
	hexPattern := regexp.MustCompile(`^[0-9a-f]{8}$`)
	for _, f := range files {
		if !hexPattern.MatchString(f.Fingerprint) {
			t.Fatalf("fingerprint %q is not 8 hex digits", f.Fingerprint)
		}
		if f.Path == "" {
			t.Fatalf("source file missing path: %+v", f)
		}
	}
}

func TestLoadMissingVenueRegistryFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.Remove(cfg.Paths.VenuesFile); err != nil {
		t.Fatalf("remove venues file: %v", err)
	}

	_, err := archive.Load(cfg, logging.NewNop())
	if err == nil {
		t.Fatal("expected error for missing venue registry")
	}
}

func TestLoadMalformedCollectionFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCollection(t, cfg, "P18", `<paper id="1000">`)

	_, err := archive.Load(cfg, logging.NewNop())
	if err == nil || !strings.Contains(err.Error(), "P18") {
		t.Fatalf("expected parse error naming the file, got %v", err)
	}
}
