package paper

import (
	"encoding/xml"
	"errors"
	"testing"

	"folio/internal/markup"
	"folio/internal/people"
)

func decodePaper(t *testing.T, src string) XMLPaper {
	t.Helper()
	var el XMLPaper
	if err := xml.Unmarshal([]byte(src), &el); err != nil {
		t.Fatalf("unmarshal paper element: %v", err)
	}
	return el
}

func TestFromXMLBasicFields(t *testing.T) {
	el := decodePaper(t, `<paper id="1007">
  <title>Deep <fixed-case>NLP</fixed-case> Models</title>
  <author id="a-researcher"><first>Ada</first><last>Researcher</last></author>
  <author><first>Grace</first><last>Builder</last></author>
  <month>February</month>
  <year>2018</year>
  <pages>77-89</pages>
</paper>`)
	p, err := FromXML(el, "P18")
	if err != nil {
		t.Fatalf("FromXML: %v", err)
	}
	if p.FullID() != "P18-1007" {
		t.Fatalf("FullID() = %q", p.FullID())
	}
	raw, ok := p.Attrib.GetString("xml_title")
	if !ok || raw != `Deep <fixed-case>NLP</fixed-case> Models` {
		t.Fatalf("xml_title = %q, %v", raw, ok)
	}
	if plain, _ := p.Attrib.GetString("title"); plain != "Deep NLP Models" {
		t.Fatalf("title projection = %q", plain)
	}
	title, err := p.Title(markup.FormPlain)
	if err != nil {
		t.Fatalf("Title(plain): %v", err)
	}
	if title != "Deep NLP Models" {
		t.Fatalf("Title(plain) = %q", title)
	}
	authors, ok := p.Attrib.Get("author").([]people.Name)
	if !ok || len(authors) != 2 {
		t.Fatalf("author list = %#v", p.Attrib.Get("author"))
	}
	if authors[0].ID != "a-researcher" || authors[0].Full() != "Ada Researcher" {
		t.Fatalf("first author = %#v", authors[0])
	}
	if authors[1].Full() != "Grace Builder" {
		t.Fatalf("second author = %#v", authors[1])
	}
	if month, _ := p.Attrib.GetString("month"); month != "February" {
		t.Fatalf("month = %q", month)
	}
	if pages, _ := p.Attrib.GetString("pages"); pages != "77-89" {
		t.Fatalf("pages = %q", pages)
	}
}

func TestFromXMLMissingID(t *testing.T) {
	el := decodePaper(t, `<paper><title>No identity</title></paper>`)
	if _, err := FromXML(el, "P18"); !errors.Is(err, ErrMissingID) {
		t.Fatalf("FromXML error = %v, want ErrMissingID", err)
	}
}

func TestFromXMLURLHandling(t *testing.T) {
	t.Run("explicit relative url", func(t *testing.T) {
		el := decodePaper(t, `<paper id="1007"><url>P18-1007</url></paper>`)
		p, err := FromXML(el, "P18")
		if err != nil {
			t.Fatalf("FromXML: %v", err)
		}
		if u, _ := p.Attrib.GetString("url"); u != "https://folio-archive.org/P18-1007" {
			t.Fatalf("url = %q", u)
		}
		if pdf, _ := p.Attrib.GetString("pdf"); pdf != "https://folio-archive.org/pdf/P18-1007.pdf" {
			t.Fatalf("pdf = %q", pdf)
		}
	})
	t.Run("explicit absolute url", func(t *testing.T) {
		el := decodePaper(t, `<paper id="1007"><url>https://mirror.example.org/p.pdf</url></paper>`)
		p, err := FromXML(el, "P18")
		if err != nil {
			t.Fatalf("FromXML: %v", err)
		}
		if u, _ := p.Attrib.GetString("url"); u != "https://mirror.example.org/p.pdf" {
			t.Fatalf("url = %q", u)
		}
	})
	t.Run("derived when absent", func(t *testing.T) {
		el := decodePaper(t, `<paper id="1007"><year>2018</year></paper>`)
		p, err := FromXML(el, "P18")
		if err != nil {
			t.Fatalf("FromXML: %v", err)
		}
		if u, _ := p.Attrib.GetString("url"); u != "https://folio-archive.org/P18-1007" {
			t.Fatalf("url = %q", u)
		}
		if pdf, _ := p.Attrib.GetString("pdf"); pdf != "https://folio-archive.org/pdf/P18-1007.pdf" {
			t.Fatalf("pdf = %q", pdf)
		}
	})
}

func TestFromXMLAttachments(t *testing.T) {
	el := decodePaper(t, `<paper id="1007">
  <attachment type="poster">P18-1007.Poster.pdf</attachment>
  <dataset>P18-1007.Dataset.zip</dataset>
  <software>P18-1007.Software.tgz</software>
  <video href="P18-1007.mp4"/>
  <video href="P18-1007-private.mp4" permission="false"/>
</paper>`)
	p, err := FromXML(el, "P18")
	if err != nil {
		t.Fatalf("FromXML: %v", err)
	}
	atts, ok := p.Attrib.Get("attachment").([]Attachment)
	if !ok {
		t.Fatalf("attachment list = %#v", p.Attrib.Get("attachment"))
	}
	if len(atts) != 4 {
		t.Fatalf("attachment count = %d, want 4 (permissioned video excluded)", len(atts))
	}
	if atts[0].Type != "poster" || atts[0].URL != "https://folio-archive.org/attachments/P18-1007.Poster.pdf" {
		t.Fatalf("poster attachment = %#v", atts[0])
	}
	if atts[1].Type != "dataset" || atts[2].Type != "software" {
		t.Fatalf("dataset/software types = %q, %q", atts[1].Type, atts[2].Type)
	}
	if atts[3].Type != "video" || atts[3].Filename != "P18-1007.mp4" {
		t.Fatalf("video attachment = %#v", atts[3])
	}
	for _, a := range atts {
		if a.Filename == "P18-1007-private.mp4" {
			t.Fatal("permission-denied video was kept")
		}
	}
}

func TestFromXMLCorrections(t *testing.T) {
	el := decodePaper(t, `<paper id="1007">
  <erratum id="e1" href="P18-1007e1">Figure 2 corrected</erratum>
  <revision id="2" href="P18-1007v2">Added appendix</revision>
</paper>`)
	p, err := FromXML(el, "P18")
	if err != nil {
		t.Fatalf("FromXML: %v", err)
	}
	erratum, ok := p.Attrib.Get("erratum").(Correction)
	if !ok {
		t.Fatalf("erratum = %#v", p.Attrib.Get("erratum"))
	}
	if erratum.ID != "e1" || erratum.Note != "Figure 2 corrected" {
		t.Fatalf("erratum = %#v", erratum)
	}
	if erratum.URL != "https://folio-archive.org/pdf/P18-1007e1.pdf" {
		t.Fatalf("erratum url = %q", erratum.URL)
	}
	revision, ok := p.Attrib.Get("revision").(Correction)
	if !ok || revision.ID != "2" {
		t.Fatalf("revision = %#v", p.Attrib.Get("revision"))
	}
}

func TestFromXMLScalarOverwrite(t *testing.T) {
	el := decodePaper(t, `<paper id="1007"><month>Feb</month><month>February</month></paper>`)
	p, err := FromXML(el, "P18")
	if err != nil {
		t.Fatalf("FromXML: %v", err)
	}
	if month, _ := p.Attrib.GetString("month"); month != "February" {
		t.Fatalf("month = %q, want last value", month)
	}
}

func TestIsFrontMatter(t *testing.T) {
	tests := []struct {
		id         string
		topLevelID string
		want       bool
	}{
		{"1000", "P18", true},
		{"1007", "P18", false},
		{"1000", "W15", true},
		{"6310", "W18", false},
		{"2000", "J18", true},
	}
	for _, tt := range tests {
		p := New(tt.id, tt.topLevelID)
		if got := p.IsFrontMatter(); got != tt.want {
			t.Fatalf("IsFrontMatter(%s-%s) = %v, want %v", tt.topLevelID, tt.id, got, tt.want)
		}
	}
}

func TestTitleAbsent(t *testing.T) {
	p := New("1007", "P18")
	title, err := p.Title(markup.FormPlain)
	if err != nil {
		t.Fatalf("Title on empty paper: %v", err)
	}
	if title != "" {
		t.Fatalf("Title on empty paper = %q", title)
	}
}

func TestBookTitleRendering(t *testing.T) {
	el := decodePaper(t, `<paper id="1007"><booktitle>Proceedings of the <fixed-case>ACL</fixed-case> Conference</booktitle></paper>`)
	p, err := FromXML(el, "P18")
	if err != nil {
		t.Fatalf("FromXML: %v", err)
	}
	bt, err := p.BookTitle(markup.FormHTML)
	if err != nil {
		t.Fatalf("BookTitle(html): %v", err)
	}
	want := `Proceedings of the <span class="fixed-case">ACL</span> Conference`
	if bt != want {
		t.Fatalf("BookTitle(html) = %q, want %q", bt, want)
	}
}
