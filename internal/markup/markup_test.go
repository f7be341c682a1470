package markup

import (
	"errors"
	"testing"
)

func TestRenderXMLPassthrough(t *testing.T) {
	src := `Parsing with <fixed-case>LR</fixed-case> tables`
	got, err := Render(src, FormXML)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != src {
		t.Fatalf("xml form altered source: %q", got)
	}
}

func TestRenderPlainStripsTags(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`Parsing with <fixed-case>LR</fixed-case> tables`, "Parsing with LR tables"},
		{`<b>Bold</b> and <i>italic</i>`, "Bold and italic"},
		{"Split\nacross  lines", "Splitacross lines"},
		{`Nested <b>outer <i>inner</i></b> text`, "Nested outer inner text"},
		{"", ""},
	}
	for _, tc := range cases {
		got, err := Render(tc.src, FormPlain)
		if err != nil {
			t.Fatalf("Render(%q): %v", tc.src, err)
		}
		if got != tc.want {
			t.Errorf("Render(%q, plain) = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{
			`Parsing with <fixed-case>LR</fixed-case> tables`,
			`Parsing with <span class="fixed-case">LR</span> tables`,
		},
		{`<b>Bold</b> <i>italic</i>`, `<b>Bold</b> <i>italic</i>`},
		{`<tt>code</tt>`, `<code>code</code>`},
		{`H<sub>2</sub>O and x<sup>2</sup>`, `H<sub>2</sub>O and x<sup>2</sup>`},
		{
			`See <url>https://folio-archive.org</url>`,
			`See <a href="https://folio-archive.org">https://folio-archive.org</a>`,
		},
		{`<unknown>kept text</unknown>`, `kept text`},
		{`a &amp; b`, `a &amp; b`},
	}
	for _, tc := range cases {
		got, err := Render(tc.src, FormHTML)
		if err != nil {
			t.Fatalf("Render(%q): %v", tc.src, err)
		}
		if got != tc.want {
			t.Errorf("Render(%q, html) = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestRenderUnknownForm(t *testing.T) {
	_, err := Render("text", Form("latex"))
	if !errors.Is(err, ErrUnknownForm) {
		t.Fatalf("expected ErrUnknownForm, got %v", err)
	}
}

func TestRenderMalformedFragment(t *testing.T) {
	if _, err := Render("<b>unclosed", FormPlain); err == nil {
		t.Fatal("expected parse error for unclosed tag")
	}
}

func TestCollapseWhitespace(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  a  b ", "a b"},
		{"line\nbreak", "linebreak"},
		{"one two", "one two"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CollapseWhitespace(tc.in); got != tc.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
