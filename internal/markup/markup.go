package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Form selects the output representation of a markup fragment.
type Form string

const (
	// FormXML returns the fragment unchanged, tags included.
	FormXML Form = "xml"
	// FormPlain strips all tags, returning collapsed plain text.
	FormPlain Form = "plain"
	// FormHTML converts the archive vocabulary into HTML tags.
	FormHTML Form = "html"
)

// ErrUnknownForm reports a Form outside the accepted set. Callers passing
// caller-supplied form values own this contract.
var ErrUnknownForm = errors.New("unknown markup form")

// Render converts an XML markup fragment into the requested form.
func Render(src string, form Form) (string, error) {
	switch form {
	case FormXML:
		return src, nil
	case FormPlain:
		text, err := plainText(src)
		if err != nil {
			return "", fmt.Errorf("render plain text: %w", err)
		}
		return text, nil
	case FormHTML:
		html, err := renderHTML(src)
		if err != nil {
			return "", fmt.Errorf("render html: %w", err)
		}
		return html, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownForm, form)
	}
}

// CollapseWhitespace removes newlines, collapses space runs, and trims the
// result. Tabs are left alone; the collection files never indent with them.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(strings.ReplaceAll(s, "\n", ""), " "))
}

var spaceRuns = regexp.MustCompile(` +`)

func plainText(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	decoder := newFragmentDecoder(src)
	var b strings.Builder
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if data, ok := token.(xml.CharData); ok {
			b.Write(data)
		}
	}
	return CollapseWhitespace(b.String()), nil
}

func renderHTML(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	decoder := newFragmentDecoder(src)
	var b strings.Builder
	var closers []string
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "fixed-case":
				b.WriteString(`<span class="fixed-case">`)
				closers = append(closers, "</span>")
			case "b", "i", "sub", "sup":
				b.WriteString("<" + tok.Name.Local + ">")
				closers = append(closers, "</"+tok.Name.Local+">")
			case "tt":
				b.WriteString("<code>")
				closers = append(closers, "</code>")
			case "url":
				target, err := collectText(decoder)
				if err != nil {
					return "", err
				}
				b.WriteString(`<a href="` + escapeHTML(target) + `">` + escapeHTML(target) + `</a>`)
			default:
				closers = append(closers, "")
			}
		case xml.EndElement:
			if len(closers) > 0 {
				b.WriteString(closers[len(closers)-1])
				closers = closers[:len(closers)-1]
			}
		case xml.CharData:
			b.WriteString(escapeHTML(string(tok)))
		}
	}
	return b.String(), nil
}

// collectText consumes tokens up to the end of the current element,
// returning the concatenated character data inside it.
func collectText(decoder *xml.Decoder) (string, error) {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch tok := token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			b.Write(tok)
		}
	}
	return b.String(), nil
}

// newFragmentDecoder wraps a fragment so mixed content without a single root
// element still decodes.
func newFragmentDecoder(src string) *xml.Decoder {
	return xml.NewDecoder(strings.NewReader("<fragment>" + src + "</fragment>"))
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
