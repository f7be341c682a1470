package paper

import (
	"encoding/xml"
	"fmt"
	"strings"

	"folio/internal/attrib"
	"folio/internal/bibdata"
	"folio/internal/markup"
	"folio/internal/people"
)

// Attachment is a supplementary artifact published alongside a paper.
type Attachment struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	URL      string `json:"url"`
}

// Correction records an erratum or revision notice.
type Correction struct {
	ID   string `json:"id"`
	Note string `json:"note,omitempty"`
	URL  string `json:"url,omitempty"`
}

// XMLPaper mirrors one <paper> element of a collection file. Child elements
// are decoded generically so the field switch in FromXML sees them in
// document order.
type XMLPaper struct {
	ID    string    `xml:"id,attr"`
	Nodes []XMLNode `xml:",any"`
}

// XMLNode is a single child element of a <paper>. Only the attributes and
// sub-elements the archive vocabulary uses are mapped; Inner preserves the
// raw markup for title-class fields, Text the character data for scalars.
type XMLNode struct {
	XMLName    xml.Name
	ID         string `xml:"id,attr"`
	Type       string `xml:"type,attr"`
	Href       string `xml:"href,attr"`
	Permission string `xml:"permission,attr"`
	First      string `xml:"first"`
	Last       string `xml:"last"`
	Inner      string `xml:",innerxml"`
	Text       string `xml:",chardata"`
}

// FromXML builds a Paper from a decoded <paper> element.
//
// Markup-bearing fields are stored twice: raw inner XML under an
// xml_-prefixed key and a plain-text projection under the bare key. Authors,
// editors, and attachments accumulate as lists; every other field overwrites.
// A <url> element is canonicalized against the archive prefixes and a pdf
// link is derived from it; papers without one get both from their full ID.
func FromXML(el XMLPaper, topLevelID string) (*Paper, error) {
	if el.ID == "" {
		return nil, ErrMissingID
	}
	p := New(el.ID, topLevelID)
	for _, node := range el.Nodes {
		tag := node.XMLName.Local
		var value any
		switch tag {
		case "title", "abstract", "booktitle":
			raw := strings.TrimSpace(node.Inner)
			plain, err := markup.Render(raw, markup.FormPlain)
			if err != nil {
				return nil, fmt.Errorf("parse %s of paper %s-%s: %w", tag, topLevelID, el.ID, err)
			}
			p.Attrib.Set("xml_"+tag, raw)
			p.Attrib.Set(tag, plain)
			continue
		case "author", "editor":
			value = people.Name{
				First: markup.CollapseWhitespace(node.First),
				Last:  markup.CollapseWhitespace(node.Last),
				ID:    node.ID,
			}
		case "attachment":
			filename := markup.CollapseWhitespace(node.Text)
			typ := node.Type
			if typ == "" {
				typ = "attachment"
			}
			value = Attachment{Filename: filename, Type: typ, URL: bibdata.AttachmentURL(filename)}
		case "dataset", "software":
			filename := markup.CollapseWhitespace(node.Text)
			value = Attachment{Filename: filename, Type: tag, URL: bibdata.AttachmentURL(filename)}
			tag = "attachment"
		case "video":
			if node.Permission == "false" {
				continue
			}
			value = Attachment{Filename: node.Href, Type: "video", URL: bibdata.AttachmentURL(node.Href)}
			tag = "attachment"
		case "erratum", "revision":
			c := Correction{ID: node.ID, Note: markup.CollapseWhitespace(node.Text)}
			if node.Href != "" {
				c.URL = bibdata.PDFURL(node.Href)
			}
			value = c
		case "url":
			loc := markup.CollapseWhitespace(node.Text)
			p.Attrib.Set("url", bibdata.InferURL(loc))
			p.Attrib.Set("pdf", bibdata.PDFURL(loc))
			continue
		default:
			value = markup.CollapseWhitespace(node.Text)
		}
		if bibdata.ListAttributes[tag] {
			appendListValue(p.Attrib, tag, value)
		} else {
			p.Attrib.Set(tag, value)
		}
	}
	if !p.Attrib.Has("url") {
		p.Attrib.Set("url", bibdata.ArchiveURL(p.FullID()))
		p.Attrib.Set("pdf", bibdata.PDFURL(p.FullID()))
	}
	return p, nil
}

func appendListValue(m *attrib.Map, key string, value any) {
	switch v := value.(type) {
	case people.Name:
		list, _ := m.Get(key).([]people.Name)
		m.Set(key, append(list, v))
	case Attachment:
		list, _ := m.Get(key).([]Attachment)
		m.Set(key, append(list, v))
	}
}
