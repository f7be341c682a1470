// Package paper models a single published record from a collection file.
//
// A Paper carries its short identifier, the collection it belongs to, and an
// insertion-ordered attribute map populated from the record's XML element.
// Markup-bearing fields (title, abstract, booktitle) are stored as raw inner
// XML and rendered on demand; author and editor lists, attachments, and
// corrections are normalized into typed records at parse time.
package paper
