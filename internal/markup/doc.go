// Package markup converts the archive's title and abstract markup between
// output forms.
//
// Source strings are XML fragments using the archive vocabulary (fixed-case,
// b, i, tt, sub, sup, url). Render either passes them through untouched,
// strips them to plain text, or rewrites the vocabulary into HTML
// equivalents. Tags outside the vocabulary are unwrapped rather than
// escaped so unknown markup degrades to its text content.
package markup
