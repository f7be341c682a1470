// Package textutil provides term-frequency fingerprints for title
// similarity ranking.
//
// A fingerprint is a normalized term vector built from lowercased tokens of
// three characters or more. Corpus collects document frequencies so queries
// can be reweighted with IDF before cosine comparison, which keeps stopword
// heavy proceedings titles from dominating the ranking.
package textutil
