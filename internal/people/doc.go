// Package people models personal names attached to papers and volumes.
//
// Names keep their given/family split from the source records. Slugs fold
// diacritics and case so the same person hashes to a stable key regardless of
// how a particular collection file spelled the accents.
package people
