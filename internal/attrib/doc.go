// Package attrib provides the ordered attribute mapping shared by paper and
// volume records.
//
// Keys preserve insertion order so listings and exports stay deterministic
// across runs without sorting heuristics. Values are loosely typed: plain
// strings for most fields, name lists for author/editor, structured records
// for attachments and corrections, and code sets for venue/SIG
// classifications.
package attrib
