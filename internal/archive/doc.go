// Package archive loads collection files and owns the resolved records.
//
// Load walks the data directory in sorted order, parses each collection
// file, derives volumes from front-matter records, and appends every other
// paper to the volume it follows. The archive keeps the ownership index
// (paper to volume and back), per-file fingerprints for change detection,
// and a run ID that correlates the log records and export metadata of one
// load.
package archive
