// Package export persists archive snapshots in SQLite.
//
// The Store owns the database connection, schema initialization, and the
// snapshot swap: Replace wipes the previous snapshot and inserts the loaded
// archive inside one transaction, so readers never observe a half-written
// export. A file lock beside the database serializes concurrent exporters.
//
// The database is a derived artifact: the collection files stay the source
// of truth, and a schema bump simply means deleting the file and exporting
// again.
package export
