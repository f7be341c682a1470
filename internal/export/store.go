package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"folio/internal/archive"
	"folio/internal/attrib"
)

// lockRetryDelay is the polling interval while waiting on a concurrent
// exporter's lock.
const lockRetryDelay = 250 * time.Millisecond

// Store manages snapshot persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the export database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure export directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: flock.New(path + ".lock")}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Replace swaps the stored snapshot for the given archive inside a single
// transaction. The lock file beside the database serializes concurrent
// exporters; Replace waits for it until ctx is done.
func (s *Store) Replace(ctx context.Context, arc *archive.Archive) error {
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire export lock: %w", err)
	}
	if !locked {
		return errors.New("export lock unavailable")
	}
	defer func() { _ = s.lock.Unlock() }()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"volume_sigs", "volume_venues", "papers", "volumes", "source_files", "export_meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := insertVolumes(ctx, tx, arc); err != nil {
		return err
	}
	if err := insertPapers(ctx, tx, arc); err != nil {
		return err
	}
	if err := insertSourceFiles(ctx, tx, arc); err != nil {
		return err
	}
	if err := insertMeta(ctx, tx, arc); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

func insertVolumes(ctx context.Context, tx *sql.Tx, arc *archive.Archive) error {
	for _, id := range arc.VolumeIDs() {
		vol, _ := arc.Volume(id)
		title, _ := vol.Attrib.GetString("title")
		url, _ := vol.Attrib.GetString("url")
		metaTitle, _ := vol.Attrib.GetString("meta_journal_title")
		metaVolume, _ := vol.Attrib.GetString("meta_volume")
		metaIssue, _ := vol.Attrib.GetString("meta_issue")

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO volumes (
                full_id, collection_id, title, url,
                meta_journal_title, meta_volume, meta_issue, paper_count
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id,
			vol.TopLevelID,
			title,
			url,
			nullableString(metaTitle),
			nullableString(metaVolume),
			nullableString(metaIssue),
			len(vol.PaperIDs()),
		); err != nil {
			return fmt.Errorf("insert volume %s: %w", id, err)
		}

		for _, code := range stringSlice(vol.Attrib.Get("venues")) {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO volume_venues (volume_id, venue) VALUES (?, ?)", id, code); err != nil {
				return fmt.Errorf("insert venue %s of %s: %w", code, id, err)
			}
		}
		for _, sig := range stringSlice(vol.Attrib.Get("sigs")) {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO volume_sigs (volume_id, sig) VALUES (?, ?)", id, sig); err != nil {
				return fmt.Errorf("insert sig %s of %s: %w", sig, id, err)
			}
		}
	}
	return nil
}

func insertPapers(ctx context.Context, tx *sql.Tx, arc *archive.Archive) error {
	for _, id := range arc.PaperIDs() {
		p, _ := arc.Paper(id)
		title, _ := p.Attrib.GetString("title")
		url, _ := p.Attrib.GetString("url")
		pdf, _ := p.Attrib.GetString("pdf")

		var volumeID any
		if owner, ok := arc.OwnerOf(id); ok {
			volumeID = owner
		}

		attrJSON, err := attributesJSON(p.Attrib)
		if err != nil {
			return fmt.Errorf("encode attributes of %s: %w", id, err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO papers (
                full_id, collection_id, volume_id, title, url, pdf,
                is_front_matter, attributes_json
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id,
			p.TopLevelID,
			volumeID,
			title,
			url,
			pdf,
			p.IsFrontMatter(),
			attrJSON,
		); err != nil {
			return fmt.Errorf("insert paper %s: %w", id, err)
		}
	}
	return nil
}

func insertSourceFiles(ctx context.Context, tx *sql.Tx, arc *archive.Archive) error {
	for _, f := range arc.SourceFiles() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO source_files (path, collection_id, fingerprint) VALUES (?, ?, ?)",
			f.Path, f.Collection, f.Fingerprint); err != nil {
			return fmt.Errorf("insert source file %s: %w", f.Path, err)
		}
	}
	return nil
}

func insertMeta(ctx context.Context, tx *sql.Tx, arc *archive.Archive) error {
	meta := [][2]string{
		{"run_id", arc.RunID},
		{"exported_at", time.Now().UTC().Format(time.RFC3339)},
	}
	for _, kv := range meta {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO export_meta (key, value) VALUES (?, ?)", kv[0], kv[1]); err != nil {
			return fmt.Errorf("insert export meta %s: %w", kv[0], err)
		}
	}
	return nil
}

// Summary reports the stored snapshot's row counts and export metadata.
type Summary struct {
	Volumes     int    `json:"volumes"`
	Papers      int    `json:"papers"`
	Venues      int    `json:"venues"`
	SIGs        int    `json:"sigs"`
	SourceFiles int    `json:"source_files"`
	RunID       string `json:"run_id"`
	ExportedAt  string `json:"exported_at"`
}

// Summary reads the current snapshot's counts and metadata.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	counts := []struct {
		table string
		dest  *int
	}{
		{"volumes", &out.Volumes},
		{"papers", &out.Papers},
		{"volume_venues", &out.Venues},
		{"volume_sigs", &out.SIGs},
		{"source_files", &out.SourceFiles},
	}
	for _, c := range counts {
		row := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+c.table)
		if err := row.Scan(c.dest); err != nil {
			return Summary{}, fmt.Errorf("count %s: %w", c.table, err)
		}
	}

	var err error
	if out.RunID, err = s.metaValue(ctx, "run_id"); err != nil {
		return Summary{}, err
	}
	if out.ExportedAt, err = s.metaValue(ctx, "exported_at"); err != nil {
		return Summary{}, err
	}
	return out, nil
}

// metaValue reads one export_meta row, returning "" when no export ran yet.
func (s *Store) metaValue(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM export_meta WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read export meta %s: %w", key, err)
	}
	return value, nil
}

// attributesJSON flattens the ordered attribute map into a JSON object.
// Key order is not preserved; the row exists for ad-hoc inspection, not
// round-tripping.
func attributesJSON(m *attrib.Map) (string, error) {
	out := make(map[string]any, m.Len())
	for _, key := range m.Keys() {
		out[key] = m.Get(key)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func stringSlice(value any) []string {
	s, _ := value.([]string)
	return s
}
