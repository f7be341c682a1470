package archive

import (
	"encoding/xml"
	"fmt"
	"hash/crc32"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/paper"
	"folio/internal/sigs"
	"folio/internal/venues"
	"folio/internal/volume"
)

// SourceFile records one loaded collection file. The fingerprint is the
// CRC-32 of the raw bytes, hex encoded, and feeds change detection in the
// export store.
type SourceFile struct {
	Path        string
	Collection  string
	Fingerprint string
}

// Stats summarizes a loaded archive.
type Stats struct {
	Collections int
	Volumes     int
	Papers      int
}

// Archive is the loaded record set: volumes and papers by full ID, the
// ownership index, and the registries the load resolved against.
type Archive struct {
	RunID string

	volumes map[string]*volume.Volume
	papers  map[string]*paper.Paper
	owners  map[string]string
	members map[string][]string
	files   []SourceFile

	venues *venues.Index
	sigs   *sigs.Index
}

type collectionFile struct {
	XMLName xml.Name         `xml:"collection"`
	ID      string           `xml:"id,attr"`
	Papers  []paper.XMLPaper `xml:"paper"`
}

// Load reads every collection file under the configured data directory and
// resolves volumes against the venue and SIG registries.
//
// Collection files are processed in sorted order and papers in document
// order, so registry state and ownership are reproducible. Ownership
// conflicts are logged as warnings and tolerated; orphan papers and
// duplicate volume IDs abort the load.
func Load(cfg *config.Config, logger *slog.Logger) (*Archive, error) {
	log := logging.NewComponentLogger(logger, "archive")

	venueIdx, err := venues.Load(cfg.Paths.VenuesFile)
	if err != nil {
		return nil, err
	}
	sigIdx, err := sigs.LoadDir(cfg.Paths.SIGsDir)
	if err != nil {
		return nil, err
	}

	paths, err := filepath.Glob(filepath.Join(cfg.Paths.DataDir, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("scan data directory: %w", err)
	}
	sort.Strings(paths)

	a := &Archive{
		RunID:   uuid.NewString(),
		volumes: make(map[string]*volume.Volume),
		papers:  make(map[string]*paper.Paper),
		owners:  make(map[string]string),
		members: make(map[string][]string),
		venues:  venueIdx,
		sigs:    sigIdx,
	}
	log = log.With(logging.String(logging.FieldRunID, a.RunID))

	if len(paths) == 0 {
		log.Warn("no collection files found", logging.String("dir", cfg.Paths.DataDir))
	}

	for _, path := range paths {
		if err := a.loadFile(path, log); err != nil {
			return nil, err
		}
	}

	stats := a.Stats()
	log.Info("archive loaded",
		logging.Int("collections", stats.Collections),
		logging.Int("volumes", stats.Volumes),
		logging.Int("papers", stats.Papers))
	return a, nil
}

func (a *Archive) loadFile(path string, log *slog.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read collection file: %w", err)
	}

	var file collectionFile
	if err := xml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse collection file %s: %w", path, err)
	}
	if file.ID == "" {
		return fmt.Errorf("collection file %s missing id attribute", path)
	}

	a.files = append(a.files, SourceFile{
		Path:        path,
		Collection:  file.ID,
		Fingerprint: fmt.Sprintf("%08x", crc32.ChecksumIEEE(raw)),
	})
	log.Debug("loading collection",
		logging.String(logging.FieldCollection, file.ID),
		logging.String(logging.FieldFile, path),
		logging.Int("papers", len(file.Papers)))

	var current *volume.Volume
	for _, el := range file.Papers {
		p, err := paper.FromXML(el, file.ID)
		if err != nil {
			return fmt.Errorf("collection %s: %w", file.ID, err)
		}

		if p.IsFrontMatter() {
			v, warnErr := volume.New(p, a.venues, a.sigs)
			if warnErr != nil {
				log.Warn("front matter already owned",
					logging.String(logging.FieldVolume, v.FullID()),
					logging.Error(warnErr))
			}
			if _, dup := a.volumes[v.FullID()]; dup {
				return fmt.Errorf("%w: %s in %s", ErrDuplicateVolume, v.FullID(), path)
			}
			a.volumes[v.FullID()] = v
			a.papers[p.FullID()] = p
			a.recordOwnership(v)
			current = v
			continue
		}

		if _, dup := a.papers[p.FullID()]; dup {
			return fmt.Errorf("collection %s: paper %s defined more than once", file.ID, p.FullID())
		}
		a.papers[p.FullID()] = p

		if current == nil {
			return fmt.Errorf("%w: %s in %s", ErrOrphanPaper, p.FullID(), path)
		}
		if err := current.Append(p); err != nil {
			log.Warn("ownership conflict",
				logging.String(logging.FieldPaper, p.FullID()),
				logging.String(logging.FieldVolume, current.FullID()),
				logging.Error(err))
		}
		a.owners[p.FullID()] = current.FullID()
		a.members[current.FullID()] = append(a.members[current.FullID()], p.FullID())
	}
	return nil
}

// recordOwnership seeds the index for a freshly constructed volume, whose
// content is at most its own front matter.
func (a *Archive) recordOwnership(v *volume.Volume) {
	for _, id := range v.PaperIDs() {
		a.owners[id] = v.FullID()
		a.members[v.FullID()] = append(a.members[v.FullID()], id)
	}
}

// Volume returns the volume with the given full ID.
func (a *Archive) Volume(fullID string) (*volume.Volume, bool) {
	v, ok := a.volumes[fullID]
	return v, ok
}

// Paper returns the paper with the given full ID.
func (a *Archive) Paper(fullID string) (*paper.Paper, bool) {
	p, ok := a.papers[fullID]
	return p, ok
}

// VolumeIDs returns every volume full ID, sorted.
func (a *Archive) VolumeIDs() []string {
	ids := make([]string, 0, len(a.volumes))
	for id := range a.volumes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PaperIDs returns every paper full ID, sorted.
func (a *Archive) PaperIDs() []string {
	ids := make([]string, 0, len(a.papers))
	for id := range a.papers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// OwnerOf returns the volume that currently owns a paper. Journal front
// matter is owned by no volume.
func (a *Archive) OwnerOf(paperID string) (string, bool) {
	id, ok := a.owners[paperID]
	return id, ok
}

// PapersOf returns the paper IDs recorded under a volume, in append order.
// A paper re-parented by a later volume still appears here; OwnerOf tells
// the current owner.
func (a *Archive) PapersOf(volumeID string) []string {
	ids := a.members[volumeID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// SourceFiles returns the loaded files in load order.
func (a *Archive) SourceFiles() []SourceFile {
	out := make([]SourceFile, len(a.files))
	copy(out, a.files)
	return out
}

// Venues returns the venue registry the archive resolved against.
func (a *Archive) Venues() *venues.Index {
	return a.venues
}

// SIGs returns the SIG registry the archive resolved against.
func (a *Archive) SIGs() *sigs.Index {
	return a.sigs
}

// Stats summarizes the loaded archive.
func (a *Archive) Stats() Stats {
	return Stats{
		Collections: len(a.files),
		Volumes:     len(a.volumes),
		Papers:      len(a.papers),
	}
}
