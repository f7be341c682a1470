package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"folio/internal/sigs"
	"folio/internal/venues"
)

// CheckDirectoryAccess verifies that the directory exists and is readable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable)", path)}
}

// CheckWritableDirectory verifies write access to a directory the tool
// manages itself. A directory that does not exist yet passes, since it is
// created on first use.
func CheckWritableDirectory(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (created on first use)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
}

// CheckCollectionFiles reports how many collection files the data directory
// holds. An empty directory passes; a load simply produces an empty archive.
func CheckCollectionFiles(dataDir string) Result {
	const name = "Collection files"

	matches, err := filepath.Glob(filepath.Join(dataDir, "*.xml"))
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("glob failed: %v", err)}
	}
	if len(matches) == 0 {
		return Result{Name: name, Passed: true, Detail: "no collection files yet"}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d collection files", len(matches))}
}

// CheckVenueRegistry verifies that the venue registry exists and parses.
func CheckVenueRegistry(path string) Result {
	const name = "Venue registry"

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	idx, err := venues.Load(path)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d venues", len(idx.Codes()))}
}

// CheckSIGDirectory verifies that every SIG definition parses. A missing
// directory passes, since SIG sponsorship is optional.
func CheckSIGDirectory(dir string) Result {
	const name = "SIG definitions"

	idx, err := sigs.LoadDir(dir)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	count := len(idx.ShortNames())
	if count == 0 {
		return Result{Name: name, Passed: true, Detail: "no SIG definitions"}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d SIGs", count)}
}
