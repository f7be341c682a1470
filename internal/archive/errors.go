package archive

import "errors"

var (
	// ErrOrphanPaper reports a paper that appears before any front-matter
	// record in its collection file.
	ErrOrphanPaper = errors.New("paper appears before any front matter")

	// ErrDuplicateVolume reports two front-matter records deriving the same
	// volume ID.
	ErrDuplicateVolume = errors.New("volume defined more than once")
)
