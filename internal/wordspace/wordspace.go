// Package wordspace is the single entry point a caller uses to open a word
// space and issue every query in spec.md §4: it dispatches Open/Load to the
// sparse or dense back-end by on-disk shape, then layers composition,
// analogy, nearest-neighbor search, text similarity, and cluster/rank
// utilities on top of the shared wsapi.WordSpace contract those back-ends
// implement (spec.md §9 Design Notes: "re-architect as a tagged variant").
//
// Grounded on the teacher's internal/database.Database — "the one object
// queries go through" — generalized here to dispatch across two storage
// layouts instead of one.
package wordspace

import (
	"os"
	"time"

	"github.com/mkrause/wordspace/internal/densestore"
	"github.com/mkrause/wordspace/internal/metrics"
	"github.com/mkrause/wordspace/internal/sparsestore"
	"github.com/mkrause/wordspace/internal/wsapi"
	"github.com/mkrause/wordspace/internal/wserrors"
)

// Handle is an opened word space. It embeds wsapi.WordSpace so every query
// operation in spec.md §4 is available directly on the value Open/Load
// return.
type Handle struct {
	wsapi.WordSpace
}

// Open auto-detects dense vs sparse by whether path is a directory (sparse)
// or a file (dense), per spec.md §6. Open/load latency is recorded via
// internal/metrics (RecordStoreOperation), the teacher's own instrumentation
// point for its database layer, repointed at this package's two back-ends.
func Open(path string, loadIntoMemory bool) (*Handle, error) {
	start := time.Now()
	h, err := open(path, loadIntoMemory)
	metrics.RecordStoreOperation("open", time.Since(start), err == nil)
	return h, err
}

func open(path string, loadIntoMemory bool) (*Handle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, wserrors.IO("stat word space path", err)
	}
	if info.IsDir() {
		s, err := sparsestore.Open(path, loadIntoMemory)
		if err != nil {
			return nil, err
		}
		return &Handle{s}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, wserrors.IO("open dense word space", err)
	}
	defer f.Close()
	s, err := densestore.Load(f)
	if err != nil {
		return nil, err
	}
	return &Handle{s}, nil
}

// Load is Open with dense loaded and sparse forced resident, per spec.md §6.
func Load(path string) (*Handle, error) {
	return Open(path, true)
}
