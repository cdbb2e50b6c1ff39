// Package sparsestore implements the inverted-index word-space back-end:
// one record per vocabulary word carrying its frequency, sparse feature
// vector, and — for SIM word spaces — a precomputed neighbor list
// (spec.md §4.3).
//
// The on-disk layout is a directory holding a disco.config file (parsed by
// wsconfig) plus an index.tsv file, one tab-separated record per line:
//
//	word	freq	kol	kolSig	dsb	dsbSim
//
// where kol/kolSig/dsb/dsbSim are themselves space-separated parallel
// lists (dsb/dsbSim empty for COL). This mirrors the teacher's
// loader.go/models.go split — a plain record struct plus a flat-file
// reader — generalized from WTF's YAML command list to the directory
// layout spec.md §6 describes.
package sparsestore

// record is one parsed index.tsv line, prior to being folded into an
// in-memory or on-demand Entry.
type record struct {
	word   string
	freq   int
	kol    []string
	kolSig []float64
	dsb    []string
	dsbSim []float64
}
