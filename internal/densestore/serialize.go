package densestore

import (
	"bufio"
	"encoding/binary"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/mkrause/wordspace/internal/wsconfig"
	"github.com/mkrause/wordspace/internal/wserrors"
)

// Save writes s as a single serialized blob: word list, V×D matrix,
// frequency array, optional n-gram list and matrix, optional neighbor
// matrices, and the config record — everything needed to reconstruct an
// immutable, owned Store (spec.md §6). Both minimal perfect hashes are
// rebuilt from their key lists on Load rather than serialized directly,
// since mph.Build is a pure, deterministic function of its key list.
func Save(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)

	rows, cols := s.matrix.Dims()
	hasNgrams := s.ngrams != nil
	hasNeighbors := s.neighbors != nil

	if err := writeHeader(bw, rows, cols, hasNgrams, hasNeighbors, s); err != nil {
		return wserrors.IO("write dense header", err)
	}
	if err := writeStrings(bw, s.words); err != nil {
		return wserrors.IO("write dense words", err)
	}
	if err := writeFloatMatrix(bw, s.matrix); err != nil {
		return wserrors.IO("write dense matrix", err)
	}
	if err := writeInt32s(bw, s.freq); err != nil {
		return wserrors.IO("write dense freq", err)
	}
	if hasNgrams {
		if err := writeStrings(bw, s.ngrams.Keys); err != nil {
			return wserrors.IO("write dense ngram keys", err)
		}
		if err := writeFloatMatrix(bw, s.ngrams.Matrix); err != nil {
			return wserrors.IO("write dense ngram matrix", err)
		}
	}
	if hasNeighbors {
		if err := writeNeighborIDs(bw, s.neighbors.IDs); err != nil {
			return wserrors.IO("write dense neighbor ids", err)
		}
		if err := writeFloatMatrix(bw, s.neighbors.Sims); err != nil {
			return wserrors.IO("write dense neighbor sims", err)
		}
	}
	if err := writeConfig(bw, s.cfg); err != nil {
		return wserrors.IO("write dense config", err)
	}
	return bw.Flush()
}

// Load reconstructs a Store from a blob written by Save. Any framing
// failure is fatal for this open attempt, per spec.md §4.4.
func Load(r io.Reader) (*Store, error) {
	br := bufio.NewReader(r)

	h, err := readHeader(br)
	if err != nil {
		return nil, wserrors.CorruptIndex("dense blob header", err)
	}

	words, err := readStrings(br, int(h.vocabSize))
	if err != nil {
		return nil, wserrors.CorruptIndex("dense blob words", err)
	}
	matrix, err := readFloatMatrix(br, int(h.vocabSize), int(h.dim))
	if err != nil {
		return nil, wserrors.CorruptIndex("dense blob matrix", err)
	}
	freq, err := readInt32s(br, int(h.vocabSize))
	if err != nil {
		return nil, wserrors.CorruptIndex("dense blob freq", err)
	}

	var ngrams *NgramData
	if h.hasNgrams {
		keys, err := readStrings(br, int(h.numNgrams))
		if err != nil {
			return nil, wserrors.CorruptIndex("dense blob ngram keys", err)
		}
		ngMatrix, err := readFloatMatrix(br, int(h.numNgrams), int(h.dim))
		if err != nil {
			return nil, wserrors.CorruptIndex("dense blob ngram matrix", err)
		}
		ngrams = &NgramData{MinN: int(h.ngramMinN), MaxN: int(h.ngramMaxN), Keys: keys, Matrix: ngMatrix}
	}

	var neighbors *NeighborData
	if h.hasNeighbors {
		ids, err := readNeighborIDs(br, int(h.vocabSize), int(h.nSim))
		if err != nil {
			return nil, wserrors.CorruptIndex("dense blob neighbor ids", err)
		}
		sims, err := readFloatMatrix(br, int(h.vocabSize), int(h.nSim))
		if err != nil {
			return nil, wserrors.CorruptIndex("dense blob neighbor sims", err)
		}
		neighbors = &NeighborData{NSim: int(h.nSim), IDs: ids, Sims: sims}
	}

	cfg, err := readConfig(br)
	if err != nil {
		return nil, wserrors.CorruptIndex("dense blob config", err)
	}

	return New(cfg, words, matrix, freq, ngrams, neighbors)
}

type header struct {
	vocabSize    uint32
	dim          uint32
	hasNgrams    bool
	numNgrams    uint32
	ngramMinN    uint32
	ngramMaxN    uint32
	hasNeighbors bool
	nSim         uint32
}

func writeHeader(w io.Writer, rows, cols int, hasNgrams, hasNeighbors bool, s *Store) error {
	h := header{vocabSize: uint32(rows), dim: uint32(cols)}
	if hasNgrams {
		h.hasNgrams = true
		h.numNgrams = uint32(len(s.ngrams.Keys))
		h.ngramMinN = uint32(s.ngrams.MinN)
		h.ngramMaxN = uint32(s.ngrams.MaxN)
	}
	if hasNeighbors {
		h.hasNeighbors = true
		h.nSim = uint32(s.neighbors.NSim)
	}
	for _, v := range []uint32{h.vocabSize, h.dim} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, boolByte(h.hasNgrams)); err != nil {
		return err
	}
	for _, v := range []uint32{h.numNgrams, h.ngramMinN, h.ngramMaxN} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, boolByte(h.hasNeighbors)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, h.nSim)
}

func readHeader(r io.Reader) (header, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h.vocabSize); err != nil {
		return h, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.dim); err != nil {
		return h, err
	}
	var hasNgrams byte
	if err := binary.Read(r, binary.LittleEndian, &hasNgrams); err != nil {
		return h, err
	}
	h.hasNgrams = hasNgrams != 0
	if err := binary.Read(r, binary.LittleEndian, &h.numNgrams); err != nil {
		return h, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.ngramMinN); err != nil {
		return h, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.ngramMaxN); err != nil {
		return h, err
	}
	var hasNeighbors byte
	if err := binary.Read(r, binary.LittleEndian, &hasNeighbors); err != nil {
		return h, err
	}
	h.hasNeighbors = hasNeighbors != 0
	if err := binary.Read(r, binary.LittleEndian, &h.nSim); err != nil {
		return h, err
	}
	return h, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// writeStrings writes each string as [len:u16][bytes], matching the
// teacher's embedding.go word framing.
func writeStrings(w io.Writer, ss []string) error {
	for _, s := range ss {
		if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
			return err
		}
		if _, err := w.Write([]byte(s)); err != nil {
			return err
		}
	}
	return nil
}

func readStrings(r io.Reader, n int) ([]string, error) {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		var l uint16
		if err := binary.Read(r, binary.LittleEndian, &l); err != nil {
			return nil, err
		}
		buf := make([]byte, l)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		out[i] = string(buf)
	}
	return out, nil
}

func writeFloatMatrix(w io.Writer, m *mat.Dense) error {
	rows, cols := m.Dims()
	buf := make([]float32, cols)
	for i := 0; i < rows; i++ {
		row := m.RawRowView(i)
		for j, x := range row {
			buf[j] = float32(x)
		}
		if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
			return err
		}
	}
	return nil
}

func readFloatMatrix(r io.Reader, rows, cols int) (*mat.Dense, error) {
	data := make([]float64, rows*cols)
	buf := make([]float32, cols)
	for i := 0; i < rows; i++ {
		if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
			return nil, err
		}
		for j, x := range buf {
			data[i*cols+j] = float64(x)
		}
	}
	return mat.NewDense(rows, cols, data), nil
}

func writeInt32s(w io.Writer, vs []int32) error {
	return binary.Write(w, binary.LittleEndian, vs)
}

func readInt32s(r io.Reader, n int) ([]int32, error) {
	out := make([]int32, n)
	if err := binary.Read(r, binary.LittleEndian, out); err != nil {
		return nil, err
	}
	return out, nil
}

func writeNeighborIDs(w io.Writer, ids [][]int32) error {
	for _, row := range ids {
		if err := binary.Write(w, binary.LittleEndian, row); err != nil {
			return err
		}
	}
	return nil
}

func readNeighborIDs(r io.Reader, rows, nSim int) ([][]int32, error) {
	out := make([][]int32, rows)
	for i := 0; i < rows; i++ {
		row := make([]int32, nSim)
		if err := binary.Read(r, binary.LittleEndian, row); err != nil {
			return nil, err
		}
		out[i] = row
	}
	return out, nil
}

func writeConfig(w io.Writer, cfg *wsconfig.Config) error {
	fields := []uint32{
		uint32(cfg.VocabularySize),
		uint32(cfg.NumberFeatureWords),
		uint32(cfg.MinFreq),
		uint32(cfg.MaxFreq),
		uint32(cfg.NumberOfSimilarWords),
		uint32(cfg.NgramMinN),
		uint32(cfg.NgramMaxN),
	}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(cfg.TokenCount)); err != nil {
		return err
	}
	contentByte := byte(0)
	if cfg.ContentType == wsconfig.ContentSIM {
		contentByte = 1
	}
	if err := binary.Write(w, binary.LittleEndian, contentByte); err != nil {
		return err
	}
	measureByte := byte(0)
	if cfg.SimilarityMeasure == wsconfig.MeasureKolb {
		measureByte = 1
	}
	if err := binary.Write(w, binary.LittleEndian, measureByte); err != nil {
		return err
	}
	if err := writeString(w, cfg.WeightingMethod); err != nil {
		return err
	}
	if err := writeString(w, cfg.DiscoVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(cfg.Stopwords))); err != nil {
		return err
	}
	return writeStrings(w, cfg.Stopwords)
}

func readConfig(r io.Reader) (*wsconfig.Config, error) {
	var fields [7]uint32
	for i := range fields {
		if err := binary.Read(r, binary.LittleEndian, &fields[i]); err != nil {
			return nil, err
		}
	}
	var tokenCount uint64
	if err := binary.Read(r, binary.LittleEndian, &tokenCount); err != nil {
		return nil, err
	}
	var contentByte, measureByte byte
	if err := binary.Read(r, binary.LittleEndian, &contentByte); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &measureByte); err != nil {
		return nil, err
	}
	weighting, err := readString(r)
	if err != nil {
		return nil, err
	}
	version, err := readString(r)
	if err != nil {
		return nil, err
	}
	var stopwordCount uint32
	if err := binary.Read(r, binary.LittleEndian, &stopwordCount); err != nil {
		return nil, err
	}
	stopwords, err := readStrings(r, int(stopwordCount))
	if err != nil {
		return nil, err
	}

	cfg := &wsconfig.Config{
		VocabularySize:       int(fields[0]),
		NumberFeatureWords:   int(fields[1]),
		MinFreq:              int(fields[2]),
		MaxFreq:              int(fields[3]),
		NumberOfSimilarWords: int(fields[4]),
		NgramMinN:            int(fields[5]),
		NgramMaxN:            int(fields[6]),
		TokenCount:           int64(tokenCount),
		WeightingMethod:      weighting,
		DiscoVersion:         version,
		Stopwords:            stopwords,
	}
	if contentByte == 1 {
		cfg.ContentType = wsconfig.ContentSIM
	} else {
		cfg.ContentType = wsconfig.ContentCOL
	}
	if measureByte == 1 {
		cfg.SimilarityMeasure = wsconfig.MeasureKolb
	} else {
		cfg.SimilarityMeasure = wsconfig.MeasureCosine
	}
	return cfg, nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader) (string, error) {
	var l uint16
	if err := binary.Read(r, binary.LittleEndian, &l); err != nil {
		return "", err
	}
	buf := make([]byte, l)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
