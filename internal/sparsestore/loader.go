package sparsestore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mkrause/wordspace/internal/wserrors"
)

const indexFileName = "index.tsv"

// RelationMarker separates a word from a relation suffix inside a feature
// key, e.g. "dogsubj". A private-use-area codepoint, per spec.md §6.
const RelationMarker = ''

func loadRecords(dir string) ([]record, error) {
	path := filepath.Join(dir, indexFileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, wserrors.IO("open sparse index", err)
	}
	defer f.Close()

	var recs []record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := parseRecordLine(line)
		if err != nil {
			return nil, wserrors.CorruptIndex(fmt.Sprintf("%s:%d", path, lineNo), err)
		}
		recs = append(recs, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, wserrors.CorruptIndex(path, err)
	}
	return recs, nil
}

func parseRecordLine(line string) (record, error) {
	fields := strings.Split(line, "\t")
	for len(fields) < 6 {
		fields = append(fields, "")
	}

	freq, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return record{}, fmt.Errorf("bad freq field: %w", err)
	}

	kol := splitFields(fields[2])
	kolSig, err := parseFloats(fields[3])
	if err != nil {
		return record{}, fmt.Errorf("bad kolSig field: %w", err)
	}
	if len(kol) != len(kolSig) {
		return record{}, fmt.Errorf("kol/kolSig length mismatch: %d vs %d", len(kol), len(kolSig))
	}

	dsb := splitFields(fields[4])
	dsbSim, err := parseFloats(fields[5])
	if err != nil {
		return record{}, fmt.Errorf("bad dsbSim field: %w", err)
	}
	if len(dsb) != len(dsbSim) {
		return record{}, fmt.Errorf("dsb/dsbSim length mismatch: %d vs %d", len(dsb), len(dsbSim))
	}

	return record{
		word:   fields[0],
		freq:   freq,
		kol:    kol,
		kolSig: kolSig,
		dsb:    dsb,
		dsbSim: dsbSim,
	}, nil
}

func splitFields(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Fields(s)
}

func parseFloats(s string) ([]float64, error) {
	fields := splitFields(s)
	if fields == nil {
		return nil, nil
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
