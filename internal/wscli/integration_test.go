package wscli

import (
	"strings"
	"testing"

	"github.com/mkrause/wordspace/internal/sparsestore"
	"github.com/mkrause/wordspace/internal/testutil"
)

// fixtureDir writes the cat/dog/kitten SIM fixture (the testutil fixture
// the wsbrowser tests also write) to disk so --path has something real to
// open.
func fixtureDir(t *testing.T) string {
	t.Helper()
	return testutil.WriteSparseFixture(t, testutil.SampleSimConfig, testutil.SampleSimIndex(sparsestore.RelationMarker))
}

func TestInfoCommandPrintsSummary(t *testing.T) {
	defer resetRootFlags()
	dir := fixtureDir(t)

	read, _ := captureStdout(t)
	rootCmd.SetArgs([]string{"--path", dir, "info"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	out := read()

	for _, want := range []string{"Vocabulary size:", "3", "Similarity measure:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got: %s", want, out)
		}
	}
}

func TestVectorCommandPrintsCollocations(t *testing.T) {
	defer resetRootFlags()
	dir := fixtureDir(t)

	read, _ := captureStdout(t)
	rootCmd.SetArgs([]string{"--path", dir, "vector", "cat"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	out := read()

	if !strings.Contains(out, "cat") {
		t.Errorf("expected output to mention the queried word, got: %s", out)
	}
}

func TestVectorCommandUnknownWordFails(t *testing.T) {
	defer resetRootFlags()
	dir := fixtureDir(t)

	read, _ := captureStdout(t)
	rootCmd.SetArgs([]string{"--path", dir, "vector", "xyzzy"})
	err := rootCmd.Execute()
	read()
	if err == nil {
		t.Fatal("expected an error for a word outside the vocabulary")
	}
}

func TestNeighborsCommandJSON(t *testing.T) {
	defer resetRootFlags()
	dir := fixtureDir(t)

	read, _ := captureStdout(t)
	rootCmd.SetArgs([]string{"--path", dir, "--output", "json", "neighbors", "cat"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	out := read()

	if !strings.Contains(out, "dog") {
		t.Errorf("expected cat's stored neighbors to include dog, got: %s", out)
	}
}

func TestSimvalCommandReportsSimilarity(t *testing.T) {
	defer resetRootFlags()
	dir := fixtureDir(t)

	read, _ := captureStdout(t)
	rootCmd.SetArgs([]string{"--path", dir, "simval", "cat", "dog"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	out := read()

	if !strings.Contains(out, "cat") || !strings.Contains(out, "dog") {
		t.Errorf("expected both query words in output, got: %s", out)
	}
}

func TestClusterOutlierCommand(t *testing.T) {
	defer resetRootFlags()
	dir := fixtureDir(t)

	read, _ := captureStdout(t)
	rootCmd.SetArgs([]string{"--path", dir, "cluster", "outlier", "cat"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	read()
}

func TestExportFrequenciesCommand(t *testing.T) {
	defer resetRootFlags()
	dir := fixtureDir(t)
	outDir := t.TempDir()

	read, _ := captureStdout(t)
	rootCmd.SetArgs([]string{"--path", dir, "export", "frequencies", "--out", outDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	out := read()

	if !strings.Contains(out, "frequencies.txt") {
		t.Errorf("expected export to report the written file, got: %s", out)
	}
}

func TestGraphCommandPrintsEdges(t *testing.T) {
	defer resetRootFlags()
	dir := fixtureDir(t)

	read, _ := captureStdout(t)
	rootCmd.SetArgs([]string{"--path", dir, "graph", "cat", "--depth", "1"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	out := read()

	if !strings.Contains(out, "cat") {
		t.Errorf("expected the seed word in the edge list, got: %s", out)
	}
}
