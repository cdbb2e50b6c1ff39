package simgraph

import (
	"testing"

	"github.com/mkrause/wordspace/internal/testutil"
)

func TestBuildOneHop(t *testing.T) {
	s := testutil.OpenSparseFixture(t, false)

	g, err := Build(s, []string{"cat"}, 1, 10)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(g.Words) != 3 {
		t.Fatalf("words = %v, want 3 entries (cat, dog, kitten)", g.Words)
	}

	catID := g.IndexOf("cat")
	dogID := g.IndexOf("dog")
	kittenID := g.IndexOf("kitten")
	if catID < 0 || dogID < 0 || kittenID < 0 {
		t.Fatalf("missing expected word in graph: %v", g.Words)
	}

	if got := g.Adjacency.At(catID, dogID); got != 0.9 {
		t.Errorf("cat->dog = %v, want 0.9", got)
	}
	if got := g.Adjacency.At(catID, kittenID); got != 0.7 {
		t.Errorf("cat->kitten = %v, want 0.7", got)
	}
}

func TestBuildTwoHopsDiscoversWolf(t *testing.T) {
	s := testutil.OpenSparseFixture(t, false)

	g, err := Build(s, []string{"cat"}, 2, 10)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if g.IndexOf("wolf") < 0 {
		t.Fatalf("expected a second hop through dog to discover wolf, got %v", g.Words)
	}
}

func TestBuildBreadthMaxLimitsEdgesPerHop(t *testing.T) {
	s := testutil.OpenSparseFixture(t, false)

	g, err := Build(s, []string{"cat"}, 1, 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Only cat's single strongest neighbor (dog, 0.9) should be followed.
	if g.IndexOf("kitten") >= 0 {
		t.Fatalf("breadthMax=1 should have excluded kitten, got %v", g.Words)
	}
}

func TestBuildColWordSpaceYieldsSeedsOnly(t *testing.T) {
	s := testutil.OpenSparseFixture(t, true)

	g, err := Build(s, []string{"cat"}, 2, 10)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(g.Words) != 1 || g.Words[0] != "cat" {
		t.Fatalf("words = %v, want just [cat] for a COL store with no neighbor lists", g.Words)
	}
}
