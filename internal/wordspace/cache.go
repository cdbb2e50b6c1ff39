package wordspace

import (
	"time"

	"github.com/mkrause/wordspace/internal/cache"
	"github.com/mkrause/wordspace/internal/metrics"
	"github.com/mkrause/wordspace/internal/similarity"
	"github.com/mkrause/wordspace/internal/wsapi"
)

// CachedHandle decorates a Handle with an LRU+TTL cache in front of
// SimilarWords and SemanticSimilarity — the two query operations most
// likely to be repeated verbatim by an interactive caller (e.g. the CLI
// demo re-querying the same word, or a browser walking back over visited
// nodes). Every other wsapi.WordSpace method passes straight through to
// the wrapped Handle.
type CachedHandle struct {
	*Handle
	cm *cache.CacheManager
}

// NewCachedHandle wraps h with a fresh CacheManager.
func NewCachedHandle(h *Handle) *CachedHandle {
	return &CachedHandle{Handle: h, cm: cache.NewCacheManager()}
}

func (c *CachedHandle) SimilarWords(word string) ([]wsapi.Neighbor, error) {
	start := time.Now()
	if ns, ok := c.cm.NeighborCache().Get(word); ok {
		metrics.RecordQueryOperation(time.Since(start), len(ns), true, len(word))
		return ns, nil
	}
	ns, err := c.Handle.SimilarWords(word)
	if err != nil {
		return nil, err
	}
	c.cm.NeighborCache().Put(word, ns)
	metrics.RecordQueryOperation(time.Since(start), len(ns), false, len(word))
	return ns, nil
}

func (c *CachedHandle) SemanticSimilarity(w1, w2 string, m similarity.Measure) float64 {
	if score, ok := c.cm.SimilarityCache().Get(w1, w2, m); ok {
		return score
	}
	score := c.Handle.SemanticSimilarity(w1, w2, m)
	c.cm.SimilarityCache().Put(w1, w2, m, score)
	return score
}

// InvalidateCache drops every cached entry, e.g. after the underlying store
// is reopened against a refreshed on-disk word space.
func (c *CachedHandle) InvalidateCache() { c.cm.InvalidateAll() }

// CacheStats reports hit/miss/eviction counters for both sub-caches.
func (c *CachedHandle) CacheStats() map[string]cache.CacheStats { return c.cm.GetStats() }
