package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mkrause/wordspace/internal/constants"
	"github.com/mkrause/wordspace/internal/similarity"
	"github.com/mkrause/wordspace/internal/wsapi"
)

// NeighborCache caches similarWords/Neighbors results per word, replacing
// the teacher's SearchCache (which cached ranked command lists per query +
// SearchOptions). Here the query key is just the word, since
// similarWords/Neighbors take no options.
type NeighborCache struct {
	cache     *LRUCache
	enabled   bool
	keyPrefix string
}

// NewNeighborCache creates a new neighbor-list cache.
func NewNeighborCache(capacity int, ttl time.Duration) *NeighborCache {
	return &NeighborCache{
		cache:     NewLRUCache(capacity, ttl),
		enabled:   true,
		keyPrefix: "nbr:",
	}
}

func (nc *NeighborCache) Get(word string) ([]wsapi.Neighbor, bool) {
	if !nc.enabled {
		return nil, false
	}
	value, found := nc.cache.Get(nc.keyPrefix + word)
	if !found {
		return nil, false
	}
	ns, ok := value.([]wsapi.Neighbor)
	return ns, ok
}

func (nc *NeighborCache) Put(word string, neighbors []wsapi.Neighbor) {
	if !nc.enabled {
		return
	}
	cached := make([]wsapi.Neighbor, len(neighbors))
	copy(cached, neighbors)
	nc.cache.Put(nc.keyPrefix+word, cached)
}

func (nc *NeighborCache) Invalidate() { nc.cache.Clear() }
func (nc *NeighborCache) Enable(enabled bool) { nc.enabled = enabled }
func (nc *NeighborCache) IsEnabled() bool     { return nc.enabled }
func (nc *NeighborCache) Stats() CacheStats   { return nc.cache.Stats() }
func (nc *NeighborCache) Size() int           { return nc.cache.Size() }
func (nc *NeighborCache) CleanupExpired() int { return nc.cache.CleanupExpired() }

// SimilarityCache caches semanticSimilarity(w1, w2, measure) results, keyed
// by a hash of the (w1, w2, measure) triple so word order and measure both
// distinguish entries, mirroring the teacher's SearchCache key-generation
// idiom (JSON-marshal the lookup key, hash with SHA-256).
type SimilarityCache struct {
	cache     *LRUCache
	enabled   bool
	keyPrefix string
}

func NewSimilarityCache(capacity int, ttl time.Duration) *SimilarityCache {
	return &SimilarityCache{
		cache:     NewLRUCache(capacity, ttl),
		enabled:   true,
		keyPrefix: "sim:",
	}
}

type similarityKey struct {
	W1      string             `json:"w1"`
	W2      string             `json:"w2"`
	Measure similarity.Measure `json:"measure"`
}

func (sc *SimilarityCache) Get(w1, w2 string, m similarity.Measure) (float64, bool) {
	if !sc.enabled {
		return 0, false
	}
	value, found := sc.cache.Get(sc.generateCacheKey(w1, w2, m))
	if !found {
		return 0, false
	}
	score, ok := value.(float64)
	return score, ok
}

func (sc *SimilarityCache) Put(w1, w2 string, m similarity.Measure, score float64) {
	if !sc.enabled {
		return
	}
	sc.cache.Put(sc.generateCacheKey(w1, w2, m), score)
}

func (sc *SimilarityCache) Invalidate() { sc.cache.Clear() }
func (sc *SimilarityCache) Enable(enabled bool) { sc.enabled = enabled }
func (sc *SimilarityCache) IsEnabled() bool     { return sc.enabled }
func (sc *SimilarityCache) Stats() CacheStats   { return sc.cache.Stats() }
func (sc *SimilarityCache) Size() int           { return sc.cache.Size() }
func (sc *SimilarityCache) CleanupExpired() int { return sc.cache.CleanupExpired() }

func (sc *SimilarityCache) generateCacheKey(w1, w2 string, m similarity.Measure) string {
	jsonData, err := json.Marshal(similarityKey{W1: w1, W2: w2, Measure: m})
	if err != nil {
		return fmt.Sprintf("%s%s:%s:%d", sc.keyPrefix, w1, w2, m)
	}
	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%s%x", sc.keyPrefix, hash)
}

// CacheManager owns the neighbor and similarity caches for one open word
// space, mirroring the teacher's CacheManager (which owned one SearchCache).
type CacheManager struct {
	neighborCache   *NeighborCache
	similarityCache *SimilarityCache
	enabled         bool
}

func NewCacheManager() *CacheManager {
	return &CacheManager{
		neighborCache:   NewNeighborCache(constants.DefaultCacheCapacity, constants.DefaultCacheTTL),
		similarityCache: NewSimilarityCache(constants.DefaultCacheCapacity, constants.DefaultCacheTTL),
		enabled:         true,
	}
}

func (cm *CacheManager) NeighborCache() *NeighborCache     { return cm.neighborCache }
func (cm *CacheManager) SimilarityCache() *SimilarityCache { return cm.similarityCache }

func (cm *CacheManager) Enable(enabled bool) {
	cm.enabled = enabled
	cm.neighborCache.Enable(enabled)
	cm.similarityCache.Enable(enabled)
}

func (cm *CacheManager) IsEnabled() bool { return cm.enabled }

func (cm *CacheManager) InvalidateAll() {
	cm.neighborCache.Invalidate()
	cm.similarityCache.Invalidate()
}

func (cm *CacheManager) GetStats() map[string]CacheStats {
	return map[string]CacheStats{
		"neighbors":  cm.neighborCache.Stats(),
		"similarity": cm.similarityCache.Stats(),
	}
}

func (cm *CacheManager) CleanupExpired() map[string]int {
	return map[string]int{
		"neighbors":  cm.neighborCache.CleanupExpired(),
		"similarity": cm.similarityCache.CleanupExpired(),
	}
}
