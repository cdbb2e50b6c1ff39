// Package mph builds a minimal perfect hash table from a fixed key set,
// giving the dense back-end O(1) word and n-gram lookup without a
// comparison-based index (spec.md §4.4).
//
// No third-party minimal-perfect-hash library turned up anywhere in the
// retrieved example pack, so this is a from-scratch CHD-style (hash,
// displace, compress) construction on top of the standard library's
// hash/fnv, grounded on the same two-step bucket-then-displace shape as
// Botelho/Pagh/Ziviani CHD. See DESIGN.md for why no ecosystem dependency
// covers this.
//
// A minimal perfect hash is a total function: Index returns a slot in
// [0, n) for ANY input string, including one never seen at build time.
// Per spec.md §9 Design Notes, membership must be verified by a second,
// independent check — comparing the caller's stored key/id at that slot
// against the looked-up key — never by trusting the hash alone.
package mph

import (
	"encoding/binary"
	"errors"
	"hash/fnv"

	"github.com/mkrause/wordspace/internal/wserrors"
)

const maxDisplacementAttempts = 1 << 20

// Table maps each of a fixed set of keys to a unique slot in [0, n), and
// each slot back to the key's original build-order id (spec.md §9's
// wordIndex2id array, folded into the table itself rather than kept
// alongside it). Looking up a key absent from the build set still hashes
// to some slot (see package doc); slotKeys is what lets Lookup tell the
// two cases apart.
type Table struct {
	n            int
	m            int
	displacement []uint64
	slotKeys     []string // slot -> key, "" if the slot was never assigned
	slotIDs      []int32  // slot -> original index into the Build keys slice
}

// Build constructs a minimal perfect hash over keys. Keys must be unique;
// duplicates are an error. Returns wserrors.ErrCorruptIndex if no
// displacement value could be found for a bucket within the attempt budget
// (vanishingly unlikely for real vocabularies, but keys adversarially
// chosen to collide under fnv could trigger it).
func Build(keys []string) (*Table, error) {
	n := len(keys)
	if n == 0 {
		return &Table{}, nil
	}

	m := n
	buckets := make([][]int, m)
	for i, k := range keys {
		b := int(hash64(k, 0) % uint64(m))
		buckets[b] = append(buckets[b], i)
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sortBucketsBySizeDesc(order, buckets)

	displacement := make([]uint64, m)
	slotTaken := make([]bool, n)
	slotKeys := make([]string, n)
	slotIDs := make([]int32, n)

	for _, b := range order {
		group := buckets[b]
		if len(group) == 0 {
			continue
		}
		d, slots, err := findDisplacement(keys, group, slotTaken, n)
		if err != nil {
			return nil, err
		}
		for i, s := range slots {
			slotTaken[s] = true
			slotKeys[s] = keys[group[i]]
			slotIDs[s] = int32(group[i])
		}
		displacement[b] = d
	}

	return &Table{n: n, m: m, displacement: displacement, slotKeys: slotKeys, slotIDs: slotIDs}, nil
}

func findDisplacement(keys []string, group []int, slotTaken []bool, n int) (uint64, []int, error) {
	for d := uint64(0); d < maxDisplacementAttempts; d++ {
		slots := make([]int, 0, len(group))
		seen := make(map[int]bool, len(group))
		collision := false
		for _, ki := range group {
			s := int(hash64(keys[ki], d) % uint64(n))
			if slotTaken[s] || seen[s] {
				collision = true
				break
			}
			seen[s] = true
			slots = append(slots, s)
		}
		if !collision {
			return d, slots, nil
		}
	}
	return 0, nil, wserrors.CorruptIndex("mph", errTooManyCollisions)
}

var errTooManyCollisions = errors.New("no displacement found within attempt budget")

func sortBucketsBySizeDesc(order []int, buckets [][]int) {
	// Insertion sort: bucket counts are small integers and m is typically in
	// the low-to-mid thousands for a word space's vocabulary, so an O(m^2)
	// worst case here is negligible next to the displacement search itself.
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && len(buckets[order[j-1]]) < len(buckets[order[j]]) {
			order[j-1], order[j] = order[j], order[j-1]
			j--
		}
	}
}

// Index returns the slot that key hashes to. It is total: every string,
// including ones absent from the build set, maps to some slot in [0, n).
func (t *Table) Index(key string) int {
	if t.n == 0 {
		return -1
	}
	b := int(hash64(key, 0) % uint64(t.m))
	d := t.displacement[b]
	return int(hash64(key, d) % uint64(t.n))
}

// Lookup returns key's original build-order id (not its hash slot) along
// with whether key was actually part of the build set, verified by
// comparing key against whatever key the build assigned to that slot
// (slotKeys) — the membership check spec.md §9 requires on top of the raw
// hash, since Index alone cannot distinguish a real key from collateral
// collision with an absent one.
func (t *Table) Lookup(key string) (int, bool) {
	idx := t.Index(key)
	if idx < 0 || idx >= len(t.slotKeys) {
		return -1, false
	}
	if t.slotKeys[idx] != key {
		return -1, false
	}
	return int(t.slotIDs[idx]), true
}

// Len returns the number of keys the table was built over (its slot range).
func (t *Table) Len() int { return t.n }

func hash64(key string, seed uint64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	h.Write(buf[:])
	h.Write([]byte(key))
	return h.Sum64()
}
