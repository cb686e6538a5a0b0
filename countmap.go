// Package countmap implements a counting map, a multiset whose notion
// of key identity is supplied by the caller: a Hasher reduces every key
// to a hash token, and keys that share a token share a single count.
//
// The first key seen for a token is retained as the representative of
// the whole group, and is what the query views (Keys, Entries, Flatten,
// Iterator) return. A record persists once created, even when its count
// reaches 0; only Delete removes it.
//
// A Map is mutable and not safe for concurrent use. Callers that share
// a Map across goroutines must synchronize around the whole Map.
package countmap

import (
	"encoding/json"
	"sort"
)

// Map associates keys with integer counts, grouping keys by the tokens
// its Hasher produces. The zero value is not usable; use New or
// NewFrom.
type Map[K any, H comparable] struct {
	// Hasher is the grouping rule. Replacing it does not retoken
	// existing records; call Rehash afterwards.
	Hasher Hasher[K, H]
	// AllowNegative permits stored counts below zero. When false, Sub
	// clamps the stored count at 0 and Set rejects negative amounts.
	AllowNegative bool

	records map[H]*record[K]
	nextSeq uint64
}

// record holds one group: the first key that produced the token, the
// aggregate count, and the creation rank used to break merge ties in
// Clone and Rehash.
type record[K any] struct {
	key   K
	count int
	seq   uint64
}

// New returns an empty Map using the given hasher.
func New[K any, H comparable](hasher Hasher[K, H]) *Map[K, H] {
	return &Map[K, H]{Hasher: hasher, records: make(map[H]*record[K])}
}

// NewFrom returns a Map pre-populated from init: each key is counted
// once, in order, so duplicate keys accumulate.
func NewFrom[K any, H comparable](hasher Hasher[K, H], init ...K) *Map[K, H] {
	return New(hasher).Extend(init...)
}

// Len returns the number of records.
func (m *Map[K, H]) Len() int { return len(m.records) }

// Add increases the count for k's token by amount and returns the
// resulting count, creating a record with k as the representative if
// the token is new. It returns a BadAmount error if amount is negative;
// decrements must go through Sub.
func (m *Map[K, H]) Add(k K, amount int) (int, error) {
	if amount < 0 {
		return 0, BadAmount{"add", amount}
	}
	r := m.findOrCreate(k)
	r.count += amount
	return r.count, nil
}

// Sub decreases the count for k's token by amount and returns the
// stored count. If the token is absent, it returns 0 without creating a
// record. Unless the map allows negative counts, a count that would go
// below zero is stored as 0; the record is retained either way. It
// returns a BadAmount error if amount is negative.
func (m *Map[K, H]) Sub(k K, amount int) (int, error) {
	if amount < 0 {
		return 0, BadAmount{"sub", amount}
	}
	r, ok := m.records[m.Hasher.Hash(k)]
	if !ok {
		return 0, nil
	}
	r.count -= amount
	if r.count < 0 && !m.AllowNegative {
		r.count = 0
	}
	return r.count, nil
}

// Set overwrites the count for k's token with amount and returns
// amount, creating the record as Add does if the token is absent. It
// returns a BadAmount error if amount is negative and the map does not
// allow negative counts.
func (m *Map[K, H]) Set(k K, amount int) (int, error) {
	if amount < 0 && !m.AllowNegative {
		return 0, BadAmount{"set", amount}
	}
	r := m.findOrCreate(k)
	r.count = amount
	return r.count, nil
}

// Extend counts every key in keys once, in order, and returns m itself.
func (m *Map[K, H]) Extend(keys ...K) *Map[K, H] {
	for _, k := range keys {
		m.findOrCreate(k).count++
	}
	return m
}

// Concat returns a clone of m in which every key in keys has been
// counted once, in order. The receiver is left untouched.
func (m *Map[K, H]) Concat(keys ...K) *Map[K, H] {
	return m.Clone().Extend(keys...)
}

// Delete removes the record for k's token entirely, discarding both the
// representative and the count, and reports whether a record existed.
func (m *Map[K, H]) Delete(k K) bool {
	token := m.Hasher.Hash(k)
	_, ok := m.records[token]
	delete(m.records, token)
	return ok
}

// Get returns the count stored for k's token, or 0 if there is no
// record. It never creates a record.
func (m *Map[K, H]) Get(k K) int {
	if r, ok := m.records[m.Hasher.Hash(k)]; ok {
		return r.count
	}
	return 0
}

// Has reports whether a record exists for k's token, regardless of the
// stored count; a count of 0 (or a negative count) still reports true.
func (m *Map[K, H]) Has(k K) bool {
	_, ok := m.records[m.Hasher.Hash(k)]
	return ok
}

// Clone returns an independent Map with the same hasher and the same
// negative-count mode, re-establishing every (representative, count)
// pair under the current hasher, in record creation order. If the
// hasher was replaced without a Rehash, groups that now share a token
// collapse as under repeated Set calls: the earliest-created key
// becomes the representative and the last count processed wins.
func (m *Map[K, H]) Clone() *Map[K, H] {
	out := New[K, H](m.Hasher)
	out.AllowNegative = m.AllowNegative
	for _, r := range m.ordered() {
		out.findOrCreate(r.key).count = r.count
	}
	return out
}

// Rehash retokens every representative with the current Hasher,
// rebuilds the table from scratch and returns m. Records whose keys now
// share a token merge into one: their counts sum, and the
// earliest-created key becomes the representative. Use it after
// replacing Hasher.
func (m *Map[K, H]) Rehash() *Map[K, H] {
	old := m.ordered()
	m.records = make(map[H]*record[K], len(old))
	for _, r := range old {
		m.findOrCreate(r.key).count += r.count
	}
	return m
}

// Keys returns the representative key of every record, one per token,
// in no particular order.
func (m *Map[K, H]) Keys() []K {
	keys := make([]K, 0, len(m.records))
	for _, r := range m.records {
		keys = append(keys, r.key)
	}
	return keys
}

// Entry is one (representative key, count) pair of a Map.
type Entry[K any] struct {
	Key   K
	Count int
}

// Entries returns one Entry per record, in no particular order.
func (m *Map[K, H]) Entries() []Entry[K] {
	entries := make([]Entry[K], 0, len(m.records))
	for _, r := range m.records {
		entries = append(entries, Entry[K]{r.key, r.count})
	}
	return entries
}

// Flatten expands each record into count repetitions of its
// representative key, in no particular order. Records with a zero or
// negative count contribute nothing.
func (m *Map[K, H]) Flatten() []K {
	var keys []K
	for _, r := range m.records {
		for i := 0; i < r.count; i++ {
			keys = append(keys, r.key)
		}
	}
	return keys
}

// Equal reports whether m and other use the same grouping rule, have
// the same negative-count mode, and agree on the count of every key
// that is a representative in either map. Grouping rules are compared
// by hasher name: behavioral equivalence of hash functions is not
// decidable, so the name is the caller's declaration of the rule's
// identity.
func (m *Map[K, H]) Equal(other *Map[K, H]) bool {
	if other == nil {
		return false
	}
	if m.Hasher.Name() != other.Hasher.Name() || m.AllowNegative != other.AllowNegative {
		return false
	}
	for _, r := range m.records {
		if m.Get(r.key) != other.Get(r.key) {
			return false
		}
	}
	for _, r := range other.records {
		if m.Get(r.key) != other.Get(r.key) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes m as a JSON array of {"key", "count"} objects,
// one per record in creation order. The encoding is one-way, for
// debugging and interop; there is no unmarshaler.
func (m *Map[K, H]) MarshalJSON() ([]byte, error) {
	entries := make([]jsonEntry, 0, len(m.records))
	for _, r := range m.ordered() {
		entries = append(entries, jsonEntry{r.key, r.count})
	}
	return json.Marshal(entries)
}

type jsonEntry struct {
	Key   any `json:"key"`
	Count int `json:"count"`
}

// findOrCreate returns the record for k's token, creating one with k as
// the representative and a count of 0 if the token is absent.
func (m *Map[K, H]) findOrCreate(k K) *record[K] {
	token := m.Hasher.Hash(k)
	r, ok := m.records[token]
	if !ok {
		r = &record[K]{key: k, seq: m.nextSeq}
		m.nextSeq++
		m.records[token] = r
	}
	return r
}

// ordered returns the records sorted by creation rank. Iterating the
// table directly would make the merges in Clone and Rehash depend on
// Go's randomized map order.
func (m *Map[K, H]) ordered() []*record[K] {
	rs := make([]*record[K], 0, len(m.records))
	for _, r := range m.records {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].seq < rs[j].seq })
	return rs
}
