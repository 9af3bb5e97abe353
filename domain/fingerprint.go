package domain

import (
	"sort"

	"github.com/goccy/go-json"
)

// Fingerprint holds one relative score per genre. Scores are only meaningful
// when compared with another fingerprint derived from the same model.
type Fingerprint map[string]float64

// Genres returns the fingerprint genres in lexical order.
func (f Fingerprint) Genres() []string {
	genres := make([]string, 0, len(f))
	for genre := range f {
		genres = append(genres, genre)
	}
	sort.Strings(genres)
	return genres
}

// IndexEntry is one catalog fingerprint.
type IndexEntry struct {
	ID          string      `json:"id"`
	Fingerprint Fingerprint `json:"fingerprint"`
}

// FingerprintIndex maps catalog ids to fingerprints and remembers insertion order.
type FingerprintIndex struct {
	entries  []IndexEntry
	position map[string]int
}

func NewFingerprintIndex() *FingerprintIndex {
	return &FingerprintIndex{position: make(map[string]int)}
}

// Put stores fp under id. An id already present keeps its original position.
func (idx *FingerprintIndex) Put(id string, fp Fingerprint) {
	if idx.position == nil {
		idx.position = make(map[string]int)
	}
	if i, ok := idx.position[id]; ok {
		idx.entries[i].Fingerprint = fp
		return
	}
	idx.position[id] = len(idx.entries)
	idx.entries = append(idx.entries, IndexEntry{ID: id, Fingerprint: fp})
}

func (idx *FingerprintIndex) Get(id string) (Fingerprint, bool) {
	if idx == nil {
		return nil, false
	}
	i, ok := idx.position[id]
	if !ok {
		return nil, false
	}
	return idx.entries[i].Fingerprint, true
}

func (idx *FingerprintIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Entries returns the fingerprints in insertion order.
func (idx *FingerprintIndex) Entries() []IndexEntry {
	if idx == nil {
		return nil
	}
	out := make([]IndexEntry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// MarshalJSON encodes the index as an array so that insertion order survives persistence.
func (idx *FingerprintIndex) MarshalJSON() ([]byte, error) {
	entries := idx.Entries()
	if entries == nil {
		entries = []IndexEntry{}
	}
	return json.Marshal(entries)
}

func (idx *FingerprintIndex) UnmarshalJSON(data []byte) error {
	var entries []IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	idx.entries = nil
	idx.position = make(map[string]int, len(entries))
	for _, e := range entries {
		idx.Put(e.ID, e.Fingerprint)
	}
	return nil
}
