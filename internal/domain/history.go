package domain

import (
	"maps"
	"math"
	"time"
)

// HistoryRecord holds usage statistics for one program
type HistoryRecord struct {
	Rank   uint32 `json:"rank"`   // Number of launches
	Access int64  `json:"access"` // Unix seconds of the most recent launch
}

// History maps canonical program paths to their usage statistics
type History map[string]HistoryRecord

// NewHistory returns an empty history
func NewHistory() History {
	return make(History)
}

// Lookup returns the record for key, if any
func (h History) Lookup(key string) (HistoryRecord, bool) {
	rec, ok := h[key]
	return rec, ok
}

// Record registers a launch of key at the given time.
// The first launch creates a record with rank 1; later ones bump the rank
// (saturating) and overwrite the access time.
func (h History) Record(key string, at time.Time) HistoryRecord {
	rec, ok := h[key]
	if ok {
		if rec.Rank < math.MaxUint32 {
			rec.Rank++
		}
	} else {
		rec.Rank = 1
	}
	rec.Access = at.Unix()
	h[key] = rec
	return rec
}

// Clone returns an independent copy of the history. It is never nil.
func (h History) Clone() History {
	if h == nil {
		return NewHistory()
	}
	return maps.Clone(h)
}
