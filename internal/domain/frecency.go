package domain

import (
	"math"
	"slices"
	"strings"
	"time"
)

// Frecency scores a history record relative to now. Higher is more relevant.
// An access time in the future counts as "just now".
func Frecency(rec HistoryRecord, now time.Time) float64 {
	elapsed := now.Unix() - rec.Access
	if elapsed < 0 {
		elapsed = 0
	}
	return float64(rec.Rank) / (math.Sqrt(float64(elapsed))/10 + 5)
}

// RankedProgram pairs a program with its history, if it has one
type RankedProgram struct {
	Program
	Record     HistoryRecord
	HasHistory bool
	Score      float64
}

// RankPrograms orders programs for display.
//
// Programs with history come first, highest score first. Everything else
// follows in title order. Ties are broken by title, then by canonical path,
// so the order never depends on the input order.
func RankPrograms(programs []Program, history History, now time.Time) []RankedProgram {
	ranked := make([]RankedProgram, 0, len(programs))
	for _, p := range programs {
		rp := RankedProgram{Program: p}
		if rec, ok := history.Lookup(p.Key()); ok {
			rp.Record = rec
			rp.HasHistory = true
			rp.Score = Frecency(rec, now)
		}
		ranked = append(ranked, rp)
	}

	slices.SortStableFunc(ranked, compareRanked)
	return ranked
}

func compareRanked(a, b RankedProgram) int {
	switch {
	case a.HasHistory && !b.HasHistory:
		return -1
	case !a.HasHistory && b.HasHistory:
		return 1
	case a.HasHistory && b.HasHistory:
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
	}
	if c := strings.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	return strings.Compare(a.Key(), b.Key())
}

// Programs strips the ranking information
func Programs(ranked []RankedProgram) []Program {
	out := make([]Program, len(ranked))
	for i, rp := range ranked {
		out[i] = rp.Program
	}
	return out
}
