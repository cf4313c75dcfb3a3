// Package dashboard aggregates the screening history for the admin view.
package dashboard

import (
	"context"

	"github.com/sw33tLie/vitalis/internal/utils"
	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
)

// RecentLimit is how many records the recent list shows.
const RecentLimit = 5

// Stats summarizes a history log. Tier counts are recomputed from answers.
type Stats struct {
	Total       int              `json:"total"`
	High        int              `json:"high"`
	Medium      int              `json:"medium"`
	Low         int              `json:"low"`
	AvgDuration int              `json:"avg_duration"`
	Recent      []history.Record `json:"recent"`
}

// Reader is the part of the history store the dashboard needs.
type Reader interface {
	ReadAll(ctx context.Context) []history.Record
}

func Load(ctx context.Context, r Reader) Stats {
	return Summarize(r.ReadAll(ctx))
}

// Summarize computes the stats for records given oldest first.
func Summarize(records []history.Record) Stats {
	s := Stats{Total: len(records), Recent: []history.Record{}}
	sum := 0
	for _, r := range records {
		switch r.Risk() {
		case fast.High:
			s.High++
		case fast.Medium:
			s.Medium++
		default:
			s.Low++
		}
		sum += r.DurationSeconds
	}
	if s.Total > 0 {
		s.AvgDuration = utils.RoundHalfAwayFromZero(float64(sum) / float64(s.Total))
	}

	for i := len(records) - 1; i >= 0 && len(s.Recent) < RecentLimit; i-- {
		s.Recent = append(s.Recent, records[i])
	}
	return s
}

// Count returns the number of records in tier t.
func (s Stats) Count(t fast.RiskTier) int {
	switch t {
	case fast.High:
		return s.High
	case fast.Medium:
		return s.Medium
	}
	return s.Low
}
