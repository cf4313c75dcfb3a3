package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/storage"
)

func rec(i, dur int, a fast.ResponseSet) history.Record {
	return history.Record{
		Timestamp:       time.Date(2026, 1, 1, 0, i, 0, 0, time.UTC),
		Answers:         a,
		DurationSeconds: dur,
		Language:        "en",
	}
}

var (
	high   = fast.ResponseSet{Face: fast.Yes, Arm: fast.Yes, Speech: fast.No, Time: fast.Yes}
	medium = fast.ResponseSet{Face: fast.Yes, Arm: fast.Yes, Speech: fast.No, Time: fast.No}
	low    = fast.ResponseSet{Face: fast.No, Arm: fast.No, Speech: fast.No, Time: fast.No}
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.AvgDuration != 0 || len(s.Recent) != 0 || s.Recent == nil {
		t.Fatalf("unexpected empty stats: %+v", s)
	}
}

func TestSummarizeCountsAndAverage(t *testing.T) {
	records := []history.Record{
		rec(0, 10, high),
		rec(1, 11, medium),
		rec(2, 12, low),
		rec(3, 20, high),
	}
	s := Summarize(records)
	if s.Total != 4 || s.High != 2 || s.Medium != 1 || s.Low != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	// (10+11+12+20)/4 = 13.25
	if s.AvgDuration != 13 {
		t.Fatalf("avg = %d, want 13", s.AvgDuration)
	}
	if s.Count(fast.High) != 2 || s.Count(fast.Low) != 1 {
		t.Fatalf("Count mismatch: %+v", s)
	}
}

func TestAverageRoundsHalfUp(t *testing.T) {
	s := Summarize([]history.Record{rec(0, 1, low), rec(1, 2, low)})
	if s.AvgDuration != 2 {
		t.Fatalf("avg of 1 and 2 = %d, want 2", s.AvgDuration)
	}
}

func TestRecentNewestFirstCappedAtFive(t *testing.T) {
	var records []history.Record
	for i := 0; i < 7; i++ {
		records = append(records, rec(i, i, low))
	}
	s := Summarize(records)
	if len(s.Recent) != RecentLimit {
		t.Fatalf("recent has %d entries", len(s.Recent))
	}
	for i, r := range s.Recent {
		if r.DurationSeconds != 6-i {
			t.Fatalf("recent[%d] = record %d, want %d", i, r.DurationSeconds, 6-i)
		}
	}
}

func TestLoadFromStore(t *testing.T) {
	ctx := context.Background()
	store := history.NewStore(storage.NewMemory())
	_ = store.Append(ctx, rec(0, 30, high))
	s := Load(ctx, store)
	if s.Total != 1 || s.High != 1 || s.AvgDuration != 30 {
		t.Fatalf("unexpected stats %+v", s)
	}
}
