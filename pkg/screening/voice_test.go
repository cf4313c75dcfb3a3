package screening

import (
	"context"
	"testing"

	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/i18n"
)

type resetCounter struct{ n int }

func (r *resetCounter) ResetTranscript() { r.n++ }

func TestMatchTranscript(t *testing.T) {
	cases := []struct {
		in   string
		want fast.Answer
		ok   bool
	}{
		{"Yes", fast.Yes, true},
		{"haan ji", fast.Yes, true},
		{"हां", fast.Yes, true},
		{"NO", fast.No, true},
		{"nahi", fast.No, true},
		{"नहीं", fast.No, true},
		{"yes no", fast.Yes, true},
		{"no, wait, yes", fast.Yes, true},
		{"hello there", fast.Unanswered, false},
		{"", fast.Unanswered, false},
	}
	for _, c := range cases {
		got, ok := MatchTranscript(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("MatchTranscript(%q) = %q,%v want %q,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestBridgeSubmitsOnePerUpdate(t *testing.T) {
	rec := &memRecorder{}
	s := New(i18n.English, rec)
	reset := &resetCounter{}
	b := NewVoiceBridge(s, reset)

	matched, _, err := b.Update(context.Background(), "yes and no")
	if err != nil || !matched {
		t.Fatalf("update: matched=%v err=%v", matched, err)
	}
	if s.Step() != 1 {
		t.Fatalf("ambiguous transcript advanced to step %d, want 1", s.Step())
	}
	if s.Answers().Face != fast.Yes {
		t.Fatalf("affirmative should win, face=%q", s.Answers().Face)
	}
	if reset.n != 1 {
		t.Fatalf("expected one reset, got %d", reset.n)
	}
}

func TestBridgeIgnoresNoise(t *testing.T) {
	s := New(i18n.English, nil)
	reset := &resetCounter{}
	b := NewVoiceBridge(s, reset)
	for _, tr := range []string{"", "umm", "let me think"} {
		matched, _, err := b.Update(context.Background(), tr)
		if matched || err != nil {
			t.Fatalf("%q: matched=%v err=%v", tr, matched, err)
		}
	}
	if s.Step() != 0 || reset.n != 0 {
		t.Fatalf("noise changed state: step=%d resets=%d", s.Step(), reset.n)
	}
}

func TestBridgeCompletesSession(t *testing.T) {
	rec := &memRecorder{}
	s := New(i18n.Hindi, rec)
	b := NewVoiceBridge(s, nil)
	var last bool
	for _, tr := range []string{"हां", "haan", "नहीं", "हां"} {
		matched, r, err := b.Update(context.Background(), tr)
		if err != nil || !matched {
			t.Fatalf("%q: matched=%v err=%v", tr, matched, err)
		}
		last = r != nil
	}
	if !last || len(rec.recs) != 1 {
		t.Fatalf("voice flow did not complete: last=%v records=%d", last, len(rec.recs))
	}
	if got := rec.recs[0].Risk(); got != fast.High {
		t.Fatalf("risk = %s, want HIGH", got)
	}
}
