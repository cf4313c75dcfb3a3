package screening

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/i18n"
)

type memRecorder struct {
	recs []history.Record
	err  error
}

func (m *memRecorder) Append(_ context.Context, rec history.Record) error {
	if m.err != nil {
		return m.err
	}
	m.recs = append(m.recs, rec)
	return nil
}

// fakeClock advances by step on every call after the first.
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	cur := start
	first := true
	return func() time.Time {
		if first {
			first = false
			return cur
		}
		cur = cur.Add(step)
		return cur
	}
}

var t0 = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func submitAll(t *testing.T, s *Session, answers ...fast.Answer) *history.Record {
	t.Helper()
	var rec *history.Record
	for i, a := range answers {
		r, err := s.Submit(context.Background(), a)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		rec = r
	}
	return rec
}

func TestSessionCompletesOnce(t *testing.T) {
	rec := &memRecorder{}
	s := New(i18n.Hindi, rec, WithClock(fakeClock(t0, 2600*time.Millisecond)))

	for i, a := range []fast.Answer{fast.Yes, fast.No, fast.Yes} {
		r, err := s.Submit(context.Background(), a)
		if err != nil || r != nil {
			t.Fatalf("step %d: rec=%v err=%v", i, r, err)
		}
		if s.Step() != i+1 || s.State() != Active {
			t.Fatalf("step %d: at step %d state %s", i, s.Step(), s.State())
		}
	}
	if len(rec.recs) != 0 {
		t.Fatalf("nothing should be saved before the last answer")
	}

	out, err := s.Submit(context.Background(), fast.Yes)
	if err != nil || out == nil {
		t.Fatalf("final submit: rec=%v err=%v", out, err)
	}
	if s.State() != Completed {
		t.Fatalf("state = %s, want completed", s.State())
	}
	if len(rec.recs) != 1 {
		t.Fatalf("expected exactly one append, got %d", len(rec.recs))
	}
	got := rec.recs[0]
	if !got.Answers.Complete() {
		t.Fatalf("record has unanswered keys: %+v", got.Answers)
	}
	want := fast.ResponseSet{Face: fast.Yes, Arm: fast.No, Speech: fast.Yes, Time: fast.Yes}
	if got.Answers != want {
		t.Fatalf("answers = %+v, want %+v", got.Answers, want)
	}
	// Start at t0, end one clock tick later: 2.6s rounds to 3.
	if got.DurationSeconds != 3 {
		t.Fatalf("duration = %d, want 3", got.DurationSeconds)
	}
	if got.Language != i18n.Hindi || got.Risk() != fast.High {
		t.Fatalf("unexpected record %+v risk %s", got, got.Risk())
	}
	if s.Record() == nil || *s.Record() != got {
		t.Fatalf("session record does not match saved record")
	}
}

func TestSubmitAfterCompletionIsRejected(t *testing.T) {
	rec := &memRecorder{}
	s := New(i18n.English, rec)
	submitAll(t, s, fast.No, fast.No, fast.No, fast.No)

	r, err := s.Submit(context.Background(), fast.Yes)
	if !errors.Is(err, ErrSessionCompleted) || r != nil {
		t.Fatalf("expected ErrSessionCompleted, got rec=%v err=%v", r, err)
	}
	if len(rec.recs) != 1 {
		t.Fatalf("rejected submit must not append, have %d records", len(rec.recs))
	}
	if s.Answers().Face != fast.No {
		t.Fatalf("answers changed after completion: %+v", s.Answers())
	}
}

func TestCancelDiscardsEverything(t *testing.T) {
	rec := &memRecorder{}
	s := New(i18n.English, rec)
	submitAll(t, s, fast.Yes, fast.Yes, fast.Yes)
	s.Cancel()

	if s.State() != Cancelled {
		t.Fatalf("state = %s, want cancelled", s.State())
	}
	if s.Answers() != (fast.ResponseSet{}) {
		t.Fatalf("answers not discarded: %+v", s.Answers())
	}
	if _, err := s.Submit(context.Background(), fast.Yes); !errors.Is(err, ErrSessionCancelled) {
		t.Fatalf("expected ErrSessionCancelled, got %v", err)
	}
	if len(rec.recs) != 0 {
		t.Fatalf("cancelled session appended %d records", len(rec.recs))
	}
}

func TestCancelAfterCompletionIsNoop(t *testing.T) {
	s := New(i18n.English, &memRecorder{})
	submitAll(t, s, fast.No, fast.No, fast.No, fast.Yes)
	s.Cancel()
	if s.State() != Completed || s.Answers().Time != fast.Yes {
		t.Fatalf("cancel changed a completed session: %s %+v", s.State(), s.Answers())
	}
}

func TestInvalidAnswerLeavesStateAlone(t *testing.T) {
	s := New(i18n.English, &memRecorder{})
	if _, err := s.Submit(context.Background(), fast.Unanswered); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("expected ErrInvalidAnswer, got %v", err)
	}
	if s.Step() != 0 {
		t.Fatalf("step moved to %d", s.Step())
	}
}

func TestAppendFailureStillCompletes(t *testing.T) {
	boom := errors.New("disk full")
	s := New(i18n.English, &memRecorder{err: boom})
	var last *history.Record
	var err error
	for _, a := range []fast.Answer{fast.Yes, fast.No, fast.No, fast.No} {
		last, err = s.Submit(context.Background(), a)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped append error, got %v", err)
	}
	if last == nil || s.State() != Completed {
		t.Fatalf("session should complete and return the record")
	}
}

func TestDurationNeverNegative(t *testing.T) {
	clock := fakeClock(t0, -5*time.Second)
	s := New(i18n.English, nil, WithClock(clock))
	rec := submitAll(t, s, fast.No, fast.No, fast.No, fast.No)
	if rec.DurationSeconds != 0 {
		t.Fatalf("duration = %d, want 0", rec.DurationSeconds)
	}
}

func TestProgressAndQuestions(t *testing.T) {
	s := New(i18n.English, nil)
	for i, q := range Questions {
		if s.Question() != q {
			t.Fatalf("step %d asks %v, want %v", i, s.Question().Key, q.Key)
		}
		n, total := s.Progress()
		if n != i+1 || total != 4 {
			t.Fatalf("progress %d/%d at step %d", n, total, i)
		}
		_, _ = s.Submit(context.Background(), fast.No)
	}
	if Questions[0].Text(i18n.English) != "Is one side of the face drooping or numb?" {
		t.Fatalf("unexpected face question: %q", Questions[0].Text(i18n.English))
	}
	if Questions[3].Label(i18n.Hindi) != "हाल का (<3 घंटे)" {
		t.Fatalf("unexpected time label: %q", Questions[3].Label(i18n.Hindi))
	}
}
