// Package screening runs the four-question FAST flow and turns spoken
// transcripts into answers.
package screening

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/i18n"
)

var (
	ErrInvalidAnswer    = errors.New("answer must be yes or no")
	ErrSessionCompleted = errors.New("screening already completed")
	ErrSessionCancelled = errors.New("screening was cancelled")
)

// Recorder receives the record of a completed session. *history.Store satisfies it.
type Recorder interface {
	Append(ctx context.Context, rec history.Record) error
}

type State int

const (
	Active State = iota
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session is a single pass through the questions. It is not safe for
// concurrent use; callers that share one must serialize access.
type Session struct {
	lang     i18n.Language
	recorder Recorder
	now      func() time.Time

	start   time.Time
	step    int
	answers fast.ResponseSet
	state   State
	record  *history.Record
}

type Option func(*Session)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New starts a session. The start time is taken here.
func New(lang i18n.Language, recorder Recorder, opts ...Option) *Session {
	s := &Session{lang: lang, recorder: recorder, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	s.start = s.now()
	return s
}

func (s *Session) Language() i18n.Language   { return s.lang }
func (s *Session) State() State              { return s.state }
func (s *Session) Step() int                 { return s.step }
func (s *Session) Answers() fast.ResponseSet { return s.answers }

// Question returns the question awaiting an answer, or the last one once the
// session has ended.
func (s *Session) Question() Question {
	return Questions[s.step]
}

// Progress is the 1-based position shown as "n / total".
func (s *Session) Progress() (n, total int) {
	return s.step + 1, len(Questions)
}

// Record returns the completed record, or nil while the session is active.
func (s *Session) Record() *history.Record {
	return s.record
}

// Submit answers the current question. On the last question the session
// completes, the record is appended to the recorder and returned. A failed
// append still completes the session; the record is returned with the error.
func (s *Session) Submit(ctx context.Context, a fast.Answer) (*history.Record, error) {
	switch s.state {
	case Completed:
		return nil, ErrSessionCompleted
	case Cancelled:
		return nil, ErrSessionCancelled
	}
	if !a.Answered() {
		return nil, ErrInvalidAnswer
	}

	s.answers = s.answers.With(Questions[s.step].Key, a)
	if s.step < len(Questions)-1 {
		s.step++
		return nil, nil
	}

	end := s.now()
	rec := history.Record{
		Timestamp:       end.UTC().Truncate(time.Millisecond),
		Answers:         s.answers,
		DurationSeconds: durationSeconds(s.start, end),
		Language:        s.lang,
	}
	s.state = Completed
	s.record = &rec

	if s.recorder != nil {
		if err := s.recorder.Append(ctx, rec); err != nil {
			return &rec, fmt.Errorf("save screening: %w", err)
		}
	}
	return &rec, nil
}

// Cancel abandons an active session without saving anything. Cancelling a
// finished session does nothing.
func (s *Session) Cancel() {
	if s.state != Active {
		return
	}
	s.state = Cancelled
	s.answers = fast.ResponseSet{}
}

func durationSeconds(start, end time.Time) int {
	d := math.Round(end.Sub(start).Seconds())
	if d < 0 {
		return 0
	}
	return int(d)
}
