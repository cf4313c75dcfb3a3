package screening

import (
	"context"
	"strings"

	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
)

var (
	affirmativeWords = []string{"yes", "haan", "हां"}
	negativeWords    = []string{"no", "nahi", "नहीं"}
)

// MatchTranscript maps a transcript to an answer by substring match. When a
// transcript contains both an affirmative and a negative word, yes wins.
func MatchTranscript(transcript string) (fast.Answer, bool) {
	lower := strings.ToLower(transcript)
	if containsAny(lower, affirmativeWords) {
		return fast.Yes, true
	}
	if containsAny(lower, negativeWords) {
		return fast.No, true
	}
	return fast.Unanswered, false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// TranscriptResetter clears the recognizer buffer after a match.
type TranscriptResetter interface {
	ResetTranscript()
}

// VoiceBridge feeds transcript updates into a session, at most one answer per update.
type VoiceBridge struct {
	session *Session
	reset   TranscriptResetter
}

func NewVoiceBridge(s *Session, reset TranscriptResetter) *VoiceBridge {
	return &VoiceBridge{session: s, reset: reset}
}

// Update handles one transcript change. matched reports whether an answer was
// submitted; the transcript buffer is reset only then.
func (b *VoiceBridge) Update(ctx context.Context, transcript string) (matched bool, rec *history.Record, err error) {
	if transcript == "" {
		return false, nil, nil
	}
	a, ok := MatchTranscript(transcript)
	if !ok {
		return false, nil, nil
	}
	rec, err = b.session.Submit(ctx, a)
	if b.reset != nil {
		b.reset.ResetTranscript()
	}
	return true, rec, err
}
