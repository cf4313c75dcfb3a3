// Package speech defines the speech-to-text collaborator used for voice answers.
package speech

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/sw33tLie/vitalis/internal/utils"
)

var ErrUnsupported = errors.New("speech recognition is not supported here")

// Recognizer produces a live transcript. Each value on Transcripts is the
// whole transcript so far; ResetTranscript empties it.
type Recognizer interface {
	Supported() bool
	StartListening(ctx context.Context, locale string) error
	StopListening() error
	Listening() bool
	Transcripts() <-chan string
	ResetTranscript()
}

// Unsupported is used when no recognizer is available. Voice input is then
// hidden and only direct answers are offered.
type Unsupported struct{}

func (Unsupported) Supported() bool { return false }
func (Unsupported) StartListening(context.Context, string) error {
	return ErrUnsupported
}
func (Unsupported) StopListening() error       { return nil }
func (Unsupported) Listening() bool            { return false }
func (Unsupported) Transcripts() <-chan string { return nil }
func (Unsupported) ResetTranscript()           {}

// LineRecognizer treats every line read from r as a recognized utterance and
// appends it to the transcript, like a continuous recognizer would.
type LineRecognizer struct {
	r io.Reader

	mu         sync.Mutex
	transcript string
	listening  bool
	locale     string
	cancel     context.CancelFunc
	out        chan string
	resets     chan chan struct{}
	stopped    chan struct{}
}

func NewLineRecognizer(r io.Reader) *LineRecognizer {
	return &LineRecognizer{r: r}
}

func (l *LineRecognizer) Supported() bool { return true }

// StartListening begins reading lines. The transcript channel is closed when
// the reader is exhausted, ctx ends or StopListening is called.
func (l *LineRecognizer) StartListening(ctx context.Context, locale string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.listening {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.listening = true
	l.locale = locale
	l.out = make(chan string)
	l.resets = make(chan chan struct{})
	l.stopped = make(chan struct{})
	utils.Log.Debugf("speech: listening (%s)", locale)

	go l.run(ctx, l.out, l.resets, l.stopped)
	return nil
}

func (l *LineRecognizer) scan(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(l.r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// run owns the transcript while listening. At most one transcript waits for
// the consumer at a time, and a reset rebuilds it from the line that is still
// undelivered so no value sent after a reset carries older speech.
func (l *LineRecognizer) run(ctx context.Context, out chan<- string, resets <-chan chan struct{}, stopped chan struct{}) {
	defer func() {
		l.mu.Lock()
		l.listening = false
		l.mu.Unlock()
		close(stopped)
		close(out)
	}()

	lines := l.scan(ctx)
	var pending, lastLine string
	for {
		var send chan<- string
		recv := lines
		if pending != "" {
			send, recv = out, nil
		} else if lines == nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case ack := <-resets:
			l.mu.Lock()
			l.transcript = ""
			if pending != "" {
				l.transcript = lastLine
				pending = lastLine
			}
			l.mu.Unlock()
			close(ack)
		case line, ok := <-recv:
			if !ok {
				lines = nil
				continue
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			l.mu.Lock()
			if l.transcript == "" {
				l.transcript = line
			} else {
				l.transcript += " " + line
			}
			pending = l.transcript
			l.mu.Unlock()
			lastLine = line
		case send <- pending:
			pending = ""
		}
	}
}

func (l *LineRecognizer) StopListening() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
	return nil
}

func (l *LineRecognizer) Listening() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.listening
}

// Locale returns the locale passed to the last StartListening call.
func (l *LineRecognizer) Locale() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.locale
}

func (l *LineRecognizer) Transcripts() <-chan string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out
}

// ResetTranscript empties the buffer. While listening it waits for the reader
// loop, so the next transcript received starts fresh.
func (l *LineRecognizer) ResetTranscript() {
	l.mu.Lock()
	resets, stopped := l.resets, l.stopped
	if resets == nil {
		l.transcript = ""
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	ack := make(chan struct{})
	select {
	case resets <- ack:
		<-ack
	case <-stopped:
		l.mu.Lock()
		l.transcript = ""
		l.mu.Unlock()
	}
}

// Transcript returns the current buffer.
func (l *LineRecognizer) Transcript() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transcript
}

var (
	_ Recognizer = Unsupported{}
	_ Recognizer = (*LineRecognizer)(nil)
)
