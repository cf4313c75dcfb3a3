package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
)

var sample = history.Record{
	Timestamp:       time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC),
	Answers:         fast.ResponseSet{Face: fast.Yes, Arm: fast.Yes, Speech: fast.No, Time: fast.Yes},
	DurationSeconds: 42,
	Language:        "hi",
}

func TestFilename(t *testing.T) {
	at := time.UnixMilli(1760860800123)
	if got := Filename(at); got != "vitalis_report_1760860800123.pdf" {
		t.Fatalf("Filename = %q", got)
	}
}

func TestShareText(t *testing.T) {
	if got := ShareText(fast.High); got != "My stroke screening result: HIGH risk level" {
		t.Fatalf("ShareText = %q", got)
	}
}

func TestWriteProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample, time.Date(2026, 10, 19, 8, 5, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", buf.Bytes()[:8])
	}
	if buf.Len() < 500 {
		t.Fatalf("suspiciously small PDF: %d bytes", buf.Len())
	}
}

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	at := time.UnixMilli(1700000000000)
	path, err := Save(dir, sample, at)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != "vitalis_report_1700000000000.pdf" {
		t.Fatalf("unexpected path %q", path)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("report not written: %v", err)
	}
}

func TestSaveReportsMissingDir(t *testing.T) {
	if _, err := Save(filepath.Join(t.TempDir(), "missing", "dir"), sample, time.Now()); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestAnswerText(t *testing.T) {
	if answerText(fast.Yes) != "YES" || answerText(fast.No) != "NO" || answerText(fast.Unanswered) != "-" {
		t.Fatalf("unexpected answer text")
	}
}
