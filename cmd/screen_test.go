package cmd

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sw33tLie/vitalis/pkg/dashboard"
	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/i18n"
	"github.com/sw33tLie/vitalis/pkg/storage"
)

func memStore() *history.Store {
	return history.NewStore(storage.NewMemory())
}

func TestRunScreeningKeyboard(t *testing.T) {
	store := memStore()
	var out bytes.Buffer
	in := strings.NewReader("maybe\ny\n\nyes\nn\nYES\n")

	rec, err := runScreening(context.Background(), in, &out, store, screenOptions{Lang: i18n.English})
	if err != nil {
		t.Fatalf("runScreening: %v", err)
	}
	if rec == nil {
		t.Fatalf("expected a record, output:\n%s", out.String())
	}
	want := fast.ResponseSet{Face: fast.Yes, Arm: fast.Yes, Speech: fast.No, Time: fast.Yes}
	if rec.Answers != want {
		t.Errorf("answers = %+v, want %+v", rec.Answers, want)
	}
	if n := len(store.ReadAll(context.Background())); n != 1 {
		t.Errorf("stored %d records, want 1", n)
	}

	text := out.String()
	for _, s := range []string{"[1/4] F - Face", "[4/4] T - Time", "HIGH RISK", "tel:108", `invalid answer "maybe"`} {
		if !strings.Contains(text, s) {
			t.Errorf("output missing %q", s)
		}
	}
}

func TestRunScreeningCancel(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"quit", "y\nq\n"},
		{"cancel word", "y\nn\ncancel\n"},
		{"eof", "y\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memStore()
			var out bytes.Buffer
			rec, err := runScreening(context.Background(), strings.NewReader(tt.input), &out, store, screenOptions{Lang: i18n.Hindi})
			if err != nil || rec != nil {
				t.Fatalf("got (%v, %v), want (nil, nil)", rec, err)
			}
			if !strings.Contains(out.String(), i18n.T(i18n.Hindi, "screen.cancelled")) {
				t.Errorf("missing cancel message in %q", out.String())
			}
			if n := len(store.ReadAll(context.Background())); n != 0 {
				t.Errorf("stored %d records, want 0", n)
			}
		})
	}
}

func TestRunScreeningContextCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec, err := runScreening(ctx, pr, io.Discard, memStore(), screenOptions{Lang: i18n.English})
	if err != nil || rec != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", rec, err)
	}
}

func TestRunScreeningVoice(t *testing.T) {
	store := memStore()
	var out bytes.Buffer
	in := strings.NewReader("umm\nyes no\nno\nnahi\nहां\n")

	rec, err := runScreening(context.Background(), in, &out, store, screenOptions{Lang: i18n.Hindi, Voice: true})
	if err != nil {
		t.Fatalf("runScreening: %v", err)
	}
	if rec == nil {
		t.Fatalf("expected a record, output:\n%s", out.String())
	}
	want := fast.ResponseSet{Face: fast.Yes, Arm: fast.No, Speech: fast.No, Time: fast.Yes}
	if rec.Answers != want {
		t.Errorf("answers = %+v, want %+v", rec.Answers, want)
	}
	if rec.Language != i18n.Hindi {
		t.Errorf("language = %q, want hi", rec.Language)
	}
	if rec.Risk() != fast.High {
		t.Errorf("risk = %s, want HIGH", rec.Risk())
	}
	if !strings.Contains(out.String(), "hi-IN") {
		t.Errorf("output does not mention the recognition locale")
	}
}

func TestRunScreeningWritesReport(t *testing.T) {
	dir := t.TempDir()
	opts := screenOptions{Lang: i18n.English, ReportDir: dir}

	rec, err := runScreening(context.Background(), strings.NewReader("n\nn\nn\nn\n"), io.Discard, memStore(), opts)
	if err != nil || rec == nil {
		t.Fatalf("runScreening: (%v, %v)", rec, err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "vitalis_report_*.pdf"))
	if len(matches) != 1 {
		t.Fatalf("report files = %v, want one", matches)
	}
}

func TestPickRecord(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	records := []history.Record{
		{Timestamp: base, DurationSeconds: 1},
		{Timestamp: base.Add(time.Minute), DurationSeconds: 2},
		{Timestamp: base.Add(2 * time.Minute), DurationSeconds: 3},
	}

	tests := []struct {
		nth     int
		want    int
		wantErr bool
	}{
		{nth: 1, want: 3},
		{nth: 3, want: 1},
		{nth: 0, wantErr: true},
		{nth: 4, wantErr: true},
	}
	for _, tt := range tests {
		got, err := pickRecord(records, tt.nth)
		if tt.wantErr {
			if err == nil {
				t.Errorf("nth=%d: expected error", tt.nth)
			}
			continue
		}
		if err != nil {
			t.Errorf("nth=%d: %v", tt.nth, err)
			continue
		}
		if got.DurationSeconds != tt.want {
			t.Errorf("nth=%d: got record %d, want %d", tt.nth, got.DurationSeconds, tt.want)
		}
	}

	if _, err := pickRecord(nil, 1); err == nil {
		t.Error("expected error for empty history")
	}
}

func TestPrintDashboard(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	stats := dashboard.Summarize([]history.Record{
		{Timestamp: base, Answers: fast.ResponseSet{Face: fast.Yes, Arm: fast.Yes, Speech: fast.No, Time: fast.Yes}, DurationSeconds: 20},
		{Timestamp: base.Add(time.Minute), Answers: fast.ResponseSet{Face: fast.No, Arm: fast.No, Speech: fast.No, Time: fast.No}, DurationSeconds: 10},
	})

	var out bytes.Buffer
	printDashboard(&out, stats, i18n.English)
	text := out.String()
	for _, s := range []string{"Total Screenings", "15s", "HIGH", "LOW"} {
		if !strings.Contains(text, s) {
			t.Errorf("dashboard output missing %q:\n%s", s, text)
		}
	}

	out.Reset()
	printDashboard(&out, dashboard.Summarize(nil), i18n.English)
	if !strings.Contains(out.String(), "  -") {
		t.Errorf("empty dashboard should show a placeholder:\n%s", out.String())
	}
}

func TestClearHistory(t *testing.T) {
	store := memStore()
	seedRec := history.Record{Timestamp: time.Now().UTC(), DurationSeconds: 4, Language: i18n.English}
	if err := store.Append(context.Background(), seedRec); err != nil {
		t.Fatalf("append: %v", err)
	}

	var out bytes.Buffer
	if confirmClear(strings.NewReader("\n"), &out, i18n.English) {
		t.Fatal("empty reply must not confirm")
	}
	if !confirmClear(strings.NewReader("Yes\n"), &out, i18n.English) {
		t.Fatal("yes must confirm")
	}

	out.Reset()
	if err := clearHistory(context.Background(), &out, store, i18n.English); err != nil {
		t.Fatalf("clearHistory: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != i18n.T(i18n.English, "dash.clear.done") {
		t.Errorf("message = %q", got)
	}
	if n := len(store.ReadAll(context.Background())); n != 0 {
		t.Errorf("stored %d records after clear, want 0", n)
	}
}
