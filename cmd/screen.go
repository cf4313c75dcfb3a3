package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/vitalis/internal/utils"
	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/i18n"
	"github.com/sw33tLie/vitalis/pkg/report"
	"github.com/sw33tLie/vitalis/pkg/screening"
	"github.com/sw33tLie/vitalis/pkg/speech"
)

type screenOptions struct {
	Lang      i18n.Language
	Voice     bool
	StepDelay time.Duration
	ReportDir string // empty: no report
}

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run a FAST screening",
	Long: `Asks the four FAST questions. Answer with yes/no (y/n), or q to cancel.

With --voice every input line is handled as a speech transcript: "yes", "haan" or "हां"
answer yes, "no", "nahi" or "नहीं" answer no. Pipe a speech-to-text tool into stdin to
answer by voice.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		voice, _ := cmd.Flags().GetBool("voice")
		withReport, _ := cmd.Flags().GetBool("report")
		reportDir, _ := cmd.Flags().GetString("out")
		opts := screenOptions{
			Lang:      currentLanguage(),
			Voice:     voice,
			StepDelay: stepDelay(),
		}
		if withReport {
			opts.ReportDir = reportDir
			if opts.ReportDir == "" {
				opts.ReportDir = "."
			}
		}

		store, _, closeDB, err := openHistory()
		if err != nil {
			return err
		}
		defer closeDB()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		_, err = runScreening(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), store, opts)
		return err
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)
	screenCmd.Flags().BoolP("voice", "v", false, "Treat input lines as speech transcripts")
	screenCmd.Flags().Bool("report", false, "Save a PDF report when the screening completes")
	screenCmd.Flags().StringP("out", "o", "", "Directory for the PDF report (default: current directory)")
}

// runScreening drives one session from in to out. It returns the saved record,
// or nil when the session was cancelled.
func runScreening(ctx context.Context, in io.Reader, out io.Writer, rec screening.Recorder, opts screenOptions) (*history.Record, error) {
	lang := opts.Lang
	s := screening.New(lang, rec)

	fmt.Fprintf(out, "%s\n%s\n\n", i18n.T(lang, "screen.title"), i18n.T(lang, "app.warning"))

	var (
		done *history.Record
		err  error
	)
	if opts.Voice {
		done, err = screenByVoice(ctx, s, speech.NewLineRecognizer(in), out, opts)
	} else {
		done, err = screenByKeyboard(ctx, s, in, out, opts)
	}
	if done == nil {
		return nil, err
	}
	if err != nil {
		// The screening is complete; only saving it failed.
		utils.Log.Warnf("screening finished but was not saved: %v", err)
	}

	printResult(out, *done, lang)

	if opts.ReportDir != "" {
		path, rerr := report.Save(opts.ReportDir, *done, time.Now())
		if rerr != nil {
			utils.Log.Warnf("could not export report: %v", rerr)
		} else {
			fmt.Fprintf(out, "\n%s: %s\n", i18n.T(lang, "result.download"), path)
		}
	}
	return done, nil
}

func askQuestion(out io.Writer, s *screening.Session) {
	n, total := s.Progress()
	q := s.Question()
	lang := s.Language()
	fmt.Fprintf(out, "[%d/%d] %s\n%s\n", n, total, q.Badge, q.Text(lang))
}

func cancelled(out io.Writer, s *screening.Session) (*history.Record, error) {
	s.Cancel()
	fmt.Fprintf(out, "\n%s\n", i18n.T(s.Language(), "screen.cancelled"))
	return nil, nil
}

func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
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

func screenByKeyboard(ctx context.Context, s *screening.Session, in io.Reader, out io.Writer, opts screenOptions) (*history.Record, error) {
	lines := readLines(ctx, in)
	lang := s.Language()

	askQuestion(out, s)
	for {
		fmt.Fprintf(out, "%s > ", i18n.T(lang, "screen.prompt"))
		var line string
		select {
		case <-ctx.Done():
			return cancelled(out, s)
		case l, ok := <-lines:
			if !ok {
				return cancelled(out, s)
			}
			line = strings.TrimSpace(l)
		}

		switch strings.ToLower(line) {
		case "q", "quit", "cancel":
			return cancelled(out, s)
		case "":
			continue
		}

		a, err := fast.ParseAnswer(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		rec, err := s.Submit(ctx, a)
		if rec != nil || (err != nil && !errors.Is(err, screening.ErrInvalidAnswer)) {
			return rec, err
		}
		pause(ctx, opts.StepDelay)
		askQuestion(out, s)
	}
}

func screenByVoice(ctx context.Context, s *screening.Session, recognizer speech.Recognizer, out io.Writer, opts screenOptions) (*history.Record, error) {
	lang := s.Language()
	if !recognizer.Supported() {
		return nil, speech.ErrUnsupported
	}
	if err := recognizer.StartListening(ctx, lang.Locale()); err != nil {
		return nil, err
	}
	defer recognizer.StopListening()

	bridge := screening.NewVoiceBridge(s, recognizer)
	fmt.Fprintf(out, "%s (%s)\n", i18n.T(lang, "screen.listening"), lang.Locale())
	askQuestion(out, s)

	transcripts := recognizer.Transcripts()
	for {
		select {
		case <-ctx.Done():
			return cancelled(out, s)
		case t, ok := <-transcripts:
			if !ok {
				return cancelled(out, s)
			}
			fmt.Fprintf(out, "%q\n", t)
			matched, done, err := bridge.Update(ctx, t)
			if done != nil || err != nil {
				return done, err
			}
			if matched {
				pause(ctx, opts.StepDelay)
				askQuestion(out, s)
			}
		}
	}
}
