// Package report renders a completed screening as a downloadable PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
)

const title = "VITALIS - Stroke Screening Report"

// Report labels are English only: the core PDF fonts have no Devanagari glyphs.
var answerLabels = map[fast.Key]string{
	fast.Face:   "Face Drooping",
	fast.Arm:    "Arm Weakness",
	fast.Speech: "Speech Difficulty",
	fast.Time:   "Time (<3 hours)",
}

// Filename returns vitalis_report_<epoch-millis>.pdf for the given instant.
func Filename(at time.Time) string {
	return fmt.Sprintf("vitalis_report_%d.pdf", at.UnixMilli())
}

// ShareText is the short message offered to share sheets.
func ShareText(tier fast.RiskTier) string {
	return fmt.Sprintf("My stroke screening result: %s risk level", tier)
}

// Write renders rec as a PDF into w. generated is printed as the report date.
func Write(w io.Writer, rec history.Record, generated time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetCreator("vitalis", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 20)
	pdf.Text(20, 20, title)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 35, "Date: "+generated.Format("02/01/2006, 15:04:05"))
	pdf.Text(20, 42, fmt.Sprintf("Duration: %d seconds", rec.DurationSeconds))
	pdf.Text(20, 49, "Risk Level: "+rec.Risk().String())

	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(20, 60, "FAST Protocol Responses:")

	pdf.SetFont("Helvetica", "", 11)
	y := 70.0
	for _, k := range fast.Keys {
		pdf.Text(25, y, fmt.Sprintf("%s: %s", answerLabels[k], answerText(rec.Answers.Get(k))))
		y += 7
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(20, 280, "This is a screening tool, not a medical diagnosis.")
	pdf.Text(20, 287, "Consult a healthcare professional for medical advice.")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return pdf.Output(w)
}

// Save writes the report into dir under Filename(generated) and returns the path.
func Save(dir string, rec history.Record, generated time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, Filename(generated))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := Write(f, rec, generated); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}

func answerText(a fast.Answer) string {
	if a == fast.Unanswered {
		return "-"
	}
	return strings.ToUpper(string(a))
}
