// Package report exports the current session's splits as a PDF.
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/splitpace/internal/config"
	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	"github.com/go-pdf/fpdf"
)

// FileName is the report name for a session exported at now.
func FileName(now time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", config.ReportFileStem, now.Format("2006-01-02_150405"))
}

// DefaultPath places the report for now inside dir.
func DefaultPath(dir string, now time.Time) string {
	return filepath.Join(dir, FileName(now))
}

// WriteSplits renders st to a PDF at path. Each lap is labelled with the
// pace it had against the session's current target.
func WriteSplits(path string, st stopwatch.SessionState, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Split Report", false)
	pdf.SetCreator(config.AppName, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Split Report: %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Target lap: %ss  (tolerance %d%%)", stopwatch.FormatMillis(st.TargetMs), st.Config.TolerancePercent))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total time: %ss  (%s)", stopwatch.FormatMillis(st.ElapsedMs), st.State))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(20, 8, "Lap", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Split (s)", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Pace", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	if len(st.Laps) == 0 {
		pdf.Cell(0, 8, "  - No laps recorded.")
		pdf.Ln(8)
	}
	for i, lap := range st.Laps {
		pace := stopwatch.Classify(lap, st.TargetMs, st.Config.TolerancePercent).String()
		if pace == "" {
			pace = "-"
		}
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", i+1), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, stopwatch.FormatMillis(lap), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, pace, "", 1, "R", false, 0, "")
	}

	return pdf.OutputFileAndClose(path)
}
