// Package export renders fetched records to files for sharing outside
// the app.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"hrmobile/internal/form"
	"hrmobile/internal/record"
)

// TimesheetPDF writes a summary of the given entries, one row per day
// plus a worked-hours total. Entries without a parseable time pair are
// listed with a blank hours column and excluded from the total.
func TimesheetPDF(path, period string, owner record.Record, entries []record.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Timesheet Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	if name := ownerName(owner); name != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", name))
		pdf.Ln(7)
	}
	if period != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(35, 8, "Date")
	pdf.Cell(25, 8, "Start")
	pdf.Cell(25, 8, "End")
	pdf.Cell(25, 8, "Break")
	pdf.Cell(25, 8, "Hours")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	totalMinutes := 0
	for _, entry := range entries {
		start := form.NormalizeTime(entry.String("startTime"))
		end := form.NormalizeTime(entry.String("endTime"))
		pause := entry.String("breakMinutes")

		pdf.Cell(35, 7, form.NormalizeDate(entry.String("date")))
		pdf.Cell(25, 7, start)
		pdf.Cell(25, 7, end)
		pdf.Cell(25, 7, pause)
		if minutes, ok := form.DurationMinutes(start, end, pause); ok {
			totalMinutes += minutes
			pdf.Cell(25, 7, form.DurationLabel(start, end, pause))
		} else {
			pdf.Cell(25, 7, "")
		}
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f hours", float64(totalMinutes)/60))

	return pdf.OutputFileAndClose(path)
}

func ownerName(owner record.Record) string {
	if owner == nil {
		return ""
	}
	if name := owner.String("name"); name != "" {
		return name
	}
	first := owner.String("firstName")
	last := owner.String("lastName")
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}
