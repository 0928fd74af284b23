package export

import (
	"os"
	"path/filepath"
	"testing"

	"hrmobile/internal/record"
)

func TestTimesheetPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "august.pdf")

	entries := []record.Record{
		{"date": "2026-08-13", "startTime": "09:00", "endTime": "17:30", "breakMinutes": "30"},
		{"date": "2026-08-14", "startTime": "2026-08-14T09:00:00Z", "endTime": "18:00", "breakMinutes": "60"},
		{"date": "2026-08-15"}, // no times recorded, blank hours row
	}
	owner := record.Record{"firstName": "Kerem", "lastName": "Yilmaz"}

	if err := TimesheetPDF(path, "2026-08", owner, entries); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty pdf")
	}
}

func TestOwnerName(t *testing.T) {
	tests := []struct {
		owner record.Record
		want  string
	}{
		{record.Record{"name": "Asli Demir"}, "Asli Demir"},
		{record.Record{"firstName": "Kerem", "lastName": "Yilmaz"}, "Kerem Yilmaz"},
		{record.Record{"firstName": "Kerem"}, "Kerem"},
		{record.Record{}, ""},
		{nil, ""},
	}
	for _, tc := range tests {
		if got := ownerName(tc.owner); got != tc.want {
			t.Fatalf("ownerName(%v) = %q, want %q", tc.owner, got, tc.want)
		}
	}
}
