package admin

import (
	"strings"
	"testing"

	"github.com/gambo-stadium/gambo-api/internal/booking"
	"gorm.io/gorm"
)

// splitCSVLine splits on commas outside double quotes, the way the export's
// consumers parse it.
func splitCSVLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())
	return fields
}

func TestBookingsToCSVShape(t *testing.T) {
	records := []booking.Booking{
		{Model: gorm.Model{ID: 1}, UserName: "Jo", GroundName: "Premium Stadium", Date: "2025-05-01", StartTime: "08:00", EndTime: "10:00", Price: 50, Status: "confirmed"},
		{Model: gorm.Model{ID: 2}, UserName: "Sam", GroundName: "North Pitch", Date: "2025-05-02", StartTime: "10:00", EndTime: "12:00", Price: 50, Status: "pending"},
	}

	out := BookingsToCSV(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != len(records)+1 {
		t.Fatalf("expected %d lines (header + rows), got %d", len(records)+1, len(lines))
	}
	if lines[0] != "ID,User,Ground,Date,Start Time,End Time,Price,Status" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "1,Jo,Premium Stadium,2025-05-01,08:00,10:00,50,confirmed" {
		t.Errorf("unexpected row: %q", lines[1])
	}
}

func TestBookingsToCSVQuotesCommaFields(t *testing.T) {
	records := []booking.Booking{
		{Model: gorm.Model{ID: 7}, UserName: "Doe, Jane", GroundName: "Stadium, North Wing", Date: "2025-05-01", StartTime: "08:00", EndTime: "10:00", Price: 50, Status: "confirmed"},
	}

	out := BookingsToCSV(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}

	row := lines[1]
	if !strings.Contains(row, `"Doe, Jane"`) || !strings.Contains(row, `"Stadium, North Wing"`) {
		t.Errorf("comma fields must be wrapped in quotes: %q", row)
	}

	fields := splitCSVLine(row)
	if len(fields) != len(csvHeaders) {
		t.Errorf("quoted row must still parse to %d fields, got %d: %v", len(csvHeaders), len(fields), fields)
	}
	if fields[1] != "Doe, Jane" {
		t.Errorf("expected user field to round-trip, got %q", fields[1])
	}
}

func TestBookingsToCSVEmptyLedger(t *testing.T) {
	out := BookingsToCSV(nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("empty ledger should export only the header, got %d lines", len(lines))
	}
}
