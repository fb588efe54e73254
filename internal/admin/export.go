package admin

import (
	"fmt"
	"strings"

	"github.com/gambo-stadium/gambo-api/internal/booking"
)

// csvHeaders is the fixed column order of the booking export.
var csvHeaders = []string{"ID", "User", "Ground", "Date", "Start Time", "End Time", "Price", "Status"}

// BookingsToCSV renders the export: a header row plus one row per booking.
// A field containing a comma is wrapped in double quotes; embedded quotes
// are left untouched, which the export consumers have always assumed.
// encoding/csv is deliberately not used here so the output stays
// byte-compatible with that contract.
func BookingsToCSV(records []booking.Booking) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(csvHeaders, ","))
	sb.WriteByte('\n')

	for i := range records {
		b := &records[i]
		row := []string{
			fmt.Sprintf("%d", b.ID),
			b.UserName,
			b.GroundName,
			b.Date,
			b.StartTime,
			b.EndTime,
			formatPrice(b.Price),
			b.Status,
		}
		for j, field := range row {
			if strings.Contains(field, ",") {
				row[j] = `"` + field + `"`
			}
		}
		sb.WriteString(strings.Join(row, ","))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatPrice(p float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", p), "0"), ".")
}
