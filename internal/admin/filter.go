package admin

import (
	"sort"
	"strings"
	"time"

	"github.com/gambo-stadium/gambo-api/internal/booking"
	"github.com/gambo-stadium/gambo-api/internal/user"
)

// UserRow is one line of the admin user table: the public user record plus
// their derived booking count.
type UserRow struct {
	user.UserResponse
	Bookings int `json:"bookings"`
}

// SearchUsers keeps users whose name or email contains the term,
// case-insensitively. An empty term keeps everyone.
func SearchUsers(rows []UserRow, term string) []UserRow {
	if term == "" {
		return rows
	}
	needle := strings.ToLower(term)
	out := make([]UserRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), needle) ||
			strings.Contains(strings.ToLower(row.Email), needle) {
			out = append(out, row)
		}
	}
	return out
}

// SortUsers orders the user table by name, email or booking count. String
// fields compare case-insensitively; direction "desc" flips the order.
func SortUsers(rows []UserRow, field, direction string) {
	desc := direction == "desc"
	sort.SliceStable(rows, func(i, j int) bool {
		var less bool
		switch field {
		case "bookings":
			less = rows[i].Bookings < rows[j].Bookings
		case "email":
			less = strings.ToLower(rows[i].Email) < strings.ToLower(rows[j].Email)
		default:
			less = strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
		}
		if desc {
			return !less
		}
		return less
	})
}

// FilterBookings applies the admin dashboard predicates: today (exact
// calendar-day match), thisWeek (today through today+7d inclusive),
// pending, confirmed, and all (identity). Records whose date does not
// parse are dropped by the date predicates.
func FilterBookings(records []booking.Booking, filter string, now time.Time) []booking.Booking {
	if filter == "" || filter == "all" {
		return records
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekLater := today.AddDate(0, 0, 7)

	out := make([]booking.Booking, 0, len(records))
	for _, b := range records {
		switch filter {
		case "today", "thisWeek":
			day, err := time.ParseInLocation("2006-01-02", b.Date, now.Location())
			if err != nil {
				continue
			}
			if filter == "today" && day.Equal(today) {
				out = append(out, b)
			}
			if filter == "thisWeek" && !day.Before(today) && !day.After(weekLater) {
				out = append(out, b)
			}
		case "pending":
			if b.Status == booking.StatusPending {
				out = append(out, b)
			}
		case "confirmed":
			if b.Status == booking.StatusConfirmed {
				out = append(out, b)
			}
		}
	}
	return out
}
