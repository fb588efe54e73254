package admin

import (
	"time"

	"github.com/gambo-stadium/gambo-api/internal/booking"
	"github.com/gambo-stadium/gambo-api/internal/premium"
	"github.com/gambo-stadium/gambo-api/internal/user"
)

// DashboardStats is the aggregate view the admin dashboard renders.
type DashboardStats struct {
	TotalUsers      int     `json:"totalUsers"`
	ActiveUsers     int     `json:"activeUsers"`
	TotalBookings   int     `json:"totalBookings"`
	PendingBookings int     `json:"pendingBookings"`
	RevenueWeekly   float64 `json:"revenueWeekly"`
	RevenueMonthly  float64 `json:"revenueMonthly"`
	PremiumTeams    int     `json:"premiumTeams"`
	PremiumPlayers  int     `json:"premiumPlayers"`
}

// ComputeStats derives the dashboard aggregates from the full collections.
// Revenue windows are inclusive filters over booking dates: the last 7 and
// 30 days relative to now.
func ComputeStats(users []user.User, bookings []booking.Booking, teams []premium.PremiumTeam, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalUsers:    len(users),
		TotalBookings: len(bookings),
		PremiumTeams:  len(teams),
	}

	for i := range users {
		if users[i].Active {
			stats.ActiveUsers++
		}
	}

	// Booking dates parse to midnight, so the window anchors must too or a
	// booking dated exactly 7 days ago falls out of the inclusive range.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, 0, -30)
	for i := range bookings {
		b := &bookings[i]
		if b.Status == booking.StatusPending {
			stats.PendingBookings++
		}
		day, err := time.ParseInLocation("2006-01-02", b.Date, now.Location())
		if err != nil {
			continue
		}
		if !day.Before(weekAgo) {
			stats.RevenueWeekly += b.Price
		}
		if !day.Before(monthAgo) {
			stats.RevenueMonthly += b.Price
		}
	}

	for i := range teams {
		stats.PremiumPlayers += len(teams[i].Players)
	}

	return stats
}
