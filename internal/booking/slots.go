package booking

import (
	"fmt"
	"time"
)

// TimeSlot is a derived, never persisted bookable interval within a day.
type TimeSlot struct {
	ID        string  `json:"id"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
}

// BookingDay groups the slots of one calendar day.
type BookingDay struct {
	Date    string     `json:"date"`
	DayName string     `json:"dayName"`
	Slots   []TimeSlot `json:"slots"`
}

// GenerateTimeSlots produces contiguous non-overlapping slots of interval
// hours inside [openHour, closeHour). A final slot that would cross
// closeHour is dropped, not truncated.
func GenerateTimeSlots(openHour, closeHour, interval int, price float64) []TimeSlot {
	slots := []TimeSlot{}
	if interval <= 0 {
		return slots
	}
	for current := openHour; current+interval <= closeHour; current += interval {
		end := current + interval
		slots = append(slots, TimeSlot{
			ID:        fmt.Sprintf("slot-%d-%d", current, end),
			StartTime: fmt.Sprintf("%02d:00", current),
			EndTime:   fmt.Sprintf("%02d:00", end),
			Price:     price,
		})
	}
	return slots
}

// GenerateBookingDays produces the rolling booking window: one BookingDay
// per calendar day for the next `days` days, starting today. The grid is
// recomputed per request and does not consult existing bookings.
func GenerateBookingDays(days, openHour, closeHour, interval int, price float64) []BookingDay {
	return GenerateBookingDaysFrom(time.Now(), days, openHour, closeHour, interval, price)
}

// GenerateBookingDaysFrom is GenerateBookingDays anchored at an explicit
// start instant.
func GenerateBookingDaysFrom(start time.Time, days, openHour, closeHour, interval int, price float64) []BookingDay {
	bookingDays := make([]BookingDay, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		bookingDays = append(bookingDays, BookingDay{
			Date:    date.Format("2006-01-02"),
			DayName: date.Weekday().String(),
			Slots:   GenerateTimeSlots(openHour, closeHour, interval, price),
		})
	}
	return bookingDays
}
