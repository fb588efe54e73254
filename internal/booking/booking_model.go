package booking

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is the durable record of a reserved slot. Dates and times are kept
// in the wire formats the clients submit: "2006-01-02" and "15:04".
type Booking struct {
	gorm.Model
	UserID     uint    `gorm:"index;not null" json:"userId"`
	UserName   string  `json:"userName"`
	GroundID   string  `gorm:"not null;index:idx_slot" json:"groundId"`
	GroundName string  `gorm:"not null" json:"groundName"`
	Date       string  `gorm:"not null;index:idx_slot" json:"date"`
	StartTime  string  `gorm:"not null;index:idx_slot" json:"startTime"`
	EndTime    string  `gorm:"not null" json:"endTime"`
	Price      float64 `gorm:"not null" json:"price"`
	Status     string  `gorm:"type:VARCHAR(20);check:status IN ('confirmed','cancelled','pending');default:'confirmed'" json:"status"`
	PaymentID  string  `json:"paymentId,omitempty"`
}

// CanCancel reports whether a booking owner may still cancel: only bookings
// whose calendar day lies in the future. Admins are not bound by this.
func (b *Booking) CanCancel(now time.Time) bool {
	day, err := time.ParseInLocation("2006-01-02", b.Date, now.Location())
	if err != nil {
		return false
	}
	return day.After(now)
}
