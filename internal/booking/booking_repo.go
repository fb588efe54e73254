package booking

import (
	"errors"

	"gorm.io/gorm"
)

// ErrSlotTaken is returned when a non-cancelled booking already holds the
// same ground, date and start time.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository defines the database operations over the booking ledger.
type BookingRepository interface {
	CreateBooking(b *Booking) error
	GetBookingByID(id uint) (*Booking, error)
	GetAllBookings() ([]Booking, error)
	GetBookingsByUserID(userID uint) ([]Booking, error)
	UpdateBooking(b *Booking) error
	CountBookings() (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// CreateBooking persists a booking unless an overlapping non-cancelled
// booking already holds the slot. The check and the insert share one
// transaction so two racing requests cannot both pass the check.
func (r *bookingRepository) CreateBooking(b *Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&Booking{}).
			Where("ground_id = ? AND date = ? AND start_time = ? AND status <> ?",
				b.GroundID, b.Date, b.StartTime, StatusCancelled).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotTaken
		}
		return tx.Create(b).Error
	})
}

func (r *bookingRepository) GetBookingByID(id uint) (*Booking, error) {
	var b Booking
	if err := r.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) GetAllBookings() ([]Booking, error) {
	var bookings []Booking
	if err := r.db.Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) GetBookingsByUserID(userID uint) ([]Booking, error) {
	var bookings []Booking
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateBooking(b *Booking) error {
	return r.db.Save(b).Error
}

func (r *bookingRepository) CountBookings() (int64, error) {
	var count int64
	err := r.db.Model(&Booking{}).Count(&count).Error
	return count, err
}
