package booking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(&Booking{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func TestCreateBookingRejectsTakenSlot(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))

	first := &Booking{
		UserID: 1, UserName: "Jo",
		GroundID: "ground1", GroundName: "Premium Stadium",
		Date: "2025-05-01", StartTime: "08:00", EndTime: "10:00",
		Price: 50, Status: StatusConfirmed,
	}
	if err := repo.CreateBooking(first); err != nil {
		t.Fatalf("first booking should succeed: %v", err)
	}

	second := &Booking{
		UserID: 2, UserName: "Sam",
		GroundID: "ground1", GroundName: "Premium Stadium",
		Date: "2025-05-01", StartTime: "08:00", EndTime: "10:00",
		Price: 50, Status: StatusConfirmed,
	}
	if err := repo.CreateBooking(second); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	count, err := repo.CountBookings()
	if err != nil {
		t.Fatalf("counting bookings: %v", err)
	}
	if count != 1 {
		t.Errorf("conflicting booking must not be persisted, ledger holds %d", count)
	}
}

func TestCreateBookingAllowsCancelledSlotReuse(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))

	cancelled := &Booking{
		UserID: 1, UserName: "Jo",
		GroundID: "ground1", GroundName: "Premium Stadium",
		Date: "2025-05-01", StartTime: "08:00", EndTime: "10:00",
		Price: 50, Status: StatusCancelled,
	}
	if err := repo.CreateBooking(cancelled); err != nil {
		t.Fatalf("seeding cancelled booking: %v", err)
	}

	fresh := &Booking{
		UserID: 2, UserName: "Sam",
		GroundID: "ground1", GroundName: "Premium Stadium",
		Date: "2025-05-01", StartTime: "08:00", EndTime: "10:00",
		Price: 50, Status: StatusConfirmed,
	}
	if err := repo.CreateBooking(fresh); err != nil {
		t.Fatalf("a cancelled booking must not block the slot: %v", err)
	}
}

func TestCreateBookingDifferentSlotsCoexist(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))

	slots := []Booking{
		{UserID: 1, GroundID: "ground1", GroundName: "A", Date: "2025-05-01", StartTime: "08:00", EndTime: "10:00", Price: 50, Status: StatusConfirmed},
		{UserID: 1, GroundID: "ground1", GroundName: "A", Date: "2025-05-01", StartTime: "10:00", EndTime: "12:00", Price: 50, Status: StatusConfirmed},
		{UserID: 1, GroundID: "ground2", GroundName: "B", Date: "2025-05-01", StartTime: "08:00", EndTime: "10:00", Price: 50, Status: StatusConfirmed},
		{UserID: 1, GroundID: "ground1", GroundName: "A", Date: "2025-05-02", StartTime: "08:00", EndTime: "10:00", Price: 50, Status: StatusConfirmed},
	}
	for i := range slots {
		if err := repo.CreateBooking(&slots[i]); err != nil {
			t.Fatalf("booking %d should not conflict: %v", i, err)
		}
	}
}
