package booking

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gambo-stadium/gambo-api/config"
	"github.com/gambo-stadium/gambo-api/internal/middleware"
	"github.com/gambo-stadium/gambo-api/internal/user"
	"github.com/gambo-stadium/gambo-api/pkg/metrics"
	"github.com/gambo-stadium/gambo-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BookingController handles API requests over the booking ledger.
type BookingController struct {
	repo     BookingRepository
	userRepo user.UserRepository
	config   *config.Config
}

// NewBookingController creates a new BookingController.
func NewBookingController(repo BookingRepository, userRepo user.UserRepository, cfg *config.Config) *BookingController {
	return &BookingController{repo: repo, userRepo: userRepo, config: cfg}
}

// CreateBookingRequest carries the slot selection. The owning user always
// comes from the bearer token, never from the body.
type CreateBookingRequest struct {
	GroundID   string  `json:"groundId" binding:"required" example:"ground1"`
	GroundName string  `json:"groundName" binding:"required" example:"Premium Stadium"`
	Date       string  `json:"date" binding:"required" example:"2025-05-01"`
	StartTime  string  `json:"startTime" binding:"required" example:"08:00"`
	EndTime    string  `json:"endTime" binding:"required" example:"10:00"`
	Price      float64 `json:"price" binding:"required,gt=0" example:"50"`
	Status     string  `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	PaymentID  string  `json:"paymentId" binding:"omitempty"`
}

// UpdateBookingRequest is a partial booking patch.
type UpdateBookingRequest struct {
	UserID     *uint    `json:"userId,omitempty"`
	GroundID   *string  `json:"groundId,omitempty"`
	GroundName *string  `json:"groundName,omitempty"`
	Date       *string  `json:"date,omitempty"`
	StartTime  *string  `json:"startTime,omitempty"`
	EndTime    *string  `json:"endTime,omitempty"`
	Price      *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	Status     *string  `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed cancelled"`
	PaymentID  *string  `json:"paymentId,omitempty"`
}

// GetSlots godoc
// @Summary      Bookable slot grid
// @Description  The rolling 7-day window of derived time slots. Recomputed
// @Description  per request; existing bookings are not subtracted.
// @Tags         Bookings
// @Produce      json
// @Success      200 {array} BookingDay
// @Router       /bookings/slots [get]
func (bc *BookingController) GetSlots(c *gin.Context) {
	cfg := bc.config.Booking
	days := GenerateBookingDays(cfg.WindowDays, cfg.OpenHour, cfg.CloseHour, cfg.SlotHours, cfg.SlotPrice)
	c.JSON(http.StatusOK, days)
}

// CreateBooking godoc
// @Summary      Create a booking
// @Description  Persists a booking for the authenticated user. Status
// @Description  defaults to confirmed. The same ground/date/startTime can
// @Description  hold only one non-cancelled booking.
// @Tags         Bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        booking body CreateBookingRequest true "Slot selection"
// @Success      201 {object} Booking
// @Failure      400 {object} map[string]string "Missing required fields"
// @Failure      404 {object} map[string]string "User not found"
// @Failure      409 {object} map[string]string "Slot already booked"
// @Router       /bookings [post]
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Missing required fields: "+err.Error())
		return
	}
	if req.StartTime >= req.EndTime {
		utils.BadRequestJSON(c, "startTime must be before endTime")
		return
	}

	owner, err := bc.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "User")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}

	status := req.Status
	if status == "" {
		status = StatusConfirmed
	}

	b := &Booking{
		UserID:     owner.ID,
		UserName:   owner.Name,
		GroundID:   req.GroundID,
		GroundName: req.GroundName,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Price:      req.Price,
		Status:     status,
		PaymentID:  req.PaymentID,
	}

	if err := bc.repo.CreateBooking(b); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			utils.ConflictJSON(c, "This slot is already booked")
			return
		}
		log.Printf("creating booking failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	metrics.BookingsCreated.Inc()
	c.JSON(http.StatusCreated, b)
}

// GetBookings godoc
// @Summary      List all bookings
// @Description  Every booking in the ledger, each carrying the owner's
// @Description  display name. Admin only.
// @Tags         Bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} Booking
// @Router       /bookings [get]
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.repo.GetAllBookings()
	if err != nil {
		log.Printf("listing bookings failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingsByUser godoc
// @Summary      List a user's bookings
// @Description  Owners see their own records; admins may read anyone's.
// @Tags         Bookings
// @Security     BearerAuth
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200 {array} Booking
// @Failure      403 {object} map[string]string
// @Router       /bookings/user/{userId} [get]
func (bc *BookingController) GetBookingsByUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid user id")
		return
	}

	callerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}
	if callerID != uint(targetID) && !middleware.IsAdmin(c) {
		utils.ForbiddenJSON(c)
		return
	}

	bookings, err := bc.repo.GetBookingsByUserID(uint(targetID))
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBooking godoc
// @Summary      Patch a booking
// @Description  Owners may only cancel, and only bookings whose date is in
// @Description  the future. Admins may patch any field; a userId change
// @Description  re-resolves the stored display name.
// @Tags         Bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Booking ID"
// @Param        patch body UpdateBookingRequest true "Partial booking patch"
// @Success      200 {object} Booking
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /bookings/{id} [patch]
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid booking id")
		return
	}

	callerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		return
	}
	isAdmin := middleware.IsAdmin(c)

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	b, err := bc.repo.GetBookingByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Booking")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}

	if !isAdmin {
		if b.UserID != callerID {
			utils.ForbiddenJSON(c)
			return
		}
		// Owners get exactly one move: cancelling a future booking.
		onlyCancel := req.Status != nil && *req.Status == StatusCancelled &&
			req.UserID == nil && req.GroundID == nil && req.GroundName == nil &&
			req.Date == nil && req.StartTime == nil && req.EndTime == nil &&
			req.Price == nil && req.PaymentID == nil
		if !onlyCancel {
			utils.ForbiddenJSON(c)
			return
		}
		if b.Status != StatusCancelled && !b.CanCancel(time.Now()) {
			utils.BadRequestJSON(c, "Past bookings cannot be cancelled")
			return
		}
	}

	if req.UserID != nil {
		owner, findErr := bc.userRepo.GetUserByID(*req.UserID)
		if findErr != nil {
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				utils.NotFoundJSON(c, "User")
				return
			}
			utils.InternalErrorJSON(c, findErr)
			return
		}
		b.UserID = owner.ID
		b.UserName = owner.Name
	}
	if req.GroundID != nil {
		b.GroundID = *req.GroundID
	}
	if req.GroundName != nil {
		b.GroundName = *req.GroundName
	}
	if req.Date != nil {
		b.Date = *req.Date
	}
	if req.StartTime != nil {
		b.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		b.EndTime = *req.EndTime
	}
	if req.Price != nil {
		b.Price = *req.Price
	}
	if req.Status != nil {
		if *req.Status == StatusCancelled && b.Status != StatusCancelled {
			metrics.BookingsCancelled.Inc()
		}
		b.Status = *req.Status
	}
	if req.PaymentID != nil {
		b.PaymentID = *req.PaymentID
	}

	if err := bc.repo.UpdateBooking(b); err != nil {
		log.Printf("updating booking %d failed: %v", b.ID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
