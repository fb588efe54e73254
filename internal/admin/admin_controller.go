package admin

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gambo-stadium/gambo-api/config"
	"github.com/gambo-stadium/gambo-api/internal/booking"
	"github.com/gambo-stadium/gambo-api/internal/premium"
	"github.com/gambo-stadium/gambo-api/internal/user"
	"github.com/gambo-stadium/gambo-api/pkg/metrics"
	"github.com/gambo-stadium/gambo-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AdminController derives dashboards and reports by scanning the ledgers.
type AdminController struct {
	userRepo    user.UserRepository
	bookingRepo booking.BookingRepository
	premiumRepo premium.PremiumRepository
	config      *config.Config
}

// NewAdminController creates a new AdminController.
func NewAdminController(userRepo user.UserRepository, bookingRepo booking.BookingRepository, premiumRepo premium.PremiumRepository, cfg *config.Config) *AdminController {
	return &AdminController{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		premiumRepo: premiumRepo,
		config:      cfg,
	}
}

// GetStats godoc
// @Summary      Dashboard aggregates
// @Description  User, booking and premium counts plus weekly and monthly
// @Description  revenue sums.
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} DashboardStats
// @Router       /admin/stats [get]
func (ac *AdminController) GetStats(c *gin.Context) {
	users, err := ac.userRepo.GetAllUsers()
	if err != nil {
		log.Printf("stats: listing users failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	bookings, err := ac.bookingRepo.GetAllBookings()
	if err != nil {
		log.Printf("stats: listing bookings failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	teams, err := ac.premiumRepo.GetAllTeams()
	if err != nil {
		log.Printf("stats: listing premium teams failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, ComputeStats(users, bookings, teams, time.Now()))
}

// GetUsers godoc
// @Summary      Filterable, sortable user table
// @Description  Users with their derived booking counts. search matches
// @Description  name or email; sort is one of name, email, bookings.
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Param        search query string false "Substring over name and email"
// @Param        sort query string false "name | email | bookings" default(name)
// @Param        direction query string false "asc | desc" default(asc)
// @Success      200 {array} UserRow
// @Router       /admin/users [get]
func (ac *AdminController) GetUsers(c *gin.Context) {
	users, err := ac.userRepo.GetAllUsers()
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	bookings, err := ac.bookingRepo.GetAllBookings()
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}

	counts := make(map[uint]int, len(users))
	for i := range bookings {
		counts[bookings[i].UserID]++
	}

	rows := make([]UserRow, 0, len(users))
	for i := range users {
		rows = append(rows, UserRow{
			UserResponse: user.FilterUserRecord(&users[i]),
			Bookings:     counts[users[i].ID],
		})
	}

	rows = SearchUsers(rows, c.Query("search"))
	SortUsers(rows, c.DefaultQuery("sort", "name"), c.DefaultQuery("direction", "asc"))
	c.JSON(http.StatusOK, rows)
}

// GetBookings godoc
// @Summary      Filtered booking table
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Param        filter query string false "today | thisWeek | pending | confirmed | all" default(all)
// @Success      200 {array} booking.Booking
// @Router       /admin/bookings [get]
func (ac *AdminController) GetBookings(c *gin.Context) {
	bookings, err := ac.bookingRepo.GetAllBookings()
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, FilterBookings(bookings, c.DefaultQuery("filter", "all"), time.Now()))
}

// ExportBookings godoc
// @Summary      CSV export of all bookings
// @Description  Header row plus one row per booking, served as a file
// @Description  attachment.
// @Tags         Admin
// @Security     BearerAuth
// @Produce      text/csv
// @Success      200 {string} string
// @Router       /admin/bookings/export [get]
func (ac *AdminController) ExportBookings(c *gin.Context) {
	bookings, err := ac.bookingRepo.GetAllBookings()
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}

	filename := fmt.Sprintf("bookings-export-%s.csv", time.Now().Format("2006-01-02"))
	metrics.ExportsTotal.Inc()

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(BookingsToCSV(bookings)))
}
