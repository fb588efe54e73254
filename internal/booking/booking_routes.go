package booking

import (
	"github.com/gambo-stadium/gambo-api/config"
	mw "github.com/gambo-stadium/gambo-api/internal/middleware"
	"github.com/gambo-stadium/gambo-api/internal/user"
	"github.com/gambo-stadium/gambo-api/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterBookingRoutes wires the booking ledger onto the /bookings group.
func RegisterBookingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewBookingRepository(db)
	userRepo := user.NewUserRepository(db)
	controller := NewBookingController(repo, userRepo, appConfig)

	// The slot grid is browsable without an account.
	router.GET("/slots", controller.GetSlots)

	authed := router.Group("")
	authed.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authed.POST("", controller.CreateBooking)
		authed.GET("/user/:userId", controller.GetBookingsByUser)
		authed.PATCH("/:id", controller.UpdateBooking)

		adminOnly := authed.Group("")
		adminOnly.Use(rmiddleware.AdminMiddleware())
		{
			adminOnly.GET("", controller.GetBookings)
		}
	}
}
