package admin

import (
	"github.com/gambo-stadium/gambo-api/config"
	"github.com/gambo-stadium/gambo-api/internal/booking"
	mw "github.com/gambo-stadium/gambo-api/internal/middleware"
	"github.com/gambo-stadium/gambo-api/internal/premium"
	"github.com/gambo-stadium/gambo-api/internal/user"
	"github.com/gambo-stadium/gambo-api/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAdminRoutes wires the reporting endpoints onto the /admin group.
func RegisterAdminRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	controller := NewAdminController(
		user.NewUserRepository(db),
		booking.NewBookingRepository(db),
		premium.NewPremiumRepository(db),
		appConfig,
	)

	router.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	router.Use(rmiddleware.AdminMiddleware())
	{
		router.GET("/stats", controller.GetStats)
		router.GET("/users", controller.GetUsers)
		router.GET("/bookings", controller.GetBookings)
		router.GET("/bookings/export", controller.ExportBookings)
	}
}
