package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gambo-stadium/gambo-api/config"
	"github.com/gambo-stadium/gambo-api/internal/admin"
	"github.com/gambo-stadium/gambo-api/internal/auth"
	"github.com/gambo-stadium/gambo-api/internal/booking"
	"github.com/gambo-stadium/gambo-api/internal/payment"
	"github.com/gambo-stadium/gambo-api/internal/premium"
	"github.com/gambo-stadium/gambo-api/internal/user"
)

// SetupRoutes builds the gin engine and registers every route group.
func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Gambo Stadium API is running")
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	usersGroup := api.Group("/users")
	auth.RegisterAuthRoutes(usersGroup, db, appConfig)
	user.RegisterUserRoutes(usersGroup, db, appConfig)

	booking.RegisterBookingRoutes(api.Group("/bookings"), db, appConfig)
	premium.RegisterPremiumRoutes(api, db, appConfig)
	admin.RegisterAdminRoutes(api.Group("/admin"), db, appConfig)
	payment.RegisterPaymentRoutes(api.Group("/payments"), db, appConfig)

	return r
}
