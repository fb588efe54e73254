package payment

import (
	"github.com/gambo-stadium/gambo-api/config"
	mw "github.com/gambo-stadium/gambo-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPaymentRoutes wires the checkout stub onto the /payments group.
func RegisterPaymentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	controller := NewPaymentController(appConfig)

	router.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		router.POST("/session", controller.CreateSession)
		router.POST("/subscription", controller.CreateSubscription)
		router.GET("/verify/:sessionId", controller.VerifySession)
	}
}
