package auth

import (
	"github.com/gambo-stadium/gambo-api/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAuthRoutes wires signup and login onto the /users group.
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, appConfig)

	router.POST("/signup", controller.Signup)
	router.POST("/login", controller.Login)
}
