package user

import (
	"github.com/gambo-stadium/gambo-api/config"
	mw "github.com/gambo-stadium/gambo-api/internal/middleware"
	"github.com/gambo-stadium/gambo-api/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterUserRoutes wires the user collection routes onto the /users group.
// Signup and login live in the auth package.
func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewUserRepository(db)
	controller := NewUserController(repo, appConfig)

	authed := router.Group("")
	authed.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authed.PATCH("/:id", controller.UpdateUser)

		adminOnly := authed.Group("")
		adminOnly.Use(rmiddleware.AdminMiddleware())
		{
			adminOnly.GET("", controller.GetUsers)
			adminOnly.GET("/email/:email", controller.GetUserByEmail)
		}
	}
}
