package premium

import (
	"github.com/gambo-stadium/gambo-api/config"
	mw "github.com/gambo-stadium/gambo-api/internal/middleware"
	"github.com/gambo-stadium/gambo-api/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPremiumRoutes wires the enrollment ledger plus the coach and
// program reference collections onto the API group.
func RegisterPremiumRoutes(api *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewPremiumRepository(db)
	controller := NewPremiumController(repo, appConfig)

	teams := api.Group("/premiumTeams")
	teams.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		teams.POST("", controller.CreateEnrollment)
		teams.GET("/user/:userId", controller.GetEnrollmentsByUser)
		teams.PATCH("/:id", controller.UpdateEnrollment)

		adminOnly := teams.Group("")
		adminOnly.Use(rmiddleware.AdminMiddleware())
		{
			adminOnly.GET("", controller.GetEnrollments)
		}
	}

	reference := api.Group("")
	reference.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		reference.GET("/coaches", controller.GetCoaches)
		reference.GET("/programs", controller.GetPrograms)
	}

	admin := api.Group("/admin")
	admin.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	admin.Use(rmiddleware.AdminMiddleware())
	{
		admin.POST("/coaches", controller.CreateCoach)
		admin.POST("/programs", controller.CreateProgram)
	}
}
