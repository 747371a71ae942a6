package competitions

import (
	"github.com/gin-gonic/gin"

	"competition-portal-server/handlers/auth"
)

func RegisterCompetitionsRoutes(public, protected *gin.RouterGroup) {
	public.GET("/competitions", GetCompetitions)
	// Optional auth so admins can open hidden competitions
	public.GET("/competitions/:id", auth.OptionalAuth(), GetCompetition)

	admin := protected.Group("/")
	admin.Use(auth.AdminRequired())
	{
		admin.POST("/competitions", CreateCompetition)
		admin.PUT("/competitions/:id", UpdateCompetition)
		admin.DELETE("/competitions/:id", DeleteCompetition)
	}
}
