package submissions

import (
	"github.com/gin-gonic/gin"

	"competition-portal-server/handlers/auth"
)

func RegisterSubmissionsRoutes(protected *gin.RouterGroup) {
	protected.POST("/submissions", SubmitEntry)
	protected.GET("/submissions", GetUserSubmissions)

	admin := protected.Group("/")
	admin.Use(auth.AdminRequired())
	{
		admin.GET("/competitions/:id/submissions", GetCompetitionSubmissions)
	}
}
