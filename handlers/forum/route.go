package forum

import (
	"github.com/gin-gonic/gin"

	"competition-portal-server/handlers/auth"
	"competition-portal-server/notify"
)

func RegisterForumRoutes(public, protected *gin.RouterGroup, svc *notify.Service) {
	h := &Handler{Notify: svc}

	public.GET("/forum/posts", h.GetPosts)
	public.GET("/forum/posts/:id", h.GetPost)
	public.GET("/forum/posts/:id/reactions", h.GetReactionCounts)

	protected.POST("/forum/posts", h.CreatePost)
	protected.POST("/forum/posts/:id/comments", h.CreateComment)
	protected.POST("/forum/posts/:id/reactions", h.ReactToPost)

	admin := protected.Group("/")
	admin.Use(auth.AdminRequired())
	{
		admin.GET("/banned-words", h.GetBannedWords)
		admin.POST("/banned-words", h.AddBannedWord)
	}
}
