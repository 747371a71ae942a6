package uploads

import "github.com/gin-gonic/gin"

func RegisterUploadsRoutes(protected *gin.RouterGroup) {
	protected.POST("/uploads", UploadFile)
}
