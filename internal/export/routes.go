package export

import (
	"log"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup) {
	handler := NewHandler()
	r.POST("/links", handler.Links)
	log.Printf("[ROUTER] Export routes registered")
}
