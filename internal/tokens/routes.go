package tokens

import (
	"log"

	"vkstat_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup, db *storage.DB) {
	handler := NewHandler(db)
	r.GET("", handler.List)
	r.POST("", handler.Save)
	r.DELETE("", handler.Remove)
	log.Printf("[ROUTER] Token routes registered")
}
