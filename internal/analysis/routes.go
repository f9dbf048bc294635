package analysis

import (
	"log"

	"vkstat_go/pkg/gemini"
	"vkstat_go/pkg/vk"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup, client *vk.Client, summarizer *gemini.Client) {
	handler := NewHandler(client, summarizer)
	r.POST("/run", handler.Run)
	log.Printf("[ROUTER] Analysis routes registered")
}
