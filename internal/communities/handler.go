package communities

import (
	"log"
	"net/http"

	"vkstat_go/internal/httputil"
	"vkstat_go/models"
	"vkstat_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	DB *storage.DB
}

func NewHandler(db *storage.DB) *Handler {
	return &Handler{DB: db}
}

// List возвращает избранные сообщества вместе с пресетами.
func (h *Handler) List(c *gin.Context) {
	communities, err := h.DB.ListCommunities()
	if err != nil {
		log.Printf("[HANDLER ERROR] не удалось прочитать сообщества: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось прочитать список сообществ")
		return
	}
	c.JSON(http.StatusOK, communities)
}

// Save добавляет сообщество в избранное либо обновляет имя существующего.
func (h *Handler) Save(c *gin.Context) {
	var req models.SavedCommunity
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Name == "" {
		req.Name = req.URL
	}
	if err := h.DB.SaveCommunity(req); err != nil {
		log.Printf("[HANDLER ERROR] не удалось сохранить сообщество: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось сохранить сообщество")
		return
	}
	c.JSON(http.StatusOK, req)
}

// Remove удаляет сообщество по url. Пресеты удалить нельзя:
// они не лежат в базе и вернутся при следующем чтении.
func (h *Handler) Remove(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		httputil.RespondError(c, http.StatusBadRequest, "url is required")
		return
	}
	if err := h.DB.DeleteCommunity(url); err != nil {
		log.Printf("[HANDLER ERROR] не удалось удалить сообщество: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось удалить сообщество")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
