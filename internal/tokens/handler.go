package tokens

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

// List возвращает сохранённые ключи вместе с пресетами.
func (h *Handler) List(c *gin.Context) {
	tokens, err := h.DB.ListTokens()
	if err != nil {
		log.Printf("[HANDLER ERROR] не удалось прочитать токены: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось прочитать список ключей")
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Save добавляет ключ либо обновляет имя существующего.
func (h *Handler) Save(c *gin.Context) {
	var req models.SavedToken
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Name == "" {
		req.Name = "My Service Key"
	}
	if err := h.DB.SaveToken(req); err != nil {
		log.Printf("[HANDLER ERROR] не удалось сохранить токен: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось сохранить ключ")
		return
	}
	c.JSON(http.StatusOK, req)
}

// Remove удаляет ключ по его значению.
func (h *Handler) Remove(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		httputil.RespondError(c, http.StatusBadRequest, "token is required")
		return
	}
	if err := h.DB.DeleteToken(token); err != nil {
		log.Printf("[HANDLER ERROR] не удалось удалить токен: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось удалить ключ")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
