package export

import (
	"net/http"
	"strings"
	"time"

	"vkstat_go/internal/httputil"
	"vkstat_go/models"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Links отдаёт список постов текстовым файлом: по одной ссылке на строку,
// без заголовка и метаданных. Формат завязан на внешние инструменты, не менять.
func (h *Handler) Links(c *gin.Context) {
	var req struct {
		Posts []models.Post `json:"posts" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	urls := make([]string, len(req.Posts))
	for i, p := range req.Posts {
		urls[i] = p.URL
	}

	filename := "vk-posts-" + time.Now().UTC().Format("2006-01-02") + ".txt"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(strings.Join(urls, "\n")))
}
