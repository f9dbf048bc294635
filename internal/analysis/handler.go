package analysis

import (
	"errors"
	"log"
	"net/http"

	"vkstat_go/internal/httputil"
	"vkstat_go/models"
	"vkstat_go/pkg/gemini"
	"vkstat_go/pkg/vk"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	VK *vk.Client
	// Summarizer может быть nil: без ключа Gemini анализ работает, сводка — нет
	Summarizer *gemini.Client
}

func NewHandler(client *vk.Client, summarizer *gemini.Client) *Handler {
	return &Handler{VK: client, Summarizer: summarizer}
}

// Run выполняет весь конвейер анализа: разрешение сообщества, сбор стены,
// фильтрация рекламы, нормализация и сортировка по лайкам.
// Любая ошибка до конца конвейера отменяет запрос целиком, частичных результатов нет.
func (h *Handler) Run(c *gin.Context) {
	var req struct {
		models.SearchParams
		WithSummary bool `json:"with_summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ctx := c.Request.Context()

	community, err := h.VK.Resolve(ctx, req.CommunityURL, req.AccessToken)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	items, err := h.VK.FetchAll(ctx, community.ID, req.StartDate, req.EndDate, req.AccessToken)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	// Пустой список — валидный успех: в периоде просто не было органических постов
	posts := make([]models.Post, 0, len(items))
	for _, it := range items {
		if vk.IsPromotional(it) {
			continue
		}
		posts = append(posts, vk.Normalize(it))
	}
	vk.Rank(posts)

	result := models.AnalysisResult{
		CommunityName:  community.Name,
		CommunityPhoto: community.Photo,
		Posts:          posts,
	}
	if req.WithSummary && h.Summarizer != nil {
		result.Summary = h.Summarizer.Summarize(ctx, community.Name, posts)
	}

	c.JSON(http.StatusOK, result)
}

// respondPipelineError переводит ошибки конвейера в HTTP-статусы.
// Текст ошибки уходит пользователю без изменений, он и есть сообщение для показа.
func respondPipelineError(c *gin.Context, err error) {
	log.Printf("[HANDLER ERROR] анализ прерван: %v", err)

	// Ошибки VK и транспорта — шлюзовые, остальное разбираем по таксономии
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, vk.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, vk.ErrNotFound), errors.Is(err, vk.ErrDetailsUnavailable):
		status = http.StatusNotFound
	}

	httputil.RespondError(c, status, err.Error())
}
