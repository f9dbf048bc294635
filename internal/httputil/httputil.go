package httputil

import "github.com/gin-gonic/gin"

// RespondError отдаёт ошибку в едином формате {"error": msg} и обрывает цепочку обработчиков.
// Текст сообщения показывается пользователю как есть.
func RespondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
