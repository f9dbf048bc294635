package export

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestLinks проверяет формат выгрузки: по одной ссылке на строку,
// без заголовка и хвостовых данных.
func TestLinks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r.Group("/export"))

	body := `{"posts": [
		{"id": "-1_1", "url": "https://vk.com/wall-1_1"},
		{"id": "-1_2", "url": "https://vk.com/wall-1_2"}
	]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/export/links", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}
	want := "https://vk.com/wall-1_1\nhttps://vk.com/wall-1_2"
	if w.Body.String() != want {
		t.Errorf("ожидалось тело %q, получено %q", want, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("ожидался text/plain, получен %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "vk-posts-") {
		t.Errorf("ожидалось имя файла vk-posts-*.txt, получено %s", cd)
	}
}
