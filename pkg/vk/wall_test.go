package vk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"golang.org/x/time/rate"
)

// Unix-метки границ диапазона 2024-01-10 .. 2024-01-12 (UTC).
const (
	ts0109 = 1704758400 // 09.01.2024 00:00
	ts0110 = 1704844800 // 10.01.2024 00:00
	ts0112 = 1705103940 // 12.01.2024 23:59
	ts0113 = 1705104001 // 13.01.2024 00:00:01
)

// newWallServer поднимает сервер, отдающий страницы wall.get по смещению.
// Смещения за пределами pages получают пустую страницу.
func newWallServer(t *testing.T, pages [][]RawWallItem, requests *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wall.get" {
			t.Errorf("неожиданный метод API: %s", r.URL.Path)
		}
		*requests++

		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		page := offset / pageSize
		items := []RawWallItem{}
		if page < len(pages) {
			items = pages[page]
		}
		json.NewEncoder(w).Encode(map[string]any{
			"response": map[string]any{"items": items},
		})
	}))
}

// testClient направляет клиента на тестовый сервер и отключает паузы между страницами.
func testClient(ts *httptest.Server) *Client {
	c := NewClient()
	c.BaseURL = ts.URL
	c.HTTPClient = ts.Client()
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

// TestFetchAllDateBounds проверяет включительность границ диапазона:
// конец последнего дня входит, первая секунда следующего — уже нет.
func TestFetchAllDateBounds(t *testing.T) {
	var requests int
	ts := newWallServer(t, [][]RawWallItem{{
		{ID: 1, Date: ts0113},
		{ID: 2, Date: ts0112},
		{ID: 3, Date: ts0110},
		{ID: 4, Date: ts0109},
	}}, &requests)
	defer ts.Close()

	got, err := testClient(ts).FetchAll(context.Background(), -1, "2024-01-10", "2024-01-12", "token")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("ожидалось 2 поста, получено %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("ожидались посты 2 и 3, получены %d и %d", got[0].ID, got[1].ID)
	}
	// Пост старше начала диапазона обрывает обход на первой же странице
	if requests != 1 {
		t.Errorf("ожидался 1 запрос, выполнено %d", requests)
	}
}

// TestFetchAllPinnedDoesNotStop проверяет, что закреплённый пост со старой датой
// не обрывает обход, но и в выдачу не попадает.
func TestFetchAllPinnedDoesNotStop(t *testing.T) {
	var requests int
	ts := newWallServer(t, [][]RawWallItem{
		{
			{ID: 1, Date: ts0109, IsPinned: 1}, // закреп старше диапазона
			{ID: 2, Date: ts0112},
		},
		{
			{ID: 3, Date: ts0110},
			{ID: 4, Date: ts0109}, // обычный старый пост — стоп
		},
	}, &requests)
	defer ts.Close()

	got, err := testClient(ts).FetchAll(context.Background(), -1, "2024-01-10", "2024-01-12", "token")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("ожидалось 2 поста, получено %d", len(got))
	}
	for _, it := range got {
		if it.ID == 1 {
			t.Errorf("закреп вне диапазона не должен попадать в выдачу")
		}
	}
	if requests != 2 {
		t.Errorf("ожидалось 2 запроса, выполнено %d", requests)
	}
}

// TestFetchAllPageCap проверяет жёсткий потолок в 20 страниц.
func TestFetchAllPageCap(t *testing.T) {
	var requests int
	// Сервер бесконечно отдаёт полные страницы внутри диапазона
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		items := make([]RawWallItem, pageSize)
		for i := range items {
			items[i] = RawWallItem{ID: int64(i), Date: ts0110}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"response": map[string]any{"items": items},
		})
	}))
	defer ts.Close()

	got, err := testClient(ts).FetchAll(context.Background(), -1, "2024-01-10", "2024-01-12", "token")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if requests != maxPages {
		t.Errorf("ожидалось %d запросов, выполнено %d", maxPages, requests)
	}
	if len(got) != maxPages*pageSize {
		t.Errorf("ожидалось %d постов, получено %d", maxPages*pageSize, len(got))
	}
}

// TestFetchAllEmptyPage проверяет остановку на пустой странице.
func TestFetchAllEmptyPage(t *testing.T) {
	var requests int
	ts := newWallServer(t, nil, &requests)
	defer ts.Close()

	got, err := testClient(ts).FetchAll(context.Background(), -1, "2024-01-10", "2024-01-12", "token")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ожидался пустой результат, получено %d постов", len(got))
	}
	if requests != 1 {
		t.Errorf("ожидался 1 запрос, выполнено %d", requests)
	}
}

// TestFetchAllAPIError проверяет, что ошибка VK обрывает обход без частичного результата.
func TestFetchAllAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"error_msg": "User authorization failed"},
		})
	}))
	defer ts.Close()

	got, err := testClient(ts).FetchAll(context.Background(), -1, "2024-01-10", "2024-01-12", "token")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("ожидалась ошибка APIError, получено %v", err)
	}
	if apiErr.Message != "User authorization failed" {
		t.Errorf("текст ошибки должен передаваться как есть, получено %q", apiErr.Message)
	}
	if got != nil {
		t.Errorf("при ошибке частичный результат не возвращается")
	}
}

// TestFetchAllBadDate проверяет отказ на непарсящихся датах.
func TestFetchAllBadDate(t *testing.T) {
	_, err := NewClient().FetchAll(context.Background(), -1, "10.01.2024", "2024-01-12", "token")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ожидалась ErrInvalidInput, получено %v", err)
	}
}
