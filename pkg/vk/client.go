package vk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.vk.com/method"

// apiVersion фиксируем: поведение методов меняется между версиями VK API.
const apiVersion = "5.131"

// pageDelay — пауза между постраничными запросами, чтобы не упираться в лимиты VK.
const pageDelay = 200 * time.Millisecond

// Client — клиент VK API. Авторизация через сервисный токен в query-параметрах,
// ответы приходят в конверте {"response": ...} либо {"error": {"error_msg": ...}}.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Every(pageDelay), 1),
	}
}

// call выполняет метод VK API и возвращает содержимое поля response.
// Ошибку из конверта возвращаем как *APIError, чтобы показать её текст пользователю как есть.
func (c *Client) call(ctx context.Context, method string, params url.Values, token string) (json.RawMessage, error) {
	params.Set("access_token", token)
	params.Set("v", apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/"+method+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("запрос %s: %w", method, err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Response json.RawMessage `json:"response"`
		Error    *struct {
			Message string `json:"error_msg"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("ответ %s: %w", method, err)
	}
	if envelope.Error != nil {
		return nil, &APIError{Method: method, Message: envelope.Error.Message}
	}
	return envelope.Response, nil
}

// emptyResponse распознаёт пустой ответ VK: отсутствие поля, null или пустой массив.
func emptyResponse(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", "[]", "false":
		return true
	}
	return false
}
