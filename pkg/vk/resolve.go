package vk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"vkstat_go/models"
)

// screenName извлекает короткое имя из произвольного ввода:
// полной ссылки, домена с путём или уже готового имени.
func screenName(locator string) string {
	s := strings.TrimSpace(locator)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	// Всё до первого слэша считаем хостом и отбрасываем
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.Trim(s, "/")
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	return s
}

// Resolve превращает ссылку или короткое имя в знаковый ID сообщества с названием и аватаром.
// Два последовательных запроса к VK, без повторов при сбое.
func (c *Client) Resolve(ctx context.Context, locator, token string) (*models.ResolvedCommunity, error) {
	name := screenName(locator)
	if name == "" {
		return nil, fmt.Errorf("%w: пустая ссылка на сообщество", ErrInvalidInput)
	}

	raw, err := c.call(ctx, "utils.resolveScreenName", url.Values{"screen_name": {name}}, token)
	if err != nil {
		return nil, err
	}
	if emptyResponse(raw) {
		return nil, ErrNotFound
	}

	var resolved struct {
		Type     string `json:"type"`
		ObjectID int64  `json:"object_id"`
	}
	if err := json.Unmarshal(raw, &resolved); err != nil {
		return nil, fmt.Errorf("ответ utils.resolveScreenName: %w", err)
	}

	// object_id всегда положительный; для групп и пабликов методы стены ждут отрицательный ID
	ownerID := resolved.ObjectID
	if resolved.Type == "group" || resolved.Type == "page" {
		ownerID = -ownerID
	}

	return c.details(ctx, ownerID, token)
}

// details запрашивает название и аватар. Метод зависит от знака ID:
// отрицательный — группа, положительный — пользователь.
func (c *Client) details(ctx context.Context, ownerID int64, token string) (*models.ResolvedCommunity, error) {
	isGroup := ownerID < 0
	method := "users.get"
	idParam := "user_ids"
	absID := ownerID
	if isGroup {
		method = "groups.getById"
		idParam = "group_id"
		absID = -ownerID
	}

	params := url.Values{
		idParam:  {strconv.FormatInt(absID, 10)},
		"fields": {"photo_200"},
	}
	raw, err := c.call(ctx, method, params, token)
	if err != nil {
		return nil, err
	}
	if emptyResponse(raw) {
		return nil, ErrDetailsUnavailable
	}

	var details []struct {
		Name      string `json:"name"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Photo200  string `json:"photo_200"`
	}
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, fmt.Errorf("ответ %s: %w", method, err)
	}
	if len(details) == 0 {
		return nil, ErrDetailsUnavailable
	}

	info := details[0]
	name := info.Name
	if !isGroup {
		name = strings.TrimSpace(info.FirstName + " " + info.LastName)
	}

	return &models.ResolvedCommunity{
		ID:    ownerID,
		Name:  name,
		Photo: info.Photo200,
	}, nil
}
