package vk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// pageSize — максимум, который отдаёт wall.get за один запрос.
const pageSize = 100

// maxPages ограничивает число запросов на один анализ, чтобы не уйти
// в бесконечную листалку на стенах с миллионами постов.
const maxPages = 20

// RawWallItem — запись wall.get до нормализации. Счётчики указателями:
// VK может вообще не прислать блок likes/comments/reposts.
type RawWallItem struct {
	ID          int64        `json:"id"`
	OwnerID     int64        `json:"owner_id"`
	Date        int64        `json:"date"`
	Text        string       `json:"text"`
	IsPinned    int          `json:"is_pinned"`
	Attachments []Attachment `json:"attachments"`
	Likes       *Counter     `json:"likes"`
	Comments    *Counter     `json:"comments"`
	Reposts     *Counter     `json:"reposts"`
}

// Pinned — закреплён ли пост. VK отдаёт признак числом 0/1.
func (it RawWallItem) Pinned() bool { return it.IsPinned != 0 }

type Counter struct {
	Count int `json:"count"`
}

// Value возвращает 0, если блока счётчика в ответе не было.
func (c *Counter) Value() int {
	if c == nil {
		return 0
	}
	return c.Count
}

type Attachment struct {
	Type  string `json:"type"`
	Photo *Photo `json:"photo"`
}

type Photo struct {
	Sizes []PhotoSize `json:"sizes"`
}

type PhotoSize struct {
	URL string `json:"url"`
}

// FetchPage запрашивает одну страницу стены со смещением offset.
func (c *Client) FetchPage(ctx context.Context, ownerID int64, offset, count int, token string) ([]RawWallItem, error) {
	params := url.Values{
		"owner_id": {strconv.FormatInt(ownerID, 10)},
		"offset":   {strconv.Itoa(offset)},
		"count":    {strconv.Itoa(count)},
	}
	raw, err := c.call(ctx, "wall.get", params, token)
	if err != nil {
		return nil, err
	}

	var page struct {
		Items []RawWallItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("ответ wall.get: %w", err)
	}
	return page.Items, nil
}

// FetchAll собирает посты стены за календарный диапазон [startDate, endDate],
// обе границы включительно. Даты в формате YYYY-MM-DD, время суток не несут:
// границы считаются от полуночи UTC, конец — полночь следующего за endDate дня.
//
// Лента идёт от новых к старым, поэтому пост старше startDate означает, что
// дальше листать незачем. Исключение — закреплённый пост: он висит первым
// независимо от даты и не должен обрывать обход. В выдачу такой пост всё равно
// не попадает, если его собственная дата вне диапазона.
func (c *Client) FetchAll(ctx context.Context, ownerID int64, startDate, endDate, token string) ([]RawWallItem, error) {
	startTs, endTs, err := dayBounds(startDate, endDate)
	if err != nil {
		return nil, err
	}

	var collected []RawWallItem
	offset := 0
	stop := false

	for page := 0; page < maxPages && !stop; page++ {
		// Пауза между страницами, чтобы не словить rate limit VK
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		items, err := c.FetchPage(ctx, ownerID, offset, pageSize, token)
		if err != nil {
			// Накопленное не возвращаем: либо полный результат, либо ошибка
			return nil, err
		}
		if len(items) == 0 {
			break
		}

		for _, it := range items {
			if it.Date < startTs && !it.Pinned() {
				stop = true
				break
			}
			if it.Date >= startTs && it.Date <= endTs {
				collected = append(collected, it)
			}
		}

		// Контрольная проверка по последнему посту страницы: если он уже
		// старше начала диапазона, следующая страница точно целиком старее.
		last := items[len(items)-1]
		if last.Date < startTs && !last.Pinned() {
			stop = true
		}

		offset += pageSize
	}

	return collected, nil
}

// dayBounds переводит календарные даты в unix-границы диапазона.
// Конец диапазона — полночь следующего дня, чтобы endDate входил целиком.
func dayBounds(startDate, endDate string) (int64, int64, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: дата начала %q", ErrInvalidInput, startDate)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: дата конца %q", ErrInvalidInput, endDate)
	}
	return start.Unix(), end.Unix() + 24*60*60, nil
}
