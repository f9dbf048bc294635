package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"vkstat_go/models"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// summaryLimit — сколько верхних постов уходит в промпт.
// Больше не нужно: сводка делается по самым популярным, а контекст не резиновый.
const summaryLimit = 15

// maxTextLen обрезает текст поста в промпте, длинные посты пересказа не улучшают.
const maxTextLen = 400

// Client генерирует текстовую сводку по топовым постам сообщества.
type Client struct {
	client *genai.Client
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("не задан ключ Gemini API")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("клиент Gemini: %w", err)
	}
	return &Client{client: client}, nil
}

// Summarize возвращает сводку по постам. Ошибка генерации не считается ошибкой
// анализа: вместо сводки возвращается заглушка, результат запроса не теряется.
func (c *Client) Summarize(ctx context.Context, communityName string, posts []models.Post) string {
	if len(posts) == 0 {
		return "За выбранный период постов не найдено."
	}

	top := posts
	if len(top) > summaryLimit {
		top = top[:summaryLimit]
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(buildPrompt(communityName, top)), nil)
	if err != nil {
		log.Printf("[GEMINI ERROR] не удалось получить сводку: %v", err)
		return "Не удалось сгенерировать сводку."
	}
	text := resp.Text()
	if text == "" {
		return "Не удалось сгенерировать сводку."
	}
	return text
}

func buildPrompt(communityName string, posts []models.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Я проанализировал самые популярные посты сообщества ВКонтакте %q.\n", communityName)
	b.WriteString("Вот верхние посты по вовлечённости:\n\n")
	for i, p := range posts {
		text := strings.ReplaceAll(p.Text, "\n", " ")
		// Режем по рунам, чтобы не разорвать кириллицу посреди символа
		if r := []rune(text); len(r) > maxTextLen {
			text = string(r[:maxTextLen]) + "..."
		}
		fmt.Fprintf(&b, "Пост №%d\nДата: %s\nЛайки: %d\nКомментарии: %d\nРепосты: %d\nТекст: %s\n\n",
			i+1, p.Date, p.Likes, p.Comments, p.Reposts, text)
	}
	b.WriteString("Напиши сжатую сводку на 2-3 абзаца: какие темы зашли аудитории, " +
		"какой тип контента собрал больше всего вовлечённости, какие заметные события упоминались.")
	return b.String()
}
