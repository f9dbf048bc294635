package vk

import (
	"regexp"
	"strings"
)

// mentionPattern ищет разметку упоминаний вида [club123|...], [public123|...] или [id123|...].
// Такие вставки почти всегда взаимопиар или реклама.
var mentionPattern = regexp.MustCompile(`(?i)\[(club|public|id)\d+\|`)

// IsPromotional определяет, похож ли пост на рекламу или кросс-промо.
// Любого признака достаточно, чтобы исключить пост из рейтинга.
func IsPromotional(item RawWallItem) bool {
	// Карточка внешней ссылки — явный признак рекламного поста
	for _, a := range item.Attachments {
		if a.Type == "link" {
			return true
		}
	}

	text := strings.ToLower(item.Text)
	if strings.Contains(text, "http://") || strings.Contains(text, "https://") {
		return true
	}
	if mentionPattern.MatchString(item.Text) {
		return true
	}
	if strings.Contains(text, "vk.com/") {
		return true
	}
	return false
}
