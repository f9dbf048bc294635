package vk

import (
	"fmt"
	"time"

	"vkstat_go/models"
)

// Normalize переводит сырую запись wall.get в доменный пост.
func Normalize(item RawWallItem) models.Post {
	id := fmt.Sprintf("%d_%d", item.OwnerID, item.ID)
	return models.Post{
		ID:        id,
		Text:      item.Text,
		Likes:     item.Likes.Value(),
		Comments:  item.Comments.Value(),
		Reposts:   item.Reposts.Value(),
		Date:      time.Unix(item.Date, 0).UTC().Format("02.01.2006"),
		Timestamp: item.Date,
		URL:       "https://vk.com/wall" + id,
		ImageURL:  bestImage(item),
	}
}

// bestImage берёт последний размер первой фотографии поста:
// VK перечисляет размеры от меньшего к большему.
func bestImage(item RawWallItem) string {
	for _, a := range item.Attachments {
		if a.Type != "photo" || a.Photo == nil {
			continue
		}
		sizes := a.Photo.Sizes
		if len(sizes) == 0 {
			return ""
		}
		return sizes[len(sizes)-1].URL
	}
	return ""
}
