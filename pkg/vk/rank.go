package vk

import (
	"sort"

	"vkstat_go/models"
)

// Rank сортирует посты по лайкам по убыванию. Сортировка стабильная:
// при равных лайках сохраняется исходный порядок ленты.
func Rank(posts []models.Post) []models.Post {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Likes > posts[j].Likes
	})
	return posts
}
