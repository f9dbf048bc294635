package models

// Post — публикация со стены сообщества после нормализации.
// ID имеет вид "{owner_id}_{post_id}", как в ссылках VK.
// Timestamp хранится отдельно от Date: по нему идёт стабильная сортировка,
// Date — только для отображения.
type Post struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
	Reposts   int    `json:"reposts"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	URL       string `json:"url"`
	ImageURL  string `json:"image_url"`
}
