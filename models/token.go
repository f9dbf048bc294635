package models

// SavedToken — сохранённый сервисный ключ VK API.
// Сам токен служит ключом уникальности, имя — только подпись для пользователя.
type SavedToken struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}
