package models

// ResolvedCommunity — результат разрешения ссылки или короткого имени.
// ID знаковый: отрицательный для групп и пабликов, положительный для пользователей.
// Живёт только в рамках одного запроса анализа, в базу не пишется.
type ResolvedCommunity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// SavedCommunity — избранное сообщество пользователя.
// URL уникален и служит ключом при слиянии с пресетами.
type SavedCommunity struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
