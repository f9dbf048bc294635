package storage

import "vkstat_go/models"

// presetCommunities — стартовый набор сообществ. Подмешивается к сохранённым
// при каждом чтении, чтобы список не пустовал у нового пользователя.
var presetCommunities = []models.SavedCommunity{
	{Name: "public137114", URL: "public137114"},
	{Name: "public23153323", URL: "public23153323"},
	{Name: "public60109889", URL: "public60109889"},
	{Name: "public86830443", URL: "public86830443"},
	{Name: "public36621543", URL: "public36621543"},
}

// ListCommunities возвращает сохранённые сообщества вместе с пресетами.
// Дубликаты отсекаются по url, сохранённые записи имеют приоритет над пресетами.
func (db *DB) ListCommunities() ([]models.SavedCommunity, error) {
	rows, err := db.Conn.Query(`SELECT name, url FROM saved_communities ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []models.SavedCommunity
	for rows.Next() {
		var c models.SavedCommunity
		if err := rows.Scan(&c.Name, &c.URL); err != nil {
			return nil, err
		}
		saved = append(saved, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return mergeCommunities(saved, presetCommunities), nil
}

// SaveCommunity сохраняет сообщество; повторное сохранение того же url обновляет имя.
func (db *DB) SaveCommunity(c models.SavedCommunity) error {
	_, err := db.Conn.Exec(`
		INSERT INTO saved_communities (name, url)
		VALUES ($1, $2)
		ON CONFLICT (url) DO UPDATE SET name = EXCLUDED.name
	`, c.Name, c.URL)
	return err
}

func (db *DB) DeleteCommunity(url string) error {
	_, err := db.Conn.Exec(`DELETE FROM saved_communities WHERE url = $1`, url)
	return err
}

// mergeCommunities добавляет к сохранённым те пресеты, чьих url ещё нет в списке.
func mergeCommunities(saved, presets []models.SavedCommunity) []models.SavedCommunity {
	seen := make(map[string]bool, len(saved))
	for _, c := range saved {
		seen[c.URL] = true
	}
	out := append([]models.SavedCommunity{}, saved...)
	for _, p := range presets {
		if !seen[p.URL] {
			out = append(out, p)
		}
	}
	return out
}
