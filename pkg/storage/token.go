package storage

import "vkstat_go/models"

// presetTokens — сервисный ключ по умолчанию, чтобы анализ работал сразу после установки.
var presetTokens = []models.SavedToken{
	{Name: "Default Service Key", Token: "69862cb369862cb369862cb3e16abbbe2e6698669862cb300ad55d449d7546d00f127c8"},
}

// ListTokens возвращает сохранённые ключи вместе с пресетами, дубликаты отсекаются по token.
func (db *DB) ListTokens() ([]models.SavedToken, error) {
	rows, err := db.Conn.Query(`SELECT name, token FROM saved_tokens ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []models.SavedToken
	for rows.Next() {
		var t models.SavedToken
		if err := rows.Scan(&t.Name, &t.Token); err != nil {
			return nil, err
		}
		saved = append(saved, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return mergeTokens(saved, presetTokens), nil
}

// SaveToken сохраняет ключ; повторное сохранение того же токена обновляет имя.
func (db *DB) SaveToken(t models.SavedToken) error {
	_, err := db.Conn.Exec(`
		INSERT INTO saved_tokens (name, token)
		VALUES ($1, $2)
		ON CONFLICT (token) DO UPDATE SET name = EXCLUDED.name
	`, t.Name, t.Token)
	return err
}

func (db *DB) DeleteToken(token string) error {
	_, err := db.Conn.Exec(`DELETE FROM saved_tokens WHERE token = $1`, token)
	return err
}

func mergeTokens(saved, presets []models.SavedToken) []models.SavedToken {
	seen := make(map[string]bool, len(saved))
	for _, t := range saved {
		seen[t.Token] = true
	}
	out := append([]models.SavedToken{}, saved...)
	for _, p := range presets {
		if !seen[p.Token] {
			out = append(out, p)
		}
	}
	return out
}
