package models

// SearchParams — параметры одного запроса анализа.
// Даты календарные в формате YYYY-MM-DD, диапазон включительный с обеих сторон.
// Корректность start <= end на совести вызывающего.
type SearchParams struct {
	CommunityURL string `json:"community_url" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	AccessToken  string `json:"access_token" binding:"required"`
}

// AnalysisResult — итог анализа: сообщество и посты, отсортированные по лайкам.
// Результат не накапливается между запросами, каждый новый анализ его полностью заменяет.
type AnalysisResult struct {
	CommunityName  string `json:"community_name"`
	CommunityPhoto string `json:"community_photo"`
	Posts          []Post `json:"posts"`
	Summary        string `json:"summary,omitempty"`
}
