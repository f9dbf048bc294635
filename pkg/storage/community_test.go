package storage

import (
	"testing"

	"vkstat_go/models"
)

// TestMergeCommunities проверяет слияние сохранённых сообществ с пресетами.
func TestMergeCommunities(t *testing.T) {
	saved := []models.SavedCommunity{
		{Name: "Мой паблик", URL: "public137114"}, // совпадает с пресетом по url
		{Name: "Другое", URL: "club42"},
	}

	got := mergeCommunities(saved, presetCommunities)

	// Сохранённые идут первыми и имеют приоритет над пресетом с тем же url
	if got[0].URL != "public137114" || got[0].Name != "Мой паблик" {
		t.Errorf("сохранённая запись должна перекрывать пресет, получено %+v", got[0])
	}
	if len(got) != len(saved)+len(presetCommunities)-1 {
		t.Errorf("ожидалось %d записей, получено %d", len(saved)+len(presetCommunities)-1, len(got))
	}

	seen := map[string]int{}
	for _, c := range got {
		seen[c.URL]++
	}
	for url, n := range seen {
		if n > 1 {
			t.Errorf("url %s встречается %d раз", url, n)
		}
	}
}

// TestMergeCommunitiesEmpty проверяет, что пустая база даёт ровно пресеты.
func TestMergeCommunitiesEmpty(t *testing.T) {
	got := mergeCommunities(nil, presetCommunities)
	if len(got) != len(presetCommunities) {
		t.Fatalf("ожидалось %d пресетов, получено %d", len(presetCommunities), len(got))
	}
	for i, p := range presetCommunities {
		if got[i] != p {
			t.Errorf("позиция %d: ожидался пресет %+v, получено %+v", i, p, got[i])
		}
	}
}

// TestMergeTokens проверяет дедупликацию ключей по значению токена.
func TestMergeTokens(t *testing.T) {
	saved := []models.SavedToken{
		{Name: "Мой ключ", Token: presetTokens[0].Token},
	}

	got := mergeTokens(saved, presetTokens)

	if len(got) != 1 {
		t.Fatalf("ожидалась 1 запись, получено %d", len(got))
	}
	if got[0].Name != "Мой ключ" {
		t.Errorf("сохранённое имя должно перекрывать пресет, получено %q", got[0].Name)
	}
}
