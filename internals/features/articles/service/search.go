package service

import (
	"encoding/json"
	"strings"

	"journalku_backend/internals/features/articles/model"
)

// MaxSearchResults: hasil pencarian dipotong diam-diam di angka ini.
const MaxSearchResults = 10

// Search memfilter corpus dengan substring match case-insensitive (OR) pada
// judul, abstrak, tiap keyword, dan tiap nama penulis. Urutan corpus
// dipertahankan (tanpa relevance ranking); query kosong = hasil kosong.
// Linear scan — cukup untuk skala data sekarang.
func Search(query string, corpus []model.ArticleModel) []model.ArticleModel {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.ArticleModel{}
	}

	results := make([]model.ArticleModel, 0, MaxSearchResults)
	for i := range corpus {
		if matchesArticle(q, &corpus[i]) {
			results = append(results, corpus[i])
			if len(results) == MaxSearchResults {
				break
			}
		}
	}
	return results
}

func matchesArticle(q string, a *model.ArticleModel) bool {
	if strings.Contains(strings.ToLower(a.ArticleTitle), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.ArticleAbstract), q) {
		return true
	}
	for _, k := range a.ArticleKeywords {
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	for _, name := range authorNames(a) {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	return false
}

// authorNames membaca kolom jsonb authors; entri rusak diabaikan.
func authorNames(a *model.ArticleModel) []string {
	if a.ArticleAuthors == nil {
		return nil
	}
	var authors []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(a.ArticleAuthors, &authors); err != nil {
		return nil
	}
	names := make([]string, 0, len(authors))
	for _, au := range authors {
		if au.Name != "" {
			names = append(names, au.Name)
		}
	}
	return names
}
