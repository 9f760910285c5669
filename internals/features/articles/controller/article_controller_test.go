package controller

import (
	"testing"
	"time"

	"journalku_backend/internals/features/articles/model"
	jmodel "journalku_backend/internals/features/journals/model"

	"gorm.io/datatypes"
)

func TestBuildCitationMetaYearFromPublishedAt(t *testing.T) {
	// Article terbit Desember 2023 dalam issue bertahun 2024.
	article := &model.ArticleModel{
		ArticleTitle:       "Machine Learning in Clinical Practice",
		ArticleAuthors:     datatypes.JSON([]byte(`[{"name":"Jane A. Doe","email":"jane@example.org"}]`)),
		ArticlePublishedAt: time.Date(2023, 12, 20, 10, 0, 0, 0, time.UTC),
	}
	issue := &jmodel.IssueModel{
		IssueVolume: 3,
		IssueNumber: 2,
		IssueYear:   2024,
	}
	journal := &jmodel.JournalModel{
		JournalTitle: "Web of Medicine",
	}

	meta := buildCitationMeta(article, issue, journal)

	if meta.Year != 2023 {
		t.Errorf("citation year = %d, want 2023 (from article published_at)", meta.Year)
	}
	if meta.Volume != 3 || meta.Issue != 2 {
		t.Errorf("volume/issue = %d/%d, want 3/2", meta.Volume, meta.Issue)
	}
	if meta.Journal != "Web of Medicine" {
		t.Errorf("journal = %q", meta.Journal)
	}
	if len(meta.AuthorNames) != 1 || meta.AuthorNames[0] != "Jane A. Doe" {
		t.Errorf("author names = %v", meta.AuthorNames)
	}
}

func TestBuildCitationMetaOptionalFields(t *testing.T) {
	doi := "10.1/x"
	pages := "10-20"
	published := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	article := &model.ArticleModel{
		ArticleTitle:       "Some Title",
		ArticlePublishedAt: published,
	}
	issue := &jmodel.IssueModel{IssueVolume: 1, IssueNumber: 1, IssueYear: 2024}
	journal := &jmodel.JournalModel{JournalTitle: "Web of Medicine"}

	meta := buildCitationMeta(article, issue, journal)
	if meta.DOI != "" || meta.Pages != "" {
		t.Errorf("nil doi/pages must map to empty strings, got doi=%q pages=%q", meta.DOI, meta.Pages)
	}
	if len(meta.AuthorNames) != 0 {
		t.Errorf("missing authors column must yield no names, got %v", meta.AuthorNames)
	}

	article.ArticleDOI = &doi
	article.ArticlePages = &pages
	meta = buildCitationMeta(article, issue, journal)
	if meta.DOI != doi || meta.Pages != pages {
		t.Errorf("doi/pages = %q/%q, want %q/%q", meta.DOI, meta.Pages, doi, pages)
	}
	if meta.Year != 2024 {
		t.Errorf("year = %d, want 2024", meta.Year)
	}
}
