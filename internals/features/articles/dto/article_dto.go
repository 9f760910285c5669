package dto

import (
	"encoding/json"
	"time"

	"journalku_backend/internals/features/articles/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Struct Author untuk frontend & penyimpanan JSON
type Author struct {
	Name        string `json:"name" validate:"required"`
	Affiliation string `json:"affiliation"`
	Email       string `json:"email" validate:"required,email"`
}

// Request dari frontend → backend (admin create/update)
type ArticleRequest struct {
	ArticleIssueID  uuid.UUID `json:"article_issue_id" validate:"required"`
	ArticleTitle    string    `json:"article_title" validate:"required,max=500"`
	ArticleAbstract string    `json:"article_abstract"`
	ArticleKeywords []string  `json:"article_keywords"`
	ArticleAuthors  []Author  `json:"article_authors" validate:"required,min=1,dive"`
	ArticleDOI      *string   `json:"article_doi"`
	ArticlePages    *string   `json:"article_pages"`
}

// Response ke frontend
type ArticleResponse struct {
	ArticleID          uuid.UUID `json:"article_id"`
	ArticleIssueID     uuid.UUID `json:"article_issue_id"`
	ArticleTitle       string    `json:"article_title"`
	ArticleAbstract    string    `json:"article_abstract"`
	ArticleKeywords    []string  `json:"article_keywords"`
	ArticleAuthors     []Author  `json:"article_authors"`
	ArticleDOI         *string   `json:"article_doi,omitempty"`
	ArticlePages       *string   `json:"article_pages,omitempty"`
	ArticlePublishedAt string    `json:"article_published_at"`
	ArticleViews       int       `json:"article_views"`
	ArticleDownloads   int       `json:"article_downloads"`
}

// Convert request → model. PDF diunggah lewat endpoint terpisah.
func (r *ArticleRequest) ToModel() *model.ArticleModel {
	authorJSON, _ := json.Marshal(r.ArticleAuthors)

	return &model.ArticleModel{
		ArticleIssueID:     r.ArticleIssueID,
		ArticleTitle:       r.ArticleTitle,
		ArticleAbstract:    r.ArticleAbstract,
		ArticleKeywords:    pq.StringArray(r.ArticleKeywords),
		ArticleAuthors:     datatypes.JSON(authorJSON),
		ArticleDOI:         r.ArticleDOI,
		ArticlePages:       r.ArticlePages,
		ArticlePublishedAt: time.Now(),
	}
}

// ApplyToModel: update field yang boleh diubah lewat PUT.
// Counter views/downloads sengaja tidak bisa diset dari request.
func (r *ArticleRequest) ApplyToModel(m *model.ArticleModel) {
	authorJSON, _ := json.Marshal(r.ArticleAuthors)

	m.ArticleIssueID = r.ArticleIssueID
	m.ArticleTitle = r.ArticleTitle
	m.ArticleAbstract = r.ArticleAbstract
	m.ArticleKeywords = pq.StringArray(r.ArticleKeywords)
	m.ArticleAuthors = datatypes.JSON(authorJSON)
	m.ArticleDOI = r.ArticleDOI
	m.ArticlePages = r.ArticlePages
}

// Convert model → response
func ToArticleResponse(m *model.ArticleModel) *ArticleResponse {
	var authors []Author
	if m.ArticleAuthors != nil {
		_ = json.Unmarshal(m.ArticleAuthors, &authors)
	}

	return &ArticleResponse{
		ArticleID:          m.ArticleID,
		ArticleIssueID:     m.ArticleIssueID,
		ArticleTitle:       m.ArticleTitle,
		ArticleAbstract:    m.ArticleAbstract,
		ArticleKeywords:    []string(m.ArticleKeywords),
		ArticleAuthors:     authors,
		ArticleDOI:         m.ArticleDOI,
		ArticlePages:       m.ArticlePages,
		ArticlePublishedAt: m.ArticlePublishedAt.Format("2006-01-02 15:04:05"),
		ArticleViews:       m.ArticleViews,
		ArticleDownloads:   m.ArticleDownloads,
	}
}

func ToArticleResponses(ms []model.ArticleModel) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToArticleResponse(&ms[i]))
	}
	return out
}
