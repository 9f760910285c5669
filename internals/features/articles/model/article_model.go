package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ArticleModel: unit konten yang sudah terbit, selalu menempel ke satu issue.
// Dibuat lewat aksi publish submission atau langsung oleh admin.
// article_views / article_downloads hanya naik lewat endpoint counter.
type ArticleModel struct {
	ArticleID          uuid.UUID      `gorm:"column:article_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"article_id"`
	ArticleIssueID     uuid.UUID      `gorm:"column:article_issue_id;type:uuid;not null;index" json:"article_issue_id"`
	ArticleTitle       string         `gorm:"column:article_title;type:varchar(500);not null" json:"article_title"`
	ArticleAbstract    string         `gorm:"column:article_abstract;type:text" json:"article_abstract"`
	ArticleKeywords    pq.StringArray `gorm:"column:article_keywords;type:text[]" json:"article_keywords,omitempty"`
	ArticleAuthors     datatypes.JSON `gorm:"column:article_authors;type:jsonb" json:"article_authors,omitempty"`
	ArticlePDFURL      *string        `gorm:"column:article_pdf_url;type:text" json:"article_pdf_url,omitempty"`
	ArticleDOI         *string        `gorm:"column:article_doi;type:varchar(100)" json:"article_doi,omitempty"`
	ArticlePages       *string        `gorm:"column:article_pages;type:varchar(50)" json:"article_pages,omitempty"`
	ArticlePublishedAt time.Time      `gorm:"column:article_published_at;not null" json:"article_published_at"`
	ArticleViews       int            `gorm:"column:article_views;not null;default:0" json:"article_views"`
	ArticleDownloads   int            `gorm:"column:article_downloads;not null;default:0" json:"article_downloads"`
	ArticleCreatedAt   time.Time      `gorm:"column:article_created_at;autoCreateTime" json:"article_created_at"`
	ArticleUpdatedAt   *time.Time     `gorm:"column:article_updated_at;autoUpdateTime" json:"article_updated_at,omitempty"`
}

func (ArticleModel) TableName() string {
	return "articles"
}
