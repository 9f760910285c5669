package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// SubmissionModel: naskah yang dikirim penulis ke sebuah journal.
// Berjalan lewat workflow review sampai diterbitkan jadi article
// (atau ditolak). submission_manuscript_url berisi object key, bukan URL.
type SubmissionModel struct {
	SubmissionID                 uuid.UUID      `gorm:"column:submission_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"submission_id"`
	SubmissionJournalID          uuid.UUID      `gorm:"column:submission_journal_id;type:uuid;not null;index" json:"submission_journal_id"`
	SubmissionUserID             uuid.UUID      `gorm:"column:submission_user_id;type:uuid;not null;index" json:"submission_user_id"`
	SubmissionTitle              string         `gorm:"column:submission_title;type:varchar(500);not null" json:"submission_title"`
	SubmissionAbstract           string         `gorm:"column:submission_abstract;type:text;not null" json:"submission_abstract"`
	SubmissionKeywords           pq.StringArray `gorm:"column:submission_keywords;type:text[]" json:"submission_keywords,omitempty"`
	SubmissionAuthors            datatypes.JSON `gorm:"column:submission_authors;type:jsonb" json:"submission_authors,omitempty"`
	SubmissionManuscriptURL      *string        `gorm:"column:submission_manuscript_url;type:text" json:"submission_manuscript_url,omitempty"`
	SubmissionSupplementaryFiles datatypes.JSON `gorm:"column:submission_supplementary_files;type:jsonb" json:"submission_supplementary_files,omitempty"`
	SubmissionStatus             string         `gorm:"column:submission_status;type:varchar(30);not null;default:'pending';index" json:"submission_status"`
	SubmissionEditorNotes        *string        `gorm:"column:submission_editor_notes;type:text" json:"submission_editor_notes,omitempty"`
	SubmissionSubmittedAt        time.Time      `gorm:"column:submission_submitted_at;not null" json:"submission_submitted_at"`
	SubmissionUpdatedAt          *time.Time     `gorm:"column:submission_updated_at;autoUpdateTime" json:"submission_updated_at,omitempty"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}
