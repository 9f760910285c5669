package model

import (
	"time"

	"github.com/google/uuid"
)

type JournalModel struct {
	JournalID            uuid.UUID  `gorm:"column:journal_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"journal_id"`
	JournalTitle         string     `gorm:"column:journal_title;type:varchar(255);not null" json:"journal_title"`
	JournalSubtitle      *string    `gorm:"column:journal_subtitle;type:varchar(255)" json:"journal_subtitle,omitempty"`
	JournalDescription   *string    `gorm:"column:journal_description;type:text" json:"journal_description,omitempty"`
	JournalISSN          string     `gorm:"column:journal_issn;type:varchar(20);not null" json:"journal_issn"`
	JournalImpactFactor  *string    `gorm:"column:journal_impact_factor;type:varchar(20)" json:"journal_impact_factor,omitempty"`
	JournalFrequency     *string    `gorm:"column:journal_frequency;type:varchar(50)" json:"journal_frequency,omitempty"`
	JournalSlug          string     `gorm:"column:journal_slug;type:varchar(100);uniqueIndex;not null" json:"journal_slug"`
	JournalEditorInChief *string    `gorm:"column:journal_editor_in_chief;type:varchar(255)" json:"journal_editor_in_chief,omitempty"`
	JournalScope         *string    `gorm:"column:journal_scope;type:text" json:"journal_scope,omitempty"`
	JournalImageURL      *string    `gorm:"column:journal_image_url;type:text" json:"journal_image_url,omitempty"`
	JournalCreatedAt     time.Time  `gorm:"column:journal_created_at;autoCreateTime" json:"journal_created_at"`
	JournalUpdatedAt     *time.Time `gorm:"column:journal_updated_at;autoUpdateTime" json:"journal_updated_at,omitempty"`
}

func (JournalModel) TableName() string {
	return "journals"
}
