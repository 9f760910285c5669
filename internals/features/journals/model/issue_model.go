package model

import (
	"time"

	"github.com/google/uuid"
)

// IssueModel: satu terbitan (volume/nomor/tahun) di bawah sebuah journal.
// Unik per (journal, volume, nomor); paling banyak satu issue "current"
// per journal — dijaga transaksional di controller.
type IssueModel struct {
	IssueID          uuid.UUID  `gorm:"column:issue_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"issue_id"`
	IssueJournalID   uuid.UUID  `gorm:"column:issue_journal_id;type:uuid;not null;index;uniqueIndex:uq_issue_journal_vol_no,priority:1" json:"issue_journal_id"`
	IssueVolume      int        `gorm:"column:issue_volume;not null;uniqueIndex:uq_issue_journal_vol_no,priority:2" json:"issue_volume"`
	IssueNumber      int        `gorm:"column:issue_number;not null;uniqueIndex:uq_issue_journal_vol_no,priority:3" json:"issue_number"`
	IssueYear        int        `gorm:"column:issue_year;not null" json:"issue_year"`
	IssueMonth       *string    `gorm:"column:issue_month;type:varchar(20)" json:"issue_month,omitempty"`
	IssueIsCurrent   bool       `gorm:"column:issue_is_current;default:false" json:"issue_is_current"`
	IssuePublishedAt *time.Time `gorm:"column:issue_published_at" json:"issue_published_at,omitempty"`
	IssueCreatedAt   time.Time  `gorm:"column:issue_created_at;autoCreateTime" json:"issue_created_at"`
	IssueUpdatedAt   *time.Time `gorm:"column:issue_updated_at;autoUpdateTime" json:"issue_updated_at,omitempty"`
}

func (IssueModel) TableName() string {
	return "issues"
}
