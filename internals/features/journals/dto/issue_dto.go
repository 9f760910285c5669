package dto

import (
	"time"

	"journalku_backend/internals/features/journals/model"

	"github.com/google/uuid"
)

// Request dari frontend → backend
type IssueRequest struct {
	IssueJournalID uuid.UUID `json:"issue_journal_id" validate:"required"`
	IssueVolume    int       `json:"issue_volume" validate:"required,min=1"`
	IssueNumber    int       `json:"issue_number" validate:"required,min=1"`
	IssueYear      int       `json:"issue_year" validate:"required,min=1900"`
	IssueMonth     *string   `json:"issue_month"`
	IssueIsCurrent bool      `json:"issue_is_current"`
}

// Response ke frontend
type IssueResponse struct {
	IssueID          uuid.UUID `json:"issue_id"`
	IssueJournalID   uuid.UUID `json:"issue_journal_id"`
	IssueVolume      int       `json:"issue_volume"`
	IssueNumber      int       `json:"issue_number"`
	IssueYear        int       `json:"issue_year"`
	IssueMonth       *string   `json:"issue_month,omitempty"`
	IssueIsCurrent   bool      `json:"issue_is_current"`
	IssuePublishedAt *string   `json:"issue_published_at,omitempty"`
}

func (r *IssueRequest) ToModel() *model.IssueModel {
	now := time.Now()
	return &model.IssueModel{
		IssueJournalID:   r.IssueJournalID,
		IssueVolume:      r.IssueVolume,
		IssueNumber:      r.IssueNumber,
		IssueYear:        r.IssueYear,
		IssueMonth:       r.IssueMonth,
		IssueIsCurrent:   r.IssueIsCurrent,
		IssuePublishedAt: &now,
	}
}

func (r *IssueRequest) ApplyToModel(m *model.IssueModel) {
	m.IssueJournalID = r.IssueJournalID
	m.IssueVolume = r.IssueVolume
	m.IssueNumber = r.IssueNumber
	m.IssueYear = r.IssueYear
	m.IssueMonth = r.IssueMonth
	m.IssueIsCurrent = r.IssueIsCurrent
}

func ToIssueResponse(m *model.IssueModel) *IssueResponse {
	resp := &IssueResponse{
		IssueID:        m.IssueID,
		IssueJournalID: m.IssueJournalID,
		IssueVolume:    m.IssueVolume,
		IssueNumber:    m.IssueNumber,
		IssueYear:      m.IssueYear,
		IssueMonth:     m.IssueMonth,
		IssueIsCurrent: m.IssueIsCurrent,
	}
	if m.IssuePublishedAt != nil {
		s := m.IssuePublishedAt.Format("2006-01-02 15:04:05")
		resp.IssuePublishedAt = &s
	}
	return resp
}

func ToIssueResponses(ms []model.IssueModel) []IssueResponse {
	out := make([]IssueResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToIssueResponse(&ms[i]))
	}
	return out
}
