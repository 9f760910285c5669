package dto

import (
	"encoding/json"
	"time"

	"journalku_backend/internals/features/submissions/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type SubmissionAuthor struct {
	Name        string `json:"name" validate:"required"`
	Affiliation string `json:"affiliation"`
	Email       string `json:"email" validate:"required,email"`
}

type SupplementaryFile struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// Request pembuatan submission oleh penulis.
// Abstrak minimal 100 karakter (standar editorial, bukan batas teknis).
type CreateSubmissionRequest struct {
	SubmissionJournalID uuid.UUID          `json:"submission_journal_id" validate:"required"`
	SubmissionTitle     string             `json:"submission_title" validate:"required,max=500"`
	SubmissionAbstract  string             `json:"submission_abstract" validate:"required,min=100"`
	SubmissionKeywords  []string           `json:"submission_keywords"`
	SubmissionAuthors   []SubmissionAuthor `json:"submission_authors" validate:"required,min=1,dive"`
}

// Request admin untuk PATCH status.
type UpdateStatusRequest struct {
	SubmissionStatus      string  `json:"submission_status" validate:"required"`
	SubmissionEditorNotes *string `json:"submission_editor_notes"`
}

// Request admin untuk publish: issue tujuan + DOI/halaman opsional.
type PublishSubmissionRequest struct {
	IssueID      uuid.UUID `json:"issue_id" validate:"required"`
	ArticleDOI   *string   `json:"article_doi"`
	ArticlePages *string   `json:"article_pages"`
}

type SubmissionResponse struct {
	SubmissionID                 uuid.UUID           `json:"submission_id"`
	SubmissionJournalID          uuid.UUID           `json:"submission_journal_id"`
	SubmissionUserID             uuid.UUID           `json:"submission_user_id"`
	SubmissionTitle              string              `json:"submission_title"`
	SubmissionAbstract           string              `json:"submission_abstract"`
	SubmissionKeywords           []string            `json:"submission_keywords"`
	SubmissionAuthors            []SubmissionAuthor  `json:"submission_authors"`
	SubmissionManuscriptURL      *string             `json:"submission_manuscript_url,omitempty"`
	SubmissionSupplementaryFiles []SupplementaryFile `json:"submission_supplementary_files,omitempty"`
	SubmissionStatus             string              `json:"submission_status"`
	SubmissionEditorNotes        *string             `json:"submission_editor_notes,omitempty"`
	SubmissionSubmittedAt        string              `json:"submission_submitted_at"`

	// Projection journal induk, diisi untuk listing milik user.
	JournalTitle string `json:"journal_title,omitempty"`
	JournalSlug  string `json:"journal_slug,omitempty"`
}

// Convert request → model. Status awal selalu pending.
func (r *CreateSubmissionRequest) ToModel(userID uuid.UUID) *model.SubmissionModel {
	authorJSON, _ := json.Marshal(r.SubmissionAuthors)

	return &model.SubmissionModel{
		SubmissionJournalID:   r.SubmissionJournalID,
		SubmissionUserID:      userID,
		SubmissionTitle:       r.SubmissionTitle,
		SubmissionAbstract:    r.SubmissionAbstract,
		SubmissionKeywords:    pq.StringArray(r.SubmissionKeywords),
		SubmissionAuthors:     datatypes.JSON(authorJSON),
		SubmissionStatus:      model.StatusPending,
		SubmissionSubmittedAt: time.Now(),
	}
}

func ToSubmissionResponse(m *model.SubmissionModel) *SubmissionResponse {
	var authors []SubmissionAuthor
	if m.SubmissionAuthors != nil {
		_ = json.Unmarshal(m.SubmissionAuthors, &authors)
	}
	var files []SupplementaryFile
	if m.SubmissionSupplementaryFiles != nil {
		_ = json.Unmarshal(m.SubmissionSupplementaryFiles, &files)
	}

	return &SubmissionResponse{
		SubmissionID:                 m.SubmissionID,
		SubmissionJournalID:          m.SubmissionJournalID,
		SubmissionUserID:             m.SubmissionUserID,
		SubmissionTitle:              m.SubmissionTitle,
		SubmissionAbstract:           m.SubmissionAbstract,
		SubmissionKeywords:           []string(m.SubmissionKeywords),
		SubmissionAuthors:            authors,
		SubmissionManuscriptURL:      m.SubmissionManuscriptURL,
		SubmissionSupplementaryFiles: files,
		SubmissionStatus:             m.SubmissionStatus,
		SubmissionEditorNotes:        m.SubmissionEditorNotes,
		SubmissionSubmittedAt:        m.SubmissionSubmittedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToSubmissionResponses(ms []model.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToSubmissionResponse(&ms[i]))
	}
	return out
}
