package dto

import (
	"journalku_backend/internals/features/journals/model"

	"github.com/google/uuid"
)

// Request dari frontend → backend
type JournalRequest struct {
	JournalTitle         string  `json:"journal_title" validate:"required,min=3,max=255"`
	JournalSubtitle      *string `json:"journal_subtitle"`
	JournalDescription   *string `json:"journal_description"`
	JournalISSN          string  `json:"journal_issn" validate:"required,max=20"`
	JournalImpactFactor  *string `json:"journal_impact_factor"`
	JournalFrequency     *string `json:"journal_frequency"`
	JournalEditorInChief *string `json:"journal_editor_in_chief"`
	JournalScope         *string `json:"journal_scope"`
}

// Response ke frontend
type JournalResponse struct {
	JournalID            uuid.UUID `json:"journal_id"`
	JournalTitle         string    `json:"journal_title"`
	JournalSubtitle      *string   `json:"journal_subtitle,omitempty"`
	JournalDescription   *string   `json:"journal_description,omitempty"`
	JournalISSN          string    `json:"journal_issn"`
	JournalImpactFactor  *string   `json:"journal_impact_factor,omitempty"`
	JournalFrequency     *string   `json:"journal_frequency,omitempty"`
	JournalSlug          string    `json:"journal_slug"`
	JournalEditorInChief *string   `json:"journal_editor_in_chief,omitempty"`
	JournalScope         *string   `json:"journal_scope,omitempty"`
	JournalImageURL      *string   `json:"journal_image_url,omitempty"`
	JournalCreatedAt     string    `json:"journal_created_at"`
}

// Convert request → model (slug diisi controller setelah dipastikan unik)
func (r *JournalRequest) ToModel() *model.JournalModel {
	return &model.JournalModel{
		JournalTitle:         r.JournalTitle,
		JournalSubtitle:      r.JournalSubtitle,
		JournalDescription:   r.JournalDescription,
		JournalISSN:          r.JournalISSN,
		JournalImpactFactor:  r.JournalImpactFactor,
		JournalFrequency:     r.JournalFrequency,
		JournalEditorInChief: r.JournalEditorInChief,
		JournalScope:         r.JournalScope,
	}
}

// ApplyToModel: update field yang boleh diubah lewat PUT.
func (r *JournalRequest) ApplyToModel(m *model.JournalModel) {
	m.JournalTitle = r.JournalTitle
	m.JournalSubtitle = r.JournalSubtitle
	m.JournalDescription = r.JournalDescription
	m.JournalISSN = r.JournalISSN
	m.JournalImpactFactor = r.JournalImpactFactor
	m.JournalFrequency = r.JournalFrequency
	m.JournalEditorInChief = r.JournalEditorInChief
	m.JournalScope = r.JournalScope
}

// Convert model → response
func ToJournalResponse(m *model.JournalModel) *JournalResponse {
	return &JournalResponse{
		JournalID:            m.JournalID,
		JournalTitle:         m.JournalTitle,
		JournalSubtitle:      m.JournalSubtitle,
		JournalDescription:   m.JournalDescription,
		JournalISSN:          m.JournalISSN,
		JournalImpactFactor:  m.JournalImpactFactor,
		JournalFrequency:     m.JournalFrequency,
		JournalSlug:          m.JournalSlug,
		JournalEditorInChief: m.JournalEditorInChief,
		JournalScope:         m.JournalScope,
		JournalImageURL:      m.JournalImageURL,
		JournalCreatedAt:     m.JournalCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToJournalResponses(ms []model.JournalModel) []JournalResponse {
	out := make([]JournalResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToJournalResponse(&ms[i]))
	}
	return out
}
