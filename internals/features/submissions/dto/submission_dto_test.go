package dto

import (
	"strings"
	"testing"

	"journalku_backend/internals/features/submissions/model"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func validCreateRequest() CreateSubmissionRequest {
	return CreateSubmissionRequest{
		SubmissionJournalID: uuid.New(),
		SubmissionTitle:     "Deep Learning for ECG Interpretation",
		SubmissionAbstract:  strings.Repeat("A methodical study. ", 10),
		SubmissionKeywords:  []string{"deep learning", "cardiology"},
		SubmissionAuthors: []SubmissionAuthor{
			{Name: "Jane A. Doe", Email: "jane@example.org", Affiliation: "Example University"},
		},
	}
}

func TestCreateSubmissionValidation(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		mutate  func(*CreateSubmissionRequest)
		wantErr bool
	}{
		{"valid request", func(r *CreateSubmissionRequest) {}, false},
		{"missing title", func(r *CreateSubmissionRequest) { r.SubmissionTitle = "" }, true},
		{"short abstract", func(r *CreateSubmissionRequest) { r.SubmissionAbstract = "Too short." }, true},
		{"abstract exactly 100 chars", func(r *CreateSubmissionRequest) {
			r.SubmissionAbstract = strings.Repeat("x", 100)
		}, false},
		{"no authors", func(r *CreateSubmissionRequest) { r.SubmissionAuthors = nil }, true},
		{"author missing name", func(r *CreateSubmissionRequest) {
			r.SubmissionAuthors[0].Name = ""
		}, true},
		{"author missing email", func(r *CreateSubmissionRequest) {
			r.SubmissionAuthors[0].Email = ""
		}, true},
		{"author bad email", func(r *CreateSubmissionRequest) {
			r.SubmissionAuthors[0].Email = "not-an-email"
		}, true},
		{"missing journal id", func(r *CreateSubmissionRequest) {
			r.SubmissionJournalID = uuid.Nil
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			err := v.Struct(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validation error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToModelSetsPendingStatus(t *testing.T) {
	req := validCreateRequest()
	userID := uuid.New()

	m := req.ToModel(userID)
	if m.SubmissionStatus != model.StatusPending {
		t.Errorf("status = %q, want %q", m.SubmissionStatus, model.StatusPending)
	}
	if m.SubmissionUserID != userID {
		t.Errorf("user id = %v, want %v", m.SubmissionUserID, userID)
	}
	if m.SubmissionSubmittedAt.IsZero() {
		t.Error("submitted_at must be set")
	}
	if m.SubmissionAuthors == nil {
		t.Error("authors jsonb must be populated")
	}
}

func TestResponseRoundTripAuthors(t *testing.T) {
	req := validCreateRequest()
	m := req.ToModel(uuid.New())

	resp := ToSubmissionResponse(m)
	if len(resp.SubmissionAuthors) != 1 {
		t.Fatalf("got %d authors, want 1", len(resp.SubmissionAuthors))
	}
	if resp.SubmissionAuthors[0].Name != "Jane A. Doe" {
		t.Errorf("author name = %q", resp.SubmissionAuthors[0].Name)
	}
	if resp.SubmissionStatus != model.StatusPending {
		t.Errorf("status = %q, want pending", resp.SubmissionStatus)
	}
}
