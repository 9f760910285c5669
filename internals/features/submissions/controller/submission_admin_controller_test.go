package controller

import (
	"testing"

	helper "journalku_backend/internals/helpers"
)

func TestSubmissionOrderClause(t *testing.T) {
	tests := []struct {
		name string
		p    helper.Params
		want string
	}{
		{"default", helper.Params{SortBy: "submitted_at", SortOrder: "desc"}, "submission_submitted_at DESC"},
		{"title asc", helper.Params{SortBy: "title", SortOrder: "asc"}, "submission_title ASC"},
		{"status desc", helper.Params{SortBy: "status", SortOrder: "desc"}, "submission_status DESC"},
		{"unknown key falls back", helper.Params{SortBy: "submission_title; DROP TABLE submissions", SortOrder: "asc"}, "submission_submitted_at ASC"},
		{"empty params", helper.Params{}, "submission_submitted_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := submissionOrderClause(tt.p); got != tt.want {
				t.Errorf("submissionOrderClause(%+v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}
