package model

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range AllStatuses {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "draft", "PENDING", "in_review"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestCanTransitionPermissive(t *testing.T) {
	// Mode default: tiap pasangan status valid boleh, termasuk mundur.
	pairs := [][2]string{
		{StatusPending, StatusPublished},
		{StatusRejected, StatusPending},
		{StatusPublished, StatusUnderReview},
		{StatusAccepted, StatusAccepted},
	}
	for _, p := range pairs {
		if !CanTransition(p[0], p[1], false) {
			t.Errorf("CanTransition(%q, %q, permissive) = false, want true", p[0], p[1])
		}
	}

	if CanTransition("pending", "bogus", false) {
		t.Error("invalid target status must be rejected even in permissive mode")
	}
	if CanTransition("bogus", "pending", false) {
		t.Error("invalid source status must be rejected even in permissive mode")
	}
}

func TestCanTransitionStrict(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusUnderReview, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusAccepted, false},
		{StatusPending, StatusPublished, false},
		{StatusUnderReview, StatusRevisionRequired, true},
		{StatusUnderReview, StatusAccepted, true},
		{StatusRevisionRequired, StatusUnderReview, true},
		{StatusRevisionRequired, StatusAccepted, false},
		{StatusAccepted, StatusPublished, true},
		{StatusRejected, StatusPending, false},
		{StatusPublished, StatusPending, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to, true); got != tt.want {
			t.Errorf("CanTransition(%q, %q, strict) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
