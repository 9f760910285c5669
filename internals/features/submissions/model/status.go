package model

// Status submission sepanjang workflow review.
const (
	StatusPending          = "pending"
	StatusUnderReview      = "under_review"
	StatusRevisionRequired = "revision_required"
	StatusAccepted         = "accepted"
	StatusRejected         = "rejected"
	StatusPublished        = "published"
)

var AllStatuses = []string{
	StatusPending,
	StatusUnderReview,
	StatusRevisionRequired,
	StatusAccepted,
	StatusRejected,
	StatusPublished,
}

func ValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Tabel transisi untuk mode strict. Default produksi sekarang permisif
// (editor boleh pindah status bebas, termasuk koreksi salah klik);
// tabel ini aktif lewat env SUBMISSION_STRICT_TRANSITIONS.
var strictTransitions = map[string][]string{
	StatusPending:          {StatusUnderReview, StatusRejected},
	StatusUnderReview:      {StatusRevisionRequired, StatusAccepted, StatusRejected},
	StatusRevisionRequired: {StatusUnderReview, StatusRejected},
	StatusAccepted:         {StatusPublished, StatusRejected},
	StatusRejected:         {},
	StatusPublished:        {},
}

// CanTransition menjawab apakah perubahan from→to diizinkan.
// Dalam mode permisif semua pasangan status valid diizinkan.
func CanTransition(from, to string, strict bool) bool {
	if !ValidStatus(from) || !ValidStatus(to) {
		return false
	}
	if !strict {
		return true
	}
	for _, allowed := range strictTransitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}
