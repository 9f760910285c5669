package helper

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"simple title", "Web of Medicine", 100, "web-of-medicine"},
		{"diacritics stripped", "Revista Médica Española", 100, "revista-medica-espanola"},
		{"punctuation collapsed", "AI & Health: 2024!", 100, "ai-health-2024"},
		{"leading trailing junk", "  --Journal--  ", 100, "journal"},
		{"empty falls back", "", 100, "item"},
		{"only symbols falls back", "!!!", 100, "item"},
		{"max length enforced", "abcdefghij", 5, "abcde"},
		{"default max when zero", "hello world", 0, "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("Slugify(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTrimForSuffix(t *testing.T) {
	tests := []struct {
		base   string
		suffix string
		maxLen int
		want   string
	}{
		{"journal-name", "-2", 100, "journal-name"},
		{"abcdefgh", "-2", 8, "abcdef"},
		{"ab-", "-12", 5, "ab"},
		{"x", "-123456", 5, "x"},
	}

	for _, tt := range tests {
		got := trimForSuffix(tt.base, tt.suffix, tt.maxLen)
		if got != tt.want {
			t.Errorf("trimForSuffix(%q, %q, %d) = %q, want %q", tt.base, tt.suffix, tt.maxLen, got, tt.want)
		}
		if len(got)+len(tt.suffix) > tt.maxLen && tt.maxLen > len(tt.suffix) {
			t.Errorf("trimForSuffix(%q, %q, %d): result %q exceeds budget", tt.base, tt.suffix, tt.maxLen, got)
		}
	}
}
