package storage

import (
	"strings"
	"testing"
)

func TestIsSafeKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"plain key", "manuscripts/20250101-abc-paper.pdf", true},
		{"published key", "published/1700000000-x.pdf", true},
		{"empty", "", false},
		{"absolute", "/etc/passwd", false},
		{"traversal", "manuscripts/../secrets.txt", false},
		{"traversal prefix", "../manuscripts/a.pdf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSafeKey(tt.key); got != tt.want {
				t.Errorf("IsSafeKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("manuscripts", "my paper (final).pdf")

	if !strings.HasPrefix(key, "manuscripts/") {
		t.Errorf("key %q should start with the directory", key)
	}
	if strings.ContainsAny(key, " ()") {
		t.Errorf("key %q should not contain unsafe characters", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("key %q should keep the file extension", key)
	}
	if !IsSafeKey(key) {
		t.Errorf("generated key %q should be safe", key)
	}
}

func TestBuildObjectKeyTrimsDirSlashes(t *testing.T) {
	key := BuildObjectKey("/covers/", "logo.png")
	if strings.HasPrefix(key, "/") {
		t.Errorf("key %q must not be absolute", key)
	}
	if !strings.HasPrefix(key, "covers/") {
		t.Errorf("key %q should be rooted at covers/", key)
	}
}
