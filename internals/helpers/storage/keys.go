package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var reUnsafeChar = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// sanitizeFilename buang karakter selain huruf, angka, titik, dash, underscore.
func sanitizeFilename(filename string) string {
	return reUnsafeChar.ReplaceAllString(filename, "_")
}

// BuildObjectKey membentuk key unik: <dir>/<yyyymmdd>-<uuid>-<nama-aman>.
func BuildObjectKey(dir, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	safe := sanitizeFilename(originalFilename)
	dir = strings.Trim(dir, "/")
	return fmt.Sprintf("%s/%s-%s-%s", dir, timestamp, uuid.New().String(), safe)
}

// IsSafeKey menolak path traversal dan path absolut sebelum signing.
func IsSafeKey(key string) bool {
	if key == "" {
		return false
	}
	if strings.HasPrefix(key, "/") {
		return false
	}
	if strings.Contains(key, "..") {
		return false
	}
	return true
}
