package constants

import (
	"path/filepath"
	"strings"
)

// File kinds accepted by the upload endpoints.
const (
	FileKindPDF     = 4
	FileKindDocx    = 3
	FileKindImage   = 6
	FileKindUnknown = 99
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".doc", ".docx":
		return FileKindDocx
	case ".pdf":
		return FileKindPDF
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileKindImage
	default:
		return FileKindUnknown
	}
}

// IsManuscriptExt: manuskrip submission harus PDF/DOC/DOCX.
func IsManuscriptExt(filename string) bool {
	k := DetectFileTypeFromExt(filename)
	return k == FileKindPDF || k == FileKindDocx
}

// IsImageExt: cover journal harus gambar.
func IsImageExt(filename string) bool {
	return DetectFileTypeFromExt(filename) == FileKindImage
}
