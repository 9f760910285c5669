package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"
	"testing"
)

var _ BlobService = (*MockBlobService)(nil)
var _ BlobService = (*MinioBlobService)(nil)

func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	return form.File["file"][0]
}

func TestMockBlobServiceUpload(t *testing.T) {
	mock := &MockBlobService{}
	fh := makeFileHeader(t, "manuscript.pdf", "%PDF-1.7 dummy")

	key, err := mock.UploadFile(context.Background(), "manuscripts", fh)
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if !strings.HasPrefix(key, "manuscripts/") {
		t.Errorf("key = %q, want manuscripts/ prefix", key)
	}
	if !strings.HasSuffix(key, "-manuscript.pdf") {
		t.Errorf("key = %q, want sanitized filename suffix", key)
	}
	if len(mock.Uploaded) != 1 || mock.Uploaded[0] != key {
		t.Errorf("Uploaded = %v, want [%q]", mock.Uploaded, key)
	}
}

func TestMockBlobServicePresignGet(t *testing.T) {
	mock := &MockBlobService{}

	url, err := mock.PresignGet(context.Background(), "articles/20240101-abc-final.pdf", SignedURLTTL)
	if err != nil {
		t.Fatalf("PresignGet: %v", err)
	}
	if url != "https://storage.local/signed/articles/20240101-abc-final.pdf" {
		t.Errorf("url = %q", url)
	}

	// Key traversal ditolak juga di mock, sama seperti implementasi asli.
	if _, err := mock.PresignGet(context.Background(), "../secrets/key.pem", SignedURLTTL); err == nil {
		t.Error("expected error for traversal key")
	}
	if _, err := mock.PresignGet(context.Background(), "/absolute/path.pdf", SignedURLTTL); err == nil {
		t.Error("expected error for absolute key")
	}
}

func TestMockBlobServiceDelete(t *testing.T) {
	mock := &MockBlobService{}
	if err := mock.Delete(context.Background(), "covers/old-cover.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(mock.Deleted) != 1 || mock.Deleted[0] != "covers/old-cover.png" {
		t.Errorf("Deleted = %v", mock.Deleted)
	}
}
