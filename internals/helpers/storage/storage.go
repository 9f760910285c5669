// internals/helpers/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"journalku_backend/internals/configs"
)

// SignedURLTTL: umur signed URL untuk baca/unduh PDF (selaras dengan
// edge function article-pdf lama: 10 menit).
const SignedURLTTL = 10 * time.Minute

// BlobService abstraksi object storage supaya controller gampang di-mock.
type BlobService interface {
	UploadFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// MinioBlobService implementasi BlobService di atas S3-compatible storage.
type MinioBlobService struct {
	client *minio.Client
	bucket string
}

// NewBlobServiceFromEnv membuat client dari ENV:
// S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY, S3_BUCKET, S3_REGION, S3_USE_SSL.
func NewBlobServiceFromEnv() (*MinioBlobService, error) {
	endpoint := configs.GetEnv("S3_ENDPOINT")
	if endpoint == "" {
		return nil, fmt.Errorf("S3_ENDPOINT belum diset")
	}
	useSSL, _ := strconv.ParseBool(configs.GetEnv("S3_USE_SSL", "true"))

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(configs.GetEnv("S3_ACCESS_KEY"), configs.GetEnv("S3_SECRET_KEY"), ""),
		Secure: useSSL,
		Region: configs.GetEnv("S3_REGION", "us-east-1"),
	})
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}

	return &MinioBlobService{
		client: client,
		bucket: configs.GetEnv("S3_BUCKET", "manuscripts"),
	}, nil
}

// UploadFile menyimpan file multipart ke bucket dan mengembalikan object key.
// Key disimpan di DB; URL publik tidak pernah dibentuk dari sini (bucket privat).
func (s *MinioBlobService) UploadFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := BuildObjectKey(dir, fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := s.client.PutObject(ctx, s.bucket, key, src, fh.Size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}
	return key, nil
}

// PresignGet mengembalikan signed URL berumur ttl untuk satu object key.
func (s *MinioBlobService) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if !IsSafeKey(key) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid file path")
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("presign object: %w", err)
	}
	return u.String(), nil
}

func (s *MinioBlobService) Delete(ctx context.Context, key string) error {
	if !IsSafeKey(key) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid file path")
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

/* =======================
   Mock untuk testing
======================= */

type MockBlobService struct {
	Uploaded []string
	Deleted  []string
}

func (m *MockBlobService) UploadFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	key := BuildObjectKey(dir, fh.Filename)
	m.Uploaded = append(m.Uploaded, key)
	return key, nil
}

func (m *MockBlobService) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if !IsSafeKey(key) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid file path")
	}
	return "https://storage.local/signed/" + key, nil
}

func (m *MockBlobService) Delete(ctx context.Context, key string) error {
	m.Deleted = append(m.Deleted, key)
	return nil
}
