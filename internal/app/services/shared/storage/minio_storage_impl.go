package storage

import (
	"bytes"
	"context"

	"nutrisurvey-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioArchive struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioArchive(minioClient *minio.Client, bucketName string) ExportArchive {
	return &minioArchive{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioArchive) Upload(ctx context.Context, fileName string, data []byte, contentType string) error {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, fileName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrExportArchiveUpload(err)
	}
	return nil
}
