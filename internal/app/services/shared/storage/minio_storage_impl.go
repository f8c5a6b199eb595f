package storage

import (
	"bytes"
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	UseSSL      bool
	Host        string
	Port        string
}

func NewMinioStorage(minioClient *minio.Client, driverConfig *config.DriverConfig) contracts.ObjectStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  driverConfig.Minio.BucketName,
		UseSSL:      driverConfig.Minio.UseSSL,
		Host:        driverConfig.Minio.Host,
		Port:        driverConfig.Minio.Port,
	}
}

func (m *minioStorage) UploadProfileImage(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrStorageUpload(err)
	}

	scheme := "http"
	if m.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%s/%s/%s", scheme, m.Host, m.Port, m.BucketName, objectName), nil
}
