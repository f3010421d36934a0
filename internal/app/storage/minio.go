package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"thetis_mrv/internal/app/config"
)

// MinioStorage отдаёт исходные xlsx-файлы THETIS-MRV из бакета.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

func NewMinioStorage(cfg *config.Config) (*MinioStorage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &MinioStorage{client: client, bucket: cfg.MinioBucket}, nil
}

// ListAvailableFiles возвращает имена всех объектов бакета в порядке листинга.
func (s *MinioStorage) ListAvailableFiles(ctx context.Context) ([]string, error) {
	var names []string
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return nil, fmt.Errorf("list bucket %q: %w", s.bucket, object.Err)
		}
		names = append(names, object.Key)
	}
	return names, nil
}

// FetchFile скачивает объект целиком в память.
func (s *MinioStorage) FetchFile(ctx context.Context, name string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", name, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("read object %q: %w", name, err)
	}
	return data, nil
}
