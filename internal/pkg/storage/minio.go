package storage

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// Minio stores artifacts in a MinIO bucket.
type Minio struct {
	bucket string
	prefix string
	client *minio.Client
	newID  IDGenerator
}

// NewMinio accepts the endpoint either as host:port or as a URL. The scheme of
// a URL overrides useSSL.
func NewMinio(cfg S3Config, useSSL bool) (*Minio, error) {
	endpoint, secure, err := normaliseEndpoint(cfg.Endpoint, useSSL)
	if err != nil {
		return nil, errors.Wrap(err, "minio endpoint")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "minio client")
	}

	return &Minio{
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		client: client,
		newID:  defaultID,
	}, nil
}

func (m *Minio) Name() string {
	return "minio"
}

func (m *Minio) Save(ctx context.Context, content io.Reader, size int64, contentType string) (Object, error) {
	id := m.newID()
	key := objectKey(m.prefix, id)

	info, err := m.client.PutObject(ctx, m.bucket, key, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return Object{}, errors.Wrapf(err, "put object %s/%s", m.bucket, key)
	}

	return Object{ID: id, Location: m.bucket + "/" + key, Size: info.Size}, nil
}

func (m *Minio) Check(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return errors.Wrapf(err, "bucket %s", m.bucket)
	}
	if !exists {
		return errors.Errorf("minio bucket does not exist: %s", m.bucket)
	}
	return nil
}

func normaliseEndpoint(raw string, useSSL bool) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, errors.New("empty endpoint")
	}

	if !strings.Contains(raw, "://") {
		return raw, useSSL, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false, err
	}
	if u.Host == "" {
		return "", false, errors.New("invalid endpoint")
	}
	if u.Path != "" && u.Path != "/" {
		return "", false, errors.New("endpoint must not contain a path")
	}
	return u.Host, u.Scheme == "https", nil
}
