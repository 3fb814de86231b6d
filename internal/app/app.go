package app

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tush00nka/multipart_upload/internal/config"
	"tush00nka/multipart_upload/internal/handler"
	"tush00nka/multipart_upload/internal/pkg/storage"
	"tush00nka/multipart_upload/internal/service"
)

// New wires storage, service and handlers into a Server.
func New(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*Server, error) {
	st, err := NewStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Infow("storage ready",
		"backend", st.Name(),
		"write_errors", cfg.StorageWriteErrors,
	)

	uploadService := service.NewUploadService(st, cfg.SuppressWriteErrors(), log.Named("upload"))
	uploadHandler := handler.NewUploadHandler(uploadService, handler.UploadOptions{
		MaxUploadBytes:       cfg.MaxUploadBytes,
		MultipartMemoryBytes: cfg.MultipartMemoryBytes,
	}, log.Named("handler"))
	healthHandler := handler.NewHealthHandler(st, log.Named("health"))

	return NewServer(cfg, log, uploadHandler, healthHandler), nil
}

func Run(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	server, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	return server.Run(ctx)
}

// NewStorage builds the backend selected by STORAGE_BACKEND. The local
// directory is validated, and created if allowed, before anything is served.
func NewStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	s3cfg := storage.S3Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Prefix:          cfg.S3Prefix,
	}

	switch cfg.StorageBackend {
	case config.BackendLocal:
		if err := storage.PrepareDir(cfg.StorageDir, cfg.StorageCreateDir); err != nil {
			return nil, err
		}
		return storage.NewLocal(cfg.StorageDir), nil
	case config.BackendS3:
		st, err := storage.NewS3(ctx, s3cfg)
		if err != nil {
			return nil, err
		}
		return st, nil
	case config.BackendMinio:
		st, err := storage.NewMinio(s3cfg, cfg.S3UseSSL)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, errors.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}
