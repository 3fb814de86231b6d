package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tush00nka/multipart_upload/internal/model"
	"tush00nka/multipart_upload/internal/pkg/metrics"
	"tush00nka/multipart_upload/internal/pkg/storage"
)

type uploadService struct {
	storage             storage.Storage
	suppressWriteErrors bool
	log                 *zap.SugaredLogger
	now                 func() time.Time
}

// NewUploadService returns an UploadService writing to st. With
// suppressWriteErrors a failed write is logged and the file is reported as
// uploaded with Stored set to false.
func NewUploadService(st storage.Storage, suppressWriteErrors bool, log *zap.SugaredLogger) UploadService {
	return &uploadService{
		storage:             st,
		suppressWriteErrors: suppressWriteErrors,
		log:                 log,
		now:                 time.Now,
	}
}

func (s *uploadService) Upload(ctx context.Context, file model.UploadedFile) (*model.Artifact, error) {
	if file.Content == nil {
		return nil, errors.Wrap(ErrInvalidUpload, "file is missing")
	}
	if file.Size == 0 {
		return nil, errors.Wrapf(ErrInvalidUpload, "file %q is empty", file.Filename)
	}

	return s.store(ctx, file)
}

func (s *uploadService) UploadAll(ctx context.Context, files []model.UploadedFile) ([]*model.Artifact, error) {
	if len(files) == 0 {
		return nil, errors.Wrap(ErrInvalidUpload, "no files")
	}

	artifacts := make([]*model.Artifact, 0, len(files))
	for i, file := range files {
		if file.Content == nil {
			return nil, errors.Wrapf(ErrInvalidUpload, "file %d is missing", i+1)
		}

		artifact, err := s.store(ctx, file)
		if err != nil {
			if len(artifacts) > 0 {
				s.log.Warnw("multi-file upload failed after partial success",
					"stored", len(artifacts), "total", len(files), "failed", file.Filename)
			}
			return nil, errors.Wrapf(err, "file %d of %d (%q)", i+1, len(files), file.Filename)
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func (s *uploadService) store(ctx context.Context, file model.UploadedFile) (*model.Artifact, error) {
	backend := s.storage.Name()
	artifact := &model.Artifact{
		Filename:    file.Filename,
		Size:        file.Size,
		ContentType: file.ContentType,
		Backend:     backend,
		CreatedAt:   s.now(),
	}

	obj, err := s.storage.Save(ctx, file.Content, file.Size, file.ContentType)
	if err != nil {
		metrics.StorageWritesTotal.WithLabelValues(backend, "error").Inc()
		if !s.suppressWriteErrors {
			return nil, errors.Wrap(err, "save")
		}

		metrics.SuppressedErrorsTotal.WithLabelValues(backend).Inc()
		s.log.Errorw("storage write failed, reporting success anyway",
			"filename", file.Filename, "backend", backend, "error", err)
		return artifact, nil
	}

	metrics.StorageWritesTotal.WithLabelValues(backend, "ok").Inc()
	if obj.Size > 0 {
		metrics.StorageBytesTotal.WithLabelValues(backend).Add(float64(obj.Size))
		artifact.Size = obj.Size
	}
	artifact.ID = obj.ID
	artifact.Location = obj.Location
	artifact.Stored = true

	s.log.Debugw("stored file", "filename", file.Filename, "id", obj.ID, "location", obj.Location, "size", artifact.Size)
	return artifact, nil
}
