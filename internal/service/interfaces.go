package service

//go:generate mockgen -package mock_service -destination mock_service/service.go tush00nka/multipart_upload/internal/service UploadService

import (
	"context"

	"tush00nka/multipart_upload/internal/model"
)

type UploadService interface {
	// Upload stores a single non-empty file.
	Upload(ctx context.Context, file model.UploadedFile) (*model.Artifact, error)
	// UploadAll stores files one by one in input order and stops at the first
	// failure. Files stored before the failure are kept.
	UploadAll(ctx context.Context, files []model.UploadedFile) ([]*model.Artifact, error)
}
