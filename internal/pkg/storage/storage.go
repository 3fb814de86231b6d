// Package storage writes uploaded content under generated identifiers.
//
// Every backend names an object by a fresh random UUID and never by anything
// the client sent. Write failures are always returned to the caller.
package storage

//go:generate mockgen -package mock_storage -destination mock_storage/storage.go tush00nka/multipart_upload/internal/pkg/storage Storage

import (
	"context"
	"io"

	"github.com/google/uuid"
)

type Storage interface {
	// Save writes content under a new identifier. size may be -1 when unknown.
	Save(ctx context.Context, content io.Reader, size int64, contentType string) (Object, error)
	// Check reports whether the backend is reachable and writable.
	Check(ctx context.Context) error
	Name() string
}

// Object is the result of a successful Save.
type Object struct {
	ID       string
	Location string
	Size     int64
}

// IDGenerator returns a new storage identifier.
type IDGenerator func() string

func defaultID() string {
	return uuid.New().String()
}
