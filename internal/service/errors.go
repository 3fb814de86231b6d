package service

import "github.com/pkg/errors"

var (
	// ErrInvalidUpload marks input problems: missing field, empty file, bad form.
	ErrInvalidUpload = errors.New("invalid upload")
	// ErrUploadTooLarge marks a request body above the configured limit.
	ErrUploadTooLarge = errors.New("upload too large")
)
