package model

import (
	"io"
	"time"
)

// UploadedFile is a single multipart file part. It only lives for the duration
// of the request that carried it.
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Artifact describes the stored copy of an UploadedFile. ID is the storage name
// and has no relation to Filename, which is kept for display only.
type Artifact struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Location    string    `json:"location"`
	Backend     string    `json:"backend"`
	Stored      bool      `json:"stored"`
	CreatedAt   time.Time `json:"created_at"`
}
