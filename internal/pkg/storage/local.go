package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Local stores artifacts as plain files inside baseDir.
type Local struct {
	baseDir string
	newID   IDGenerator
}

type LocalOption func(*Local)

func WithIDGenerator(gen IDGenerator) LocalOption {
	return func(l *Local) {
		l.newID = gen
	}
}

// NewLocal does not touch the filesystem. A missing baseDir surfaces as an
// error on the first Save; see PrepareDir for startup checks.
func NewLocal(baseDir string, opts ...LocalOption) *Local {
	l := &Local{baseDir: baseDir, newID: defaultID}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Local) Name() string {
	return "local"
}

func (l *Local) Save(ctx context.Context, content io.Reader, size int64, contentType string) (Object, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	id := l.newID()
	path := filepath.Join(l.baseDir, id)

	// O_EXCL: never overwrite an existing artifact
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return Object{}, errors.Wrapf(err, "create %s", path)
	}

	written, err := io.Copy(f, content)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return Object{}, errors.Wrapf(err, "write %s", path)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return Object{}, errors.Wrapf(err, "close %s", path)
	}

	return Object{ID: id, Location: path, Size: written}, nil
}

func (l *Local) Check(ctx context.Context) error {
	info, err := os.Stat(l.baseDir)
	if err != nil {
		return errors.Wrap(err, "storage directory")
	}
	if !info.IsDir() {
		return errors.Errorf("storage path %s is not a directory", l.baseDir)
	}
	return nil
}

// PrepareDir validates the storage directory at startup and creates it when
// create is set.
func PrepareDir(dir string, create bool) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return errors.Errorf("storage path %s is not a directory", dir)
		}
		return nil
	case !os.IsNotExist(err):
		return errors.Wrapf(err, "stat %s", dir)
	case !create:
		return errors.Errorf("storage directory %s does not exist", dir)
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create storage directory %s", dir)
	}
	return nil
}
