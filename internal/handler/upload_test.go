package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tush00nka/multipart_upload/internal/model"
	"tush00nka/multipart_upload/internal/pkg/metrics"
	"tush00nka/multipart_upload/internal/pkg/storage"
	"tush00nka/multipart_upload/internal/service"
	"tush00nka/multipart_upload/internal/service/mock_service"
)

var defaultOpts = UploadOptions{MaxUploadBytes: 1 << 20, MultipartMemoryBytes: 1 << 20}

type part struct {
	field, name, body string
}

func multipartRequest(t *testing.T, path string, parts ...part) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		fw, err := mw.CreateFormFile(p.field, p.name)
		require.NoError(t, err)
		_, err = io.WriteString(fw, p.body)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newRouter(svc service.UploadService, opts UploadOptions) *mux.Router {
	router := mux.NewRouter()
	NewUploadHandler(svc, opts, zap.NewNop().Sugar()).RegisterRoutes(router)
	return router
}

func newLocalRouter(dir string, suppress bool, opts UploadOptions) *mux.Router {
	svc := service.NewUploadService(storage.NewLocal(dir), suppress, zap.NewNop().Sugar())
	return newRouter(svc, opts)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func storedFiles(t *testing.T, dir string) map[string]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	files := make(map[string]string, len(entries))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		files[e.Name()] = string(data)
	}
	return files
}

func TestUploadSingleFile(t *testing.T) {
	dir := t.TempDir()
	router := newLocalRouter(dir, false, defaultOpts)

	rr := serve(router, multipartRequest(t, "/upload/single-file", part{SingleFileField, "a.txt", "0123456789"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Successfully uploaded - a.txt", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))

	files := storedFiles(t, dir)
	require.Len(t, files, 1)
	for name, content := range files {
		assert.NotEqual(t, "a.txt", name)
		assert.Equal(t, "0123456789", content)
	}
}

func TestUploadSingleFileRejected(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{
			name: "missing field",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/upload/single-file", part{"other", "a.txt", "data"})
			},
		},
		{
			name: "empty file",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/upload/single-file", part{SingleFileField, "a.txt", ""})
			},
		},
		{
			name: "no parts",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/upload/single-file")
			},
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/upload/single-file", strings.NewReader(`{"filename":"a.txt"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			rr := serve(newLocalRouter(dir, false, defaultOpts), tt.req(t))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "File upload attempt failed !!!", rr.Body.String())
			assert.Empty(t, storedFiles(t, dir))
		})
	}
}

func TestUploadMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	router := newLocalRouter(dir, false, defaultOpts)

	rr := serve(router, multipartRequest(t, "/upload/multiple-file",
		part{MultipleFileField, "a.txt", "first"},
		part{MultipleFileField, "b.txt", "second"},
	))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Successfully uploaded - a.txt, b.txt", rr.Body.String())

	files := storedFiles(t, dir)
	require.Len(t, files, 2)

	var contents []string
	for _, c := range files {
		contents = append(contents, c)
	}
	assert.ElementsMatch(t, []string{"first", "second"}, contents)
}

func TestUploadMultipleFilesKeepsOrder(t *testing.T) {
	router := newLocalRouter(t.TempDir(), false, defaultOpts)

	rr := serve(router, multipartRequest(t, "/upload/multiple-file",
		part{MultipleFileField, "z.txt", "z"},
		part{MultipleFileField, "a.txt", "a"},
		part{MultipleFileField, "m.txt", "m"},
	))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Successfully uploaded - z.txt, a.txt, m.txt", rr.Body.String())
}

func TestUploadMultipleFilesRejected(t *testing.T) {
	dir := t.TempDir()
	router := newLocalRouter(dir, false, defaultOpts)

	rr := serve(router, multipartRequest(t, "/upload/multiple-file"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "File upload attempt failed !!!", rr.Body.String())

	rr = serve(router, multipartRequest(t, "/upload/multiple-file", part{SingleFileField, "a.txt", "data"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	assert.Empty(t, storedFiles(t, dir))
}

func TestUploadIsNotIdempotent(t *testing.T) {
	dir := t.TempDir()
	router := newLocalRouter(dir, false, defaultOpts)

	for i := 0; i < 2; i++ {
		rr := serve(router, multipartRequest(t, "/upload/single-file", part{SingleFileField, "a.txt", "same"}))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	assert.Len(t, storedFiles(t, dir), 2)
}

func TestUploadMissingStorageDir(t *testing.T) {
	t.Run("propagate", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")
		rr := serve(newLocalRouter(dir, false, defaultOpts),
			multipartRequest(t, "/upload/single-file", part{SingleFileField, "a.txt", "0123456789"}))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "File upload attempt failed !!!", rr.Body.String())
	})

	t.Run("suppress", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")
		rr := serve(newLocalRouter(dir, true, defaultOpts),
			multipartRequest(t, "/upload/single-file", part{SingleFileField, "a.txt", "0123456789"}))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Successfully uploaded - a.txt", rr.Body.String())

		_, err := os.Stat(dir)
		assert.True(t, os.IsNotExist(err), "nothing may be written")
	})
}

func TestUploadTooLarge(t *testing.T) {
	dir := t.TempDir()
	router := newLocalRouter(dir, false, UploadOptions{MaxUploadBytes: 1024, MultipartMemoryBytes: 1 << 20})

	rr := serve(router, multipartRequest(t, "/upload/single-file", part{SingleFileField, "big.bin", strings.Repeat("x", 4096)}))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, "File upload attempt failed !!!", rr.Body.String())
	assert.Empty(t, storedFiles(t, dir))
}

func TestUploadMethodNotAllowed(t *testing.T) {
	router := newLocalRouter(t.TempDir(), false, defaultOpts)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/upload/single-file", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = serve(router, httptest.NewRequest(http.MethodPut, "/upload/multiple-file", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestUploadErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", errors.Wrap(service.ErrInvalidUpload, "empty"), http.StatusBadRequest},
		{"too large", errors.Wrap(service.ErrUploadTooLarge, "limit"), http.StatusRequestEntityTooLarge},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mock_service.NewMockUploadService(ctrl)
			svc.EXPECT().UploadAll(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rr := serve(newRouter(svc, defaultOpts), multipartRequest(t, "/upload/multiple-file",
				part{MultipleFileField, "a.txt", "a"}))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "File upload attempt failed !!!", rr.Body.String())
		})
	}
}

func TestUploadPassesFileMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_service.NewMockUploadService(ctrl)
	svc.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, file model.UploadedFile) (*model.Artifact, error) {
			assert.Equal(t, "report.pdf", file.Filename)
			assert.Equal(t, "application/octet-stream", file.ContentType)
			assert.EqualValues(t, 5, file.Size)

			data, err := io.ReadAll(file.Content)
			require.NoError(t, err)
			assert.Equal(t, "%PDF-", string(data))

			return &model.Artifact{ID: "id", Filename: file.Filename, Stored: true}, nil
		})

	rr := serve(newRouter(svc, defaultOpts), multipartRequest(t, "/upload/single-file",
		part{SingleFileField, "report.pdf", "%PDF-"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Successfully uploaded - report.pdf", rr.Body.String())
}

func TestUploadRejectionLoggedAtDebug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	svc := service.NewUploadService(storage.NewLocal(t.TempDir()), false, zap.NewNop().Sugar())
	router := mux.NewRouter()
	NewUploadHandler(svc, defaultOpts, zap.New(core).Sugar()).RegisterRoutes(router)

	rr := serve(router, multipartRequest(t, "/upload/single-file", part{SingleFileField, "empty.txt", ""}))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	entries := logs.FilterMessage("file upload rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.EqualValues(t, http.StatusBadRequest, entries[0].ContextMap()["status"])
}

func TestUploadOutcomeMetrics(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		parts    []part
		dir      func(t *testing.T) string
		endpoint string
		outcome  string
	}{
		{
			name:     "single ok",
			path:     "/upload/single-file",
			parts:    []part{{SingleFileField, "a.txt", "data"}},
			dir:      func(t *testing.T) string { return t.TempDir() },
			endpoint: "single-file",
			outcome:  "ok",
		},
		{
			name:     "single invalid",
			path:     "/upload/single-file",
			parts:    []part{{SingleFileField, "a.txt", ""}},
			dir:      func(t *testing.T) string { return t.TempDir() },
			endpoint: "single-file",
			outcome:  "invalid",
		},
		{
			name:     "multiple ok",
			path:     "/upload/multiple-file",
			parts:    []part{{MultipleFileField, "a.txt", "a"}, {MultipleFileField, "b.txt", "b"}},
			dir:      func(t *testing.T) string { return t.TempDir() },
			endpoint: "multiple-file",
			outcome:  "ok",
		},
		{
			name:     "multiple storage error",
			path:     "/upload/multiple-file",
			parts:    []part{{MultipleFileField, "a.txt", "a"}},
			dir:      func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing") },
			endpoint: "multiple-file",
			outcome:  "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.UploadsTotal.WithLabelValues(tt.endpoint, tt.outcome)
			before := testutil.ToFloat64(counter)

			serve(newLocalRouter(tt.dir(t), false, defaultOpts), multipartRequest(t, tt.path, tt.parts...))

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestUploadTooLargeMetric(t *testing.T) {
	counter := metrics.UploadsTotal.WithLabelValues("single-file", "too_large")
	before := testutil.ToFloat64(counter)

	router := newLocalRouter(t.TempDir(), false, UploadOptions{MaxUploadBytes: 1024, MultipartMemoryBytes: 1 << 20})
	serve(router, multipartRequest(t, "/upload/single-file", part{SingleFileField, "big.bin", strings.Repeat("x", 4096)}))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
