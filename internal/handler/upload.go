package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tush00nka/multipart_upload/internal/model"
	"tush00nka/multipart_upload/internal/pkg/httputils"
	"tush00nka/multipart_upload/internal/pkg/metrics"
	"tush00nka/multipart_upload/internal/service"
)

const (
	SingleFileField   = "filename"
	MultipleFileField = "filenames"

	successPrefix  = "Successfully uploaded - "
	failureMessage = "File upload attempt failed !!!"
)

type UploadOptions struct {
	// MaxUploadBytes caps the request body; 0 disables the cap.
	MaxUploadBytes int64
	// MultipartMemoryBytes is the part of the form kept in memory, the rest
	// spills to temporary files.
	MultipartMemoryBytes int64
}

type UploadHandler struct {
	uploadService service.UploadService
	opts          UploadOptions
	log           *zap.SugaredLogger
}

func NewUploadHandler(uploadService service.UploadService, opts UploadOptions, log *zap.SugaredLogger) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, opts: opts, log: log}
}

func (h *UploadHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/upload/single-file", h.uploadFile).Methods(http.MethodPost)
	router.HandleFunc("/upload/multiple-file", h.uploadFiles).Methods(http.MethodPost)
}

// @Summary Upload file
// @Description Store one file under a generated name
// @ID upload-single-file
// @Tags upload
// @Accept multipart/form-data
// @Produce plain
// @Param filename formData file true "File to upload"
// @Success 200 {string} string "Successfully uploaded - <filename>"
// @Failure 400 {string} string "File upload attempt failed !!!"
// @Failure 413 {string} string "File upload attempt failed !!!"
// @Failure 500 {string} string "File upload attempt failed !!!"
// @Router /upload/single-file [post]
func (h *UploadHandler) uploadFile(w http.ResponseWriter, r *http.Request) {
	headers, err := h.formFiles(w, r, SingleFileField)
	if err != nil {
		h.fail(w, r, "single-file", err)
		return
	}
	defer removeForm(r)

	file, err := openFile(headers[0])
	if err != nil {
		h.fail(w, r, "single-file", err)
		return
	}
	defer closeFile(file)

	artifact, err := h.uploadService.Upload(r.Context(), file)
	if err != nil {
		h.fail(w, r, "single-file", err)
		return
	}

	h.succeed(w, r, "single-file", []*model.Artifact{artifact})
}

// @Summary Upload files
// @Description Store every file of the request under generated names, in order
// @ID upload-multiple-file
// @Tags upload
// @Accept multipart/form-data
// @Produce plain
// @Param filenames formData file true "Files to upload (repeat the field)"
// @Success 200 {string} string "Successfully uploaded - <name1>, <name2>"
// @Failure 400 {string} string "File upload attempt failed !!!"
// @Failure 413 {string} string "File upload attempt failed !!!"
// @Failure 500 {string} string "File upload attempt failed !!!"
// @Router /upload/multiple-file [post]
func (h *UploadHandler) uploadFiles(w http.ResponseWriter, r *http.Request) {
	headers, err := h.formFiles(w, r, MultipleFileField)
	if err != nil {
		h.fail(w, r, "multiple-file", err)
		return
	}
	defer removeForm(r)

	files := make([]model.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		file, err := openFile(fh)
		if err != nil {
			h.fail(w, r, "multiple-file", err)
			return
		}
		defer closeFile(file)
		files = append(files, file)
	}

	artifacts, err := h.uploadService.UploadAll(r.Context(), files)
	if err != nil {
		h.fail(w, r, "multiple-file", err)
		return
	}

	h.succeed(w, r, "multiple-file", artifacts)
}

// formFiles parses the multipart body and returns the parts of field. An
// absent field yields ErrInvalidUpload.
func (h *UploadHandler) formFiles(w http.ResponseWriter, r *http.Request, field string) ([]*multipart.FileHeader, error) {
	if h.opts.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	}

	if err := r.ParseMultipartForm(h.opts.MultipartMemoryBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, errors.Wrapf(service.ErrUploadTooLarge, "limit %d bytes", maxErr.Limit)
		}
		return nil, errors.Wrapf(service.ErrInvalidUpload, "parse multipart form: %v", err)
	}

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		removeForm(r)
		return nil, errors.Wrapf(service.ErrInvalidUpload, "field %q is missing", field)
	}
	return headers, nil
}

func openFile(fh *multipart.FileHeader) (model.UploadedFile, error) {
	f, err := fh.Open()
	if err != nil {
		return model.UploadedFile{}, errors.Wrapf(err, "open part %q", fh.Filename)
	}
	return model.UploadedFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}, nil
}

func closeFile(file model.UploadedFile) {
	if c, ok := file.Content.(multipart.File); ok {
		_ = c.Close()
	}
}

func removeForm(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}

func (h *UploadHandler) succeed(w http.ResponseWriter, r *http.Request, endpoint string, artifacts []*model.Artifact) {
	names := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		names = append(names, a.Filename)
	}

	metrics.UploadsTotal.WithLabelValues(endpoint, "ok").Inc()
	h.log.Debugw("received files",
		"request_id", httputils.RequestIDFromContext(r.Context()),
		"endpoint", endpoint,
		"files", names,
	)

	httputils.ResponseText(w, http.StatusOK, successPrefix+strings.Join(names, ", "))
}

func (h *UploadHandler) fail(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	status, outcome := classify(err)
	metrics.UploadsTotal.WithLabelValues(endpoint, outcome).Inc()

	fields := []interface{}{
		"request_id", httputils.RequestIDFromContext(r.Context()),
		"endpoint", endpoint,
		"status", status,
		"error", err,
	}
	if status == http.StatusInternalServerError {
		h.log.Errorw("file upload failed", fields...)
	} else {
		h.log.Debugw("file upload rejected", fields...)
	}

	httputils.ResponseText(w, status, failureMessage)
}

func classify(err error) (status int, outcome string) {
	switch {
	case errors.Is(err, service.ErrInvalidUpload):
		return http.StatusBadRequest, "invalid"
	case errors.Is(err, service.ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge, "too_large"
	default:
		return http.StatusInternalServerError, "error"
	}
}
