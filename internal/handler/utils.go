package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"tush00nka/multipart_upload/internal/pkg/httputils"
	"tush00nka/multipart_upload/internal/pkg/storage"
)

const healthCheckTimeout = 3 * time.Second

type PongResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Error   string `json:"error,omitempty"`
}

// Ping
// @Summary Ping the server
// @Tags system
// @Produce json
// @Success 200 {object} PongResponse
// @Router /ping [get]
func Ping(w http.ResponseWriter, r *http.Request) {
	httputils.ResponseJSON(w, http.StatusOK, PongResponse{Message: "Pong"})
}

type HealthHandler struct {
	storage storage.Storage
	log     *zap.SugaredLogger
}

func NewHealthHandler(st storage.Storage, log *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{storage: st, log: log}
}

func (h *HealthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/ping", Ping).Methods(http.MethodGet)
	router.HandleFunc("/health", h.health).Methods(http.MethodGet)
}

// @Summary Health check
// @Description Reports whether the storage backend is reachable
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Storage: h.storage.Name()}
	if err := h.storage.Check(ctx); err != nil {
		h.log.Warnw("storage health check failed", "storage", resp.Storage, "error", err)
		resp.Status = "unavailable"
		resp.Error = err.Error()
		httputils.ResponseJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, resp)
}
