package app

import (
	"context"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"tush00nka/multipart_upload/internal/config"
	"tush00nka/multipart_upload/internal/handler"
	"tush00nka/multipart_upload/internal/pkg/httputils"
	"tush00nka/multipart_upload/internal/pkg/logging"
	"tush00nka/multipart_upload/internal/pkg/metrics"
)

type Server struct {
	router *mux.Router
	cfg    *config.Config
	log    *zap.SugaredLogger
}

func NewServer(cfg *config.Config, log *zap.SugaredLogger, uploadHandler *handler.UploadHandler, healthHandler *handler.HealthHandler) *Server {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.ResponseError(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.ResponseError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Routes
	uploadHandler.RegisterRoutes(router)
	healthHandler.RegisterRoutes(router)

	if cfg.MetricsEnabled {
		router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	}

	if cfg.SwaggerEnabled {
		// doc.json is served from the registered docs package
		router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	return &Server{router: router, cfg: cfg, log: log}
}

// Handler returns the router wrapped in the middleware chain:
// proxy headers -> request id -> access log -> recovery -> CORS -> router.
func (s *Server) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins(s.cfg.CORSAllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", httputils.RequestIDHeader}),
		handlers.ExposedHeaders([]string{httputils.RequestIDHeader}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(logging.RecoveryLogger{SugaredLogger: s.log}),
		handlers.PrintRecoveryStack(true),
	)

	var h http.Handler = s.router
	h = cors(h)
	h = recovery(h)
	h = httputils.AccessLog(s.log)(h)
	h = httputils.RequestID(h)
	h = handlers.ProxyHeaders(h)
	return h
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		Addr:         ":" + s.cfg.ServerPort,
		WriteTimeout: s.cfg.WriteTimeout,
		ReadTimeout:  s.cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("server starting", "port", s.cfg.ServerPort)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.log.Infow("shutting down", "timeout", s.cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		s.log.Info("shutdown complete")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	}
}
