package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "uploader"

var (
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "uploads_total",
		Help:      "Upload requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	StorageWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "writes_total",
		Help:      "Storage writes by backend and result",
	}, []string{"backend", "result"})

	StorageBytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "bytes_total",
		Help:      "Bytes written to storage",
	}, []string{"backend"})

	SuppressedErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "suppressed_errors_total",
		Help:      "Storage failures hidden from the client by the suppress policy",
	}, []string{"backend"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
