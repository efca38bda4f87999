package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled API requests by method and route.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pipeadmin_http_requests_total",
		Help: "Handled HTTP API requests.",
	}, []string{"method", "route", "status"})

	// ReportsGenerated counts exported report documents by kind and format.
	ReportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pipeadmin_reports_generated_total",
		Help: "Generated report documents.",
	}, []string{"kind", "format"})
)
