package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Usamos promauto para registrar as métricas automaticamente no registro
// padrão do Prometheus.
var (
	// http_requests_total conta as requisições recebidas pela API,
	// fatiadas por método, rota e status.
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Número total de requisições HTTP recebidas.",
		},
		[]string{"method", "path", "code"},
	)

	// http_request_duration_seconds mede a latência das requisições. As
	// rotas que falam com o Stripe dominam a cauda do histograma.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "code"},
	)
)

// prometheusMiddleware coleta as métricas de cada requisição.
func prometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// ResponseWriter embrulhado para capturar o status code.
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start).Seconds()
		statusCode := ww.Status()

		// Usamos o padrão da rota (ex: /api/cursos/{id}) para não criar
		// uma série por ID.
		routePattern := chi.RouteContext(r.Context()).RoutePattern()

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, strconv.Itoa(statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, strconv.Itoa(statusCode)).Observe(duration)
	})
}
