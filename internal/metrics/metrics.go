// Package metrics exposes Prometheus metrics and health checks for the
// holiday engine.
package metrics

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the resolution engine.
type Metrics struct {
	ResolutionsTotal *prometheus.CounterVec // labels: source=cache|remote|fallback
	RemoteFailures   prometheus.Counter
	ResolveDur       prometheus.Histogram
	WSClients        prometheus.Gauge
	HTTPRequests     *prometheus.CounterVec // labels: route, code
}

// New registers and returns all engine metrics.
func New() *Metrics {
	m := &Metrics{
		ResolutionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "holidays_resolutions_total",
			Help: "Completed resolutions by data source",
		}, []string{"source"}),
		RemoteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "holidays_remote_failures_total",
			Help: "Whole-range remote fetch attempts that failed and fell back",
		}),
		ResolveDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "holidays_resolve_duration_seconds",
			Help:    "Resolution latency (cache hits excluded)",
			Buckets: prometheus.DefBuckets,
		}),
		WSClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "holidays_ws_clients",
			Help: "Connected WebSocket refresh-feed clients",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "holidays_http_requests_total",
			Help: "API requests by route and status code",
		}, []string{"route", "code"}),
	}

	prometheus.MustRegister(
		m.ResolutionsTotal,
		m.RemoteFailures,
		m.ResolveDur,
		m.WSClients,
		m.HTTPRequests,
	)
	return m
}

// HealthStatus tracks dependency liveness.
type HealthStatus struct {
	mu sync.RWMutex

	RedisEnabled     bool
	RedisConnected   bool
	RedisLatencyMs   float64
	JournalOK        bool
	JournalLatencyMs float64
	LastCheckAt      time.Time
	StartedAt        time.Time
}

// NewHealthStatus returns a default health status.
func NewHealthStatus(redisEnabled bool) *HealthStatus {
	return &HealthStatus{
		RedisEnabled: redisEnabled,
		JournalOK:    true,
		StartedAt:    time.Now(),
	}
}

// CheckRedis pings Redis and records latency + connectivity.
func (h *HealthStatus) CheckRedis(ctx context.Context, rdb *goredis.Client) {
	start := time.Now()
	err := rdb.Ping(ctx).Err()
	latency := time.Since(start)

	h.mu.Lock()
	h.RedisConnected = err == nil
	h.RedisLatencyMs = float64(latency.Microseconds()) / 1000.0
	h.LastCheckAt = time.Now()
	h.mu.Unlock()
}

// CheckJournal pings the journal database and records latency + health.
func (h *HealthStatus) CheckJournal(ctx context.Context, db *sql.DB) {
	start := time.Now()
	err := db.PingContext(ctx)
	latency := time.Since(start)

	h.mu.Lock()
	h.JournalOK = err == nil
	h.JournalLatencyMs = float64(latency.Microseconds()) / 1000.0
	h.LastCheckAt = time.Now()
	h.mu.Unlock()
}

// StartLivenessChecker runs periodic dependency checks.
func (h *HealthStatus) StartLivenessChecker(ctx context.Context, rdb *goredis.Client, db *sql.DB, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
				if rdb != nil {
					h.CheckRedis(probeCtx, rdb)
				}
				if db != nil {
					h.CheckJournal(probeCtx, db)
				}
				cancel()
			}
		}
	}()
}

// ServeHTTP handles the /healthz endpoint.
func (h *HealthStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	overall := "healthy"
	code := http.StatusOK
	if (h.RedisEnabled && !h.RedisConnected) || !h.JournalOK {
		overall = "degraded"
		code = http.StatusServiceUnavailable
	}

	status := struct {
		Status         string  `json:"status"`
		Uptime         string  `json:"uptime"`
		RedisEnabled   bool    `json:"redis_enabled"`
		RedisConnected bool    `json:"redis_connected"`
		RedisLatencyMs float64 `json:"redis_latency_ms"`
		JournalOK      bool    `json:"journal_ok"`
		LastCheckAt    string  `json:"last_check_at"`
	}{
		Status:         overall,
		Uptime:         time.Since(h.StartedAt).Round(time.Second).String(),
		RedisEnabled:   h.RedisEnabled,
		RedisConnected: h.RedisConnected,
		RedisLatencyMs: h.RedisLatencyMs,
		JournalOK:      h.JournalOK,
		LastCheckAt:    h.LastCheckAt.Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if code != http.StatusOK {
		w.WriteHeader(code)
	}
	json.NewEncoder(w).Encode(status)
}

// Server runs an HTTP server exposing /metrics and /healthz.
type Server struct {
	addr string
	srv  *http.Server
}

// NewServer creates a metrics and health server.
func NewServer(addr string, health *HealthStatus) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", health.ServeHTTP)

	return &Server{
		addr: addr,
		srv:  &http.Server{Addr: addr, Handler: mux},
	}
}

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		log.Printf("[metrics] server listening on %s", s.addr)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("[metrics] server error: %v", err)
		}
	}()
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) {
	s.srv.Shutdown(ctx)
}
