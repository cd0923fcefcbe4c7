package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/yzho285/public-holidays-display/config"
	"github.com/yzho285/public-holidays-display/internal/api"
	"github.com/yzho285/public-holidays-display/internal/cache"
	"github.com/yzho285/public-holidays-display/internal/gateway"
	"github.com/yzho285/public-holidays-display/internal/journal"
	"github.com/yzho285/public-holidays-display/internal/logger"
	"github.com/yzho285/public-holidays-display/internal/metrics"
	"github.com/yzho285/public-holidays-display/internal/remote"
	"github.com/yzho285/public-holidays-display/internal/resolver"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Println("[server] starting...")

	cfg := config.Load()
	slogger := logger.Init("holidays-engine", slog.LevelInfo)

	// ---- Metrics & health ----
	prom := metrics.New()
	health := metrics.NewHealthStatus(cfg.CacheBackend == "redis")
	metricsSrv := metrics.NewServer(cfg.MetricsAddr, health)
	metricsSrv.Start()

	// ---- Graceful shutdown context ----
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// ---- Cache backend ----
	var store cache.Cache
	var redisClient *goredis.Client
	switch cfg.CacheBackend {
	case "redis":
		rc, err := cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		}, time.Now)
		if err != nil {
			log.Printf("[server] WARNING: redis cache init failed: %v (using memory cache)", err)
			store = cache.NewMemory(time.Now)
		} else {
			store = rc
			redisClient = rc.Client()
		}
	default:
		store = cache.NewMemory(time.Now)
	}

	// ---- Resolution journal ----
	var jnl *journal.Journal
	if cfg.JournalPath != "" {
		os.MkdirAll(filepath.Dir(cfg.JournalPath), 0o755)
		j, err := journal.New(cfg.JournalPath)
		if err != nil {
			log.Printf("[server] WARNING: journal init failed: %v (auditing disabled)", err)
		} else {
			jnl = j
			defer jnl.Close()
		}
	}

	// ---- Refresh feed ----
	hub := gateway.NewHub()

	// ---- Resolver ----
	fetcher := remote.NewClient(remote.ClientConfig{
		BaseURL: cfg.RemoteBaseURL,
		Timeout: cfg.RemoteTimeout,
	})
	svc := resolver.New(resolver.Config{
		Fetcher: fetcher,
		Cache:   store,
		TTL:     cfg.CacheTTL,
		Notify: func(e resolver.Event) {
			prom.ResolutionsTotal.WithLabelValues(string(e.Source)).Inc()
			prom.ResolveDur.Observe(e.Duration.Seconds())
			if e.Source == resolver.SourceFallback {
				prom.RemoteFailures.Inc()
			}
			if jnl != nil {
				if err := jnl.Record(e); err != nil {
					log.Printf("[server] journal write failed: %v", err)
				}
			}
			hub.BroadcastRefresh(e)
			prom.WSClients.Set(float64(hub.ClientCount()))
		},
	})

	// ---- Liveness checks ----
	var journalDB *sql.DB
	if jnl != nil {
		journalDB = jnl.DB()
	}
	if redisClient != nil || journalDB != nil {
		health.StartLivenessChecker(ctx, redisClient, journalDB, 30*time.Second)
	}

	// ---- HTTP API ----
	apiSrv := api.New(api.Config{
		Resolver: svc,
		Journal:  jnl,
		Hub:      hub,
		Metrics:  prom,
		Logger:   slogger,
	})
	httpSrv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: apiSrv.Router(),
	}
	go func() {
		log.Printf("[server] api listening on %s", cfg.ListenAddr)
		if err := httpSrv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[server] api server error: %v", err)
		}
	}()

	<-sigCh
	log.Println("[server] shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpSrv.Shutdown(shutdownCtx)
	metricsSrv.Stop(shutdownCtx)
	log.Println("[server] bye")
}
