package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cadence-workers/internal/common/camunda"
	"cadence-workers/internal/common/config"
	"cadence-workers/internal/common/database"
	"cadence-workers/internal/common/genai"
	"cadence-workers/internal/common/logger"
	"cadence-workers/internal/planner"
	"cadence-workers/internal/store"
	gc "cadence-workers/internal/workers/outreach/generate-cadence"
	"cadence-workers/pkg/catalog"
)

func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting cadence worker manager",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	// Fail fast on missing credentials before touching any network.
	if err := cfg.Validate(); err != nil {
		zapLog.Fatal("configuration invalid", zap.Error(err))
	}

	ctx := context.Background()

	// --- Zeebe ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	defer zeebe.Close()
	zapLog.Info("zeebe connected")

	// --- PostgreSQL ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("postgres connected")

	// --- Redis (lead cache; the pipeline degrades without it) ---
	rdb, err := database.NewRedis(cfg.Database.Redis)
	if err != nil || rdb.Ping(ctx) != nil {
		zapLog.Warn("redis unavailable, lead cache disabled")
		rdb = nil
	} else {
		defer rdb.Close()
		zapLog.Info("redis connected")
	}

	// --- Elasticsearch (advisory archive, optional) ---
	var es *database.ElasticsearchClient
	if cfg.Database.Elasticsearch.Enabled() {
		es, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil || es.Ping() != nil {
			zapLog.Warn("elasticsearch unavailable, advisory indexing disabled")
			es = nil
		} else {
			zapLog.Info("elasticsearch connected")
		}
	}

	// --- Wiring ---
	leadStore := store.NewLeadStore(pg.GetDB(), redisOrNil(rdb), log)
	cadenceStore := store.NewCadenceStore(pg.GetDB(), log)
	plan := planner.New(genai.NewClient(cfg.Planner), log)
	if cfg.Planner.TemplateCatalog != "" {
		cat, err := catalog.Load(cfg.Planner.TemplateCatalog)
		if err != nil {
			zapLog.Warn("template catalog unreadable, planner will improvise template names",
				zap.String("path", cfg.Planner.TemplateCatalog), zap.Error(err))
		} else {
			plan.UseTemplates(cat.Names())
			zapLog.Info("template catalog loaded",
				zap.String("version", cat.Version), zap.Int("templates", len(cat.Templates)))
		}
	}

	workerCfg := gc.LoadConfig()
	workerCfg.AdvisoryIndex = cfg.Database.Elasticsearch.AdvisoryIndex
	if wc, ok := cfg.Workers[gc.TaskType]; ok && wc.Timeout > 0 {
		workerCfg.Timeout = time.Duration(wc.Timeout) * time.Millisecond
	}

	var indexer gc.AdvisoryIndexer
	if es != nil {
		indexer = es
	}

	handler := gc.NewHandler(workerCfg, leadStore, plan, cadenceStore, indexer, log)

	maxJobs := cfg.Camunda.MaxJobsActive
	if wc, ok := cfg.Workers[gc.TaskType]; ok && wc.MaxJobsActive > 0 {
		maxJobs = wc.MaxJobsActive
	}
	w := camunda.NewWorker(zeebe.GetClient(), gc.TaskType, maxJobs, handler, zapLog)

	// --- Ops endpoint: metrics + pprof ---
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.Handle("/debug/pprof/", http.DefaultServeMux)
		addr := fmt.Sprintf(":%d", cfg.Ops.Port)
		zapLog.Info("ops endpoint listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			zapLog.Error("ops endpoint failed", zap.Error(err))
		}
	}()

	// --- Shutdown ---
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	zapLog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	w.Stop(shutdownCtx)
}

func redisOrNil(c *database.RedisClient) *redis.Client {
	if c == nil {
		return nil
	}
	return c.GetClient()
}
