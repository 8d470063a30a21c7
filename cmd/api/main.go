package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/roster/internal/api"
	"example.com/roster/internal/config"
	"example.com/roster/internal/domain"
	"example.com/roster/internal/observability"
	"example.com/roster/internal/outbox"
	"example.com/roster/internal/persistence/postgres"
	"example.com/roster/internal/roster"
	httptransport "example.com/roster/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "[roster-api] ", log.LstdFlags)
	opts := []domain.Option{
		domain.WithRecorder(observability.Recorder{}),
		domain.WithLogger(logger),
	}

	var dispatcher *outbox.Dispatcher
	if cfg.EventsEnabled {
		pool, err := postgres.Connect(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}

		producer := outbox.NewKafkaProducer(cfg.KafkaBrokers,
			outbox.WithBatchTimeout(cfg.KafkaBatchTimeout),
			outbox.WithAutoCreateTopics(cfg.KafkaAutoCreate),
		)
		defer producer.Close()

		registry := outbox.NewSchemaRegistryClient(cfg.SchemaRegistryURL)
		dispatcher = outbox.NewDispatcher(pool, producer, registry, cfg.OutboxPollInterval, cfg.OutboxBatchSize)
		go dispatcher.Start(ctx)

		opts = append(opts, domain.WithPublisher(outbox.NewRecorder(pool)))
		logger.Printf("roster events enabled (brokers=%v)", cfg.KafkaBrokers)
	}

	service := domain.NewService(roster.NewSeededMemoryStore(), opts...)

	mux := http.NewServeMux()
	api.NewHandler(service, cfg.FrontendEntry).RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := httptransport.Chain(mux,
		httptransport.RequestID(),
		httptransport.AccessLog(logger),
		httptransport.CORS(cfg.CORSAllowedOrigin),
	)

	srvCfg := httptransport.ServerConfig{
		Address:         cfg.HTTPAddress,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 15 * time.Second,
	}
	server := httptransport.NewServer(srvCfg, handler)

	logger.Printf("roster-api listening on %s", cfg.HTTPAddress)
	if err := httptransport.Serve(ctx, server, srvCfg.ShutdownTimeout); err != nil {
		logger.Printf("server error: %v", err)
	}
	stop()

	if dispatcher != nil {
		dispatcher.Wait()
	}
}
