package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/kvm55/Covey/internal/application/usecase"
	"github.com/kvm55/Covey/internal/domain/service"
	"github.com/kvm55/Covey/internal/infrastructure/cache"
	"github.com/kvm55/Covey/internal/infrastructure/config"
	"github.com/kvm55/Covey/internal/infrastructure/kafka"
	"github.com/kvm55/Covey/internal/infrastructure/metrics"
	pgRepo "github.com/kvm55/Covey/internal/infrastructure/postgres"
	grpcPresentation "github.com/kvm55/Covey/internal/presentation/grpc"
	"github.com/kvm55/Covey/internal/presentation/rest"
	"github.com/kvm55/Covey/pkg/auth"
	pkgkafka "github.com/kvm55/Covey/pkg/kafka"
	"github.com/kvm55/Covey/pkg/observability"
	pkgpostgres "github.com/kvm55/Covey/pkg/postgres"
)

func main() {
	if err := run(); err != nil {
		slog.Error("underwriting-service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("starting underwriting-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Tracing is disabled when no collector endpoint is configured.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTELEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdownTracer(context.Background()) }() //nolint:errcheck // best-effort flush
	}

	// Metrics.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	underwritingMetrics := metrics.New(registry)
	meterProvider, metricsHandler, err := observability.InitMetrics(registry)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort flush

	// Database.
	dbCfg := pkgpostgres.Config{
		Host:            cfg.DB.Host,
		Port:            cfg.DB.Port,
		User:            cfg.DB.User,
		Password:        cfg.DB.Password,
		Database:        cfg.DB.Name,
		SSLMode:         cfg.DB.SSLMode,
		ApplicationName: cfg.ServiceName,
	}
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	dbCancel()
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if err := pkgpostgres.RunMigrations(dbCfg.DSN(), pgRepo.Migrations, pgRepo.MigrationsDir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Redis summary cache.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	summaryCache := cache.NewSummaryCache(rdb, cfg.Redis.SummaryTTL, logger)
	if err := summaryCache.Ping(ctx); err != nil {
		logger.Warn("redis unreachable, summary cache degraded", "addr", cfg.Redis.Addr, "error", err)
	}

	// Kafka.
	producer, err := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers:       cfg.Kafka.Brokers,
		ClientID:      cfg.Kafka.ClientID,
		SASLEnabled:   cfg.Kafka.SASLMechanism != "",
		SASLMechanism: cfg.Kafka.SASLMechanism,
		SASLUsername:  cfg.Kafka.SASLUsername,
		SASLPassword:  cfg.Kafka.SASLPassword,
		TLS:           cfg.Kafka.TLS,
	})
	if err != nil {
		return fmt.Errorf("create kafka producer: %w", err)
	}
	defer producer.Close()
	publisher := kafka.NewEventPublisher(producer, cfg.Kafka.Topic, logger)

	// Repositories and domain services.
	scenarioRepo := pgRepo.NewScenarioRepo(pool)
	propertyRepo := pgRepo.NewPropertyRepo(pool)
	engine := service.NewUnderwritingEngine()

	handler := grpcPresentation.NewUnderwritingHandler(grpcPresentation.UseCases{
		Run:             usecase.NewRunUnderwritingUseCase(engine, underwritingMetrics),
		Qualify:         usecase.NewQualifyCoveyDebtUseCase(engine, underwritingMetrics),
		Create:          usecase.NewCreateScenarioUseCase(scenarioRepo, propertyRepo, summaryCache, publisher, engine, underwritingMetrics),
		Update:          usecase.NewUpdateScenarioUseCase(scenarioRepo, propertyRepo, summaryCache, publisher, engine, underwritingMetrics),
		Delete:          usecase.NewDeleteScenarioUseCase(scenarioRepo, propertyRepo, summaryCache, publisher, underwritingMetrics),
		Promote:         usecase.NewPromoteScenarioUseCase(scenarioRepo, propertyRepo, summaryCache, publisher, underwritingMetrics),
		List:            usecase.NewListScenariosUseCase(scenarioRepo),
		GetPrimary:      usecase.NewGetPrimaryScenarioUseCase(scenarioRepo),
		CreateCoveyDebt: usecase.NewCreateCoveyDebtScenarioUseCase(scenarioRepo, publisher, engine, underwritingMetrics),
		Amortization:    usecase.NewGetAmortizationScheduleUseCase(scenarioRepo),
		Summary:         usecase.NewGetPropertySummaryUseCase(propertyRepo, summaryCache),
	}, logger)

	// JWT validation: public key preferred, secret as fallback.
	authCfg := auth.Config{Issuer: cfg.JWT.Issuer, Secret: cfg.JWT.Secret, PublicKeyPEM: cfg.JWT.PublicKey}
	if authCfg.PublicKeyPEM == "" && cfg.JWT.PublicKeyFile != "" {
		keyData, err := auth.LoadKeyFromFile(cfg.JWT.PublicKeyFile)
		if err != nil {
			return err
		}
		authCfg.PublicKeyPEM = string(keyData)
	}
	validator, err := auth.NewValidator(authCfg)
	if err != nil {
		return fmt.Errorf("init JWT validator: %w", err)
	}

	grpcServer, err := grpcPresentation.NewServer(handler, logger, validator, grpcPresentation.ServerConfig{
		ServiceName: cfg.ServiceName,
		TLSCertFile: cfg.GRPC.TLSCertFile,
		TLSKeyFile:  cfg.GRPC.TLSKeyFile,
		Reflection:  cfg.GRPC.Reflection,
	})
	if err != nil {
		return err
	}

	// HTTP server (probes and metrics).
	mux := http.NewServeMux()
	rest.NewHealthHandler(cfg.ServiceName, map[string]rest.Check{
		"postgres": func(ctx context.Context) error { return pkgpostgres.HealthCheck(ctx, pool) },
		"redis":    summaryCache.Ping,
	}, metricsHandler, logger).RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           rest.AccessLog(logger)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()
	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr = <-errCh:
		logger.Error("server error", "error", serveErr)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("underwriting-service stopped")
	return serveErr
}
