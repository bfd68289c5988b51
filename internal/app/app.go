package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/auth"
	healthcheck "github.com/vladislavdragonenkov/wholesale-orders/internal/health"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/metrics"
	grpcsvc "github.com/vladislavdragonenkov/wholesale-orders/internal/service/grpc"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/service/orders"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/service/outbox"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/transport/httpapi"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/version"
	ordersv1 "github.com/vladislavdragonenkov/wholesale-orders/proto/orders/v1"
)

const shutdownTimeout = 5 * time.Second

// Run поднимает gRPC, HTTP API и сервер метрик и блокируется до отмены ctx.
// Штатная остановка возвращает ctx.Err().
func Run(ctx context.Context, cfg Config) error {
	configureLogging(cfg)
	logger := log.WithField("component", "app")
	logger.WithFields(version.Current().Fields()).Info("starting wholesale order service")

	deps, err := initRuntimeDependencies(ctx, cfg, logger.WithField("layer", "storage"))
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.close(); err != nil {
			logger.WithError(err).Warn("failed to close storage")
		}
	}()

	tokens, err := auth.NewTokens(cfg.JWTSecret, auth.WithTTL(cfg.JWTTTL), auth.WithIssuer(cfg.JWTIssuer))
	if err != nil {
		return err
	}

	numbers, err := orders.NewNumberGenerator(cfg.NumberStrategy, deps.repo, time.Now)
	if err != nil {
		return err
	}

	orderService := orders.NewService(
		deps.repo,
		orders.WithTimeline(deps.timelineRepo),
		orders.WithOutbox(deps.outboxRepo),
		orders.WithNumberGenerator(numbers),
		orders.WithMetrics(metrics.NewOrderMetrics()),
		orders.WithLogger(logger.WithField("layer", "service")),
	)

	grpcMetrics := promgrpc.NewServerMetrics()
	if err := prometheus.Register(grpcMetrics); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*promgrpc.ServerMetrics); ok {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcMetrics.UnaryServerInterceptor(),
		auth.UnaryServerInterceptor(tokens, healthpb.Health_Check_FullMethodName),
	))
	ordersv1.RegisterOrderServiceServer(grpcServer, grpcsvc.NewOrderService(orderService, logger.WithField("layer", "grpc")))
	grpcMetrics.InitializeMetrics(grpcServer)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ordersv1.OrderService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	healthHandler := healthcheck.NewHandler(version.Release())
	if deps.storageChecker != nil {
		healthHandler.RegisterChecker("storage", deps.storageChecker)
	}
	if deps.cacheChecker != nil {
		healthHandler.RegisterChecker("cache", deps.cacheChecker)
	}

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	producer, stopOutbox := startOutbox(ctx, cfg, deps, logger)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		stopOutbox()
		closeKafka(producer, logger)
		shutdownHTTP(metricsSrv, logger)
		return err
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Infof("gRPC сервер слушает %s", cfg.GRPCAddr)
		errCh <- grpcServer.Serve(lis)
	}()

	var apiServer *httpapi.Server
	if cfg.HTTPAddr != "" {
		router := httpapi.NewRouter(orderService, tokens, logger.WithField("layer", "http"),
			httpapi.WithMetrics(metrics.NewHTTPMetrics(nil)))
		apiServer, err = httpapi.NewServer(cfg.HTTPAddr, router, logger.WithField("layer", "http"))
		if err != nil {
			grpcServer.Stop()
			stopOutbox()
			closeKafka(producer, logger)
			shutdownHTTP(metricsSrv, logger)
			return err
		}
		go func() {
			if err := apiServer.Run(); err != nil {
				errCh <- err
			}
		}()
	}

	shutdown := func() {
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		stopGRPC(grpcServer, logger)
		if apiServer != nil {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			if err := apiServer.Close(closeCtx); err != nil {
				logger.WithError(err).Warn("http api shutdown with error")
			}
			cancel()
		}
		stopOutbox()
		closeKafka(producer, logger)
		shutdownHTTP(metricsSrv, logger)
	}

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем серверы")
		shutdown()
		return ctx.Err()
	case err := <-errCh:
		shutdown()
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

// startOutbox запускает outbox worker, если Kafka настроена.
// Возвращаемая функция останавливает воркер и дожидается его завершения.
func startOutbox(ctx context.Context, cfg Config, deps runtimeDependencies, logger *log.Entry) (*kafka.Producer, func()) {
	producer, err := connectKafka(cfg, logger)
	if err != nil || producer == nil {
		return nil, func() {}
	}

	worker := outbox.NewWorker(
		deps.outboxRepo,
		kafka.NewTopicPublisher(producer, cfg.OutboxTopic),
		outbox.WithDLQPublisher(kafka.NewTopicPublisher(producer, cfg.OutboxDLQTopic)),
		outbox.WithPollInterval(cfg.OutboxPollInterval),
		outbox.WithBatchSize(cfg.OutboxBatchSize),
		outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
		outbox.WithRetryDelay(cfg.OutboxRetryDelay),
		outbox.WithMetrics(metrics.NewOutboxMetrics(nil)),
		outbox.WithLogger(logger.WithField("layer", "outbox")),
	)

	workerCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.Run(workerCtx)
	}()

	return producer, func() { shutdownOutboxWorker(cancel, done, logger) }
}

func shutdownOutboxWorker(cancel context.CancelFunc, done <-chan struct{}, logger *log.Entry) {
	if cancel == nil {
		return
	}
	cancel()
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info("outbox worker stopped")
	case <-time.After(shutdownTimeout):
		logger.Warn("outbox worker did not stop in time")
	}
}

func stopGRPC(server *grpc.Server, logger *log.Entry) {
	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
		server.Stop()
	}
}

// opsMux - служебные эндпоинты: метрики и пробы оркестратора.
func opsMux(gatherer prometheus.Gatherer, healthHandler *healthcheck.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.Handle("GET /healthz", healthHandler)
	mux.HandleFunc("GET /livez", healthcheck.LivenessHandler)
	mux.HandleFunc("GET /readyz", healthHandler.ReadinessHandler)
	return mux
}

// startMetricsServer поднимает opsMux на addr и гасит его при отмене ctx.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           opsMux(prometheus.DefaultGatherer, healthHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez, %s/readyz", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}
