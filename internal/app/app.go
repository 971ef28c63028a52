package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/t-suguru/book-management/config"
	"github.com/t-suguru/book-management/db"
	"github.com/t-suguru/book-management/internal/controller"
	"github.com/t-suguru/book-management/internal/entity"
	"github.com/t-suguru/book-management/internal/usecase/library"
	"github.com/t-suguru/book-management/internal/usecase/outbox"
	"github.com/t-suguru/book-management/internal/usecase/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"
)

const (
	shutDownSeconds        = 3
	dialerTimeoutSeconds   = 30
	dialerKeepAliveSeconds = 180
	transportMaxIdleConns  = 100
	transportMaxConnsPerHost
	transportIdleConnTimeoutSeconds       = 90
	transportTLSHandshakeTimeoutSeconds   = 15
	transportExpectContinueTimeoutSeconds = 2
)

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
	if err != nil {
		logger.Error("can not create pgxpool", zap.Error(err))
		return
	}
	defer dbPool.Close()
	db.SetupPostgres(dbPool, logger)

	shutdownTracing := setupTracing(cfg, logger)
	defer shutdownTracing()

	repo := repository.New(layerLogger(logger, cfg.Log.LogDBRepo), dbPool)
	outboxRepository := repository.NewOutbox(dbPool, cfg.Outbox.AttemptsRetry)
	transactor := repository.NewTransactor(layerLogger(logger, cfg.Log.LogTransactor), dbPool)

	runOutbox(ctx, cfg, logger, outboxRepository, transactor)

	useCases := library.New(layerLogger(logger, cfg.Log.LogUseCase), repo, repo, outboxRepository, transactor)
	ctrl := controller.New(layerLogger(logger, cfg.Log.LogController), useCases, useCases, useCases)

	go runHTTP(ctx, cfg, logger, ctrl)
	go runMetrics(cfg, logger)

	<-ctx.Done()
	time.Sleep(time.Second * shutDownSeconds)
}

func layerLogger(logger *zap.Logger, enabled bool) *zap.Logger {
	if !enabled {
		return nil
	}
	return logger
}

func setupTracing(cfg *config.Config, logger *zap.Logger) func() {
	if cfg.Observability.JaegerURL == "" {
		return func() {}
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.Observability.JaegerURL)))
	if err != nil {
		logger.Error("can not create jaeger exporter", zap.Error(err))
		return func() {}
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("book-management"),
		)),
	)
	otel.SetTracerProvider(provider)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*shutDownSeconds)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Error("can not shutdown tracer provider", zap.Error(err))
		}
	}
}

func runOutbox(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	outboxRepository library.OutboxRepository,
	transactor repository.Transactor,
) {
	if !cfg.Outbox.Enabled {
		return
	}

	dialer := &net.Dialer{
		Timeout:   dialerTimeoutSeconds * time.Second,
		KeepAlive: dialerKeepAliveSeconds * time.Second,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          transportMaxIdleConns,
		MaxConnsPerHost:       transportMaxConnsPerHost,
		IdleConnTimeout:       transportIdleConnTimeoutSeconds * time.Second,
		TLSHandshakeTimeout:   transportTLSHandshakeTimeoutSeconds * time.Second,
		ExpectContinueTimeout: transportExpectContinueTimeoutSeconds * time.Second,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}

	client := new(http.Client)
	client.Transport = transport

	globalHandler := globalOutboxHandler(client, cfg.Outbox.AuthorSendURL, cfg.Outbox.BookSendURL)

	outboxService := outbox.New(layerLogger(logger, cfg.Log.LogOutboxWorker), outboxRepository, globalHandler, cfg, transactor)

	outboxService.Start(
		ctx,
		cfg.Outbox.Workers,
		cfg.Outbox.BatchSize,
		cfg.Outbox.WaitTimeMS,
		cfg.Outbox.InProgressTTLMS,
	)
}

func globalOutboxHandler(
	client *http.Client,
	authorURL,
	bookURL string,
) outbox.GlobalHandler {
	return func(kind repository.OutboxKind) (outbox.KindHandler, error) {
		switch kind {
		case repository.OutboxKindAuthor:
			return authorOutboxHandler(client, authorURL), nil
		case repository.OutboxKindBook:
			return bookOutboxHandler(client, bookURL), nil
		default:
			return nil, fmt.Errorf("unsupported outbox kind: %d", kind)
		}
	}
}

const contentType = "application/json"

var errFailRequest = errors.New("Not 2xx response")

const statusOk = 2

func authorOutboxHandler(client *http.Client, url string) outbox.KindHandler {
	return func(_ context.Context, data []byte) error {
		author := entity.Author{}
		err := json.Unmarshal(data, &author)

		if err != nil {
			return fmt.Errorf("can not deserialize data in author outbox handler: %w", err)
		}

		response, err := client.Post(url, contentType, strings.NewReader(author.ID))
		if err != nil {
			return fmt.Errorf("can not make post request to given url: %w", err)
		}

		defer response.Body.Close()

		if response.StatusCode/100 != statusOk {
			return errFailRequest
		}

		return nil
	}
}

func bookOutboxHandler(client *http.Client, url string) outbox.KindHandler {
	return func(_ context.Context, data []byte) error {
		book := entity.Book{}
		err := json.Unmarshal(data, &book)

		if err != nil {
			return fmt.Errorf("can not deserialize data in book outbox handler: %w", err)
		}

		response, err := client.Post(url, contentType, strings.NewReader(book.ID))
		if err != nil {
			return fmt.Errorf("can not make post request to given url: %w", err)
		}

		defer response.Body.Close()

		if response.StatusCode/100 != statusOk {
			return errFailRequest
		}

		return nil
	}
}

func runHTTP(ctx context.Context, cfg *config.Config, logger *zap.Logger, ctrl interface{ RegisterRoutes(gin.IRouter) }) {
	router := gin.New()
	router.Use(gin.Recovery())
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*shutDownSeconds)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", zap.Error(err))
		}
	}()

	logger.Info("http server listening at port", zap.String("port", cfg.HTTP.Port))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server listen error", zap.Error(err))
	}
}

func runMetrics(cfg *config.Config, logger *zap.Logger) {
	if cfg.Observability.MetricsPort == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	metricsPort := ":" + cfg.Observability.MetricsPort
	logger.Info("metrics listening at port", zap.String("port", metricsPort))

	if err := http.ListenAndServe(metricsPort, mux); err != nil {
		logger.Error("metrics listen error", zap.Error(err))
	}
}
