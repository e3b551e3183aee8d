// Package main — демонстрация termlog: прямые вызовы логгера и события slog
// через eventlog.Handler с корреляцией по span OpenTelemetry.
//
// Управляется переменными окружения LOG_LEVEL, LOG_LEVEL_CASE_INSENSITIVE
// и LOG_METRICS_*.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Kargones/termlog/internal/pkg/eventlog"
	"github.com/Kargones/termlog/internal/pkg/logging"
	"github.com/Kargones/termlog/internal/pkg/metrics"
	"github.com/Kargones/termlog/internal/pkg/tracing"
)

func main() {
	os.Exit(run(context.Background()))
}

// run выполняет демонстрацию и возвращает exit code:
// 2 — невалидная конфигурация метрик, 1 — сбой отправки метрик.
func run(ctx context.Context) int {
	metricsCfg, err := metrics.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "termlog-demo: %v\n", err)
		return 2
	}

	// Диагностика коллектора идёт через отдельный логгер без Observer.
	collector, err := metrics.NewCollector(metricsCfg, logging.FromEnvironment())
	if err != nil {
		fmt.Fprintf(os.Stderr, "termlog-demo: %v\n", err)
		return 2
	}

	logger := logging.FromEnvironment(logging.WithObserver(collector))
	slog.SetDefault(eventlog.NewSlogLogger(logger, &eventlog.HandlerOptions{TraceContext: true}))

	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	logger.Trace("trace: подробности")
	logger.Debug("debug: отладка")
	logger.Info(fmt.Sprintf("info: минимальный уровень %s", logger.Level()))
	logger.Warn("warn: предупреждение")
	logger.Error("error: ошибка")

	// Без span корреляция идёт по сгенерированному trace ID.
	batchCtx := tracing.WithTraceID(ctx, tracing.GenerateTraceID())
	slog.InfoContext(batchCtx, "batch", "message", "batch accepted", "items", 2)
	slog.WarnContext(batchCtx, "batch", "message", "batch queued", "items", 2)

	ctx, span := otel.Tracer("termlog-demo").Start(ctx, "demo")
	span.SetAttributes(attribute.String("level", logger.Level().String()))

	slog.Log(ctx, logging.SlogLevelTrace, "slog trace event")
	slog.DebugContext(ctx, "slog debug event", "attempt", 1)
	slog.InfoContext(ctx, "request", "message", "request served", "status", 200, "elapsed", 35*time.Millisecond)
	slog.WarnContext(ctx, "cache", "message", "saved", "count", 3, "ok", true)
	slog.With("component", "demo").ErrorContext(ctx, "failure", "err", fmt.Errorf("disk full"))
	span.End()

	if err := collector.Push(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "termlog-demo: %v\n", err)
		return 1
	}
	return 0
}
