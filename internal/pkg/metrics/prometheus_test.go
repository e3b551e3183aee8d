package metrics

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/termlog/internal/pkg/eventlog"
	"github.com/Kargones/termlog/internal/pkg/logging"
)

func enabledConfig(url string) Config {
	return Config{
		Enabled:        true,
		PushgatewayURL: url,
		JobName:        "termlog-test",
		Timeout:        5 * time.Second,
	}
}

// TestPrometheusCollector_ObservesLogger проверяет счётчики при подключении к логгеру.
func TestPrometheusCollector_ObservesLogger(t *testing.T) {
	collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), logging.NewNopLogger())
	require.NoError(t, err)

	logger := logging.New(logging.LevelInfo, logging.WithWriter(io.Discard), logging.WithObserver(collector))
	logger.Trace("a")
	logger.Debug("b")
	logger.Debug("c")
	logger.Info("d")
	logger.Warn("e")
	logger.Warn("f")
	logger.Error("g")

	assert.Equal(t, 0.0, testutil.ToFloat64(collector.emitted.WithLabelValues("TRACE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.emitted.WithLabelValues("INFO")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.emitted.WithLabelValues("WARN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.emitted.WithLabelValues("ERROR")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.dropped.WithLabelValues("TRACE")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.dropped.WithLabelValues("DEBUG")))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.dropped.WithLabelValues("INFO")))
}

// TestPrometheusCollector_ObservesSlog проверяет что события slog ниже порога
// учитываются так же, как прямые вызовы логгера.
func TestPrometheusCollector_ObservesSlog(t *testing.T) {
	collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), nil)
	require.NoError(t, err)

	logger := logging.New(logging.LevelWarn, logging.WithWriter(io.Discard), logging.WithObserver(collector))
	logger.Info("direct")
	eventlog.NewSlogLogger(logger, nil).Info("via slog")
	eventlog.NewSlogLogger(logger, nil).Error("via slog", "n", 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.dropped.WithLabelValues("INFO")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.emitted.WithLabelValues("ERROR")))
}

// TestPrometheusCollector_Registry проверяет что метрики всех уровней зарегистрированы сразу.
func TestPrometheusCollector_Registry(t *testing.T) {
	collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), nil)
	require.NoError(t, err)

	families, err := collector.Registry().Gather()
	require.NoError(t, err)

	series := make(map[string]int)
	for _, mf := range families {
		series[mf.GetName()] = len(mf.GetMetric())
	}
	assert.Equal(t, 5, series["termlog_records_emitted_total"])
	assert.Equal(t, 5, series["termlog_records_dropped_total"])
}

// TestPrometheusCollector_ConcurrentRecords проверяет счётчики при конкурентной записи.
func TestPrometheusCollector_ConcurrentRecords(t *testing.T) {
	collector, err := NewPrometheusCollector(enabledConfig("http://localhost:9091"), nil)
	require.NoError(t, err)
	logger := logging.New(logging.LevelWarn, logging.WithWriter(io.Discard), logging.WithObserver(collector))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				logger.Error("x")
				logger.Info("y")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000.0, testutil.ToFloat64(collector.emitted.WithLabelValues("ERROR")))
	assert.Equal(t, 1000.0, testutil.ToFloat64(collector.dropped.WithLabelValues("INFO")))
}

// TestPrometheusCollector_Push проверяет отправку метрик в Pushgateway.
func TestPrometheusCollector_Push(t *testing.T) {
	var (
		mu             sync.Mutex
		receivedMethod string
		receivedPath   string
		receivedBody   []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		receivedMethod, receivedPath, receivedBody = r.Method, r.URL.Path, body
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	collector, err := NewPrometheusCollector(enabledConfig(server.URL), logging.NewNopLogger())
	require.NoError(t, err)
	collector.RecordEmitted(logging.LevelError)

	require.NoError(t, collector.Push(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, receivedMethod)
	assert.True(t, strings.HasPrefix(receivedPath, "/metrics/job/termlog-test/instance/"), "path: %s", receivedPath)
	assert.NotEmpty(t, receivedBody)
}

// TestPrometheusCollector_PushError проверяет что ошибка Pushgateway логируется и возвращается.
func TestPrometheusCollector_PushError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var buf bytes.Buffer
	diag := logging.New(logging.LevelTrace, logging.WithWriter(&buf))
	collector, err := NewPrometheusCollector(enabledConfig(server.URL+"/secret/token"), diag)
	require.NoError(t, err)

	err = collector.Push(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), maskURL(server.URL))
	assert.Contains(t, buf.String(), "ошибка отправки в Pushgateway")
	assert.Contains(t, buf.String(), maskURL(server.URL))
}

// TestPrometheusCollector_PushCancelled проверяет что отменённый context не отправляет запрос
// и не считается ошибкой.
func TestPrometheusCollector_PushCancelled(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	collector, err := NewPrometheusCollector(enabledConfig(server.URL), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, collector.Push(ctx))
	assert.False(t, called)
}

// TestNewPrometheusCollector_InvalidConfig проверяет отказ при невалидной конфигурации.
func TestNewPrometheusCollector_InvalidConfig(t *testing.T) {
	_, err := NewPrometheusCollector(Config{Enabled: true}, nil)
	assert.ErrorIs(t, err, ErrPushgatewayURLRequired)
}

// TestMaskURL проверяет маскирование URL.
func TestMaskURL(t *testing.T) {
	assert.Equal(t, "https://push.example.com/***", maskURL("https://push.example.com/a/b?token=x"))
	assert.Equal(t, "***invalid-url***", maskURL("not a url"))
}
