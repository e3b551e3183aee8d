package metrics

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/Kargones/termlog/internal/pkg/logging"
)

// Namespace — префикс имён метрик.
const Namespace = "termlog"

// PrometheusCollector считает записи лога по уровням в собственном registry.
// Безопасен для конкурентного использования.
type PrometheusCollector struct {
	config   Config
	logger   *logging.Logger
	registry *prometheus.Registry
	instance string

	emitted *prometheus.CounterVec
	dropped *prometheus.CounterVec
}

var _ Collector = (*PrometheusCollector)(nil)

// NewPrometheusCollector создаёт PrometheusCollector и регистрирует метрики:
//   - termlog_records_emitted_total{level} (counter)
//   - termlog_records_dropped_total{level} (counter)
//
// Счётчики всех пяти уровней создаются сразу, чтобы нулевые значения
// попадали в Pushgateway. logger используется только для диагностики Push;
// nil отключает диагностику.
func NewPrometheusCollector(config Config, logger *logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	hostname, err := os.Hostname()
	if err != nil {
		logger.Warn(fmt.Sprintf("metrics: не удалось получить hostname, используется 'unknown': %v", err))
		hostname = "unknown"
	}

	emitted := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "records_emitted_total",
			Help:      "Total number of log records written to the output",
		},
		[]string{"level"},
	)
	dropped := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "records_dropped_total",
			Help:      "Total number of log records below the minimum level",
		},
		[]string{"level"},
	)

	registry := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{emitted, dropped} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}
	for _, level := range logging.Levels() {
		emitted.WithLabelValues(level.String())
		dropped.WithLabelValues(level.String())
	}

	return &PrometheusCollector{
		config:   config,
		logger:   logger,
		registry: registry,
		instance: hostname,
		emitted:  emitted,
		dropped:  dropped,
	}, nil
}

// RecordEmitted увеличивает счётчик выведенных записей.
// Не логирует: collector может быть Observer того же логгера.
func (c *PrometheusCollector) RecordEmitted(level logging.Level) {
	c.emitted.WithLabelValues(level.String()).Inc()
}

// RecordDropped увеличивает счётчик отфильтрованных записей.
func (c *PrometheusCollector) RecordDropped(level logging.Level) {
	c.dropped.WithLabelValues(level.String()).Inc()
}

// Push отправляет метрики в Pushgateway.
// Ошибка отправки логируется и возвращается; в её тексте URL замаскирован.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	if ctx.Err() != nil {
		c.logger.Debug("metrics: push отменён")
		return nil
	}

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	if err := pusher.PushContext(pushCtx); err != nil {
		err = fmt.Errorf("ошибка отправки в Pushgateway %s (job=%s): %w",
			maskURL(c.config.PushgatewayURL), c.config.JobName, err)
		c.logger.Error("metrics: " + err.Error())
		return err
	}

	c.logger.Debug(fmt.Sprintf("metrics: отправлены в Pushgateway %s (job=%s, instance=%s)",
		maskURL(c.config.PushgatewayURL), c.config.JobName, c.instance))
	return nil
}

// Registry возвращает registry коллектора (для scrape-эндпоинта и тестов).
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// maskURL оставляет только scheme и host: path и query могут содержать токены.
func maskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "***invalid-url***"
	}
	return u.Scheme + "://" + u.Host + "/***"
}
