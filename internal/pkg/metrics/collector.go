// Package metrics считает записи лога по уровням и отправляет счётчики
// в Prometheus Pushgateway.
//
// Collector подключается к логгеру через logging.WithObserver:
//
//	collector, err := metrics.NewCollector(cfg, logger)
//	log := logging.FromEnvironment(logging.WithObserver(collector))
package metrics

import (
	"context"

	"github.com/Kargones/termlog/internal/pkg/logging"
)

// Collector определяет интерфейс сбора метрик логгера.
// Реализации: PrometheusCollector (активный) и NopCollector (no-op).
type Collector interface {
	logging.Observer

	// Push отправляет метрики в Pushgateway.
	// Возвращает ошибку отправки; для отменённого ctx отправка
	// пропускается и возвращается nil.
	Push(ctx context.Context) error
}
