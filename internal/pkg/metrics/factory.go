package metrics

import (
	"github.com/Kargones/termlog/internal/pkg/logging"
)

// NewCollector создаёт Collector на основе конфигурации.
// Отключённые метрики — NopCollector, включённые — PrometheusCollector.
func NewCollector(config Config, logger *logging.Logger) (Collector, error) {
	if !config.Enabled {
		return NewNopCollector(), nil
	}
	return NewPrometheusCollector(config, logger)
}
