package metrics

import (
	"context"

	"github.com/Kargones/termlog/internal/pkg/logging"
)

// NopCollector — no-op реализация Collector для отключённых метрик.
type NopCollector struct{}

var _ Collector = (*NopCollector)(nil)

// NewNopCollector создаёт NopCollector.
func NewNopCollector() *NopCollector {
	return &NopCollector{}
}

// RecordEmitted ничего не делает.
func (c *NopCollector) RecordEmitted(logging.Level) {}

// RecordDropped ничего не делает.
func (c *NopCollector) RecordDropped(logging.Level) {}

// Push ничего не делает и возвращает nil.
func (c *NopCollector) Push(context.Context) error {
	return nil
}
