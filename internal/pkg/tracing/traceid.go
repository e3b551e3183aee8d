// Package tracing связывает записи лога с трассировкой.
//
// Источник идентификаторов — span OpenTelemetry из context, а при его
// отсутствии — trace ID, сохранённый через WithTraceID.
// Формат trace ID: 32 hex-символа (W3C Trace Context).
package tracing

import (
	"crypto/rand"
	"encoding/binary"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// fallbackCounter обеспечивает уникальность fallback ID в пределах процесса.
var fallbackCounter atomic.Uint64

// GenerateTraceID генерирует случайный trace ID в формате W3C.
// При ошибке crypto/rand ID строится из времени и счётчика.
func GenerateTraceID() string {
	var id trace.TraceID
	if _, err := rand.Read(id[:]); err != nil || !id.IsValid() {
		return fallbackTraceID().String()
	}
	return id.String()
}

// fallbackTraceID: первые 8 байт — UnixNano, последние 8 — счётчик.
// Счётчик начинается с 1, поэтому ID никогда не бывает нулевым.
func fallbackTraceID() trace.TraceID {
	var id trace.TraceID
	binary.BigEndian.PutUint64(id[:8], uint64(time.Now().UnixNano()))
	binary.BigEndian.PutUint64(id[8:], fallbackCounter.Add(1))
	return id
}

// IsValidTraceID проверяет что id — 32 hex-символа в нижнем регистре и не нули.
func IsValidTraceID(id string) bool {
	parsed, err := trace.TraceIDFromHex(id)
	return err == nil && parsed.IsValid()
}
