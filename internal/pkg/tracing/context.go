package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// traceIDKey — приватный тип ключа context, исключающий коллизии с другими пакетами.
type traceIDKey struct{}

// WithTraceID возвращает context с trace ID для случаев без OpenTelemetry span.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// TraceIDFromContext извлекает trace ID, сохранённый WithTraceID.
// Возвращает пустую строку, если ID нет или ctx == nil.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// IDsFromContext возвращает идентификаторы для корреляции записи лога.
//
// Если в ctx есть валидный span OpenTelemetry, возвращаются его trace ID и span ID.
// Иначе возвращается trace ID из WithTraceID и пустой span ID; значение,
// не прошедшее IsValidTraceID, игнорируется.
// ok == false, если ни одного идентификатора нет.
func IDsFromContext(ctx context.Context) (traceID, spanID string, ok bool) {
	if ctx == nil {
		return "", "", false
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String(), sc.SpanID().String(), true
	}
	if id := TraceIDFromContext(ctx); IsValidTraceID(id) {
		return id, "", true
	}
	return "", "", false
}
