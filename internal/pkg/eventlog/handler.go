// Package eventlog подключает log/slog к logging.Logger.
//
// Handler получает каждое событие slog, переводит его уровень в logging.Level,
// собирает поля в Fields и передаёт строку
//
//	<сообщение> {"ключ":значение,...}
//
// в Logger.Log. Поле "message" заменяет текст события, остальные поля
// сериализуются в JSON с ключами по алфавиту.
package eventlog

import (
	"context"
	"log/slog"
	"slices"

	"github.com/Kargones/termlog/internal/pkg/logging"
	"github.com/Kargones/termlog/internal/pkg/tracing"
)

// Зарезервированные имена полей.
const (
	MessageKey = "message"
	TraceIDKey = "trace_id"
	SpanIDKey  = "span_id"
)

// HandlerOptions настраивает Handler.
type HandlerOptions struct {
	// TraceContext добавляет trace_id и span_id из context события.
	TraceContext bool
}

// Handler реализует slog.Handler поверх logging.Logger.
// Handler неизменяем: WithAttrs и WithGroup возвращают копии.
type Handler struct {
	logger *logging.Logger
	opts   HandlerOptions

	// prefix — накопленные группы вида "a.b.".
	prefix string
	// bound — поля из WithAttrs с уже применённым префиксом.
	bound []boundField
}

type boundField struct {
	key   string
	value FieldValue
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler создаёт Handler, пишущий в logger.
// opts может быть nil.
func NewHandler(logger *logging.Logger, opts *HandlerOptions) *Handler {
	h := &Handler{logger: logger}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

// NewSlogLogger возвращает *slog.Logger, события которого попадают в logger.
//
//	slog.SetDefault(eventlog.NewSlogLogger(logging.FromEnvironment(), nil))
func NewSlogLogger(logger *logging.Logger, opts *HandlerOptions) *slog.Logger {
	return slog.New(NewHandler(logger, opts))
}

// Enabled сообщает, пройдёт ли событие уровня level фильтр логгера.
// slog не вызывает Handle после false, поэтому отброшенное событие
// учитывается здесь через Logger.Observe.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Observe(logging.LevelFromSlog(level))
}

// Handle переводит событие в строку и передаёт её в Logger.Log.
// Фильтрацию по уровню выполняет Logger.Log.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	fields := make(Fields, len(h.bound)+r.NumAttrs()+2)

	if h.opts.TraceContext {
		if traceID, spanID, ok := tracing.IDsFromContext(ctx); ok {
			fields.Set(TraceIDKey, StringValue(traceID))
			if spanID != "" {
				fields.Set(SpanIDKey, StringValue(spanID))
			}
		}
	}
	for _, b := range h.bound {
		fields.Set(b.key, b.value)
	}
	r.Attrs(func(a slog.Attr) bool {
		visitAttr(h.prefix, a, fields.Set)
		return true
	})

	msg := r.Message
	if v, ok := fields.Take(MessageKey); ok {
		msg = v.Text()
	}

	line := msg
	if len(fields) > 0 {
		data, err := fields.MarshalJSON()
		if err != nil {
			return err
		}
		line += " " + string(data)
	}

	h.logger.Log(logging.LevelFromSlog(r.Level), line)
	return nil
}

// WithAttrs возвращает Handler с полями attrs, добавляемыми к каждому событию.
// Поля события с тем же ключом перекрывают их.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.bound = slices.Clip(h.bound)
	for _, a := range attrs {
		visitAttr(h.prefix, a, func(key string, v FieldValue) {
			h2.bound = append(h2.bound, boundField{key: key, value: v})
		})
	}
	return &h2
}

// WithGroup возвращает Handler, добавляющий префикс "name." к ключам последующих полей.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

// visitAttr раскладывает атрибут в плоские поля.
// Группы разворачиваются в ключи через точку, пустые атрибуты и группы пропускаются.
func visitAttr(prefix string, a slog.Attr, set func(key string, v FieldValue)) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() != slog.KindGroup {
		set(prefix+a.Key, ValueOf(a.Value))
		return
	}

	group := a.Value.Group()
	if len(group) == 0 {
		return
	}
	if a.Key != "" {
		prefix += a.Key + "."
	}
	for _, ga := range group {
		visitAttr(prefix, ga, set)
	}
}
