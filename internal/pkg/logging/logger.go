// Package logging предоставляет уровневый консольный логгер с ANSI-раскраской.
//
// Каждая запись — одна строка вида:
//
//	[<цвет>LEVEL<сброс>] сообщение
//
// Записи ниже минимального уровня молча отбрасываются.
package logging

import (
	"io"
	"os"
	"sync"
)

// Observer получает уведомление о каждой записи, прошедшей или не прошедшей фильтр.
// Реализация: metrics.PrometheusCollector.
type Observer interface {
	// RecordEmitted вызывается после записи строки в writer.
	RecordEmitted(level Level)

	// RecordDropped вызывается, когда запись отфильтрована по уровню.
	RecordDropped(level Level)
}

// Logger — уровневый логгер. Минимальный уровень фиксируется в New
// и больше не меняется, поэтому *Logger можно разделять между горутинами.
type Logger struct {
	minimum  Level
	out      io.Writer
	observer Observer

	// mu сериализует запись строк: io.Writer не гарантирует атомарность строки.
	mu sync.Mutex
}

// Option настраивает Logger при создании.
type Option func(*Logger)

// WithWriter задаёт writer для вывода.
// По умолчанию используется os.Stdout, определяемый в момент записи.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithObserver подключает Observer (например, сборщик метрик).
func WithObserver(o Observer) Option {
	return func(l *Logger) {
		l.observer = o
	}
}

// New создаёт Logger с минимальным уровнем minimum.
// Не имеет побочных эффектов.
func New(minimum Level, opts ...Option) *Logger {
	l := &Logger{minimum: minimum}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Level возвращает минимальный уровень логгера.
func (l *Logger) Level() Level {
	return l.minimum
}

// Enabled сообщает, будет ли запись уровня level выведена.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.minimum
}

// Observe работает как Enabled, но при отбрасывании уровня уведомляет Observer.
// Нужен адаптерам, которые проверяют уровень до сборки записи и
// после false уже не вызывают Log.
func (l *Logger) Observe(level Level) bool {
	if l.Enabled(level) {
		return true
	}
	if l.observer != nil {
		l.observer.RecordDropped(level)
	}
	return false
}

// Log выводит сообщение, если level >= минимального уровня.
// Ошибки записи игнорируются: логгер не сообщает об успехе вывода.
func (l *Logger) Log(level Level, msg string) {
	if !l.Observe(level) {
		return
	}

	line := formatLine(level, msg)

	l.mu.Lock()
	_, _ = l.writer().Write(line) //nolint:errcheck // сбой stdout не обрабатывается логгером
	l.mu.Unlock()

	if l.observer != nil {
		l.observer.RecordEmitted(level)
	}
}

// Trace записывает сообщение уровня TRACE.
func (l *Logger) Trace(msg string) { l.Log(LevelTrace, msg) }

// Debug записывает сообщение уровня DEBUG.
func (l *Logger) Debug(msg string) { l.Log(LevelDebug, msg) }

// Info записывает сообщение уровня INFO.
func (l *Logger) Info(msg string) { l.Log(LevelInfo, msg) }

// Warn записывает сообщение уровня WARN.
func (l *Logger) Warn(msg string) { l.Log(LevelWarn, msg) }

// Error записывает сообщение уровня ERROR.
func (l *Logger) Error(msg string) { l.Log(LevelError, msg) }

func (l *Logger) writer() io.Writer {
	if l.out != nil {
		return l.out
	}
	return os.Stdout
}

// formatLine собирает строку целиком, чтобы вывести её одним Write.
func formatLine(level Level, msg string) []byte {
	name := level.String()
	color := level.Color()

	buf := make([]byte, 0, len(color)+len(name)+len(ColorReset)+len(msg)+4)
	buf = append(buf, '[')
	buf = append(buf, color...)
	buf = append(buf, name...)
	buf = append(buf, ColorReset...)
	buf = append(buf, "] "...)
	buf = append(buf, msg...)
	buf = append(buf, '\n')
	return buf
}
