package logging

import "io"

// NewNopLogger создаёт Logger, который отбрасывает весь вывод.
// Полезен для unit-тестов, где логирование не важно.
func NewNopLogger() *Logger {
	return New(LevelTrace, WithWriter(io.Discard))
}
