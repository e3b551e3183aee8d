package logging

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedLevel — sentinel для errors.Is при неизвестном имени уровня.
var ErrUnrecognizedLevel = errors.New("unrecognized log level")

// UnrecognizedLevelError возвращается ParseLevel, если строка не совпала
// ни с одним из пяти канонических имён.
type UnrecognizedLevelError struct {
	// Token — исходная строка без изменений регистра.
	Token string
}

// Error реализует интерфейс error.
func (e *UnrecognizedLevelError) Error() string {
	return fmt.Sprintf("неизвестный уровень логирования: %q", e.Token)
}

// Is позволяет сравнивать ошибку с ErrUnrecognizedLevel через errors.Is.
func (e *UnrecognizedLevelError) Is(target error) bool {
	return target == ErrUnrecognizedLevel
}
