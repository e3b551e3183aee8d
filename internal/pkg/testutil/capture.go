// Package testutil содержит общие утилиты для тестирования.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout выполняет fn, подменяя os.Stdout на pipe, и возвращает всё,
// что было записано в stdout. Pipe вычитывается параллельно, поэтому объём
// вывода не ограничен буфером pipe.
//
// Не используйте в тестах с t.Parallel(): os.Stdout — глобальная переменная.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err, "не удалось создать pipe для stdout")

	done := make(chan []byte, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r) //nolint:errcheck // test helper
		done <- buf.Bytes()
	}()

	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	fn()

	require.NoError(t, w.Close(), "не удалось закрыть pipe stdout")
	out := <-done
	_ = r.Close() //nolint:errcheck // test helper pipe close
	return string(out)
}
