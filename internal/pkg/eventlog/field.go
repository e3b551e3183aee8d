package eventlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
)

// Kind — вид значения поля события.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt64
	KindUint64
	KindString
	// KindOpaque — любое другое значение, сохранённое в структурном текстовом виде.
	KindOpaque
)

// FieldValue — значение поля события: bool, int64, uint64, строка
// или текстовое представление любого другого значения.
type FieldValue struct {
	kind Kind
	num  uint64
	str  string
}

// BoolValue создаёт FieldValue вида KindBool.
func BoolValue(v bool) FieldValue {
	var n uint64
	if v {
		n = 1
	}
	return FieldValue{kind: KindBool, num: n}
}

// Int64Value создаёт FieldValue вида KindInt64.
func Int64Value(v int64) FieldValue {
	return FieldValue{kind: KindInt64, num: uint64(v)}
}

// Uint64Value создаёт FieldValue вида KindUint64.
func Uint64Value(v uint64) FieldValue {
	return FieldValue{kind: KindUint64, num: v}
}

// StringValue создаёт FieldValue вида KindString.
func StringValue(v string) FieldValue {
	return FieldValue{kind: KindString, str: v}
}

// OpaqueValue создаёт FieldValue вида KindOpaque из готового текста.
func OpaqueValue(text string) FieldValue {
	return FieldValue{kind: KindOpaque, str: text}
}

// ValueOf переводит slog.Value в FieldValue.
// LogValuer разрешается; float, duration, time и произвольные значения
// становятся KindOpaque.
func ValueOf(v slog.Value) FieldValue {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindBool:
		return BoolValue(v.Bool())
	case slog.KindInt64:
		return Int64Value(v.Int64())
	case slog.KindUint64:
		return Uint64Value(v.Uint64())
	case slog.KindString:
		return StringValue(v.String())
	case slog.KindAny:
		return OpaqueValue(fmt.Sprintf("%+v", v.Any()))
	default:
		return OpaqueValue(v.String())
	}
}

// Kind возвращает вид значения.
func (f FieldValue) Kind() Kind { return f.kind }

// Bool возвращает значение KindBool.
func (f FieldValue) Bool() bool { return f.kind == KindBool && f.num == 1 }

// Int64 возвращает значение KindInt64.
func (f FieldValue) Int64() int64 { return int64(f.num) }

// Uint64 возвращает значение KindUint64.
func (f FieldValue) Uint64() uint64 { return f.num }

// Text возвращает значение в виде текста без кавычек.
func (f FieldValue) Text() string {
	switch f.kind {
	case KindBool:
		return strconv.FormatBool(f.Bool())
	case KindInt64:
		return strconv.FormatInt(f.Int64(), 10)
	case KindUint64:
		return strconv.FormatUint(f.num, 10)
	default:
		return f.str
	}
}

// Any возвращает значение как bool, int64, uint64 или string.
func (f FieldValue) Any() any {
	switch f.kind {
	case KindBool:
		return f.Bool()
	case KindInt64:
		return f.Int64()
	case KindUint64:
		return f.num
	default:
		return f.str
	}
}

// Fields — поля события по имени. Повторная запись ключа заменяет значение.
type Fields map[string]FieldValue

// Set записывает значение поля.
func (f Fields) Set(key string, v FieldValue) {
	f[key] = v
}

// Take извлекает поле и удаляет его из набора.
func (f Fields) Take(key string) (FieldValue, bool) {
	v, ok := f[key]
	if ok {
		delete(f, key)
	}
	return v, ok
}

// MarshalJSON сериализует поля в JSON-объект с ключами в лексикографическом порядке.
// HTML-символы не экранируются.
func (f Fields) MarshalJSON() ([]byte, error) {
	plain := make(map[string]any, len(f))
	for k, v := range f {
		plain[k] = v.Any()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(plain); err != nil {
		return nil, fmt.Errorf("ошибка сериализации полей события: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
