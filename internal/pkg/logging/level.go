package logging

import (
	"log/slog"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level — уровень важности записи.
// Порядок объявления задаёт полный порядок: Trace < Debug < Info < Warn < Error.
type Level int8

const (
	// LevelTrace — максимально подробная диагностика.
	LevelTrace Level = iota
	// LevelDebug — отладочные сообщения.
	LevelDebug
	// LevelInfo — значимые события (уровень по умолчанию).
	LevelInfo
	// LevelWarn — recoverable проблемы.
	LevelWarn
	// LevelError — ошибки, требующие внимания.
	LevelError
)

// ANSI escape-последовательности цветов уровней.
const (
	ColorGray   = "\x1b[90m"
	ColorBlue   = "\x1b[34m"
	ColorGreen  = "\x1b[32m"
	ColorYellow = "\x1b[33m"
	ColorRed    = "\x1b[31m"
	ColorReset  = "\x1b[0m"
)

// SlogLevelTrace — уровень slog, соответствующий LevelTrace.
// В slog нет стандартного trace, используется общепринятое значение -8.
const SlogLevelTrace = slog.Level(-8)

// levelNames — канонические имена уровней, индекс совпадает со значением Level.
var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

// Levels возвращает все уровни в порядке объявления.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelError
}

// String возвращает каноническое имя уровня в верхнем регистре.
func (l Level) String() string {
	if !l.valid() {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// Color возвращает ANSI-цвет уровня.
// Для значений вне набора возвращается ColorReset.
func (l Level) Color() string {
	switch l {
	case LevelTrace:
		return ColorGray
	case LevelDebug:
		return ColorBlue
	case LevelInfo:
		return ColorGreen
	case LevelWarn:
		return ColorYellow
	case LevelError:
		return ColorRed
	default:
		return ColorReset
	}
}

// SlogLevel конвертирует Level в slog.Level.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelTrace:
		return SlogLevelTrace
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromSlog конвертирует slog.Level в Level.
// Пять канонических уровней отображаются один к одному,
// промежуточные значения округляются вниз до ближайшего канонического.
func LevelFromSlog(l slog.Level) Level {
	switch {
	case l < slog.LevelDebug:
		return LevelTrace
	case l < slog.LevelInfo:
		return LevelDebug
	case l < slog.LevelWarn:
		return LevelInfo
	case l < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}

// CaseRule определяет, как ParseLevel сравнивает входную строку с именами уровней.
type CaseRule int

const (
	// CaseExact принимает только каноническое имя в верхнем регистре ("WARN").
	CaseExact CaseRule = iota
	// CaseFold приводит вход к верхнему регистру перед сравнением ("warn", "Warn", "WARN").
	CaseFold
)

// ParseLevel разбирает имя уровня по правилу rule.
// При неизвестном имени возвращает *UnrecognizedLevelError.
func ParseLevel(text string, rule CaseRule) (Level, error) {
	token := text
	if rule == CaseFold {
		// cases.Caser хранит состояние, поэтому создаётся на каждый вызов.
		token = cases.Upper(language.Und).String(text)
	}
	for i, name := range levelNames {
		if token == name {
			return Level(i), nil
		}
	}
	return LevelInfo, &UnrecognizedLevelError{Token: text}
}

// MarshalText реализует encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, &UnrecognizedLevelError{Token: l.String()}
	}
	return []byte(l.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler.
// Принимает только канонические имена (CaseExact), симметрично MarshalText.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text), CaseExact)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
