package logging

import "os"

// LevelSource возвращает настроенный минимальный уровень.
// ok == false означает, что уровень не задан или не распознан.
//
// Позволяет подменить чтение окружения в тестах:
//
//	logger := logging.FromSource(func() (logging.Level, bool) {
//	    return logging.LevelWarn, true
//	})
type LevelSource func() (level Level, ok bool)

// ConfigLevelSource возвращает LevelSource поверх готовой Config.
func ConfigLevelSource(cfg Config) LevelSource {
	return func() (Level, bool) {
		if cfg.Level == "" {
			return DefaultLevel, false
		}
		level, err := ParseLevel(cfg.Level, cfg.CaseRule())
		if err != nil {
			return DefaultLevel, false
		}
		return level, true
	}
}

// EnvLevelSource возвращает LevelSource, читающий LOG_LEVEL и
// LOG_LEVEL_CASE_INSENSITIVE в момент вызова.
// Если окружение не читается целиком (например, невалидный
// LOG_LEVEL_CASE_INSENSITIVE), LOG_LEVEL разбирается по CaseExact:
// канонические имена принимаются при любом правиле.
func EnvLevelSource() LevelSource {
	return func() (Level, bool) {
		cfg, err := LoadConfig()
		if err != nil {
			raw, ok := os.LookupEnv(EnvLevel)
			if !ok {
				return DefaultLevel, false
			}
			cfg = Config{Level: raw}
		}
		return ConfigLevelSource(cfg)()
	}
}

// FromSource создаёт Logger с уровнем из src.
// Если src не вернул уровень, используется DefaultLevel (INFO).
func FromSource(src LevelSource, opts ...Option) *Logger {
	level := DefaultLevel
	if src != nil {
		if configured, ok := src(); ok {
			level = configured
		}
	}
	return New(level, opts...)
}

// FromEnvironment создаёт Logger с уровнем из LOG_LEVEL.
// Никогда не завершается ошибкой: при отсутствии или неизвестном
// значении используется INFO.
func FromEnvironment(opts ...Option) *Logger {
	return FromSource(EnvLevelSource(), opts...)
}
