package logging

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Переменные окружения, которые читает логгер.
const (
	EnvLevel           = "LOG_LEVEL"
	EnvCaseInsensitive = "LOG_LEVEL_CASE_INSENSITIVE"
)

// DefaultLevel — уровень, используемый при отсутствии или ошибке конфигурации.
const DefaultLevel = LevelInfo

// Config содержит настройки логгера.
type Config struct {
	// Level — имя минимального уровня (TRACE, DEBUG, INFO, WARN, ERROR).
	// Пустая строка означает «не задано».
	Level string `yaml:"level" env:"LOG_LEVEL"`

	// CaseInsensitive включает разбор Level без учёта регистра.
	// По умолчанию: false (только каноническое имя в верхнем регистре).
	CaseInsensitive bool `yaml:"caseInsensitive" env:"LOG_LEVEL_CASE_INSENSITIVE"`
}

// CaseRule возвращает правило разбора имени уровня для этой конфигурации.
func (c Config) CaseRule() CaseRule {
	if c.CaseInsensitive {
		return CaseFold
	}
	return CaseExact
}

// LoadConfig читает Config из переменных окружения.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("ошибка чтения конфигурации логгера из окружения: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile читает Config из YAML-файла; переменные окружения
// переопределяют значения из файла.
func LoadConfigFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("ошибка чтения конфигурации логгера из %q: %w", path, err)
	}
	return cfg, nil
}
