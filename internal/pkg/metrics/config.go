package metrics

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Значения по умолчанию для Config.
const (
	DefaultJobName = "termlog"
	DefaultTimeout = 10 * time.Second
)

// Config содержит настройки сбора и отправки метрик.
type Config struct {
	// Enabled — включены ли метрики (по умолчанию false).
	Enabled bool `yaml:"enabled" env:"LOG_METRICS_ENABLED"`

	// PushgatewayURL — URL Prometheus Pushgateway, например "http://pushgateway:9091".
	// Пустой URL при включённых метриках — ошибка конфигурации.
	PushgatewayURL string `yaml:"pushgatewayUrl" env:"LOG_METRICS_PUSHGATEWAY_URL"`

	// JobName — имя job для группировки метрик.
	JobName string `yaml:"jobName" env:"LOG_METRICS_JOB_NAME" env-default:"termlog"`

	// Timeout — таймаут HTTP запроса к Pushgateway.
	Timeout time.Duration `yaml:"timeout" env:"LOG_METRICS_TIMEOUT" env-default:"10s"`
}

// DefaultConfig возвращает конфигурацию по умолчанию (метрики отключены).
func DefaultConfig() Config {
	return Config{
		JobName: DefaultJobName,
		Timeout: DefaultTimeout,
	}
}

// LoadConfig читает Config из переменных окружения LOG_METRICS_*.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("ошибка чтения конфигурации метрик из окружения: %w", err)
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации.
// Отключённые метрики всегда валидны.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.PushgatewayURL == "" {
		return ErrPushgatewayURLRequired
	}
	u, err := url.Parse(c.PushgatewayURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrPushgatewayURLInvalid
	}

	if c.JobName == "" {
		return ErrJobNameRequired
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
