package metrics

import "errors"

// Ошибки валидации Config. Текст называет переменную окружения,
// которую нужно исправить.
var (
	// ErrPushgatewayURLRequired — LOG_METRICS_ENABLED=true без адреса Pushgateway.
	ErrPushgatewayURLRequired = errors.New("metrics: LOG_METRICS_ENABLED=true требует LOG_METRICS_PUSHGATEWAY_URL")

	// ErrPushgatewayURLInvalid — адрес без схемы или без хоста.
	ErrPushgatewayURLInvalid = errors.New("metrics: LOG_METRICS_PUSHGATEWAY_URL должен быть абсолютным URL со схемой и хостом")

	// ErrJobNameRequired — пустой LOG_METRICS_JOB_NAME.
	ErrJobNameRequired = errors.New("metrics: LOG_METRICS_JOB_NAME не может быть пустым")

	// ErrInvalidTimeout — LOG_METRICS_TIMEOUT не больше нуля.
	ErrInvalidTimeout = errors.New("metrics: LOG_METRICS_TIMEOUT должен быть положительным")
)
