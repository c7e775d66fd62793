package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable for the
// current environment. The predictor artifact paths are always required:
// the process cannot assess anything without them.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}
	}
	if cfg.ScalerPath == "" {
		return ValidationError{Field: "SCALER_PATH", Message: "must not be empty"}
	}
	if cfg.ModelPath == "" {
		return ValidationError{Field: "MODEL_PATH", Message: "must not be empty"}
	}

	// Production deployments must pin the export broker so records are
	// not silently dropped into the log.
	if IsProduction() && cfg.AMQPAddr == "" {
		return ValidationError{Field: "AMQP_ADDR", Message: "required in production"}
	}

	return nil
}
