package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "hotel_console"

// NewLogger логгер консоли с полями service и env в каждой записи
func NewLogger(env string) *zap.Logger {
	logger, err := loggerConfig(env).Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}

// loggerConfig в production JSON с ISO8601-временем, иначе цветная консоль с уровнем debug
func loggerConfig(env string) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.InitialFields = map[string]interface{}{
		"service": serviceName,
		"env":     env,
	}
	return cfg
}
