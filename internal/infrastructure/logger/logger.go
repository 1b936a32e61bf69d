package logger

import "go.uber.org/zap"

type Config struct {
	Development bool
}

// New builds a production JSON logger, or a console logger in development.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
