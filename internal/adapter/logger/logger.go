package logger

import (
	"github.com/robekc/topup-service/internal/adapter/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootName tags every log line with the service it came from.
const rootName = "topup"

func NewLogger(conf *config.App) *zap.Logger {
	lvl, err := zap.ParseAtomicLevel(conf.LogLevel)
	if err != nil {
		zap.L().Error("error parsing log level", zap.Error(err))
		return nil
	}

	var cfg zap.Config
	if conf.Mode == config.AppModeDevelop {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = lvl

	return zap.Must(cfg.Build()).Named(rootName)
}
