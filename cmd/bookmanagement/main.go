package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/t-suguru/book-management/config"
	"github.com/t-suguru/book-management/internal/app"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()

	if err != nil {
		log.Fatalf("can not get application config: %s", err)
	}

	logger, err := NewLogger()

	if err != nil {
		log.Fatalf("can not initialize logger: %s", err)
	}

	app.Run(logger, cfg)
}

// NewLogger writes JSON logs to LOG_FILE when set, otherwise to stderr.
func NewLogger() (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), zap.InfoLevel)
		return zap.New(core), nil
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)

	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(file), zap.InfoLevel)
	return zap.New(core), nil
}
