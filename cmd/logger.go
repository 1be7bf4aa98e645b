package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wohure/seeder/internal/config"
)

// bootstrap загружает .env и конфиг, затем создает логгер
func bootstrap() (*config.Config, *zap.Logger, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	logger, err := newLogger(flagDebug, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, logger, nil
}

func newLogger(debug bool, cfg *config.Config) (*zap.Logger, error) {
	if debug || cfg.Debug() {
		return zap.NewDevelopment()
	}

	zcfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(cfg.Logging.Level); err == nil {
		zcfg.Level = lvl
	}
	if cfg.Logging.Format == "console" {
		zcfg.Encoding = "console"
	}
	return zcfg.Build()
}

func dbFields(cfg *config.Config) []zap.Field {
	return []zap.Field{
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.Name),
		zap.String("user", cfg.Database.User),
	}
}
