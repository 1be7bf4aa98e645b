package config

import (
	"errors"
	"io/fs"
)

// Config — алиас для YamlConfig
type Config = YamlConfig

// LoadConfig загружает конфигурацию: дефолты, затем YAML (если файл есть), затем переопределения из env/.env.
// Отсутствующий файл не ошибка — конфиг собирается из env (LoadConfigFromEnv).
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return LoadConfigFromEnv(), nil
	}
	cfg, err := LoadYamlConfig(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadConfigFromEnv(), nil
		}
		return nil, err
	}
	ApplyEnvOverrides(cfg)
	return cfg, nil
}

// GetDefaultConfig возвращает конфигурацию по умолчанию
func GetDefaultConfig() *Config {
	return GetDefaultYamlConfig()
}
