package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// YamlConfig представляет конфигурацию сидера из YAML
type YamlConfig struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"ssl_mode"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`

	Seed struct {
		BcryptCost    int    `yaml:"bcrypt_cost"`
		MigrationsDir string `yaml:"migrations_dir"`
	} `yaml:"seed"`
}

// LoadYamlConfig загружает конфигурацию из YAML файла поверх дефолтов
func LoadYamlConfig(path string) (*YamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := GetDefaultYamlConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// GetDefaultYamlConfig возвращает конфигурацию по умолчанию (локальная БД wohure)
func GetDefaultYamlConfig() *YamlConfig {
	cfg := &YamlConfig{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.User = "postgres"
	cfg.Database.Password = "1985"
	cfg.Database.Name = "wohure"
	cfg.Database.SSLMode = "disable"
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	cfg.Seed.BcryptCost = 12
	cfg.Seed.MigrationsDir = "database/migrations"
	return cfg
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// dsnValue — значение key=value строки lib/pq в одинарных кавычках
func dsnValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// DSN возвращает connection string для lib/pq
func (c *YamlConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dsnValue(c.Database.Host), c.Database.Port, dsnValue(c.Database.User), dsnValue(c.Database.Password),
		dsnValue(c.Database.Name), dsnValue(c.Database.SSLMode))
}

// DatabaseURL возвращает postgres URL для golang-migrate
func (c *YamlConfig) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return u.String()
}

// MigrationsSource возвращает source URL каталога миграций
func (c *YamlConfig) MigrationsSource() string {
	return "file://" + c.Seed.MigrationsDir
}

// Debug — включён ли debug-уровень логов
func (c *YamlConfig) Debug() bool {
	return c.Logging.Level == "debug"
}
