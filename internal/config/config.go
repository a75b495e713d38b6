package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	GarageService GarageServiceConfig `toml:"garage_service"`
	Schedule      ScheduleConfig      `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,gt=0"`
	ReadTimeout     int `toml:"read_timeout" validate:"required,gt=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"required,gt=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"required,gt=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"required,gt=0"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required,gt=0"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"required"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"required,gt=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"required,gt=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"required,gt=0"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file" validate:"required"`
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name" validate:"required"`
	Path        string `toml:"path" validate:"required"`
}

// GarageServiceConfig настройки клиента GarageService
type GarageServiceConfig struct {
	URL     string `toml:"url" validate:"required,url"`
	Timeout int    `toml:"timeout" validate:"required,gt=0"`
}

// ScheduleConfig настройки ядра расписания
type ScheduleConfig struct {
	// Интервал обновления "текущего времени" для переклассификации, секунды
	RefreshIntervalSeconds int `toml:"refresh_interval_seconds" validate:"required,gt=0"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Load загружает конфигурацию из TOML файла
// Секреты (пароль БД) могут быть переопределены через .env / переменные окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// .env опционален: в проде секреты приходят из окружения
	_ = godotenv.Load()

	if password := os.Getenv("SCHEDULE_DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &cfg, nil
}
