package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml при старте
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	BusinessHours BusinessHoursConfig `toml:"business_hours"`
	Identity      IdentityConfig      `toml:"identity_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к postgres
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessHoursConfig рабочие часы студии и буфер между записями
// Фиксируются при старте процесса, перезагрузка не поддерживается
type BusinessHoursConfig struct {
	OpenTime      string `toml:"open_time"`      // "09:00"
	CloseTime     string `toml:"close_time"`     // "16:00"
	BufferMinutes int    `toml:"buffer_minutes"` // минимальный зазор между записями
}

// IdentityConfig настройки клиента identity-сервиса
type IdentityConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}

	openTime, err := types.NewTimeStringFromString(c.BusinessHours.OpenTime)
	if err != nil {
		return fmt.Errorf("config: business_hours.open_time: %w", err)
	}
	closeTime, err := types.NewTimeStringFromString(c.BusinessHours.CloseTime)
	if err != nil {
		return fmt.Errorf("config: business_hours.close_time: %w", err)
	}
	if !openTime.IsBefore(closeTime) {
		return fmt.Errorf("config: business_hours open_time %s must be before close_time %s", openTime, closeTime)
	}
	if c.BusinessHours.BufferMinutes < 0 {
		return fmt.Errorf("config: business_hours.buffer_minutes must not be negative")
	}

	return nil
}
