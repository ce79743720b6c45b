package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Cache         CacheConfig         `toml:"cache"`
	UserDirectory UserDirectoryConfig `toml:"user_directory"`
	SMTP          SMTPConfig          `toml:"smtp"`
	Notifications NotificationsConfig `toml:"notifications"`
	NoShowBan     NoShowBanConfig     `toml:"no_show_ban"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout_seconds"`
	WriteTimeout    int `toml:"write_timeout_seconds"`
	IdleTimeout     int `toml:"idle_timeout_seconds"`
	ShutdownTimeout int `toml:"shutdown_timeout_seconds"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime_seconds"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// CacheConfig настройки redis-кэша слот-шаблонов
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// UserDirectoryConfig настройки клиента справочника пользователей
type UserDirectoryConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout_seconds"`
}

// SMTPConfig настройки отправки почты
type SMTPConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	User string `toml:"user"`
	Pass string `toml:"pass"`
	From string `toml:"from"`
}

// NotificationsConfig флаги email-уведомлений
// Письмо об отмене исторически отправлялось не во всех версиях,
// поэтому вынесено в явный флаг
type NotificationsConfig struct {
	SendConfirmationEmail bool `toml:"send_confirmation_email"`
	SendCancellationEmail bool `toml:"send_cancellation_email"`
	SendNoShowEmail       bool `toml:"send_no_show_email"`
}

// NoShowBanConfig настройки штрафа за неявку
type NoShowBanConfig struct {
	Enabled bool `toml:"enabled"`
	Days    int  `toml:"days"`
}

// Load читает конфигурацию из toml файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.NoShowBan.Days == 0 {
		cfg.NoShowBan.Days = 7
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = "no-reply@example.com"
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
}
