package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config configuración completa del servicio, cargada desde config.toml.
// Los secretos (contraseña de BD, secreto JWT, contraseña SMTP) pueden
// sobreescribirse por variables de entorno para no versionarlos.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Cache    CacheConfig    `toml:"cache"`
	Auth     AuthConfig     `toml:"auth"`
	Email    EmailConfig    `toml:"email"`
}

// ServerConfig parámetros del servidor HTTP. Los timeouts están en segundos.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig conexión a PostgreSQL.
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

// DSN arma la cadena de conexión para lib/pq.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig destino y nivel de log.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig exposición de métricas Prometheus.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig cache de lecturas en Redis (TTL en segundos).
type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"`
	Prefix   string `toml:"prefix"`
}

// AuthConfig emisión y verificación de tokens JWT.
type AuthConfig struct {
	Secret      string `toml:"secret"`
	ExpiryHours int    `toml:"expiry_hours"`
}

// EmailConfig envío de correos de confirmación de reserva.
type EmailConfig struct {
	Enabled  bool   `toml:"enabled"`
	SMTPHost string `toml:"smtp_host"`
	SMTPPort int    `toml:"smtp_port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// Load lee la configuración desde un archivo TOML y aplica los overrides
// de entorno para los secretos.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "plancumple-api"},
		Cache:   CacheConfig{TTL: 30, Prefix: "plancumple"},
		Auth:    AuthConfig{ExpiryHours: 24},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: no se pudo leer %s: %w", path, err)
	}

	if v := os.Getenv("PLANCUMPLE_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("PLANCUMPLE_JWT_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("PLANCUMPLE_SMTP_PASSWORD"); v != "" {
		cfg.Email.Password = v
	}

	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("config: falta el secreto JWT (auth.secret o PLANCUMPLE_JWT_SECRET)")
	}

	return cfg, nil
}
