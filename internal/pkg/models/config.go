package models

import "time"

// Config holds all application configuration
type Config struct {
	App      AppConfig      `json:"app"`
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Redis    RedisConfig    `json:"redis"`
	JWT      JWTConfig      `json:"jwt"`
	Backend  BackendConfig  `json:"backend"`
	Trip     TripConfig     `json:"trip"`
	Logger   LoggerConfig   `json:"logger"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// JWTConfig holds JWT validation configuration
type JWTConfig struct {
	Secret string `json:"secret"`
	Issuer string `json:"issuer"`
}

// BackendConfig holds the platform REST API configuration
type BackendConfig struct {
	BaseURL string        `json:"base_url"`
	APIKey  string        `json:"api_key"`
	Timeout time.Duration `json:"timeout"`
}

// TripConfig holds the active-trip session tuning knobs. The swipe
// thresholds and timing values are design choices, not backend contracts;
// the commit threshold must stay above the registration threshold to avoid
// an ambiguous dead zone between them.
type TripConfig struct {
	PollInterval           time.Duration `json:"poll_interval"`
	NavigateDelay          time.Duration `json:"navigate_delay"`
	SwipeSettleDelay       time.Duration `json:"swipe_settle_delay"`
	SwipeRegisterThreshold float64       `json:"swipe_register_threshold"`
	SwipeCommitThreshold   float64       `json:"swipe_commit_threshold"`
	GPSMaxFixAge           time.Duration `json:"gps_max_fix_age"`
	GPSTimeout             time.Duration `json:"gps_timeout"`
	FixTTL                 time.Duration `json:"fix_ttl"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}
