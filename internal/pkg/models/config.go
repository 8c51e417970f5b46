package models

import "time"

// Config is the top level application configuration
type Config struct {
	App       AppConfig       `json:"app" mapstructure:"app"`
	Server    ServerConfig    `json:"server" mapstructure:"server"`
	Database  DatabaseConfig  `json:"database" mapstructure:"database"`
	Redis     RedisConfig     `json:"redis" mapstructure:"redis"`
	NSQ       NSQConfig       `json:"nsq" mapstructure:"nsq"`
	JWT       JWTConfig       `json:"jwt" mapstructure:"jwt"`
	APIKey    APIKeyConfig    `json:"api_key" mapstructure:"api_key"`
	Logger    LoggerConfig    `json:"logger" mapstructure:"logger"`
	Scheduler SchedulerConfig `json:"scheduler" mapstructure:"scheduler"`
	Booking   BookingConfig   `json:"booking" mapstructure:"booking"`
}

// AppConfig contains application metadata
type AppConfig struct {
	Name        string `json:"name" mapstructure:"name"`
	Environment string `json:"environment" mapstructure:"environment"`
	Version     string `json:"version" mapstructure:"version"`
	Debug       bool   `json:"debug" mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host" mapstructure:"host"`
	Port            int    `json:"port" mapstructure:"port"`
	ReadTimeout     int    `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains PostgreSQL connection configuration
type DatabaseConfig struct {
	Host      string `json:"host" mapstructure:"host"`
	Port      int    `json:"port" mapstructure:"port"`
	Username  string `json:"username" mapstructure:"username"`
	Password  string `json:"password" mapstructure:"password"`
	Database  string `json:"database" mapstructure:"database"`
	SSLMode   string `json:"ssl_mode" mapstructure:"ssl_mode"`
	MaxConns  int    `json:"max_conns" mapstructure:"max_conns"`
	IdleConns int    `json:"idle_conns" mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
	PoolSize int    `json:"pool_size" mapstructure:"pool_size"`
}

// NSQConfig contains NSQ daemon configuration
type NSQConfig struct {
	Address          string   `json:"address" mapstructure:"address"`
	LookupdAddresses []string `json:"lookupd_addresses" mapstructure:"lookupd_addresses"`
}

// JWTConfig contains JWT token configuration
type JWTConfig struct {
	Secret     string `json:"secret" mapstructure:"secret"`
	Expiration int    `json:"expiration" mapstructure:"expiration"` // minutes
	Issuer     string `json:"issuer" mapstructure:"issuer"`
}

// APIKeyConfig holds the key guarding privileged admin routes
type APIKeyConfig struct {
	AdminKey string `json:"admin_key" mapstructure:"admin_key"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
}

// SchedulerConfig controls the lifecycle worker sweeps
type SchedulerConfig struct {
	FinishInterval    time.Duration `json:"finish_interval" mapstructure:"finish_interval"`
	ReminderInterval  time.Duration `json:"reminder_interval" mapstructure:"reminder_interval"`
	RetentionInterval time.Duration `json:"retention_interval" mapstructure:"retention_interval"`
	ReminderMinLead   time.Duration `json:"reminder_min_lead" mapstructure:"reminder_min_lead"`
	ReminderMaxLead   time.Duration `json:"reminder_max_lead" mapstructure:"reminder_max_lead"`
	TripRetentionDays int           `json:"trip_retention_days" mapstructure:"trip_retention_days"`
	SearchHistoryDays int           `json:"search_history_days" mapstructure:"search_history_days"`
}

// BookingConfig bounds passenger booking behaviour
type BookingConfig struct {
	MaxActiveBookings  int           `json:"max_active_bookings" mapstructure:"max_active_bookings"`
	PenaltyThreshold   int           `json:"penalty_threshold" mapstructure:"penalty_threshold"`
	PenaltyWindow      time.Duration `json:"penalty_window" mapstructure:"penalty_window"`
	SearchHistoryLimit int           `json:"search_history_limit" mapstructure:"search_history_limit"`
}
