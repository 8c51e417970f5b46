package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// InitConfig loads configuration from the environment, optionally seeded
// from an env file for local development. Environment variables use the
// LEDGER prefix with underscores, e.g. LEDGER_DATABASE_HOST.
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "trip-ledger")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.version", "0.0.0")
	v.SetDefault("app.debug", true)

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "ledger")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "ledger")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.idle_conns", 5)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")

	v.SetDefault("jwt.expiration", 1440)
	v.SetDefault("jwt.issuer", "trip-ledger")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")

	v.SetDefault("scheduler.finish_interval", 5*time.Minute)
	v.SetDefault("scheduler.reminder_interval", time.Minute)
	v.SetDefault("scheduler.retention_interval", 12*time.Hour)
	v.SetDefault("scheduler.reminder_min_lead", 30*time.Minute)
	v.SetDefault("scheduler.reminder_max_lead", 90*time.Minute)
	v.SetDefault("scheduler.trip_retention_days", 60)
	v.SetDefault("scheduler.search_history_days", 2)

	v.SetDefault("booking.max_active_bookings", 2)
	v.SetDefault("booking.penalty_threshold", 3)
	v.SetDefault("booking.penalty_window", 30*time.Minute)
	v.SetDefault("booking.search_history_limit", 5)
}
