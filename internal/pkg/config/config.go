package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/edupagos/backoffice/internal/pkg/models"
)

// InitConfig loads configuration from an optional config file plus
// environment variables (env wins). configPath may be empty, in which case
// only defaults and environment apply.
func InitConfig(appName, configPath string) *models.Config {
	v := viper.New()

	setDefaults(v, appName)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("config file %s not loaded: %v", configPath, err)
		}
	}

	return buildConfig(v)
}

func setDefaults(v *viper.Viper, appName string) {
	v.SetDefault("app.name", appName)
	v.SetDefault("app.env", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9980)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("db.driver", "pgx")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.username", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.database", "backoffice")
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.max_conns", 10)
	v.SetDefault("db.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.card_ttl_seconds", 300)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.enabled", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file_path", "")

	v.SetDefault("folio.unpaid_expiration_days", 15)
}

func buildConfig(v *viper.Viper) *models.Config {
	cfg := &models.Config{}

	cfg.App.Name = v.GetString("app.name")
	cfg.App.Environment = v.GetString("app.env")
	cfg.App.Debug = v.GetBool("app.debug")
	cfg.App.Version = v.GetString("app.version")

	cfg.Server.Host = v.GetString("server.host")
	cfg.Server.Port = v.GetInt("server.port")
	cfg.Server.ReadTimeout = v.GetInt("server.read_timeout")
	cfg.Server.WriteTimeout = v.GetInt("server.write_timeout")
	cfg.Server.ShutdownTimeout = v.GetInt("server.shutdown_timeout")

	cfg.Database.Driver = v.GetString("db.driver")
	cfg.Database.Host = v.GetString("db.host")
	cfg.Database.Port = v.GetInt("db.port")
	cfg.Database.Username = v.GetString("db.username")
	cfg.Database.Password = v.GetString("db.password")
	cfg.Database.Database = v.GetString("db.database")
	cfg.Database.SSLMode = v.GetString("db.ssl_mode")
	cfg.Database.MaxConns = v.GetInt("db.max_conns")
	cfg.Database.IdleConns = v.GetInt("db.idle_conns")

	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.PoolSize = v.GetInt("redis.pool_size")
	cfg.Redis.CardTTLSeconds = v.GetInt("redis.card_ttl_seconds")

	cfg.NSQ.Address = v.GetString("nsq.address")
	cfg.NSQ.Enabled = v.GetBool("nsq.enabled")

	cfg.Logger.Level = v.GetString("log.level")
	cfg.Logger.FilePath = v.GetString("log.file_path")

	cfg.Folio.UnpaidExpirationDays = v.GetInt("folio.unpaid_expiration_days")

	return cfg
}
