package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Logger   LoggerConfig
	Folio    FolioConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
	// CardTTLSeconds bounds how long a card configuration may be served
	// from cache before the sat flag is re-read from storage.
	CardTTLSeconds int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// FolioConfig contains folio policy tunables
type FolioConfig struct {
	// UnpaidExpirationDays is the default expiration window for a charge
	// created without an explicit expiration date.
	UnpaidExpirationDays int
}
