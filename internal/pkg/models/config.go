package models

// Config represents application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Maps     MapsConfig     `mapstructure:"maps"`
	Services ServicesConfig `mapstructure:"services"`
	Location LocationConfig `mapstructure:"location"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address         string   `mapstructure:"address"`
	LookupAddresses []string `mapstructure:"lookup_addresses"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"` // in minutes
	Issuer     string `mapstructure:"issuer"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// MapsConfig contains map provider configuration. The API key lives only
// server-side and reaches clients through the credential endpoint.
type MapsConfig struct {
	ProviderAPIKey string `mapstructure:"provider_api_key"`
	ProviderURL    string `mapstructure:"provider_url"`
	RequestTimeout int    `mapstructure:"request_timeout"` // in seconds
}

// ServicesConfig contains URLs for other services
type ServicesConfig struct {
	LocationServiceURL string            `mapstructure:"location_service_url"`
	RidesServiceURL    string            `mapstructure:"rides_service_url"`
	APIKeyHashes       map[string]string `mapstructure:"api_key_hashes"` // service name -> bcrypt hash
}

// LocationConfig contains location service specific configuration
type LocationConfig struct {
	ThrottleWindowSeconds int `mapstructure:"throttle_window_seconds"`
	HistoryRetentionDays  int `mapstructure:"history_retention_days"`
}
