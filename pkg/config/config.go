package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config representa a configuração completa da aplicação
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Metrics  MetricsConfig
	Logging  LoggingConfig
	Tracing  TracingConfig
}

// ServerConfig contém configurações do servidor HTTP
type ServerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig contém configurações do banco de dados
type DatabaseConfig struct {
	Driver          string // postgres, mysql, sqlite
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

// RedisOptions contém configurações específicas para Redis
type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

// CacheConfig contém configurações do cache
type CacheConfig struct {
	Enabled bool
	Type    string // redis, memory
	TTL     time.Duration
	Redis   RedisOptions
}

// AuthConfig contém configurações de autenticação
type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
	SignInRateLimit int // requisições por minuto por IP; 0 desabilita
}

// MetricsConfig contém configurações de métricas
type MetricsConfig struct {
	Enabled        bool
	PrometheusPath string
}

// LoggingConfig contém configurações de logging
type LoggingConfig struct {
	Level      string
	Production bool
}

// TracingConfig contém configurações de rastreamento
type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

// LoadConfig carrega a configuração de diversas fontes (arquivo, env, defaults)
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/healthapi")

	if err := v.ReadInConfig(); err != nil {
		// Arquivo ausente não é erro; defaults e env cobrem o resto
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
		}
	}

	// Variáveis de ambiente com prefixo HA_ sobrescrevem o arquivo
	v.SetEnvPrefix("HA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("erro ao mapear configuração: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults define valores padrão para a configuração
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.readTimeout", "5s")
	v.SetDefault("server.writeTimeout", "10s")
	v.SetDefault("server.idleTimeout", "30s")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.connMaxLifetime", "1h")
	v.SetDefault("database.slowThreshold", "200ms")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("cache.redis.address", "")
	v.SetDefault("cache.redis.db", 0)

	v.SetDefault("auth.tokenExpiration", "24h")
	v.SetDefault("auth.signInRateLimit", 0)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.prometheusPath", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.production", true)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.serviceName", "health-api")
}

// validateConfig confere o mínimo necessário para subir o serviço
func validateConfig(config *Config) error {
	if config.Database.DSN == "" && config.Database.Driver != "sqlite" {
		return fmt.Errorf("database.dsn é obrigatório para o driver %s", config.Database.Driver)
	}

	switch config.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("driver de banco de dados não suportado: %s", config.Database.Driver)
	}

	if config.Cache.Enabled && config.Cache.Type == "redis" && config.Cache.Redis.Address == "" {
		return fmt.Errorf("cache.redis.address é obrigatório quando cache.type = redis")
	}

	return nil
}
