package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vidasync/health-api/pkg/config"
	"gopkg.in/yaml.v3"
)

func main() {
	var (
		outputPath string
		force      bool
	)

	flag.StringVar(&outputPath, "output", "config.yaml", "Caminho para o arquivo de configuração de saída")
	flag.BoolVar(&force, "force", false, "Sobrescrever arquivo se existir")
	flag.Parse()

	if _, err := os.Stat(outputPath); err == nil && !force {
		fmt.Printf("Erro: arquivo %s já existe. Use --force para sobrescrever.\n", outputPath)
		os.Exit(1)
	}

	// Configuração com valores padrão documentados
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver:          "postgres",
			DSN:             "host=localhost user=healthapi password=healthapi dbname=healthapi port=5432",
			MaxIdleConns:    10,
			MaxOpenConns:    50,
			ConnMaxLifetime: 1 * time.Hour,
			SlowThreshold:   200 * time.Millisecond,
		},
		Cache: config.CacheConfig{
			Enabled: true,
			Type:    "memory",
			TTL:     5 * time.Minute,
			Redis: config.RedisOptions{
				Address:  "localhost:6379",
				Password: "",
				DB:       0,
			},
		},
		Auth: config.AuthConfig{
			JWTSecret:       "troque-por-um-segredo-de-no-minimo-32-bytes",
			TokenExpiration: 24 * time.Hour,
			SignInRateLimit: 0,
		},
		Metrics: config.MetricsConfig{
			Enabled:        true,
			PrometheusPath: "/metrics",
		},
		Logging: config.LoggingConfig{
			Level:      "info",
			Production: true,
		},
		Tracing: config.TracingConfig{
			Enabled:     false,
			Endpoint:    "localhost:4317",
			ServiceName: "health-api",
		},
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Printf("Erro ao serializar configuração: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		fmt.Printf("Erro ao escrever arquivo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Arquivo de configuração gerado em: %s\n", outputPath)
}
