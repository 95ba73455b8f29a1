package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthChecker implementa endpoints de health check
type HealthChecker struct {
	logger       *zap.Logger
	dependencies []Dependency
}

// DatabaseChecker define a interface para verificar o banco de dados
type DatabaseChecker interface {
	Ping(ctx context.Context) error
}

// CacheChecker define a interface para verificar o cache
type CacheChecker interface {
	Ping(ctx context.Context) error
}

// Dependency representa um componente do qual o sistema depende
type Dependency struct {
	Name     string
	Check    func(context.Context) error
	Critical bool // Se true, falha deste componente faz o health check falhar
}

// NewHealthChecker cria um novo health checker
func NewHealthChecker(db DatabaseChecker, cache CacheChecker, logger *zap.Logger) *HealthChecker {
	return &HealthChecker{
		logger: logger,
		dependencies: []Dependency{
			{
				Name:     "database",
				Check:    db.Ping,
				Critical: true,
			},
			{
				Name:     "cache",
				Check:    cache.Ping,
				Critical: false,
			},
		},
	}
}

// LivenessCheck verifica se o aplicativo está vivo. Mantém o corpo
// em texto puro do contrato original.
func (h *HealthChecker) LivenessCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK!")
}

// ReadinessCheck verifica se o aplicativo está pronto para receber tráfego
func (h *HealthChecker) ReadinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	result := gin.H{
		"status": "UP",
		"time":   time.Now(),
		"checks": make(map[string]interface{}),
	}

	checks := result["checks"].(map[string]interface{})

	var mu sync.Mutex
	var wg sync.WaitGroup

	// Verificar cada dependência em paralelo
	for _, dep := range h.dependencies {
		wg.Add(1)
		go func(d Dependency) {
			defer wg.Done()

			start := time.Now()
			err := d.Check(ctx)
			duration := time.Since(start)

			depStatus := "UP"
			if err != nil {
				depStatus = "DOWN"
				h.logger.Error("health check falhou",
					zap.String("dependency", d.Name),
					zap.Error(err))
			}

			mu.Lock()
			defer mu.Unlock()

			if err != nil && d.Critical {
				status = http.StatusServiceUnavailable
			}
			checks[d.Name] = gin.H{
				"status":   depStatus,
				"time":     duration.String(),
				"critical": d.Critical,
			}
		}(dep)
	}

	wg.Wait()

	if status != http.StatusOK {
		result["status"] = "DOWN"
	}

	c.JSON(status, result)
}
