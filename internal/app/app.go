package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vidasync/health-api/internal/adapter/database"
	"github.com/vidasync/health-api/internal/adapter/http"
	"github.com/vidasync/health-api/internal/app/auth"
	"github.com/vidasync/health-api/internal/app/exam"
	"github.com/vidasync/health-api/internal/app/measurement"
	"github.com/vidasync/health-api/internal/app/profile"
	"github.com/vidasync/health-api/internal/app/vaccination"
	"github.com/vidasync/health-api/internal/infra/metrics"
	"github.com/vidasync/health-api/internal/infra/middleware"
	"github.com/vidasync/health-api/pkg/cache"
	"github.com/vidasync/health-api/pkg/config"
	"github.com/vidasync/health-api/pkg/ratelimit"
	"github.com/vidasync/health-api/pkg/security"
	"github.com/vidasync/health-api/pkg/validation"
	"go.uber.org/zap"
)

// App agrega todas as dependências já montadas da aplicação
type App struct {
	Logger     *zap.Logger
	Config     *config.Config
	DB         *database.Database
	Cache      cache.Cache
	Middleware *middleware.Middleware
	APIMetrics *metrics.APIMetrics

	authHandler        *http.AuthHandler
	profileHandler     *http.ProfileHandler
	examHandler        *http.ExamHandler
	vaccinationHandler *http.VaccinationHandler
	measurementHandler *http.MeasurementHandler
	healthChecker      *http.HealthChecker
}

// NewApp cria uma nova instância da aplicação com todas as dependências injetadas
func NewApp(ctx context.Context, logger *zap.Logger) (*App, error) {
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	db, err := database.NewDatabase(ctx, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		SlowThreshold:   cfg.Database.SlowThreshold,
	}, logger)
	if err != nil {
		return nil, err
	}

	apiMetrics := metrics.NewAPIMetrics()

	appCache, limiter, err := buildCache(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Segredo JWT: config tem precedência, com fallback para as
	// variáveis de ambiente legadas
	secret := []byte(cfg.Auth.JWTSecret)
	if len(secret) == 0 {
		secret = security.GetJWTSecret()
	}
	keyManager, err := security.NewKeyManager(secret, logger)
	if err != nil {
		return nil, err
	}

	userRepo := database.NewUserRepository(db.DB())
	examRepo := database.NewExamRepository(db.DB())
	vaccinationRepo := database.NewVaccinationRepository(db.DB())
	measurementRepo := database.NewMeasurementRepository(db.DB())
	profileRepo := database.NewProfileRepository(db.DB())

	authService := auth.NewService(keyManager, userRepo, cfg.Auth.TokenExpiration, logger)
	examService := exam.NewService(examRepo, logger)
	vaccinationService := vaccination.NewService(vaccinationRepo, logger)
	measurementService := measurement.NewService(measurementRepo, logger)
	profileService := profile.NewService(profileRepo, appCache, logger)

	middlewares := middleware.NewMiddleware(logger, authService, apiMetrics, limiter)

	return &App{
		Logger:     logger,
		Config:     cfg,
		DB:         db,
		Cache:      appCache,
		Middleware: middlewares,
		APIMetrics: apiMetrics,

		authHandler:        http.NewAuthHandler(authService, logger),
		profileHandler:     http.NewProfileHandler(profileService, logger),
		examHandler:        http.NewExamHandler(examService, logger),
		vaccinationHandler: http.NewVaccinationHandler(vaccinationService, logger),
		measurementHandler: http.NewMeasurementHandler(measurementService, logger),
		healthChecker:      http.NewHealthChecker(db, appCache, logger),
	}, nil
}

// buildCache monta o cache conforme a configuração. Quando o backend é
// redis, o mesmo cliente alimenta o rate limiter de login; nos demais
// casos o limiter fica nil e o middleware vira no-op.
func buildCache(cfg *config.Config, logger *zap.Logger) (cache.Cache, *ratelimit.RedisLimiter, error) {
	if !cfg.Cache.Enabled {
		return cache.NewNoopCache(), nil, nil
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(
			cfg.Cache.Redis.Address,
			cfg.Cache.Redis.Password,
			cfg.Cache.Redis.DB,
			logger,
		)
		if err != nil {
			return nil, nil, err
		}
		return redisCache, ratelimit.NewRedisLimiter(redisCache.Client(), logger), nil
	default:
		ttl := cfg.Cache.TTL
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		return cache.NewMemoryCache(ttl, 2*ttl, logger), nil, nil
	}
}

// RegisterRoutes registra todas as rotas no router
func (a *App) RegisterRoutes(router *gin.Engine) {
	validation.RegisterGinValidators()

	router.Use(a.Middleware.Recovery())
	router.Use(a.Middleware.Logger())
	router.Use(a.Middleware.Metrics())
	if a.Config.Tracing.Enabled {
		router.Use(a.Middleware.Tracing())
	}

	router.GET("/health", a.healthChecker.LivenessCheck)
	router.GET("/health/readiness", a.healthChecker.ReadinessCheck)

	if a.Config.Metrics.Enabled {
		path := a.Config.Metrics.PrometheusPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(promhttp.HandlerFor(
			metrics.DefaultRegistry,
			promhttp.HandlerOpts{},
		)))
	}

	// Os endpoints de credenciais compartilham o mesmo limite por IP
	credentialLimit := a.Middleware.SignInRateLimit(a.Config.Auth.SignInRateLimit)
	router.POST("/sign-up", credentialLimit, a.authHandler.SignUp)
	router.POST("/sign-in", credentialLimit, a.authHandler.SignIn)

	authenticated := router.Group("/")
	authenticated.Use(a.Middleware.Authenticate)
	{
		authenticated.GET("/profile", a.profileHandler.Get)
		authenticated.POST("/profile", a.profileHandler.CreateOrUpdate)

		authenticated.GET("/exam", a.examHandler.List)
		authenticated.GET("/exam/filter", a.examHandler.Search)
		authenticated.POST("/exam", a.examHandler.Create)
		authenticated.GET("/exam/:examId", a.examHandler.GetByID)
		authenticated.PUT("/exam/:examId", a.examHandler.Update)
		authenticated.DELETE("/exam/:examId", a.examHandler.Delete)

		authenticated.GET("/vaccination", a.vaccinationHandler.List)
		authenticated.GET("/vaccination/filter", a.vaccinationHandler.Search)
		authenticated.POST("/vaccination", a.vaccinationHandler.Create)
		authenticated.GET("/vaccination/:vaccinationId", a.vaccinationHandler.GetByID)
		authenticated.PUT("/vaccination/:vaccinationId", a.vaccinationHandler.Update)
		authenticated.DELETE("/vaccination/:vaccinationId", a.vaccinationHandler.Delete)

		authenticated.GET("/measurement/:measurementType", a.measurementHandler.Get)
		authenticated.POST("/measurement/:measurementType", a.measurementHandler.Create)
		authenticated.PUT("/measurement/:measurementType", a.measurementHandler.Update)
		authenticated.DELETE("/measurement/:measurementType", a.measurementHandler.Delete)
	}
}

// Close libera os recursos mantidos pela aplicação
func (a *App) Close() error {
	return a.DB.Close()
}
