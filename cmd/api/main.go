package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"smarthire/internal/app"
	"smarthire/internal/config"
	"smarthire/internal/database"
	apphttp "smarthire/internal/http"
	"smarthire/internal/http/handlers"
	"smarthire/internal/http/metrics"
	httpmw "smarthire/internal/http/middleware"
	"smarthire/internal/observability"
	"smarthire/internal/repository/postgres"
	"smarthire/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db, err := database.NewPostgres(context.Background(), database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	matchLogRepo := postgres.NewMatchLogRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	engine := security.NewEngine(cfg.JWTSecret)
	issuer := security.NewIssuer(engine, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authService := app.NewAuthService(userRepo, companyRepo, engine, issuer, logger)
	companyService := app.NewCompanyService(companyRepo, userRepo, logger)
	jobService := app.NewJobService(jobRepo, companyRepo)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo)
	matchService := app.NewMatchService(applicationRepo, matchLogRepo, jobRepo)
	subscriptionService := app.NewSubscriptionService(subscriptionRepo)

	var limiter httpmw.Limiter
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	} else {
		limiter = httpmw.NewRateLimiter()
	}

	collector := metrics.NewCollector()

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:         handlers.NewAuthHandler(authService, limiter),
		CompanyHandler:      handlers.NewCompanyHandler(companyService),
		JobHandler:          handlers.NewJobHandler(jobService),
		ApplicationHandler:  handlers.NewApplicationHandler(applicationService, matchService),
		SubscriptionHandler: handlers.NewSubscriptionHandler(subscriptionService),
		PaymentHandler:      handlers.NewPaymentHandler(),
		AuthMiddleware:      httpmw.NewAuthMiddleware(authService.Authenticator()),
		Metrics:             collector,
		MetricsHandler:      metrics.NewHandler(collector),
		AuditRepo:           auditRepo,
		Logger:              logger,
		RequestTimeout:      cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
