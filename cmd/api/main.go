package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cv-platform-backend/config"
	v1 "cv-platform-backend/internal/delivery/http/v1"
	"cv-platform-backend/internal/extraction"
	"cv-platform-backend/internal/repository/postgres"
	"cv-platform-backend/internal/screening"
	"cv-platform-backend/internal/usecase"
	"cv-platform-backend/pkg/database"
	"cv-platform-backend/pkg/logger"
	"cv-platform-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           CV Platform API
// @version         1.0
// @description     Backend for CV extraction, screening and comparison.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting CV platform backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool, cfg.StoreReadTimeout, cfg.StoreWriteTimeout)

	// 6. Setup Extraction Client
	extractor := extraction.NewCohereExtractor(extraction.Options{
		APIKey:  cfg.CohereAPIKey,
		APIURL:  cfg.CohereAPIURL,
		Models:  cfg.CohereModels,
		Timeout: cfg.CohereTimeout,
	})

	// 7. Setup UseCases
	validate := validator.New()
	weights := screening.Weights{
		GPA:               cfg.ScoreWeightGPA,
		Skills:            cfg.ScoreWeightSkills,
		Experience:        cfg.ScoreWeightExperience,
		Certifications:    cfg.ScoreWeightCertifications,
		SkillsCap:         cfg.ScoreCapSkills,
		ExperienceCap:     cfg.ScoreCapExperience,
		CertificationsCap: cfg.ScoreCapCertifications,
	}

	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	profileUC := usecase.NewProfileUsecase(profileRepo, userRepo, extractor, validate)
	screeningUC := usecase.NewScreeningUsecase(profileRepo, userRepo, weights)
	adminUC := usecase.NewAdminUsecase(userRepo, profileRepo, validate)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		ProfileUC:   profileUC,
		ScreeningUC: screeningUC,
		AdminUC:     adminUC,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
