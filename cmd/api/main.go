package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"talentflow/config"
	v1 "talentflow/internal/delivery/http/v1"
	"talentflow/internal/domain"
	"talentflow/internal/repository/memory"
	"talentflow/internal/repository/sqlite"
	"talentflow/internal/usecase"
	"talentflow/pkg/logger"
	"time"
)

// @title           TalentFlow API
// @version         1.0
// @description     Hiring pipeline backend: jobs, candidates and assessments.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting talentflow backend", "port", cfg.Port, "driver", cfg.StorageDriver)

	// 3. Setup Storage
	var (
		jobRepo        domain.JobRepository
		candidateRepo  domain.CandidateRepository
		assessmentRepo domain.AssessmentRepository
		adminRepo      domain.AdminRepository
	)

	switch cfg.StorageDriver {
	case "memory":
		store := memory.NewStore()
		jobRepo = memory.NewJobRepository(store)
		candidateRepo = memory.NewCandidateRepository(store)
		assessmentRepo = memory.NewAssessmentRepository(store)
		adminRepo = memory.NewAdminRepository(store)
	default:
		store, err := sqlite.NewStore(cfg.DataDir)
		if err != nil {
			logger.Log.Error("Failed to open store", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		jobRepo = sqlite.NewJobRepository(store)
		candidateRepo = sqlite.NewCandidateRepository(store)
		assessmentRepo = sqlite.NewAssessmentRepository(store)
		adminRepo = sqlite.NewAdminRepository(store)
	}

	// 4. Setup UseCases
	jobUC := usecase.NewJobUsecase(jobRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo)
	assessmentUC := usecase.NewAssessmentUsecase(assessmentRepo)
	adminUC := usecase.NewAdminUsecase(jobRepo, adminRepo, cfg.SeedCandidates)
	searchUC := usecase.NewSearchUsecase(jobRepo, candidateRepo, assessmentRepo,
		time.Duration(cfg.SearchCacheTTLSeconds)*time.Second)

	// 5. Seed on first boot
	if err := adminUC.EnsureSeeded(context.Background()); err != nil {
		logger.Log.Error("Failed to seed store", "error", err)
		os.Exit(1)
	}

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:        jobUC,
		CandidateUC:  candidateUC,
		AssessmentUC: assessmentUC,
		AdminUC:      adminUC,
		SearchUC:     searchUC,
		Config:       cfg,
	})

	// 7. Start Server
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
