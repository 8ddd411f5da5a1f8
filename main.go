package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	_ "go.uber.org/automaxprocs"

	"github.com/GCrispino/workout-api/internal/config"
	"github.com/GCrispino/workout-api/internal/database/connection"
	"github.com/GCrispino/workout-api/internal/database/memstore"
	"github.com/GCrispino/workout-api/internal/database/repository"
	"github.com/GCrispino/workout-api/internal/logging"
	"github.com/GCrispino/workout-api/internal/server"
	"github.com/GCrispino/workout-api/internal/usecases/athletes"
	"github.com/GCrispino/workout-api/internal/usecases/categories"
	"github.com/GCrispino/workout-api/internal/usecases/centers"
)

func main() {
	cfg, err := config.New(os.Args[1:])
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		logrus.Fatalf("failed to build logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		athletesUsecase   *athletes.AthleteUsecase
		categoriesUsecase *categories.CategoryUsecase
		centersUsecase    *centers.TrainingCenterUsecase
	)

	if cfg.DBDriver == config.DriverMemory {
		log.Warn("using in-memory store, data is lost on exit")
		store := memstore.New()
		athletesUsecase = athletes.NewAthleteUsecase(store, store, store)
		categoriesUsecase = categories.NewCategoryUsecase(store)
		centersUsecase = centers.NewTrainingCenterUsecase(store)
	} else {
		dbConn, err := connection.NewDBConn(ctx, cfg.DBDriver, cfg.DatabaseURI, log)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer dbConn.Close()

		if err := dbConn.EnsureSchema(ctx); err != nil {
			log.Fatalf("failed to prepare schema: %v", err)
		}

		categoriesRepo := repository.NewCategories(dbConn, log)
		centersRepo := repository.NewTrainingCenters(dbConn, log)
		athletesRepo := repository.NewAthletes(dbConn, log)

		athletesUsecase = athletes.NewAthleteUsecase(athletesRepo, categoriesRepo, centersRepo)
		categoriesUsecase = categories.NewCategoryUsecase(categoriesRepo)
		centersUsecase = centers.NewTrainingCenterUsecase(centersRepo)
	}

	s := server.NewServer(athletesUsecase, categoriesUsecase, centersUsecase, log)

	go func() {
		if err := s.Start(cfg.RunAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()
	log.Infof("server started on %s", cfg.RunAddress)

	<-ctx.Done()

	log.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown failed: %v", err)
	}
}
