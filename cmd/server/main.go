package main

import (
	"fmt"
	"log"

	"gstfiler/internal/config"
	"gstfiler/internal/gstr1"
	"gstfiler/internal/handler"
	"gstfiler/internal/repository/postgres"
	"gstfiler/internal/router"
	"gstfiler/internal/service"
	s3storage "gstfiler/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	filingRepo := postgres.NewFilingRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize the normalization engine and services
	engine := gstr1.NewEngine(gstr1.Config{
		B2CLThreshold:   cfg.Engine.B2CLThreshold,
		DefaultCategory: gstr1.Category(cfg.Engine.DefaultCategory),
	})
	filingSvc := service.NewFilingService(filingRepo, s3Client, engine, cfg.S3.MaxPayloadSizeMB)

	// Initialize handlers
	filingH := handler.NewFilingHandler(filingSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, filingH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
