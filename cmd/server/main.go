package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"peakform/coach-app/internal/api"
	"peakform/coach-app/internal/config"
	"peakform/coach-app/internal/repository/mongo"
	"peakform/coach-app/internal/service"
	"peakform/coach-app/internal/storage"
)

func main() {
	log.Println("Starting Coach App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureProgramIndexes(ctx, appDB.Collection("programs"))
		mongo.EnsureSessionIndexes(ctx, appDB.Collection("sessions"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureAssignmentIndexes(ctx, appDB.Collection("assignments"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	sessionRepo := mongo.NewMongoSessionRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	assignmentRepo := mongo.NewMongoAssignmentRepository(appDB)
	libraryRepo := mongo.NewMongoLibraryRepository(appDB)

	// --- Initialize Services ---
	verifier := service.NewOwnershipVerifier(programRepo, sessionRepo, exerciseRepo)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	userService := service.NewUserService(userRepo)
	programService := service.NewProgramService(programRepo, sessionRepo, exerciseRepo, assignmentRepo, verifier, fileStorage, cfg.App.BaseURL)
	sessionService := service.NewSessionService(sessionRepo, exerciseRepo, verifier)
	exerciseService := service.NewExerciseService(exerciseRepo, libraryRepo, verifier)
	assignmentService := service.NewAssignmentService(userRepo, programRepo, assignmentRepo, verifier)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	// --- Setup Routes ---
	api.SetupRoutes(
		router,
		&cfg,
		api.NewAuthHandler(authService),
		api.NewUserHandler(userService),
		api.NewProgramHandler(programService),
		api.NewSessionHandler(sessionService),
		api.NewExerciseHandler(exerciseService),
		api.NewAssignmentHandler(assignmentService),
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
