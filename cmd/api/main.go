package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/trackademic/trackademic-api/internal/config"
	"github.com/trackademic/trackademic-api/internal/database"
	"github.com/trackademic/trackademic-api/internal/handler"
	"github.com/trackademic/trackademic-api/internal/middleware"
	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/repository"
	"github.com/trackademic/trackademic-api/internal/router"
	"github.com/trackademic/trackademic-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Class{},
		&models.Assignment{},
		&models.Semester{},
		&models.CoreRequirement{},
		&models.MajorRequirement{},
		&models.MinorRequirement{},
		&models.UserProfile{},
		&models.DegreeSettings{},
		&models.CategoryWeightDoc{},
		&models.Note{},
		&models.Todo{},
		&models.Application{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	natsConn, err := database.ConnectNATS(cfg.NATSURL, cfg.AppName)
	if err != nil {
		log.Fatalf("failed to connect to nats: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	classRepo := repository.NewClassRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	semesterRepo := repository.NewSemesterRepository(db)
	coreRepo := repository.NewCoreRequirementRepository(db)
	majorRepo := repository.NewMajorRequirementRepository(db)
	minorRepo := repository.NewMinorRequirementRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	weightRepo := repository.NewWeightRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	broadcaster := service.NewChangeBroadcaster(redisClient, cfg.CacheChannelBase, natsConn, logger)
	broadcaster.Start(runCtx)

	snapshots := service.NewSnapshotBuilder(classRepo, assignmentRepo, weightRepo, semesterRepo, coreRepo, majorRepo, minorRepo, profileRepo)

	classService := service.NewClassService(classRepo, assignmentRepo, broadcaster, validate, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, classRepo, broadcaster, validate, logger)
	semesterService := service.NewSemesterService(semesterRepo, broadcaster, validate, logger)
	requirementService := service.NewRequirementService(coreRepo, majorRepo, minorRepo, broadcaster, validate, logger)
	weightService := service.NewWeightService(weightRepo, broadcaster, validate, logger)
	profileService := service.NewProfileService(profileRepo, broadcaster, validate, logger)
	noteService := service.NewNoteService(noteRepo, broadcaster, validate, logger)
	todoService := service.NewTodoService(todoRepo, broadcaster, validate, logger)
	careerService := service.NewCareerService(applicationRepo, broadcaster, validate, logger)
	gradebookService := service.NewGradebookService(snapshots, classRepo, redisClient, cfg.ViewCacheTTL, validate, logger)
	degreeService := service.NewDegreeService(snapshots, semesterRepo, coreRepo, majorRepo, minorRepo, profileRepo, redisClient, cfg.ViewCacheTTL, logger)
	dashboardService := service.NewDashboardService(snapshots, classRepo, assignmentRepo, todoRepo, redisClient, cfg.ViewCacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ClassHandler:       handler.NewClassHandler(classService, logger),
		AssignmentHandler:  handler.NewAssignmentHandler(assignmentService, logger),
		SemesterHandler:    handler.NewSemesterHandler(semesterService, logger),
		RequirementHandler: handler.NewRequirementHandler(requirementService, logger),
		WeightHandler:      handler.NewWeightHandler(weightService, logger),
		ProfileHandler:     handler.NewProfileHandler(profileService, logger),
		NoteHandler:        handler.NewNoteHandler(noteService, logger),
		TodoHandler:        handler.NewTodoHandler(todoService, logger),
		CareerHandler:      handler.NewCareerHandler(careerService, logger),
		GradebookHandler:   handler.NewGradebookHandler(gradebookService, logger),
		DegreeHandler:      handler.NewDegreeHandler(degreeService, logger),
		DashboardHandler:   handler.NewDashboardHandler(dashboardService, logger),
		JWTMiddleware:      middleware.JWTProtected(cfg.JWTSecret),
		RateLimiter:        middleware.RateLimit("api", cfg.RateLimitMax, cfg.RateLimitWindow),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(runCtx, app)
}

func waitForShutdown(runCtx context.Context, app *fiber.App) {
	<-runCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
