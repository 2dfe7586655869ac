package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"staff-records/internal/config"
	"staff-records/internal/handler"
	"staff-records/internal/middleware"
	"staff-records/internal/repository"
	"staff-records/internal/service"
	"staff-records/internal/service/auth"
	"staff-records/internal/worker"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to MinIO, roster export will not work")
		minioClient = nil
	}

	repos := repository.NewRepositories(db)
	services, err := service.NewServices(repos, minioClient, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	handlers := handler.NewHandlers(services)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AsyncEmailDelivery {
		redisClient, err := config.NewRedisClient(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()

		services.Messaging.SetDeliveryQueue(worker.NewRedisQueue(redisClient))

		deliveryWorker := worker.NewDeliveryWorker(redisClient, repos.Message, repos.Employee, services.Email)
		go deliveryWorker.Run(ctx)

		log.Info().Msg("Async email delivery enabled")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)

	protected := v1.Group("", middleware.AuthRequired(authService))

	employees := protected.Group("/employees")
	employees.Post("/", h.Employee.Create)
	employees.Get("/", h.Employee.List)
	employees.Get("/:employeeId", h.Employee.Get)
	employees.Put("/:employeeId", h.Employee.Update)
	employees.Delete("/:employeeId", h.Employee.Delete)

	departments := protected.Group("/departments")
	departments.Post("/", h.Department.Create)
	departments.Get("/", h.Department.List)
	departments.Get("/:departmentId", h.Department.Get)
	departments.Put("/:departmentId", h.Department.Update)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", h.Dashboard.GetStats)

	messages := protected.Group("/messages")
	messages.Post("/email", h.Messaging.SendEmail)
	messages.Post("/whatsapp", h.Messaging.SendWhatsApp)
	messages.Get("/recipients", h.Messaging.Recipients)
	messages.Get("/history/:employeeId", h.Messaging.History)

	exports := protected.Group("/exports")
	exports.Post("/employees", h.Export.ExportEmployees)
}
