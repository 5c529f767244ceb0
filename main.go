package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"house-competition-system/handlers"
	"house-competition-system/headlines"
	"house-competition-system/middleware"
	"house-competition-system/models"
	"house-competition-system/services"
	"house-competition-system/utils"
	"house-competition-system/workers"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB — crest images are the only uploads
	})

	app.Use(middleware.Metrics())

	// CORS for the public standings page and the admin SPA
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitJWT(); err != nil {
		log.Fatal("failed to initialize token signing: ", err)
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client: ", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(
		&models.House{},
		&models.Event{},
		&models.EventResult{},
		&models.User{},
		&models.UserRole{},
	); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	authService := services.NewAuthService(db)
	houseService := services.NewHouseService(db)
	eventService := services.NewEventService(db)
	standingsService := services.NewStandingsService(db)

	handlers.SetupAuthRoutes(app, authService)
	handlers.SetupHouseRoutes(app, db, houseService)
	handlers.SetupEventRoutes(app, db, eventService, standingsService)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Static public page (medal table + headlines)
	app.Static("/", "./public")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Headline worker is optional — runs only when a provider is configured
	generator, err := headlines.NewGeneratorFromEnv()
	if err != nil {
		log.Fatal("failed to initialize headline generator: ", err)
	}
	if generator != nil {
		worker := workers.NewHeadlineWorker(db, generator)
		worker.Start()
		defer worker.Shutdown()
		log.Println("✅ Headline worker running")
	} else {
		log.Println("⚠️  HEADLINE_PROVIDER not set — results will have no headlines")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}
