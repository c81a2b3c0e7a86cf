package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"strike-master-api/handlers"
	"strike-master-api/middleware"
	"strike-master-api/models"
	"strike-master-api/services"
	"strike-master-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB is plenty for avatar uploads
	})

	// CORS: load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// A missing DATABASE_URL must not crash the service: data routes are
	// guarded by middleware.RequireDatabase and /api/health reports the
	// degraded state instead.
	var db *gorm.DB
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("WARNING: DATABASE_URL environment variable is not set!")
		log.Println("API endpoints requiring the database will not work.")
	} else {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal("failed to connect to database:", err)
		}

		if err := db.AutoMigrate(
			&models.Coach{},
			&models.Session{},
			&models.Student{},
			&models.Player{},
			&models.Match{},
			&models.MatchPermission{},
			&models.Record{},
		); err != nil {
			log.Fatal("failed to migrate database:", err)
		}
	}

	if err := utils.InitR2(); err != nil {
		log.Printf("WARNING: avatar storage disabled: %v", err)
	}

	authService := services.NewAuthService(db)
	locationService := services.NewLocationService(db)
	playerService := services.NewPlayerService(db)
	matchService := services.NewMatchService(db)
	recordService := services.NewRecordService(db)
	statsService := services.NewStatsService(db)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		status := "not configured"
		if db != nil {
			status = "connected"
		}
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  status,
		})
	})

	api.Use(middleware.RequireDatabase(db))

	handlers.SetupAuthRoutes(api, authService)
	handlers.SetupLocationRoutes(api, locationService)
	handlers.SetupPlayerRoutes(api, playerService)
	handlers.SetupMatchRoutes(api, matchService)
	handlers.SetupRecordRoutes(api, recordService)
	handlers.SetupStatsRoutes(api, statsService)

	if db != nil {
		matchService.StartCompletionScheduler()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Strike Master API running on port %s", port)
	if db != nil {
		log.Println("Database: connected")
	} else {
		log.Println("Database: not configured")
	}
	log.Printf("CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}
