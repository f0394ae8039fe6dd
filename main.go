package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"startup-quest-system/handlers"
	"startup-quest-system/middleware"
	"startup-quest-system/models"
	"startup-quest-system/services"
	"startup-quest-system/storage"
	"startup-quest-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		AppName: "startup-quest-system",
	})

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
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	db, err := openDatabase()
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	store, err := storage.NewGormStore(db)
	if err != nil {
		log.Fatal("failed to migrate snapshot store:", err)
	}

	currentUserID := os.Getenv("CURRENT_USER_ID")
	if currentUserID == "" {
		currentUserID = models.CurrentUserID
	}

	progressionService := services.NewProgressionService(store)
	socialService := services.NewSocialService(store, currentUserID)
	mentorService, err := services.NewMentorService()
	if err != nil {
		log.Fatal("failed to start mentor scheduler:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go workers.PollSnapshots(ctx, 30*time.Second, progressionService, socialService)

	app.Use(middleware.UserContextMiddleware(currentUserID))

	handlers.SetupProgressionRoutes(app, progressionService)
	handlers.SetupSocialRoutes(app, socialService)
	handlers.SetupMentorRoutes(app, mentorService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Printf("✅ Session user: %s", currentUserID)
	log.Println("✅ Snapshot flusher running (every 30s)")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := mentorService.Close(); err != nil {
		log.Printf("⚠️  Mentor scheduler shutdown: %v", err)
	}
	if err := app.Shutdown(); err != nil {
		log.Printf("⚠️  Server shutdown: %v", err)
	}
}

// openDatabase prefers Postgres when DATABASE_URL is set and otherwise
// falls back to an embedded SQLite file, matching the client-local nature
// of the data.
func openDatabase() (*gorm.DB, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		log.Println("Using Postgres snapshot store")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("QUEST_DB_PATH")
	if path == "" {
		path = "quest.db"
	}
	log.Printf("Using SQLite snapshot store at %s", path)
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
