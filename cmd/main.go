package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"hostelhub/backend/internal/api/handler"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies() (*gorm.DB, *redis.Client) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "user"),
		envOr("DB_PASSWORD", "password"),
		envOr("DB_NAME", "hostelhubdb"),
		envOr("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Hostel{},
		&models.Block{},
		&models.Floor{},
		&models.Room{},
		&models.Seat{},
		&models.Issue{},
		&models.Comment{},
		&models.Reaction{},
		&models.Announcement{},
		&models.LostItem{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	log.Println("Starting HostelHub Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	r := gin.Default()
	h := handler.NewHandler(s)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	api := r.Group("/", handler.AuthMiddleware())
	{
		api.POST("/issues", h.CreateIssue)
		api.GET("/issues", h.ListIssues)
		api.GET("/issues/:id", h.GetIssue)
		api.PATCH("/issues/:id", h.EditIssue)

		api.POST("/comments", h.AddComment)
		api.POST("/reactions", h.React)

		api.POST("/announcements", h.PublishAnnouncement)
		api.GET("/announcements", h.ListAnnouncements)

		api.POST("/lostfound", h.ReportLostItem)
		api.GET("/lostfound", h.ListLostItems)
		api.POST("/lostfound/:id/claim", h.ClaimLostItem)
		api.POST("/lostfound/:id/confirm", h.ConfirmLostItemHandover)

		api.GET("/hostels", h.ListHostels)
		api.GET("/hostels/:id/occupancy", h.HostelOccupancy)
	}

	server := &http.Server{
		Addr:           ":" + envOr("PORT", "8080"),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
