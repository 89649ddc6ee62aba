package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/malokastory/elegance-backend/internal/assistant"
	"github.com/malokastory/elegance-backend/internal/backup"
	"github.com/malokastory/elegance-backend/internal/config"
	"github.com/malokastory/elegance-backend/internal/imaging"
	"github.com/malokastory/elegance-backend/internal/order"
	"github.com/malokastory/elegance-backend/internal/product"
	"github.com/malokastory/elegance-backend/internal/session"
	"github.com/malokastory/elegance-backend/internal/settings"
	"github.com/malokastory/elegance-backend/internal/sitedata"
	"github.com/malokastory/elegance-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(traceMiddleware)

	store := mustOpenStore(cfg)
	defer store.Close()

	// repositories and services per entity
	productService := product.NewService(product.NewKVRepository(store))
	orderService := order.NewService(order.NewKVRepository(store))
	settingsService := settings.NewService(settings.NewKVRepository(store))

	sessionManager := session.NewManager(store, cfg.AdminPasswordHash, []byte(cfg.JWTSecret))

	// the synchronization context mirrors persisted state for the UI layer
	data := sitedata.New(productService, orderService, settingsService, sessionManager)
	data.Load(context.Background())

	productHandler := product.NewHandler(data)
	orderHandler := order.NewHandler(data)
	settingsHandler := settings.NewHandler(data)
	sessionHandler := session.NewHandler(sessionManager, data)
	backupHandler := backup.NewHandler(
		backup.NewService(productService, orderService, settingsService, store),
		data,
	)
	assistantHandler := assistant.NewHandler(assistant.NewClient(cfg.AssistantURL, cfg.AssistantAPIKey))
	imagingHandler := imaging.NewHandler()

	// storefront endpoints stay open; everything registered after the JWT
	// middleware requires an admin token
	productHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	settingsHandler.RegisterPublicRoutes(app)
	sessionHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	productHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	settingsHandler.RegisterProtectedRoutes(app)
	sessionHandler.RegisterProtectedRoutes(app)
	backupHandler.RegisterProtectedRoutes(app)
	assistantHandler.RegisterProtectedRoutes(app)
	imagingHandler.RegisterProtectedRoutes(app)

	// protected refresh hook for admins who suspect the mirror drifted
	app.Post("/api/v1/admin/refresh", func(c *fiber.Ctx) error {
		if err := data.Reload(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "reloaded"})
	})

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenStore(cfg config.Config) storage.Store {
	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemoryStore()
	case "redis":
		return storage.NewRedisStore(cfg.RedisAddr)
	case "postgres":
		if cfg.DatabaseURL == "" {
			panic("DATABASE_URL is not set")
		}
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			panic(err)
		}
		if err := db.Ping(); err != nil {
			panic(err)
		}
		store, err := storage.NewPostgresStore(db)
		if err != nil {
			panic(err)
		}
		return store
	default:
		store, err := storage.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			panic(err)
		}
		return store
	}
}

func traceMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}
