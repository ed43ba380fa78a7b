package main

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/wichananm65/shop-recommender-backend/internal/auth"
	"github.com/wichananm65/shop-recommender-backend/internal/catalog"
	"github.com/wichananm65/shop-recommender-backend/internal/collab"
	"github.com/wichananm65/shop-recommender-backend/internal/config"
	"github.com/wichananm65/shop-recommender-backend/internal/content"
	"github.com/wichananm65/shop-recommender-backend/internal/profile"
	"github.com/wichananm65/shop-recommender-backend/internal/search"
	"github.com/wichananm65/shop-recommender-backend/internal/trending"
)

var log = logrus.New()

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	// pick the catalog source: Postgres when configured, CSV otherwise
	var repo catalog.Repository
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		repo = catalog.NewPostgresRepository(db)
	} else {
		repo = catalog.NewCSVRepository(cfg.CatalogCSV)
	}

	raw, err := repo.Load()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	rows := catalog.Clean(raw)
	log.WithFields(logrus.Fields{
		"rawRows":   len(raw.Rows),
		"cleanRows": len(rows),
	}).Info("catalog loaded")

	store := catalog.NewStore(catalog.NewTable(rows))

	catalogHandler := catalog.NewHandler(store, repo, cfg.DefaultPageSize)
	trendingService := trending.NewService(store, cfg.TrendingMinVotes)
	trendingHandler := trending.NewHandler(trendingService)
	contentHandler := content.NewHandler(content.NewService(store))
	collabHandler := collab.NewHandler(collab.NewService(store, cfg.CollabNeighbors), trendingService)
	searchHandler := search.NewHandler(search.NewService(store))
	profileHandler := profile.NewHandler(profile.NewService(store))
	authHandler := auth.NewHandler(auth.NewService(cfg.AdminEmail, cfg.AdminPasswordHash), cfg.JWTSecret)

	authHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	trendingHandler.RegisterPublicRoutes(app)
	contentHandler.RegisterPublicRoutes(app)
	collabHandler.RegisterPublicRoutes(app)
	searchHandler.RegisterPublicRoutes(app)
	profileHandler.RegisterPublicRoutes(app)

	// everything registered below requires an admin token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	catalogHandler.RegisterProtectedRoutes(app)

	log.Infof("listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	requestID := uuid.NewString()
	c.Set("X-Request-ID", requestID)

	err := c.Next()

	log.WithFields(logrus.Fields{
		"requestId": requestID,
		"method":    c.Method(),
		"path":      c.OriginalURL(),
		"status":    c.Response().StatusCode(),
		"duration":  time.Since(start).String(),
	}).Info("request")
	return err
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	return db
}
