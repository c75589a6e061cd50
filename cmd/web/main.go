package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"locallibrary/internal/config"
	"locallibrary/internal/database"
	"locallibrary/internal/handler"
	"locallibrary/internal/middleware"
	"locallibrary/internal/repository"
	"locallibrary/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	authorRepo := repository.NewAuthorRepo(db)
	bookRepo := repository.NewBookRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	instanceRepo := repository.NewBookInstanceRepo(db)

	authorSvc := service.NewAuthorService(authorRepo, bookRepo)
	bookSvc := service.NewBookService(bookRepo, authorRepo, genreRepo, instanceRepo)
	genreSvc := service.NewGenreService(genreRepo, bookRepo)
	instanceSvc := service.NewBookInstanceService(instanceRepo, bookRepo)
	statsSvc := service.NewStatsService(bookRepo, instanceRepo, authorRepo, genreRepo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/static", cfg.StaticDir)

	dev := cfg.IsDevelopment()
	catalog := r.Group("/catalog")
	handler.NewCatalogHandler(statsSvc, dev).RegisterRoutes(catalog)
	handler.NewAuthorHandler(authorSvc, dev).RegisterRoutes(catalog)
	handler.NewBookHandler(bookSvc, dev).RegisterRoutes(catalog)
	handler.NewGenreHandler(genreSvc, dev).RegisterRoutes(catalog)
	handler.NewBookInstanceHandler(instanceSvc, dev).RegisterRoutes(catalog)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog")
	})
	r.NoRoute(handler.NotFound)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Info("starting server", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
