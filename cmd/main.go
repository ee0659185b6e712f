package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/fsssb/course-rate/config"
	"github.com/fsssb/course-rate/internal/handler"
	"github.com/fsssb/course-rate/internal/middleware"
	"github.com/fsssb/course-rate/internal/repository/postgres"

	_ "github.com/fsssb/course-rate/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title Teacher Ratings API
// @version 1.0
// @description API for searching teachers and retrieving aggregated review ratings

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api
// @schemes https http

func main() {
	godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	storage, err := postgres.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Database initialization failed", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	if err := storage.Migrate(ctx); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	if cfg.Seed {
		if err := storage.SeedDatabase(ctx); err != nil {
			slog.Error("Seeding failed", "error", err)
			os.Exit(1)
		}
	}

	e := echo.New()

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	handler.SetupTeacherRoutes(e, storage)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
