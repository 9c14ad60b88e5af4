package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Zachary-Blundell/convergence-des-luttes/config"
	"github.com/Zachary-Blundell/convergence-des-luttes/db"
	assochandler "github.com/Zachary-Blundell/convergence-des-luttes/internal/association/handler"
	assocrepo "github.com/Zachary-Blundell/convergence-des-luttes/internal/association/repository/postgres"
	authhandler "github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/handler"
	authrepo "github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/repository/postgres"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/service"
	apperror "github.com/Zachary-Blundell/convergence-des-luttes/internal/errors"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/obs"
	orghandler "github.com/Zachary-Blundell/convergence-des-luttes/internal/organizer/handler"
	orgrepo "github.com/Zachary-Blundell/convergence-des-luttes/internal/organizer/repository/postgres"
	authconstant "github.com/Zachary-Blundell/convergence-des-luttes/pkg/constant"
)

func main() {
	cfg := config.Load()

	if err := db.Migrate(cfg.DBURL); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	organizerStore := authrepo.NewPostgresRepository(pool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin)
	refreshManager := service.NewRefreshTokenManager(organizerStore, cfg.RefreshTokenSecret, cfg.RefreshExpiryMin)
	authService := service.NewAuthService(organizerStore, tokenService, refreshManager)
	authHandler := authhandler.NewAuthHandler(authService, tokenService, cfg.IsProduction())

	associationHandler := assochandler.NewAssociationHandler(assocrepo.NewPostgresRepository(pool))
	organizerHandler := orghandler.NewOrganizerHandler(orgrepo.NewPostgresRepository(pool))

	app := fiber.New(fiber.Config{
		ErrorHandler: apperror.Handler,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	authhandler.RegisterRoutes(app, authHandler)
	assochandler.RegisterRoutes(app, associationHandler)
	orghandler.RegisterRoutes(app, organizerHandler, authHandler.RequireRole(authconstant.RoleAdmin))
	app.Get("/metrics", obs.MetricsHandler())

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
