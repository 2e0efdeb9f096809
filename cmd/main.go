package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lsweb/lsweb-api/config"
	"github.com/lsweb/lsweb-api/db"
	authdomain "github.com/lsweb/lsweb-api/internal/auth/domain"
	authhandler "github.com/lsweb/lsweb-api/internal/auth/handler"
	authservice "github.com/lsweb/lsweb-api/internal/auth/service"
	contactdomain "github.com/lsweb/lsweb-api/internal/contact/domain"
	contacthandler "github.com/lsweb/lsweb-api/internal/contact/handler"
	contactservice "github.com/lsweb/lsweb-api/internal/contact/service"
	"github.com/lsweb/lsweb-api/internal/mailer"
	mongostore "github.com/lsweb/lsweb-api/internal/store/mongo"
	postgresstore "github.com/lsweb/lsweb-api/internal/store/postgres"
	supabasestore "github.com/lsweb/lsweb-api/internal/store/supabase"
)

// storeBackend is satisfied by every storage adapter; one is active per
// deployment.
type storeBackend interface {
	contactdomain.ContactStore
	authdomain.CredentialStore
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	store, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage backend: %v", err)
	}

	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryHrs)
	authService := authservice.NewAuthService(store, tokenService, cfg.AdminEmail, cfg.AdminPassword)

	notifier := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		To:       cfg.EmailTo,
	})
	intakeService := contactservice.NewIntakeService(store, notifier)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	contacthandler.RegisterRoutes(app, contacthandler.NewContactHandler(intakeService))
	authhandler.RegisterRoutes(app, authhandler.NewAuthHandler(authService))

	if created, err := authService.EnsureDefaultAdmin(ctx); err != nil {
		log.Printf("error: failed to initialize default admin: %v", err)
	} else if created {
		log.Println("Default admin user created")
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}

func newStore(ctx context.Context, cfg *config.Config) (storeBackend, error) {
	switch cfg.StorageBackend {
	case "mongo":
		database, err := db.NewMongoDatabase(ctx, cfg.MongoURL, cfg.DBName)
		if err != nil {
			return nil, err
		}
		return mongostore.NewStore(database), nil
	case "postgres":
		pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
		if err != nil {
			return nil, err
		}
		return postgresstore.NewStore(pool), nil
	case "supabase":
		return supabasestore.NewStore(cfg.SupabaseURL, cfg.SupabaseKey), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
