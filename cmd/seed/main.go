// Package main seeds the database with the initial admin user and,
// optionally, demo catalog data.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	appctx "ferreo/internal/core/context"
	"ferreo/internal/core/id"
	"ferreo/internal/domain/auth"
	"ferreo/internal/infrastructure/config"
	"ferreo/internal/infrastructure/storage/postgres"
	"ferreo/internal/infrastructure/storage/postgres/auth_repo"
	"ferreo/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{Level: "info", Development: true})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.PoolConfigFromApp(cfg.Database))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)
	users := auth_repo.NewUserRepo(txManager)

	email := envOr("ADMIN_EMAIL", "admin@ferreo.local")
	password := envOr("ADMIN_PASSWORD", "")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD environment variable is required")
	}

	exists, err := users.Exists(ctx, email)
	if err != nil {
		log.Fatalw("failed to check admin user", "error", err)
	}
	if exists {
		log.Infow("admin user already present", "email", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalw("failed to hash password", "error", err)
	}

	admin := auth.NewUser(email, string(hash), appctx.RoleAdmin)
	admin.FullName = "Administrador"

	if err := users.Create(ctx, admin); err != nil {
		log.Fatalw("failed to create admin user", "error", err)
	}
	log.Infow("admin user created", "email", email, "userId", admin.ID)

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}
}

// seedDemoData inserts a handful of catalog rows for local development.
func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	customers := [][]any{
		{id.New(), "CLI-00001", "Ferretería El Tornillo", "El Tornillo S.A.", 1},
		{id.New(), "CLI-00002", "Construcciones Rivas", "Rivas Hnos. S.R.L.", 2},
		{id.New(), "CLI-00003", "Juan Pérez", "Juan Pérez", 3},
	}
	for _, row := range customers {
		_, err := pool.Exec(ctx, `
			INSERT INTO cat_customers (id, code, name, business_name, price_tier)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (code) DO NOTHING`, row...)
		if err != nil {
			return err
		}
	}

	products := [][]any{
		{id.New(), "ART-00001", "Tornillo autoperforante 8x1", "caja", "25.00", "22.50", "20.00"},
		{id.New(), "ART-00002", "Cemento portland 50kg", "bolsa", "180.00", "170.00", "160.00"},
		{id.New(), "ART-00003", "Pintura látex blanca 20L", "lata", "950.00", "900.00", "850.00"},
	}
	for _, row := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO cat_products (id, code, name, unit, price_retail, price_wholesale, price_preferred)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (code) DO NOTHING`, row...)
		if err != nil {
			return err
		}
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM cat_customers").Scan(&count); err != nil {
		return err
	}

	log.Infow("demo data seeded", "customers", count)
	return nil
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
