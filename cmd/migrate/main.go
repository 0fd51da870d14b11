package main

import (
	"context"
	"flag"
	"os"

	"github.com/coffeehouse/backend/internal/domain/identity"
	"github.com/coffeehouse/backend/internal/infrastructure/config"
	"github.com/coffeehouse/backend/internal/infrastructure/logger"
	"github.com/coffeehouse/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		logLevel      string
		adminEmail    string
		adminName     string
		adminPassword string
	)

	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&adminEmail, "admin-email", "", "Seed an admin account with this email")
	flag.StringVar(&adminName, "admin-name", "Admin", "Name for the seeded admin account")
	flag.StringVar(&adminPassword, "admin-password", "", "Password for the seeded admin account")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Schema migrated")

	if adminEmail != "" {
		if adminPassword == "" {
			log.Fatal("admin-password is required when seeding an admin account")
		}
		if err := seedAdmin(db, adminEmail, adminName, adminPassword); err != nil {
			log.Fatal("Failed to seed admin account", zap.Error(err))
		}
		log.Info("Admin account ready", zap.String("email", adminEmail))
	}
}

// seedAdmin creates the admin account unless it already exists
func seedAdmin(db *persistence.Database, email, name, password string) error {
	ctx := context.Background()
	userRepo := persistence.NewGormUserRepository(db.DB)

	exists, err := userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	admin, err := identity.NewAdminUser(email, name, password)
	if err != nil {
		return err
	}
	return userRepo.Save(ctx, admin)
}
