// Command create-admin seeds an administrator account. Admins have no public
// sign-up route.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/config"
	"github.com/georgemunganga/marketplace-backend/internal/modules/admin"
	"github.com/georgemunganga/marketplace-backend/internal/platform/database"
	"github.com/georgemunganga/marketplace-backend/internal/platform/password"
	"github.com/georgemunganga/marketplace-backend/internal/platform/token"
)

func main() {
	name := flag.String("name", "", "admin display name")
	email := flag.String("email", "", "admin login email")
	phone := flag.String("phone", "", "admin phone number")
	flag.Parse()

	if err := run(*name, *email, *phone, os.Getenv("ADMIN_PASSWORD")); err != nil {
		fmt.Fprintln(os.Stderr, "create-admin:", err)
		os.Exit(1)
	}
}

func run(name, email, phone, pw string) error {
	if pw == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Open(ctx, cfg.DatabaseURL, 1)
	if err != nil {
		return err
	}
	defer db.Close()
	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	svc := admin.NewService(admin.NewPostgresRepository(db), nil, nil,
		password.NewHasher(cfg.BcryptCost), token.NewIssuer(cfg.JWTSecret), cfg.StaffTokenTTL)
	a, err := svc.CreateAdmin(ctx, admin.CreateRequest{Name: name, Email: email, Password: pw, Phone: phone})
	if err != nil {
		return err
	}
	fmt.Printf("created admin %s (%s)\n", a.Email, a.ID)
	return nil
}
