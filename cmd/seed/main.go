// Command seed creates the default accounts of a fresh installation. Accounts
// that already exist are left untouched.
package main

import (
	"context"
	"errors"
	"os"

	"salesdesk/cmd"
	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/user"
	"salesdesk/internal/pkg/errs"

	"github.com/labstack/gommon/log"
)

var defaultUsers = []struct {
	username string
	role     kernel.Role
}{
	{"admin", kernel.RoleAdmin},
	{"client1", kernel.RoleClient},
	{"confirmer1", kernel.RoleConfirmer},
	{"buyer1", kernel.RoleBuyer},
}

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := cmd.NewLogger(cfg, os.Stdout).With("component", "seed")

	db, err := cmd.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	users := cmd.NewCompositionRoot(cfg, db, logger).Users()
	ctx := context.Background()

	for _, d := range defaultUsers {
		existing, err := users.GetByUsername(ctx, d.username)
		if err == nil {
			logger.Info("user already exists", "username", d.username, "id", existing.ID().String())
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			log.Fatalf("Error looking up %s: %v", d.username, err)
		}

		u, err := user.NewUser(kernel.NewUUID(), d.username, d.role)
		if err != nil {
			log.Fatalf("Error building %s: %v", d.username, err)
		}
		if err := users.Add(ctx, u); err != nil {
			log.Fatalf("Error creating %s: %v", d.username, err)
		}
		logger.Info("user created", "username", d.username, "role", d.role.String(), "id", u.ID().String())
	}
}
