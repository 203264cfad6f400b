// Package bootstrap prepares the backing store on startup: it creates any
// missing tables with their header rows and optionally seeds a first admin
// account so a fresh deployment can be logged into.
package bootstrap

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
	"github.com/zanzibarboats/booking-system/internal/infrastructure/config"
	"github.com/zanzibarboats/booking-system/internal/infrastructure/tables"
)

// Storer is the subset of the mongo table store bootstrap needs.
type Storer interface {
	ports.TableStore
	EnsureTables(ctx context.Context, headers map[string]ports.Row) error
}

// Run creates missing tables and, when SEED_ADMIN_EMAIL is set and the Users
// table is still empty, appends a bootstrap admin account.
func Run(ctx context.Context, store Storer, users ports.UserRepository, cfg *config.Config, log zerolog.Logger) error {
	if err := store.EnsureTables(ctx, tables.Headers()); err != nil {
		return err
	}

	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	existing, err := users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:          "1",
		Name:        "Admin",
		Email:       cfg.SeedAdminEmail,
		Password:    string(hash),
		Role:        domain.RoleAdmin,
		AccessBoats: domain.AllBoats,
		Permissions: domain.PermAll,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := users.Append(ctx, admin); err != nil {
		return err
	}

	log.Info().Str("email", cfg.SeedAdminEmail).Msg("seeded bootstrap admin account")
	return nil
}
