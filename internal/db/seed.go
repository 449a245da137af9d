package db

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/amalynlocs/salon-api/internal/config"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/models"
	"github.com/amalynlocs/salon-api/internal/timezone"
)

// SeedAdmin makes sure the configured admin account exists so login works on
// a fresh store. An existing record is left alone; password changes go
// through the environment plus a key delete.
func SeedAdmin(ctx context.Context, store kv.Store, cfg *config.Config) error {
	key := models.AdminKey(cfg.AdminEmail)

	if _, err := store.Get(ctx, key); err == nil {
		return nil
	} else if err != kv.ErrNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:        cfg.AdminEmail,
		Name:         "Amalyn Locs Admin",
		PasswordHash: string(hashed),
		Role:         "admin",
		CreatedAt:    timezone.Stamp(),
	}

	return store.Set(ctx, key, admin)
}
