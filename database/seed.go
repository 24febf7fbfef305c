package database

import (
	"context"
	"fmt"

	"storerating/internal/logger"
	"storerating/internal/microservices/http-api/models"
	"storerating/internal/middleware/auth"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultAccount is a demo login created by Seed.
type DefaultAccount struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

var DefaultAccounts = []DefaultAccount{
	{Name: "System Administrator", Email: "admin@store-rating.com", Password: "Admin123!", Role: models.RoleAdmin},
	{Name: "Store Owner Demo Account", Email: "storeowner@store-rating.com", Password: "Store123!", Role: models.RoleStoreOwner},
	{Name: "Demo User Regular Account", Email: "user@store-rating.com", Password: "User123!", Role: models.RoleUser},
}

// Seed inserts the default accounts. Existing emails are left untouched, so
// running it twice is harmless. Returns the number of accounts created.
func Seed(ctx context.Context, db *gorm.DB, log *logger.Logger) (int64, error) {
	var created int64
	for _, acc := range DefaultAccounts {
		hash, err := auth.HashPassword(acc.Password)
		if err != nil {
			return created, fmt.Errorf("hash password for %s: %w", acc.Email, err)
		}
		user := models.User{Name: acc.Name, Email: acc.Email, Password: hash, Role: acc.Role}

		res := db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
			Create(&user)
		if res.Error != nil {
			return created, fmt.Errorf("seed %s: %w", acc.Email, res.Error)
		}
		created += res.RowsAffected
	}

	log.Info(ctx, fmt.Sprintf("seeded %d default account(s)", created))
	return created, nil
}
