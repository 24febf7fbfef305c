package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"storerating/internal/microservices/http-api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Store{}, &models.Rating{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		Password: "hash",
		Role:     role,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedStore(t *testing.T, db *gorm.DB, name, address string, ownerID int64) *models.Store {
	t.Helper()
	store := &models.Store{Name: name, Address: address, OwnerID: ownerID}
	require.NoError(t, NewStoreRepository(db).Create(context.Background(), store))
	return store
}

func seedRating(t *testing.T, db *gorm.DB, userID, storeID int64, value int) *models.Rating {
	t.Helper()
	rating := &models.Rating{UserID: userID, StoreID: storeID, Rating: value}
	require.NoError(t, NewRatingRepository(db).Create(context.Background(), rating))
	return rating
}

func page(limit int) ListParams {
	return ListParams{Page: 1, Limit: limit}
}
