package repository

import (
	"context"
	"fmt"
	"strings"

	"storerating/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// StoreUpdate lists the store columns to change; nil fields are left alone.
type StoreUpdate struct {
	Name    *string
	Address *string
	OwnerID *int64
}

func (u StoreUpdate) Empty() bool {
	return u.Name == nil && u.Address == nil && u.OwnerID == nil
}

func (u StoreUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Address != nil {
		cols["address"] = *u.Address
	}
	if u.OwnerID != nil {
		cols["owner_id"] = *u.OwnerID
	}
	return cols
}

type StoreRepository interface {
	Create(ctx context.Context, store *models.Store) error
	FindByID(ctx context.Context, id int64) (*models.Store, error)
	FindWithStats(ctx context.Context, id int64) (*models.StoreWithStats, error)
	// List returns stores with owner and rating aggregates. ownerID 0 means every owner.
	List(ctx context.Context, ownerID int64, params ListParams) ([]models.StoreWithStats, int64, error)
	Update(ctx context.Context, id int64, update StoreUpdate) error
	Delete(ctx context.Context, id int64) error
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

// storeStatsColumns is shared by every query that reports per-store aggregates.
const storeStatsColumns = `s.id, s.name, s.address, s.owner_id, s.created_at, s.updated_at,
	u.name AS owner_name, u.email AS owner_email,
	CAST(COALESCE(AVG(r.rating), 0) AS FLOAT) AS average_rating,
	COUNT(r.id) AS total_ratings`

func storeStats(db *gorm.DB) *gorm.DB {
	return db.Table("stores AS s").
		Select(storeStatsColumns).
		Joins("JOIN users u ON u.id = s.owner_id").
		Joins("LEFT JOIN ratings r ON r.store_id = s.id").
		Group("s.id, u.id")
}

func (r *storeRepository) Create(ctx context.Context, store *models.Store) error {
	if err := r.db.WithContext(ctx).Create(store).Error; err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	return nil
}

func (r *storeRepository) FindByID(ctx context.Context, id int64) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &store, nil
}

func (r *storeRepository) FindWithStats(ctx context.Context, id int64) (*models.StoreWithStats, error) {
	var rows []models.StoreWithStats
	if err := storeStats(r.db.WithContext(ctx)).Where("s.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("find store: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (r *storeRepository) List(ctx context.Context, ownerID int64, params ListParams) ([]models.StoreWithStats, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if ownerID != 0 {
			db = db.Where("s.owner_id = ?", ownerID)
		}
		if strings.TrimSpace(params.Search) != "" {
			pattern := likePattern(params.Search)
			db = db.Where("LOWER(s.name) LIKE ? OR LOWER(s.address) LIKE ?", pattern, pattern)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Table("stores AS s").Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count stores: %w", err)
	}

	var stores []models.StoreWithStats
	err := storeStats(r.db.WithContext(ctx)).
		Scopes(filter).
		Order(storeSortColumns.orderBy(params.SortBy, params.SortOrder)).
		Order("s.id DESC").
		Scopes(paginate(params)).
		Scan(&stores).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list stores: %w", err)
	}
	return stores, total, nil
}

func (r *storeRepository) Update(ctx context.Context, id int64, update StoreUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Store{}).Where("id = ?", id).Updates(update.columns())
	if result.Error != nil {
		return fmt.Errorf("update store: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the store and, through ON DELETE CASCADE, its ratings.
func (r *storeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Store{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete store: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
