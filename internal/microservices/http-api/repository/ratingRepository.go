package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storerating/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	// Create inserts a rating and returns ErrDuplicateRating when the
	// (user, store) pair already has one.
	Create(ctx context.Context, rating *models.Rating) error
	FindByUserAndStore(ctx context.Context, userID, storeID int64) (*models.Rating, error)
	FindByID(ctx context.Context, id int64) (*models.Rating, error)
	// FindDetail returns the rating joined with its store and rater.
	FindDetail(ctx context.Context, id int64) (*models.RatingDetail, error)
	// UpdateByAuthor changes a rating only if userID wrote it; otherwise ErrNotFound.
	UpdateByAuthor(ctx context.Context, id, userID int64, value int, comment *string) (*models.Rating, error)
	// DeleteByAuthor removes a rating only if userID wrote it; otherwise ErrNotFound.
	DeleteByAuthor(ctx context.Context, id, userID int64) error
	ListByStore(ctx context.Context, storeID int64, params ListParams) ([]models.RatingDetail, int64, error)
	ListByUser(ctx context.Context, userID int64, params ListParams) ([]models.RatingDetail, int64, error)
	ListByStoreOwner(ctx context.Context, ownerID int64, params ListParams) ([]models.RatingDetail, int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

const ratingColumns = "r.id, r.user_id, r.store_id, r.rating, r.comment, r.created_at, r.updated_at"

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(rating).Error; err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicateRating
		}
		return fmt.Errorf("create rating: %w", err)
	}
	return nil
}

func (r *ratingRepository) FindByUserAndStore(ctx context.Context, userID, storeID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&rating).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &rating, nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &rating, nil
}

func (r *ratingRepository) FindDetail(ctx context.Context, id int64) (*models.RatingDetail, error) {
	var rows []models.RatingDetail
	err := r.db.WithContext(ctx).
		Table("ratings AS r").
		Select(ratingColumns + `, s.name AS store_name, s.address AS store_address, s.owner_id AS store_owner_id,
			u.name AS user_name, u.email AS user_email`).
		Joins("JOIN stores s ON s.id = r.store_id").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("r.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find rating: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (r *ratingRepository) UpdateByAuthor(ctx context.Context, id, userID int64, value int, comment *string) (*models.Rating, error) {
	var commentValue any
	if comment != nil {
		commentValue = *comment
	}

	// scoping the write by author makes a concurrent delete surface as not found
	result := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"rating":     value,
			"comment":    commentValue,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("update rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *ratingRepository) DeleteByAuthor(ctx context.Context, id, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return fmt.Errorf("delete rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByStore returns a store's ratings with rater name and email, newest first.
func (r *ratingRepository) ListByStore(ctx context.Context, storeID int64, params ListParams) ([]models.RatingDetail, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Rating{}).Where("store_id = ?", storeID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count store ratings: %w", err)
	}

	var rows []models.RatingDetail
	err := r.db.WithContext(ctx).
		Table("ratings AS r").
		Select(ratingColumns+", u.name AS user_name, u.email AS user_email").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("r.store_id = ?", storeID).
		Order("r.created_at DESC").
		Order("r.id DESC").
		Scopes(paginate(params)).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list store ratings: %w", err)
	}
	return rows, total, nil
}

// ListByUser returns the caller's own ratings with store name and address.
func (r *ratingRepository) ListByUser(ctx context.Context, userID int64, params ListParams) ([]models.RatingDetail, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("r.user_id = ?", userID)
		if strings.TrimSpace(params.Search) != "" {
			pattern := likePattern(params.Search)
			db = db.Where("LOWER(s.name) LIKE ? OR LOWER(s.address) LIKE ?", pattern, pattern)
		}
		return db
	}

	var total int64
	err := r.db.WithContext(ctx).
		Table("ratings AS r").
		Joins("JOIN stores s ON s.id = r.store_id").
		Scopes(filter).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("count user ratings: %w", err)
	}

	var rows []models.RatingDetail
	err = r.db.WithContext(ctx).
		Table("ratings AS r").
		Select(ratingColumns+", s.name AS store_name, s.address AS store_address, s.owner_id AS store_owner_id").
		Joins("JOIN stores s ON s.id = r.store_id").
		Scopes(filter).
		Order(ratingSortColumns.orderBy(params.SortBy, params.SortOrder)).
		Order("r.id DESC").
		Scopes(paginate(params)).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list user ratings: %w", err)
	}
	return rows, total, nil
}

// ListByStoreOwner returns ratings across every store owned by ownerID, newest first.
func (r *ratingRepository) ListByStoreOwner(ctx context.Context, ownerID int64, params ListParams) ([]models.RatingDetail, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("ratings AS r").
		Joins("JOIN stores s ON s.id = r.store_id").
		Where("s.owner_id = ?", ownerID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("count owner ratings: %w", err)
	}

	var rows []models.RatingDetail
	err = r.db.WithContext(ctx).
		Table("ratings AS r").
		Select(ratingColumns + `, s.name AS store_name, s.address AS store_address, s.owner_id AS store_owner_id,
			u.name AS user_name, u.email AS user_email`).
		Joins("JOIN stores s ON s.id = r.store_id").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("s.owner_id = ?", ownerID).
		Order("r.created_at DESC").
		Order("r.id DESC").
		Scopes(paginate(params)).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list owner ratings: %w", err)
	}
	return rows, total, nil
}
