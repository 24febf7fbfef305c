package repository

import (
	"context"
	"fmt"

	"storerating/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type AdminStatistics struct {
	TotalUsers    int64
	TotalStores   int64
	TotalRatings  int64
	AverageRating float64
}

type OwnerStatistics struct {
	TotalStores   int64
	TotalRatings  int64
	AverageRating float64
}

type UserStatistics struct {
	TotalRatings  int64
	AverageRating float64
}

type RoleCount struct {
	Role  models.Role
	Count int64
}

// RecentRatingsFilter narrows RecentRatings. Zero fields apply no restriction.
type RecentRatingsFilter struct {
	OwnerID int64
	UserID  int64
}

// DashboardRepository serves the read-only aggregate queries behind the dashboards.
type DashboardRepository interface {
	AdminStatistics(ctx context.Context) (AdminStatistics, error)
	OwnerStatistics(ctx context.Context, ownerID int64) (OwnerStatistics, error)
	UserStatistics(ctx context.Context, userID int64) (UserStatistics, error)
	UsersByRole(ctx context.Context) ([]RoleCount, error)
	// TopStores returns rated stores ordered by average then count, both descending.
	TopStores(ctx context.Context, limit int) ([]models.StoreWithStats, error)
	// StoresByOwner returns every store of ownerID with its aggregates, newest first.
	StoresByOwner(ctx context.Context, ownerID int64) ([]models.StoreWithStats, error)
	RecentStores(ctx context.Context, limit int) ([]models.StoreWithStats, error)
	RecentUsers(ctx context.Context, limit int) ([]models.User, error)
	RecentRatings(ctx context.Context, filter RecentRatingsFilter, limit int) ([]models.RatingDetail, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type ratingAggregate struct {
	Total   int64   `gorm:"column:total"`
	Average float64 `gorm:"column:average"`
}

const ratingAggregateColumns = "COUNT(r.id) AS total, CAST(COALESCE(AVG(r.rating), 0) AS FLOAT) AS average"

func (r *dashboardRepository) AdminStatistics(ctx context.Context) (AdminStatistics, error) {
	var stats AdminStatistics
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return stats, fmt.Errorf("count users: %w", err)
	}
	if err := db.Model(&models.Store{}).Count(&stats.TotalStores).Error; err != nil {
		return stats, fmt.Errorf("count stores: %w", err)
	}

	var agg ratingAggregate
	if err := db.Table("ratings AS r").Select(ratingAggregateColumns).Scan(&agg).Error; err != nil {
		return stats, fmt.Errorf("aggregate ratings: %w", err)
	}
	stats.TotalRatings = agg.Total
	stats.AverageRating = agg.Average
	return stats, nil
}

func (r *dashboardRepository) OwnerStatistics(ctx context.Context, ownerID int64) (OwnerStatistics, error) {
	var stats OwnerStatistics
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Store{}).Where("owner_id = ?", ownerID).Count(&stats.TotalStores).Error; err != nil {
		return stats, fmt.Errorf("count owner stores: %w", err)
	}

	var agg ratingAggregate
	err := db.Table("ratings AS r").
		Select(ratingAggregateColumns).
		Joins("JOIN stores s ON s.id = r.store_id").
		Where("s.owner_id = ?", ownerID).
		Scan(&agg).Error
	if err != nil {
		return stats, fmt.Errorf("aggregate owner ratings: %w", err)
	}
	stats.TotalRatings = agg.Total
	stats.AverageRating = agg.Average
	return stats, nil
}

func (r *dashboardRepository) UserStatistics(ctx context.Context, userID int64) (UserStatistics, error) {
	var agg ratingAggregate
	err := r.db.WithContext(ctx).
		Table("ratings AS r").
		Select(ratingAggregateColumns).
		Where("r.user_id = ?", userID).
		Scan(&agg).Error
	if err != nil {
		return UserStatistics{}, fmt.Errorf("aggregate user ratings: %w", err)
	}
	return UserStatistics{TotalRatings: agg.Total, AverageRating: agg.Average}, nil
}

func (r *dashboardRepository) UsersByRole(ctx context.Context) ([]RoleCount, error) {
	var counts []RoleCount
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Order("role").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("users by role: %w", err)
	}
	return counts, nil
}

func (r *dashboardRepository) TopStores(ctx context.Context, limit int) ([]models.StoreWithStats, error) {
	var stores []models.StoreWithStats
	err := storeStats(r.db.WithContext(ctx)).
		Having("COUNT(r.id) > 0").
		Order("average_rating DESC").
		Order("total_ratings DESC").
		Order("s.id").
		Limit(limit).
		Scan(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("top stores: %w", err)
	}
	return stores, nil
}

func (r *dashboardRepository) StoresByOwner(ctx context.Context, ownerID int64) ([]models.StoreWithStats, error) {
	var stores []models.StoreWithStats
	err := storeStats(r.db.WithContext(ctx)).
		Where("s.owner_id = ?", ownerID).
		Order("s.created_at DESC").
		Order("s.id DESC").
		Scan(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("owner stores: %w", err)
	}
	return stores, nil
}

func (r *dashboardRepository) RecentStores(ctx context.Context, limit int) ([]models.StoreWithStats, error) {
	var stores []models.StoreWithStats
	err := storeStats(r.db.WithContext(ctx)).
		Order("s.created_at DESC").
		Order("s.id DESC").
		Limit(limit).
		Scan(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("recent stores: %w", err)
	}
	return stores, nil
}

func (r *dashboardRepository) RecentUsers(ctx context.Context, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}
	return users, nil
}

func (r *dashboardRepository) RecentRatings(ctx context.Context, filter RecentRatingsFilter, limit int) ([]models.RatingDetail, error) {
	query := r.db.WithContext(ctx).
		Table("ratings AS r").
		Select(ratingColumns + `, s.name AS store_name, s.address AS store_address, s.owner_id AS store_owner_id,
			u.name AS user_name, u.email AS user_email`).
		Joins("JOIN stores s ON s.id = r.store_id").
		Joins("JOIN users u ON u.id = r.user_id")
	if filter.OwnerID != 0 {
		query = query.Where("s.owner_id = ?", filter.OwnerID)
	}
	if filter.UserID != 0 {
		query = query.Where("r.user_id = ?", filter.UserID)
	}

	var rows []models.RatingDetail
	err := query.Order("r.created_at DESC").Order("r.id DESC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("recent ratings: %w", err)
	}
	return rows, nil
}
