package service

import (
	"context"

	"storerating/internal/apperror"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/models"
	"storerating/internal/microservices/http-api/policy"
	"storerating/internal/microservices/http-api/repository"
)

const (
	topStoresLimit = 5
	recentLimit    = 10
)

// DashboardService assembles the role-specific dashboards. Each dashboard is a
// handful of independent reads with no wrapping transaction.
type DashboardService interface {
	// ForPrincipal returns the dashboard matching the caller's role.
	ForPrincipal(ctx context.Context, p policy.Principal) (any, error)
	Admin(ctx context.Context) (*dto.AdminDashboard, error)
	Owner(ctx context.Context, ownerID int64) (*dto.OwnerDashboard, error)
	User(ctx context.Context, userID int64) (*dto.UserDashboard, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) ForPrincipal(ctx context.Context, p policy.Principal) (any, error) {
	switch p.Role {
	case models.RoleAdmin:
		return s.Admin(ctx)
	case models.RoleStoreOwner:
		return s.Owner(ctx, p.UserID)
	default:
		return s.User(ctx, p.UserID)
	}
}

func (s *dashboardService) Admin(ctx context.Context) (*dto.AdminDashboard, error) {
	stats, err := s.repo.AdminStatistics(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "admin statistics")
	}
	roles, err := s.repo.UsersByRole(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "users by role")
	}
	top, err := s.repo.TopStores(ctx, topStoresLimit)
	if err != nil {
		return nil, apperror.Internal(err, "top stores")
	}
	ratings, err := s.repo.RecentRatings(ctx, repository.RecentRatingsFilter{}, recentLimit)
	if err != nil {
		return nil, apperror.Internal(err, "recent ratings")
	}
	users, err := s.repo.RecentUsers(ctx, recentLimit)
	if err != nil {
		return nil, apperror.Internal(err, "recent users")
	}
	stores, err := s.repo.RecentStores(ctx, recentLimit)
	if err != nil {
		return nil, apperror.Internal(err, "recent stores")
	}

	byRole := make([]dto.RoleCount, 0, len(roles))
	for _, rc := range roles {
		byRole = append(byRole, dto.RoleCount{Role: rc.Role, Count: rc.Count})
	}

	return &dto.AdminDashboard{
		Statistics: dto.AdminStatistics{
			TotalUsers:    stats.TotalUsers,
			TotalStores:   stats.TotalStores,
			TotalRatings:  stats.TotalRatings,
			AverageRating: dto.FormatAverage(stats.AverageRating),
		},
		UsersByRole:   byRole,
		TopStores:     dto.FromStoresWithStats(top),
		RecentRatings: dto.FromRatingDetails(ratings),
		RecentUsers:   dto.FromUsers(users),
		RecentStores:  dto.FromStoresWithStats(stores),
	}, nil
}

func (s *dashboardService) Owner(ctx context.Context, ownerID int64) (*dto.OwnerDashboard, error) {
	stats, err := s.repo.OwnerStatistics(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err, "owner statistics")
	}
	stores, err := s.repo.StoresByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err, "owner stores")
	}
	ratings, err := s.repo.RecentRatings(ctx, repository.RecentRatingsFilter{OwnerID: ownerID}, recentLimit)
	if err != nil {
		return nil, apperror.Internal(err, "recent ratings")
	}

	return &dto.OwnerDashboard{
		Statistics: dto.OwnerStatistics{
			TotalStores:   stats.TotalStores,
			TotalRatings:  stats.TotalRatings,
			AverageRating: dto.FormatAverage(stats.AverageRating),
		},
		StoresWithRatings: dto.FromStoresWithStats(stores),
		RecentRatings:     dto.FromRatingDetails(ratings),
	}, nil
}

func (s *dashboardService) User(ctx context.Context, userID int64) (*dto.UserDashboard, error) {
	stats, err := s.repo.UserStatistics(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err, "user statistics")
	}
	ratings, err := s.repo.RecentRatings(ctx, repository.RecentRatingsFilter{UserID: userID}, recentLimit)
	if err != nil {
		return nil, apperror.Internal(err, "recent ratings")
	}
	top, err := s.repo.TopStores(ctx, topStoresLimit)
	if err != nil {
		return nil, apperror.Internal(err, "top stores")
	}

	return &dto.UserDashboard{
		Statistics: dto.UserStatistics{
			TotalRatings:  stats.TotalRatings,
			AverageRating: dto.FormatAverage(stats.AverageRating),
		},
		RecentRatings: dto.FromRatingDetails(ratings),
		TopStores:     dto.FromStoresWithStats(top),
	}, nil
}
