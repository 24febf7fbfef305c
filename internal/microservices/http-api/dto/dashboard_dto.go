package dto

import "storerating/internal/microservices/http-api/models"

// Dashboard payloads use camelCase keys; nested store, user and rating rows
// keep the snake_case of the other endpoints.

type RoleCount struct {
	Role  models.Role `json:"role"`
	Count int64       `json:"count"`
}

type AdminStatistics struct {
	TotalUsers    int64  `json:"totalUsers"`
	TotalStores   int64  `json:"totalStores"`
	TotalRatings  int64  `json:"totalRatings"`
	AverageRating string `json:"averageRating"`
}

type AdminDashboard struct {
	Statistics    AdminStatistics  `json:"statistics"`
	UsersByRole   []RoleCount      `json:"usersByRole"`
	TopStores     []StoreResponse  `json:"topStores"`
	RecentRatings []RatingResponse `json:"recentRatings"`
	RecentUsers   []UserResponse   `json:"recentUsers"`
	RecentStores  []StoreResponse  `json:"recentStores"`
}

type OwnerStatistics struct {
	TotalStores   int64  `json:"totalStores"`
	TotalRatings  int64  `json:"totalRatings"`
	AverageRating string `json:"averageRating"`
}

type OwnerDashboard struct {
	Statistics        OwnerStatistics  `json:"statistics"`
	StoresWithRatings []StoreResponse  `json:"storesWithRatings"`
	RecentRatings     []RatingResponse `json:"recentRatings"`
}

type UserStatistics struct {
	TotalRatings  int64  `json:"totalRatings"`
	AverageRating string `json:"averageRating"`
}

type UserDashboard struct {
	Statistics    UserStatistics   `json:"statistics"`
	RecentRatings []RatingResponse `json:"recentRatings"`
	TopStores     []StoreResponse  `json:"topStores"`
}
