package dto

import (
	"time"

	"storerating/internal/microservices/http-api/models"

	"github.com/shopspring/decimal"
)

type CreateStoreRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Address string `json:"address" binding:"required,min=1,max=400"`
	OwnerID int64  `json:"owner_id" binding:"required,gt=0"`
}

// UpdateStoreRequest changes only the fields present in the body.
type UpdateStoreRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Address *string `json:"address" binding:"omitempty,min=1,max=400"`
	OwnerID *int64  `json:"owner_id" binding:"omitempty,gt=0"`
}

type StoreResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	OwnerID       int64     `json:"owner_id"`
	OwnerName     string    `json:"owner_name,omitempty"`
	OwnerEmail    string    `json:"owner_email,omitempty"`
	AverageRating string    `json:"average_rating"`
	TotalRatings  int64     `json:"total_ratings"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FormatAverage renders an average with one decimal place, "0.0" when there are no ratings.
// Rounding works on the exact binary value, so 87/20 (stored as 4.3499...) renders "4.3".
func FormatAverage(avg float64) string {
	return decimal.NewFromFloatWithExponent(avg, -64).StringFixed(1)
}

func FromStoreWithStats(s *models.StoreWithStats) StoreResponse {
	return StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		Address:       s.Address,
		OwnerID:       s.OwnerID,
		OwnerName:     s.OwnerName,
		OwnerEmail:    s.OwnerEmail,
		AverageRating: FormatAverage(s.AverageRating),
		TotalRatings:  s.TotalRatings,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromStoresWithStats(rows []models.StoreWithStats) []StoreResponse {
	out := make([]StoreResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromStoreWithStats(&rows[i]))
	}
	return out
}

// FromStore is used right after a write, before any rating exists or is re-read.
func FromStore(s *models.Store) StoreResponse {
	return StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		Address:       s.Address,
		OwnerID:       s.OwnerID,
		AverageRating: FormatAverage(0),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type StoreListResponse struct {
	Stores     []StoreResponse `json:"stores"`
	Pagination Pagination      `json:"pagination"`
}
