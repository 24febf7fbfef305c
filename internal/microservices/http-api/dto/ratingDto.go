package dto

import (
	"time"

	"storerating/internal/microservices/http-api/models"
)

// SubmitRatingRequest is the body of POST /api/ratings.
type SubmitRatingRequest struct {
	StoreID int64   `json:"store_id" binding:"required,gt=0"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

// UpdateRatingRequest is the body of PUT /api/ratings/:id.
type UpdateRatingRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

// RatingResponse carries a rating plus whichever joined columns the query produced.
type RatingResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	StoreID      int64     `json:"store_id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	StoreName    string    `json:"store_name,omitempty"`
	StoreAddress string    `json:"store_address,omitempty"`
	UserName     string    `json:"user_name,omitempty"`
	UserEmail    string    `json:"user_email,omitempty"`
}

func FromRating(r *models.Rating) RatingResponse {
	return RatingResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		StoreID:   r.StoreID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromRatingDetail(d *models.RatingDetail) RatingResponse {
	return RatingResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		StoreID:      d.StoreID,
		Rating:       d.Rating,
		Comment:      d.Comment,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		StoreName:    d.StoreName,
		StoreAddress: d.StoreAddress,
		UserName:     d.UserName,
		UserEmail:    d.UserEmail,
	}
}

func FromRatingDetails(rows []models.RatingDetail) []RatingResponse {
	out := make([]RatingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromRatingDetail(&rows[i]))
	}
	return out
}

type RatingListResponse struct {
	Ratings    []RatingResponse `json:"ratings"`
	Pagination Pagination       `json:"pagination"`
}
