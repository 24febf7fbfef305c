package models

import "time"

type Rating struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_ratings_user_store;index:idx_ratings_user_id" json:"user_id"`
	StoreID   int64     `gorm:"not null;uniqueIndex:idx_ratings_user_store;index:idx_ratings_store_id" json:"store_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   *string   `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Store *Store `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingDetail is a rating joined with its store and rater. Which joined
// columns are populated depends on the query that produced it.
type RatingDetail struct {
	ID           int64     `gorm:"column:id"`
	UserID       int64     `gorm:"column:user_id"`
	StoreID      int64     `gorm:"column:store_id"`
	Rating       int       `gorm:"column:rating"`
	Comment      *string   `gorm:"column:comment"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
	StoreName    string    `gorm:"column:store_name"`
	StoreAddress string    `gorm:"column:store_address"`
	StoreOwnerID int64     `gorm:"column:store_owner_id"`
	UserName     string    `gorm:"column:user_name"`
	UserEmail    string    `gorm:"column:user_email"`
}
