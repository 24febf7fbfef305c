package models

import "time"

type Store struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null;index:idx_stores_name" json:"name"`
	Address   string    `gorm:"size:400;not null;index:idx_stores_address" json:"address"`
	OwnerID   int64     `gorm:"not null;index:idx_stores_owner_id" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (Store) TableName() string {
	return "stores"
}

// StoreWithStats is a store row joined with its owner and rating aggregates.
type StoreWithStats struct {
	ID            int64     `gorm:"column:id"`
	Name          string    `gorm:"column:name"`
	Address       string    `gorm:"column:address"`
	OwnerID       int64     `gorm:"column:owner_id"`
	OwnerName     string    `gorm:"column:owner_name"`
	OwnerEmail    string    `gorm:"column:owner_email"`
	AverageRating float64   `gorm:"column:average_rating"`
	TotalRatings  int64     `gorm:"column:total_ratings"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}
