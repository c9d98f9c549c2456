package models

import "time"

// Rating holds one user's stars for one store. The composite unique index is
// what the writer's ON CONFLICT upsert keys on: at most one row ever exists
// per (store, user) pair.
type Rating struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID int64 `gorm:"not null;uniqueIndex:idx_ratings_store_user" json:"store_id"`
	UserID  int64 `gorm:"not null;uniqueIndex:idx_ratings_store_user" json:"user_id"`
	Rating  int   `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`

	// RatedAt advances to the server clock on every submission, including
	// resubmissions that leave the stars unchanged.
	RatedAt time.Time `gorm:"not null" json:"rated_at"`

	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Store Store `json:"store,omitempty" gorm:"foreignKey:StoreID"`
}

func (Rating) TableName() string {
	return "ratings"
}
