package models

import "time"

type Store struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Address   string    `gorm:"not null" json:"address"`
	OwnerID   *int64    `gorm:"index" json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations. No DB-level cascade: removing a store's ratings is the
	// store repository's job, inside the same transaction as the store row.
	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (Store) TableName() string {
	return "stores"
}
