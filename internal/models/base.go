package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base replaces gorm.Model: UUID primary key, no soft delete.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b Base) PrimaryKey() string { return b.ID }

// BeforeCreate always assigns a fresh id; client supplied ids are ignored.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	b.ID = uuid.NewString()
	return nil
}

// Owned is implemented by rows that belong to the user who created them.
type Owned interface {
	SetOwner(userID string)
	OwnerID() string
}
