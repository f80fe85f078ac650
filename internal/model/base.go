package model

import (
	"time"
)

// GORM manages CreatedAt/UpdatedAt automatically on the relational backend.
// The mongo adapter sets them explicitly on write.
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null" bson:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" bson:"updated_at"`
}
