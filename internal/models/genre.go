package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Genre name uniqueness is case-insensitive and enforced by a unique
// index on LOWER(name), created in the database package. The gorm tag
// alone cannot express a functional index.
type Genre struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name string    `json:"name" gorm:"size:100;not null"`
}

func (Genre) TableName() string {
	return "genres"
}

func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

func (g Genre) URL() string {
	return fmt.Sprintf("/catalog/genre/%s", g.ID)
}
