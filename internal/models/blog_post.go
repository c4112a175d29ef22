package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost is generated once from a persona and never edited. Its
// title/content split is fixed at creation.
type BlogPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PersonaID uuid.UUID `gorm:"type:uuid;not null;index" json:"persona_id"`
	Title     *string   `gorm:"type:text" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (BlogPost) TableName() string { return "blog_post" }

func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
