package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PersonaProfile is whatever attribute mapping the model returned. The
// attribute vocabulary is advisory; partial and extra keys are kept as-is.
type PersonaProfile map[string]any

// Name returns the profile's own "name" attribute, if it carries one.
func (p PersonaProfile) Name() string {
	name, _ := p["name"].(string)
	return strings.TrimSpace(name)
}

type Persona struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string            `gorm:"size:100;not null" json:"name"`
	Data      datatypes.JSONMap `gorm:"column:data" json:"data"`
	CreatedAt time.Time         `gorm:"not null;index" json:"created_at"`
	BlogPosts []BlogPost        `gorm:"foreignKey:PersonaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Persona) TableName() string { return "persona" }

func (p *Persona) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Profile returns the stored attribute mapping.
func (p *Persona) Profile() PersonaProfile {
	return PersonaProfile(p.Data)
}
