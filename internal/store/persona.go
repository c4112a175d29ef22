package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BerylCAtieno/persona-writer-agent/internal/logger"
	"github.com/BerylCAtieno/persona-writer-agent/internal/models"
)

type PersonaRepo interface {
	Create(ctx context.Context, name string, profile models.PersonaProfile) (*models.Persona, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Persona, error)
	List(ctx context.Context) ([]*models.Persona, error)
	// Delete removes the persona together with all of its blog posts.
	Delete(ctx context.Context, id uuid.UUID) error
}

type personaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonaRepo(db *gorm.DB, baseLog *logger.Logger) PersonaRepo {
	return &personaRepo{db: db, log: baseLog.With("repo", "PersonaRepo")}
}

func (r *personaRepo) Create(ctx context.Context, name string, profile models.PersonaProfile) (*models.Persona, error) {
	persona := &models.Persona{Name: name, Data: datatypes.JSONMap(profile)}
	if persona.Data == nil {
		persona.Data = datatypes.JSONMap{}
	}
	if err := r.db.WithContext(ctx).Create(persona).Error; err != nil {
		return nil, fmt.Errorf("create persona: %w", err)
	}
	r.log.Debug("Persona created", "persona_id", persona.ID)
	return persona, nil
}

func (r *personaRepo) Get(ctx context.Context, id uuid.UUID) (*models.Persona, error) {
	var persona models.Persona
	if err := r.db.WithContext(ctx).First(&persona, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &persona, nil
}

func (r *personaRepo) List(ctx context.Context) ([]*models.Persona, error) {
	var personas []*models.Persona
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&personas).Error; err != nil {
		return nil, err
	}
	return personas, nil
}

func (r *personaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("persona_id = ?", id).Delete(&models.BlogPost{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Persona{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		r.log.Info("Persona deleted", "persona_id", id)
		return nil
	})
}
