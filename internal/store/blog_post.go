package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BerylCAtieno/persona-writer-agent/internal/logger"
	"github.com/BerylCAtieno/persona-writer-agent/internal/models"
)

type BlogPostRepo interface {
	// Create fails with ErrNotFound when the persona does not exist.
	Create(ctx context.Context, personaID uuid.UUID, title, content string) (*models.BlogPost, error)
	Get(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	List(ctx context.Context) ([]*models.BlogPost, error)
	ListByPersona(ctx context.Context, personaID uuid.UUID) ([]*models.BlogPost, error)
}

type blogPostRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBlogPostRepo(db *gorm.DB, baseLog *logger.Logger) BlogPostRepo {
	return &blogPostRepo{db: db, log: baseLog.With("repo", "BlogPostRepo")}
}

func (r *blogPostRepo) Create(ctx context.Context, personaID uuid.UUID, title, content string) (*models.BlogPost, error) {
	post := &models.BlogPost{PersonaID: personaID, Content: content}
	if title != "" {
		post.Title = &title
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner models.Persona
		if err := tx.Select("id").First(&owner, "id = ?", personaID).Error; err != nil {
			return notFound(err)
		}
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	r.log.Debug("Blog post created", "blog_post_id", post.ID, "persona_id", personaID)
	return post, nil
}

func (r *blogPostRepo) Get(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

func (r *blogPostRepo) List(ctx context.Context) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogPostRepo) ListByPersona(ctx context.Context, personaID uuid.UUID) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	if err := r.db.WithContext(ctx).
		Where("persona_id = ?", personaID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
