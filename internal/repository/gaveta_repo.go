package repository

import (
	"context"

	"github.com/alencarrgabriel/GeradorRecibos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GavetaRepository interface {
	Create(ctx context.Context, g *model.Gaveta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Gaveta, error)
	ListAll(ctx context.Context) ([]model.Gaveta, error)
}

type gavetaRepo struct{ db *gorm.DB }

func NewGavetaRepository(db *gorm.DB) GavetaRepository { return &gavetaRepo{db: db} }

func (r *gavetaRepo) Create(ctx context.Context, g *model.Gaveta) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gavetaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Gaveta, error) {
	var g model.Gaveta
	err := r.db.WithContext(ctx).First(&g, id).Error
	return &g, err
}

func (r *gavetaRepo) ListAll(ctx context.Context) ([]model.Gaveta, error) {
	var gavetas []model.Gaveta
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&gavetas).Error
	return gavetas, err
}
