package repository

import (
	"context"

	"github.com/alencarrgabriel/GeradorRecibos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReciboRepository interface {
	Create(ctx context.Context, r *model.Recibo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Recibo, error)
	ListAll(ctx context.Context, incluirCancelados bool) ([]model.Recibo, error)
	Update(ctx context.Context, r *model.Recibo) error
	Cancelar(ctx context.Context, id uuid.UUID) error
}

type reciboRepo struct{ db *gorm.DB }

func NewReciboRepository(db *gorm.DB) ReciboRepository { return &reciboRepo{db: db} }

func (r *reciboRepo) Create(ctx context.Context, rec *model.Recibo) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *reciboRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Recibo, error) {
	var rec model.Recibo
	err := r.db.WithContext(ctx).First(&rec, id).Error
	return &rec, err
}

func (r *reciboRepo) ListAll(ctx context.Context, incluirCancelados bool) ([]model.Recibo, error) {
	var recibos []model.Recibo
	q := r.db.WithContext(ctx)
	if !incluirCancelados {
		q = q.Where("status = ?", model.ReciboAtivo)
	}
	err := q.Order("created_at DESC").Find(&recibos).Error
	return recibos, err
}

func (r *reciboRepo) Update(ctx context.Context, rec *model.Recibo) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *reciboRepo) Cancelar(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Recibo{}).
		Where("id = ? AND status = ?", id, model.ReciboAtivo).
		Update("status", model.ReciboCancelado)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
