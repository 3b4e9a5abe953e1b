package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alencarrgabriel/GeradorRecibos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SessaoRepository interface {
	Create(ctx context.Context, s *model.GavetaSessao) error
	// Fechar flips the session to FECHADA and records the closing fields.
	// The WHERE status = 'ABERTA' guard makes the state transition atomic:
	// a concurrent second close sees zero affected rows.
	Fechar(ctx context.Context, sessaoID, adminID uuid.UUID, valorContado decimal.Decimal, justificativa *string) error
	// FindAbertaPorGaveta returns (nil, nil) when the drawer has no open session.
	FindAbertaPorGaveta(ctx context.Context, gavetaID uuid.UUID) (*model.GavetaSessao, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.GavetaSessao, error)
	ListAll(ctx context.Context) ([]model.GavetaSessao, error)
	ListByGaveta(ctx context.Context, gavetaID uuid.UUID) ([]model.GavetaSessao, error)
}

type sessaoRepo struct{ db *gorm.DB }

func NewSessaoRepository(db *gorm.DB) SessaoRepository { return &sessaoRepo{db: db} }

func (r *sessaoRepo) Create(ctx context.Context, s *model.GavetaSessao) error {
	if s.AbertaEm.IsZero() {
		s.AbertaEm = time.Now()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessaoRepo) Fechar(ctx context.Context, sessaoID, adminID uuid.UUID, valorContado decimal.Decimal, justificativa *string) error {
	res := r.db.WithContext(ctx).Model(&model.GavetaSessao{}).
		Where("id = ? AND status = ?", sessaoID, model.SessaoAberta).
		Updates(map[string]interface{}{
			"status":              model.SessaoFechada,
			"admin_fechamento_id": adminID,
			"valor_contado":       valorContado,
			"justificativa":       justificativa,
			"fechada_em":          time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sessaoRepo) FindAbertaPorGaveta(ctx context.Context, gavetaID uuid.UUID) (*model.GavetaSessao, error) {
	var s model.GavetaSessao
	err := r.db.WithContext(ctx).
		Where("gaveta_id = ? AND status = ?", gavetaID, model.SessaoAberta).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessaoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.GavetaSessao, error) {
	var s model.GavetaSessao
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *sessaoRepo) ListAll(ctx context.Context) ([]model.GavetaSessao, error) {
	var sessoes []model.GavetaSessao
	err := r.db.WithContext(ctx).Order("aberta_em DESC").Find(&sessoes).Error
	return sessoes, err
}

func (r *sessaoRepo) ListByGaveta(ctx context.Context, gavetaID uuid.UUID) ([]model.GavetaSessao, error) {
	var sessoes []model.GavetaSessao
	err := r.db.WithContext(ctx).
		Where("gaveta_id = ?", gavetaID).
		Order("aberta_em DESC").Find(&sessoes).Error
	return sessoes, err
}
