package repository

import (
	"context"

	"github.com/alencarrgabriel/GeradorRecibos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TotaisSessao aggregates the movement amounts of one session.
// Withdrawals are split by presence of a linked receipt.
type TotaisSessao struct {
	TotalEntradas        decimal.Decimal
	TotalSaidas          decimal.Decimal
	TotalSaidasComRecibo decimal.Decimal
	TotalSaidasSemRecibo decimal.Decimal
}

type MovimentacaoRepository interface {
	Create(ctx context.Context, m *model.Movimentacao) error
	// ListBySessao returns movements in append (creation) order. With
	// somenteNaoCanceladas the view excludes movements whose linked receipt
	// was cancelled — used by printable reports.
	ListBySessao(ctx context.Context, sessaoID uuid.UUID, somenteNaoCanceladas bool) ([]model.Movimentacao, error)
	TotaisPorSessao(ctx context.Context, sessaoID uuid.UUID) (*TotaisSessao, error)
	// TotaisPorTipoRecibo sums SAIDA amounts grouped by the linked receipt's
	// type code. Withdrawals without a receipt appear under SAIDA_AVULSA.
	TotaisPorTipoRecibo(ctx context.Context, sessaoID uuid.UUID) (map[string]decimal.Decimal, error)
}

// TipoSaidaAvulsa groups receipt-less withdrawals in the per-type breakdown.
const TipoSaidaAvulsa = "SAIDA_AVULSA"

type movimentacaoRepo struct{ db *gorm.DB }

func NewMovimentacaoRepository(db *gorm.DB) MovimentacaoRepository {
	return &movimentacaoRepo{db: db}
}

func (r *movimentacaoRepo) Create(ctx context.Context, m *model.Movimentacao) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimentacaoRepo) ListBySessao(ctx context.Context, sessaoID uuid.UUID, somenteNaoCanceladas bool) ([]model.Movimentacao, error) {
	var movs []model.Movimentacao
	q := r.db.WithContext(ctx).Where("sessao_id = ?", sessaoID)
	if somenteNaoCanceladas {
		q = q.Where(
			"recibo_id IS NULL OR recibo_id NOT IN (SELECT id FROM recibos WHERE status = ?)",
			model.ReciboCancelado,
		)
	}
	err := q.Order("created_at ASC").Find(&movs).Error
	return movs, err
}

func (r *movimentacaoRepo) TotaisPorSessao(ctx context.Context, sessaoID uuid.UUID) (*TotaisSessao, error) {
	var row struct {
		TotalEntradas        decimal.Decimal
		TotalSaidas          decimal.Decimal
		TotalSaidasComRecibo decimal.Decimal
		TotalSaidasSemRecibo decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
		  COALESCE(SUM(CASE WHEN tipo = 'ENTRADA' THEN valor END), 0) AS total_entradas,
		  COALESCE(SUM(CASE WHEN tipo = 'SAIDA' THEN valor END), 0) AS total_saidas,
		  COALESCE(SUM(CASE WHEN tipo = 'SAIDA' AND recibo_id IS NOT NULL THEN valor END), 0) AS total_saidas_com_recibo,
		  COALESCE(SUM(CASE WHEN tipo = 'SAIDA' AND recibo_id IS NULL THEN valor END), 0) AS total_saidas_sem_recibo
		FROM movimentacoes
		WHERE sessao_id = ?`, sessaoID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &TotaisSessao{
		TotalEntradas:        row.TotalEntradas,
		TotalSaidas:          row.TotalSaidas,
		TotalSaidasComRecibo: row.TotalSaidasComRecibo,
		TotalSaidasSemRecibo: row.TotalSaidasSemRecibo,
	}, nil
}

func (r *movimentacaoRepo) TotaisPorTipoRecibo(ctx context.Context, sessaoID uuid.UUID) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Tipo  string
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(rec.tipo, ?) AS tipo, SUM(mov.valor) AS total
		FROM movimentacoes mov
		LEFT JOIN recibos rec ON rec.id = mov.recibo_id
		WHERE mov.sessao_id = ? AND mov.tipo = 'SAIDA'
		GROUP BY COALESCE(rec.tipo, ?)`,
		TipoSaidaAvulsa, sessaoID, TipoSaidaAvulsa).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totais := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		totais[row.Tipo] = row.Total
	}
	return totais, nil
}
