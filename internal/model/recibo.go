package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt status values.
const (
	ReciboAtivo     = "ATIVO"
	ReciboCancelado = "CANCELADO"
)

// Receipt type codes. Drives the per-type withdrawal breakdown in the
// drawer closing report.
const (
	ReciboPassagem   = "PASSAGEM"
	ReciboDiaria     = "DIARIA"
	ReciboDobra      = "DOBRA"
	ReciboFeriado    = "FERIADO"
	ReciboPrestacao  = "PRESTACAO"
	ReciboFornecedor = "FORNECEDOR"
	ReciboOutros     = "OUTROS"
)

// Recibo is a payment receipt issued on behalf of a company to an
// employee, contractor or supplier. The PDF artifact lives on disk;
// only its path is stored.
type Recibo struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	UsuarioID       uuid.UUID       `gorm:"type:uuid;not null"`
	Tipo            string          `gorm:"type:varchar(20);not null"`
	PessoaNome      string          `gorm:"not null"`
	PessoaDocumento string          `gorm:"not null"`
	Descricao       string          `gorm:"not null"`
	Valor           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DataInicio      time.Time
	DataFim         time.Time
	DataPagamento   time.Time
	CaminhoPDF      string `gorm:"not null"`
	Status          string `gorm:"type:varchar(10);not null;default:'ATIVO'"`
	// MovimentacaoID is set when issuing the receipt also debited a drawer.
	MovimentacaoID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}
