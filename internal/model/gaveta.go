package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session status values.
const (
	SessaoAberta  = "ABERTA"
	SessaoFechada = "FECHADA"
)

// Movement kinds.
const (
	MovimentacaoEntrada = "ENTRADA"
	MovimentacaoSaida   = "SAIDA"
)

// Gaveta is a named physical cash drawer (till) tracked by the system.
type Gaveta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"uniqueIndex;not null"`
	Ativa     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// GavetaSessao represents one open-to-close lifecycle of a drawer.
// Status: ABERTA | FECHADA. At most one ABERTA session per gaveta —
// enforced by a partial unique index (see infra.applySchemaPatches).
// Once FECHADA the row is never mutated again.
type GavetaSessao struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GavetaID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ResponsavelID uuid.UUID `gorm:"type:uuid;not null"`
	// AdminAberturaID is the administrator who opened the session;
	// AdminFechamentoID is set exactly once, on close.
	AdminAberturaID   uuid.UUID  `gorm:"type:uuid;not null"`
	AdminFechamentoID *uuid.UUID `gorm:"type:uuid"`
	SaldoInicial      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// ValorContado is the physically counted amount declared at close.
	ValorContado  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Justificativa *string
	Status        string `gorm:"type:varchar(10);not null;default:'ABERTA'"`
	AbertaEm      time.Time
	FechadaEm     *time.Time

	Movimentacoes []Movimentacao `gorm:"foreignKey:SessaoID"`
}

// Movimentacao is an immutable entry in the drawer ledger.
// Tipo: ENTRADA (deposit) | SAIDA (withdrawal). Rows are never updated or
// deleted; receipt cancellation is recorded on the Recibo, not here.
type Movimentacao struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessaoID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	UsuarioID uuid.UUID       `gorm:"type:uuid;not null"`
	Tipo      string          `gorm:"type:varchar(10);not null"`
	Valor     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descricao string          `gorm:"not null"`
	// ReciboID links a SAIDA to the receipt issued as its justification.
	ReciboID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}
