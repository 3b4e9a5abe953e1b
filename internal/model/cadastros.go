package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Empresa is the issuing company printed on receipts.
type Empresa struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RazaoSocial  string    `gorm:"not null"`
	NomeFantasia *string
	CNPJ         string `gorm:"not null"`
	// TextoPadrao is the boilerplate paragraph printed on every receipt.
	TextoPadrao *string
	Ativa       bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Colaborador is an employee paid through receipts (fares, day rates).
type Colaborador struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome string    `gorm:"not null"`
	CPF  string    `gorm:"not null"`
	// Standing amounts used to pre-fill receipt values.
	ValorPassagem *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ValorDiaria   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ValorDobra    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Ativo         bool             `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Prestador is a service contractor (PF or PJ).
type Prestador struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	CPFCNPJ   string    `gorm:"not null"`
	Tipo      string    `gorm:"type:varchar(2);not null"` // PF | PJ
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fornecedor is a goods supplier paid from the drawer.
type Fornecedor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	CNPJ      string    `gorm:"not null"`
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
