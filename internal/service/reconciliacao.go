package service

import (
	"github.com/shopspring/decimal"
)

// ToleranciaDivergencia is the monetary equality threshold used everywhere a
// counted amount is compared against an expected balance: two amounts are
// considered equal when |a−b| < 0.01. A business rule, not a float
// workaround — keep it as the single shared constant.
var ToleranciaDivergencia = decimal.New(1, -2) // 0.01

// Divergence classification of a closing count.
const (
	DivergenciaNenhuma = "SEM_DIVERGENCIA"
	DivergenciaSobra   = "SOBRA"
	DivergenciaFalta   = "FALTA"
)

// CalcularDivergencia returns the signed delta between the physically
// counted amount and the ledger-computed expected balance.
func CalcularDivergencia(valorContado, saldoEsperado decimal.Decimal) decimal.Decimal {
	return valorContado.Sub(saldoEsperado)
}

// ClassificarDivergencia maps a signed delta to its classification.
func ClassificarDivergencia(divergencia decimal.Decimal) string {
	switch {
	case divergencia.Abs().LessThan(ToleranciaDivergencia):
		return DivergenciaNenhuma
	case divergencia.IsPositive():
		return DivergenciaSobra
	default:
		return DivergenciaFalta
	}
}

// ExigeJustificativa reports whether closing with this delta requires a
// justification from the closing admin.
func ExigeJustificativa(divergencia decimal.Decimal) bool {
	return ClassificarDivergencia(divergencia) != DivergenciaNenhuma
}
