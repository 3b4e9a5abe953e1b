package service_test

import (
	"testing"

	"github.com/alencarrgabriel/GeradorRecibos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalcularDivergencia(t *testing.T) {
	assert.True(t, service.CalcularDivergencia(d("100.00"), d("100.00")).IsZero())
	assert.Equal(t, "5.5", service.CalcularDivergencia(d("105.50"), d("100.00")).String())
	assert.Equal(t, "-30", service.CalcularDivergencia(d("70.00"), d("100.00")).String())
}

func TestClassificarDivergencia(t *testing.T) {
	casos := []struct {
		divergencia string
		esperado    string
	}{
		{"0", service.DivergenciaNenhuma},
		{"0.009", service.DivergenciaNenhuma},
		{"-0.009", service.DivergenciaNenhuma},
		// 0.01 is already a real divergence — the tolerance is strictly below
		{"0.01", service.DivergenciaSobra},
		{"-0.01", service.DivergenciaFalta},
		{"12.34", service.DivergenciaSobra},
		{"-0.50", service.DivergenciaFalta},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, service.ClassificarDivergencia(d(c.divergencia)),
			"divergencia %s", c.divergencia)
	}
}

func TestExigeJustificativa(t *testing.T) {
	assert.False(t, service.ExigeJustificativa(d("0")))
	assert.False(t, service.ExigeJustificativa(d("0.005")))
	assert.False(t, service.ExigeJustificativa(d("-0.005")))
	assert.True(t, service.ExigeJustificativa(d("0.01")))
	assert.True(t, service.ExigeJustificativa(d("-0.01")))
	assert.True(t, service.ExigeJustificativa(d("3.00")))
}
