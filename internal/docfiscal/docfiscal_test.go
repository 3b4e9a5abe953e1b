package docfiscal_test

import (
	"testing"

	"github.com/alencarrgabriel/GeradorRecibos/internal/docfiscal"

	"github.com/stretchr/testify/assert"
)

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "52998224725", docfiscal.OnlyDigits("529.982.247-25"))
	assert.Equal(t, "", docfiscal.OnlyDigits("abc-/."))
	assert.Equal(t, "123", docfiscal.OnlyDigits(" 1a2b3 "))
}

func TestValidCPF(t *testing.T) {
	assert.True(t, docfiscal.ValidCPF("529.982.247-25"))
	assert.True(t, docfiscal.ValidCPF("52998224725"))
	assert.True(t, docfiscal.ValidCPF("111.444.777-35"))

	assert.False(t, docfiscal.ValidCPF("111.111.111-11"), "repeated digits")
	assert.False(t, docfiscal.ValidCPF("529.982.247-26"), "wrong check digit")
	assert.False(t, docfiscal.ValidCPF("1234567890"), "too short")
	assert.False(t, docfiscal.ValidCPF(""))
}

func TestValidCNPJ(t *testing.T) {
	assert.True(t, docfiscal.ValidCNPJ("11.222.333/0001-81"))
	assert.True(t, docfiscal.ValidCNPJ("11222333000181"))
	assert.True(t, docfiscal.ValidCNPJ("11.444.777/0001-61"))

	assert.False(t, docfiscal.ValidCNPJ("11.111.111/1111-11"), "repeated digits")
	assert.False(t, docfiscal.ValidCNPJ("11.222.333/0001-82"), "wrong check digit")
	assert.False(t, docfiscal.ValidCNPJ("11222333"), "too short")
	assert.False(t, docfiscal.ValidCNPJ(""))
}

func TestValidDocumento(t *testing.T) {
	assert.True(t, docfiscal.ValidDocumento("529.982.247-25"))
	assert.True(t, docfiscal.ValidDocumento("11.222.333/0001-81"))
	assert.False(t, docfiscal.ValidDocumento("12345"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "529.982.247-25", docfiscal.FormatCPF("52998224725"))
	assert.Equal(t, "11.222.333/0001-81", docfiscal.FormatCNPJ("11222333000181"))

	// wrong length passes through untouched
	assert.Equal(t, "123", docfiscal.FormatCPF("123"))
	assert.Equal(t, "123", docfiscal.FormatCNPJ("123"))

	assert.Equal(t, "529.982.247-25", docfiscal.FormatDocumento("52998224725"))
	assert.Equal(t, "11.222.333/0001-81", docfiscal.FormatDocumento("11222333000181"))
}
