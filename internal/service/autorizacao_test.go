package service_test

import (
	"errors"
	"testing"

	"github.com/alencarrgabriel/GeradorRecibos/internal/model"
	"github.com/alencarrgabriel/GeradorRecibos/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPodeAbrirGaveta(t *testing.T) {
	assert.NoError(t, service.PodeAbrirGaveta(service.Ator{ID: uuid.New(), Admin: true}))

	err := service.PodeAbrirGaveta(service.Ator{ID: uuid.New()})
	assert.True(t, errors.Is(err, service.ErrPermissao))
}

func TestPodeFecharGaveta(t *testing.T) {
	admin := service.Ator{ID: uuid.New(), Admin: true}
	responsavel := uuid.New()
	sessao := &model.GavetaSessao{ResponsavelID: responsavel}

	assert.NoError(t, service.PodeFecharGaveta(admin, sessao))

	// non-admin can never close
	err := service.PodeFecharGaveta(service.Ator{ID: uuid.New()}, sessao)
	assert.True(t, errors.Is(err, service.ErrPermissao))

	// admin who is also the responsible cannot close their own drawer
	err = service.PodeFecharGaveta(service.Ator{ID: responsavel, Admin: true}, sessao)
	assert.True(t, errors.Is(err, service.ErrPermissao))
}

func TestPodeRegistrarEntrada(t *testing.T) {
	assert.NoError(t, service.PodeRegistrarEntrada(service.Ator{ID: uuid.New(), Admin: true}))

	err := service.PodeRegistrarEntrada(service.Ator{ID: uuid.New()})
	assert.True(t, errors.Is(err, service.ErrPermissao))
}

func TestPodeRegistrarSaida(t *testing.T) {
	responsavel := uuid.New()
	sessao := &model.GavetaSessao{ResponsavelID: responsavel}

	assert.NoError(t, service.PodeRegistrarSaida(service.Ator{ID: uuid.New(), Admin: true}, sessao))
	assert.NoError(t, service.PodeRegistrarSaida(service.Ator{ID: responsavel}, sessao))

	err := service.PodeRegistrarSaida(service.Ator{ID: uuid.New()}, sessao)
	assert.True(t, errors.Is(err, service.ErrPermissao))
}

func TestPodeConsultarSaldo(t *testing.T) {
	responsavel := uuid.New()
	sessao := &model.GavetaSessao{ResponsavelID: responsavel}

	assert.NoError(t, service.PodeConsultarSaldo(service.Ator{ID: uuid.New(), Admin: true}, sessao))
	assert.NoError(t, service.PodeConsultarSaldo(service.Ator{ID: responsavel}, sessao))

	err := service.PodeConsultarSaldo(service.Ator{ID: uuid.New()}, sessao)
	assert.True(t, errors.Is(err, service.ErrPermissao))
}
