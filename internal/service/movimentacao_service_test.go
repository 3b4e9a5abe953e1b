package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alencarrgabriel/GeradorRecibos/internal/dto"
	"github.com/alencarrgabriel/GeradorRecibos/internal/model"
	"github.com/alencarrgabriel/GeradorRecibos/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarEntradaSomenteAdmin(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")

	_, err := env.movSvc.RegistrarEntrada(context.Background(), env.responsavel, sessaoID, dto.MovimentacaoRequest{
		Valor: d("10.00"), Descricao: "reforço",
	})
	assert.True(t, errors.Is(err, service.ErrPermissao))
	assert.Empty(t, env.movRepo.movs)
}

func TestRegistrarSaidaPorResponsavel(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")

	resp, err := env.movSvc.RegistrarSaida(context.Background(), env.responsavel, sessaoID, dto.MovimentacaoRequest{
		Valor: d("25.00"), Descricao: "pagamento passagem",
	})
	require.NoError(t, err)
	assert.Equal(t, model.MovimentacaoSaida, resp.Tipo)
	assert.Equal(t, env.responsavel.ID.String(), resp.UsuarioID)
}

func TestRegistrarSaidaPorTerceiro(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")

	_, err := env.movSvc.RegistrarSaida(context.Background(), service.Ator{ID: uuid.New()}, sessaoID, dto.MovimentacaoRequest{
		Valor: d("25.00"), Descricao: "tentativa indevida",
	})
	assert.True(t, errors.Is(err, service.ErrPermissao))
	assert.Empty(t, env.movRepo.movs)
}

func TestRegistrarValorInvalido(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")
	ctx := context.Background()

	_, err := env.movSvc.RegistrarEntrada(ctx, env.admin, sessaoID, dto.MovimentacaoRequest{
		Valor: d("0"), Descricao: "nada",
	})
	assert.True(t, errors.Is(err, service.ErrValidacao))

	_, err = env.movSvc.RegistrarSaida(ctx, env.admin, sessaoID, dto.MovimentacaoRequest{
		Valor: d("-5.00"), Descricao: "negativo",
	})
	assert.True(t, errors.Is(err, service.ErrValidacao))

	// rejected writes leave no ledger rows behind
	assert.Empty(t, env.movRepo.movs)
}

func TestRegistrarDescricaoEmBranco(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")

	_, err := env.movSvc.RegistrarEntrada(context.Background(), env.admin, sessaoID, dto.MovimentacaoRequest{
		Valor: d("10.00"), Descricao: "   ",
	})
	assert.True(t, errors.Is(err, service.ErrValidacao))
	assert.Empty(t, env.movRepo.movs)
}

func TestMovimentarGavetaFechada(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")
	ctx := context.Background()

	_, err := env.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{ValorContado: d("100.00")})
	require.NoError(t, err)

	_, err = env.movSvc.RegistrarEntrada(ctx, env.admin, sessaoID, dto.MovimentacaoRequest{
		Valor: d("10.00"), Descricao: "tarde demais",
	})
	assert.True(t, errors.Is(err, service.ErrConflito))

	_, err = env.movSvc.RegistrarSaida(ctx, env.responsavel, sessaoID, dto.MovimentacaoRequest{
		Valor: d("10.00"), Descricao: "tarde demais",
	})
	assert.True(t, errors.Is(err, service.ErrConflito))
}

func TestListarMovimentacoesEmOrdem(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")
	ctx := context.Background()

	descricoes := []string{"primeira", "segunda", "terceira"}
	for _, descricao := range descricoes {
		_, err := env.movSvc.RegistrarEntrada(ctx, env.admin, sessaoID, dto.MovimentacaoRequest{
			Valor: d("1.00"), Descricao: descricao,
		})
		require.NoError(t, err)
	}

	movs, err := env.movSvc.ListarPorSessao(ctx, env.admin, sessaoID, false)
	require.NoError(t, err)
	require.Len(t, movs, 3)
	for i, descricao := range descricoes {
		assert.Equal(t, descricao, movs[i].Descricao)
	}
}

func TestTotaisPorTipoRecibo(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "500.00")
	ctx := context.Background()

	reciboDiaria := uuid.New()
	reciboPassagem := uuid.New()
	env.movRepo.reciboTipos[reciboDiaria] = model.ReciboDiaria
	env.movRepo.reciboTipos[reciboPassagem] = model.ReciboPassagem

	registrar := func(valor string, reciboID *uuid.UUID) {
		req := dto.MovimentacaoRequest{Valor: d(valor), Descricao: "saída"}
		if reciboID != nil {
			s := reciboID.String()
			req.ReciboID = &s
		}
		_, err := env.movSvc.RegistrarSaida(ctx, env.responsavel, sessaoID, req)
		require.NoError(t, err)
	}
	registrar("100.00", &reciboDiaria)
	registrar("50.00", &reciboPassagem)
	registrar("30.00", &reciboPassagem)
	registrar("15.00", nil)

	totais, err := env.movSvc.TotaisPorTipoRecibo(ctx, sessaoID)
	require.NoError(t, err)
	assert.True(t, totais[model.ReciboDiaria].Equal(d("100.00")))
	assert.True(t, totais[model.ReciboPassagem].Equal(d("80.00")))
	assert.True(t, totais["SAIDA_AVULSA"].Equal(d("15.00")))
}
