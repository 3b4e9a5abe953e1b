package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alencarrgabriel/GeradorRecibos/internal/dto"
	"github.com/alencarrgabriel/GeradorRecibos/internal/model"
	"github.com/alencarrgabriel/GeradorRecibos/internal/repository"
	"github.com/alencarrgabriel/GeradorRecibos/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory receipt and company repositories ────────────────────────────────

type fakeReciboRepo struct {
	recibos map[uuid.UUID]*model.Recibo
	// cancelarErr simulates a storage fault on the cancel write
	cancelarErr error
}

func newFakeReciboRepo() *fakeReciboRepo {
	return &fakeReciboRepo{recibos: make(map[uuid.UUID]*model.Recibo)}
}

func (r *fakeReciboRepo) Create(_ context.Context, rec *model.Recibo) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now()
	r.recibos[rec.ID] = rec
	return nil
}

func (r *fakeReciboRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Recibo, error) {
	rec, ok := r.recibos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (r *fakeReciboRepo) ListAll(_ context.Context, incluirCancelados bool) ([]model.Recibo, error) {
	var result []model.Recibo
	for _, rec := range r.recibos {
		if !incluirCancelados && rec.Status == model.ReciboCancelado {
			continue
		}
		result = append(result, *rec)
	}
	return result, nil
}

func (r *fakeReciboRepo) Update(_ context.Context, rec *model.Recibo) error {
	r.recibos[rec.ID] = rec
	return nil
}

func (r *fakeReciboRepo) Cancelar(_ context.Context, id uuid.UUID) error {
	if r.cancelarErr != nil {
		return r.cancelarErr
	}
	rec, ok := r.recibos[id]
	if !ok || rec.Status != model.ReciboAtivo {
		return gorm.ErrRecordNotFound
	}
	rec.Status = model.ReciboCancelado
	return nil
}

var _ repository.ReciboRepository = (*fakeReciboRepo)(nil)

type fakeEmpresaRepo struct {
	empresas map[uuid.UUID]*model.Empresa
}

func newFakeEmpresaRepo() *fakeEmpresaRepo {
	return &fakeEmpresaRepo{empresas: make(map[uuid.UUID]*model.Empresa)}
}

func (r *fakeEmpresaRepo) Create(_ context.Context, e *model.Empresa) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.empresas[e.ID] = e
	return nil
}

func (r *fakeEmpresaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Empresa, error) {
	e, ok := r.empresas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeEmpresaRepo) List(_ context.Context) ([]model.Empresa, error) {
	var result []model.Empresa
	for _, e := range r.empresas {
		if e.Ativa {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (r *fakeEmpresaRepo) Update(_ context.Context, e *model.Empresa) error {
	r.empresas[e.ID] = e
	return nil
}

func (r *fakeEmpresaRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if e, ok := r.empresas[id]; ok {
		e.Ativa = false
	}
	return nil
}

var _ repository.EmpresaRepository = (*fakeEmpresaRepo)(nil)

type fakeRenderer struct {
	err      error
	rendered int
}

func (r *fakeRenderer) RenderRecibo(rec *model.Recibo, _ *model.Empresa) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.rendered++
	return "/tmp/recibo_" + rec.ID.String() + ".pdf", nil
}

// ── Test environment ──────────────────────────────────────────────────────────

type reciboEnv struct {
	*gavetaEnv
	svc        service.ReciboService
	reciboRepo *fakeReciboRepo
	empresas   *fakeEmpresaRepo
	renderer   *fakeRenderer
	empresaID  uuid.UUID
}

func newReciboEnv(t *testing.T) *reciboEnv {
	t.Helper()
	env := &reciboEnv{
		gavetaEnv:  newGavetaEnv(t),
		reciboRepo: newFakeReciboRepo(),
		empresas:   newFakeEmpresaRepo(),
		renderer:   &fakeRenderer{},
	}
	empresa := &model.Empresa{RazaoSocial: "Transportes Silva LTDA", CNPJ: "11.222.333/0001-81", Ativa: true}
	require.NoError(t, env.empresas.Create(context.Background(), empresa))
	env.empresaID = empresa.ID

	env.svc = service.NewReciboService(env.reciboRepo, env.empresas, env.movSvc, env.renderer)
	return env
}

func emitirReq(env *reciboEnv) dto.EmitirReciboRequest {
	return dto.EmitirReciboRequest{
		EmpresaID:       env.empresaID.String(),
		Tipo:            model.ReciboDiaria,
		PessoaNome:      "João da Silva",
		PessoaDocumento: "529.982.247-25",
		Descricao:       "diária de 30/08",
		Valor:           d("120.00"),
		DataInicio:      "2026-08-30",
		DataFim:         "2026-08-30",
		DataPagamento:   "2026-08-31",
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestEmitirRecibo(t *testing.T) {
	env := newReciboEnv(t)

	resp, err := env.svc.Emitir(context.Background(), env.admin, emitirReq(env))
	require.NoError(t, err)
	assert.Equal(t, model.ReciboAtivo, resp.Status)
	assert.NotEmpty(t, resp.CaminhoPDF)
	assert.Nil(t, resp.MovimentacaoID)
	assert.Equal(t, "529.982.247-25", resp.PessoaDocumento)
	assert.Equal(t, 1, env.renderer.rendered)
}

func TestEmitirReciboDocumentoInvalido(t *testing.T) {
	env := newReciboEnv(t)

	req := emitirReq(env)
	req.PessoaDocumento = "111.111.111-11"
	_, err := env.svc.Emitir(context.Background(), env.admin, req)
	assert.True(t, errors.Is(err, service.ErrValidacao))
	assert.Empty(t, env.reciboRepo.recibos)
}

func TestEmitirReciboEmpresaInexistente(t *testing.T) {
	env := newReciboEnv(t)

	req := emitirReq(env)
	req.EmpresaID = uuid.NewString()
	_, err := env.svc.Emitir(context.Background(), env.admin, req)
	assert.True(t, errors.Is(err, service.ErrNaoEncontrado))
}

func TestEmitirReciboPeriodoInvertido(t *testing.T) {
	env := newReciboEnv(t)

	req := emitirReq(env)
	req.DataInicio = "2026-08-31"
	req.DataFim = "2026-08-30"
	_, err := env.svc.Emitir(context.Background(), env.admin, req)
	assert.True(t, errors.Is(err, service.ErrValidacao))
}

func TestEmitirReciboComDebitoNaGaveta(t *testing.T) {
	env := newReciboEnv(t)
	sessaoID := env.abrir(t, "500.00")
	ctx := context.Background()

	req := emitirReq(env)
	s := sessaoID.String()
	req.SessaoID = &s

	resp, err := env.svc.Emitir(ctx, env.responsavel, req)
	require.NoError(t, err)
	require.NotNil(t, resp.MovimentacaoID)

	// the drawer now carries a SAIDA linked back to the receipt
	movs, err := env.movSvc.ListarPorSessao(ctx, env.responsavel, sessaoID, false)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, model.MovimentacaoSaida, movs[0].Tipo)
	require.NotNil(t, movs[0].ReciboID)
	assert.Equal(t, resp.ID, *movs[0].ReciboID)
	assert.True(t, movs[0].Valor.Equal(d("120.00")))
}

func TestEmitirReciboGavetaFechadaCancelaRecibo(t *testing.T) {
	env := newReciboEnv(t)
	sessaoID := env.abrir(t, "500.00")
	ctx := context.Background()

	_, err := env.svc.Emitir(ctx, env.admin, emitirReq(env)) // warm-up without drawer
	require.NoError(t, err)

	_, err = env.gavetaEnv.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{ValorContado: d("500.00")})
	require.NoError(t, err)

	req := emitirReq(env)
	s := sessaoID.String()
	req.SessaoID = &s
	_, err = env.svc.Emitir(ctx, env.responsavel, req)
	assert.True(t, errors.Is(err, service.ErrConflito))

	// the failed issuance must not leave an active receipt behind
	ativos, err := env.svc.Listar(ctx, false)
	require.NoError(t, err)
	assert.Len(t, ativos, 1)
}

func TestCancelarRecibo(t *testing.T) {
	env := newReciboEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Emitir(ctx, env.admin, emitirReq(env))
	require.NoError(t, err)
	reciboID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	// only admins cancel
	err = env.svc.Cancelar(ctx, env.responsavel, reciboID)
	assert.True(t, errors.Is(err, service.ErrPermissao))

	require.NoError(t, env.svc.Cancelar(ctx, env.admin, reciboID))

	// second cancel fails — status guard
	err = env.svc.Cancelar(ctx, env.admin, reciboID)
	assert.True(t, errors.Is(err, service.ErrNaoEncontrado))

	rec, err := env.svc.ObterPorID(ctx, reciboID)
	require.NoError(t, err)
	assert.Equal(t, model.ReciboCancelado, rec.Status)
}

func TestCancelarReciboFalhaDePersistencia(t *testing.T) {
	env := newReciboEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Emitir(ctx, env.admin, emitirReq(env))
	require.NoError(t, err)
	reciboID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	falha := errors.New("pq: connection reset by peer")
	env.reciboRepo.cancelarErr = falha

	err = env.svc.Cancelar(ctx, env.admin, reciboID)
	require.Error(t, err)

	// a storage fault must not be reported as "not found"
	assert.False(t, errors.Is(err, service.ErrNaoEncontrado))
	assert.True(t, errors.Is(err, falha))

	env.reciboRepo.cancelarErr = nil
	rec, err := env.svc.ObterPorID(ctx, reciboID)
	require.NoError(t, err)
	assert.Equal(t, model.ReciboAtivo, rec.Status)
}
