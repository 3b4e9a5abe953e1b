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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory repositories ────────────────────────────────────────────────────

type fakeSessaoRepo struct {
	sessoes map[uuid.UUID]*model.GavetaSessao
	// fecharErr simulates a storage fault on the closing write
	fecharErr error
}

func newFakeSessaoRepo() *fakeSessaoRepo {
	return &fakeSessaoRepo{sessoes: make(map[uuid.UUID]*model.GavetaSessao)}
}

func (r *fakeSessaoRepo) Create(_ context.Context, s *model.GavetaSessao) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.AbertaEm.IsZero() {
		s.AbertaEm = time.Now()
	}
	r.sessoes[s.ID] = s
	return nil
}

func (r *fakeSessaoRepo) Fechar(_ context.Context, sessaoID, adminID uuid.UUID, valorContado decimal.Decimal, justificativa *string) error {
	if r.fecharErr != nil {
		return r.fecharErr
	}
	s, ok := r.sessoes[sessaoID]
	if !ok || s.Status != model.SessaoAberta {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	s.Status = model.SessaoFechada
	s.AdminFechamentoID = &adminID
	s.ValorContado = &valorContado
	s.Justificativa = justificativa
	s.FechadaEm = &now
	return nil
}

func (r *fakeSessaoRepo) FindAbertaPorGaveta(_ context.Context, gavetaID uuid.UUID) (*model.GavetaSessao, error) {
	for _, s := range r.sessoes {
		if s.GavetaID == gavetaID && s.Status == model.SessaoAberta {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessaoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.GavetaSessao, error) {
	s, ok := r.sessoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeSessaoRepo) ListAll(_ context.Context) ([]model.GavetaSessao, error) {
	all := make([]model.GavetaSessao, 0, len(r.sessoes))
	for _, s := range r.sessoes {
		all = append(all, *s)
	}
	return all, nil
}

func (r *fakeSessaoRepo) ListByGaveta(_ context.Context, gavetaID uuid.UUID) ([]model.GavetaSessao, error) {
	var result []model.GavetaSessao
	for _, s := range r.sessoes {
		if s.GavetaID == gavetaID {
			result = append(result, *s)
		}
	}
	return result, nil
}

var _ repository.SessaoRepository = (*fakeSessaoRepo)(nil)

type fakeMovRepo struct {
	movs []model.Movimentacao
	// reciboTipos maps receipt IDs to their type code, standing in for the
	// recibos table in the per-type breakdown.
	reciboTipos map[uuid.UUID]string
}

func newFakeMovRepo() *fakeMovRepo {
	return &fakeMovRepo{reciboTipos: make(map[uuid.UUID]string)}
}

func (r *fakeMovRepo) Create(_ context.Context, m *model.Movimentacao) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movs = append(r.movs, *m)
	return nil
}

func (r *fakeMovRepo) ListBySessao(_ context.Context, sessaoID uuid.UUID, _ bool) ([]model.Movimentacao, error) {
	var result []model.Movimentacao
	for _, m := range r.movs {
		if m.SessaoID == sessaoID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *fakeMovRepo) TotaisPorSessao(_ context.Context, sessaoID uuid.UUID) (*repository.TotaisSessao, error) {
	totais := &repository.TotaisSessao{
		TotalEntradas:        decimal.Zero,
		TotalSaidas:          decimal.Zero,
		TotalSaidasComRecibo: decimal.Zero,
		TotalSaidasSemRecibo: decimal.Zero,
	}
	for _, m := range r.movs {
		if m.SessaoID != sessaoID {
			continue
		}
		switch m.Tipo {
		case model.MovimentacaoEntrada:
			totais.TotalEntradas = totais.TotalEntradas.Add(m.Valor)
		case model.MovimentacaoSaida:
			totais.TotalSaidas = totais.TotalSaidas.Add(m.Valor)
			if m.ReciboID != nil {
				totais.TotalSaidasComRecibo = totais.TotalSaidasComRecibo.Add(m.Valor)
			} else {
				totais.TotalSaidasSemRecibo = totais.TotalSaidasSemRecibo.Add(m.Valor)
			}
		}
	}
	return totais, nil
}

func (r *fakeMovRepo) TotaisPorTipoRecibo(_ context.Context, sessaoID uuid.UUID) (map[string]decimal.Decimal, error) {
	totais := make(map[string]decimal.Decimal)
	for _, m := range r.movs {
		if m.SessaoID != sessaoID || m.Tipo != model.MovimentacaoSaida {
			continue
		}
		tipo := repository.TipoSaidaAvulsa
		if m.ReciboID != nil {
			if t, ok := r.reciboTipos[*m.ReciboID]; ok {
				tipo = t
			}
		}
		totais[tipo] = totais[tipo].Add(m.Valor)
	}
	return totais, nil
}

var _ repository.MovimentacaoRepository = (*fakeMovRepo)(nil)

type fakeGavetaRepo struct {
	gavetas map[uuid.UUID]*model.Gaveta
}

func newFakeGavetaRepo() *fakeGavetaRepo {
	return &fakeGavetaRepo{gavetas: make(map[uuid.UUID]*model.Gaveta)}
}

func (r *fakeGavetaRepo) Create(_ context.Context, g *model.Gaveta) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.gavetas[g.ID] = g
	return nil
}

func (r *fakeGavetaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Gaveta, error) {
	g, ok := r.gavetas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *fakeGavetaRepo) ListAll(_ context.Context) ([]model.Gaveta, error) {
	all := make([]model.Gaveta, 0, len(r.gavetas))
	for _, g := range r.gavetas {
		all = append(all, *g)
	}
	return all, nil
}

var _ repository.GavetaRepository = (*fakeGavetaRepo)(nil)

type fakeUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Ativo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var result []model.Usuario
	for _, u := range r.usuarios {
		if u.Ativo {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (r *fakeUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	all := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		all = append(all, *u)
	}
	return all, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Ativo = false
	}
	return nil
}

func (r *fakeUsuarioRepo) Reativar(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Ativo = true
	}
	return nil
}

var _ repository.UsuarioRepository = (*fakeUsuarioRepo)(nil)

type fakeNotificador struct {
	enfileiradas []uuid.UUID
	err          error
}

func (n *fakeNotificador) EnfileirarRelatorioFechamento(_ context.Context, sessaoID uuid.UUID) error {
	if n.err != nil {
		return n.err
	}
	n.enfileiradas = append(n.enfileiradas, sessaoID)
	return nil
}

// ── Test environment ──────────────────────────────────────────────────────────

type gavetaEnv struct {
	svc         service.GavetaService
	movSvc      service.MovimentacaoService
	sessaoRepo  *fakeSessaoRepo
	movRepo     *fakeMovRepo
	gavetaRepo  *fakeGavetaRepo
	usuarioRepo *fakeUsuarioRepo
	notificador *fakeNotificador

	admin       service.Ator
	responsavel service.Ator
	gavetaID    uuid.UUID
}

func newGavetaEnv(t *testing.T) *gavetaEnv {
	t.Helper()
	env := &gavetaEnv{
		sessaoRepo:  newFakeSessaoRepo(),
		movRepo:     newFakeMovRepo(),
		gavetaRepo:  newFakeGavetaRepo(),
		usuarioRepo: newFakeUsuarioRepo(),
		notificador: &fakeNotificador{},
	}
	env.svc = service.NewGavetaService(env.sessaoRepo, env.movRepo, env.gavetaRepo, env.usuarioRepo, env.notificador)
	env.movSvc = service.NewMovimentacaoService(env.movRepo, env.sessaoRepo)

	adminUser := &model.Usuario{Username: "chefe", Nome: "Chefe", IsAdmin: true, Ativo: true}
	require.NoError(t, env.usuarioRepo.Create(context.Background(), adminUser))
	respUser := &model.Usuario{Username: "operador", Nome: "Operador", Ativo: true}
	require.NoError(t, env.usuarioRepo.Create(context.Background(), respUser))

	gaveta := &model.Gaveta{Nome: "Caixa 1", Ativa: true}
	require.NoError(t, env.gavetaRepo.Create(context.Background(), gaveta))

	env.admin = service.Ator{ID: adminUser.ID, Admin: true}
	env.responsavel = service.Ator{ID: respUser.ID}
	env.gavetaID = gaveta.ID
	return env
}

func (env *gavetaEnv) abrir(t *testing.T, saldoInicial string) uuid.UUID {
	t.Helper()
	resp, err := env.svc.Abrir(context.Background(), env.admin, env.gavetaID, dto.AbrirGavetaRequest{
		ResponsavelID: env.responsavel.ID.String(),
		SaldoInicial:  d(saldoInicial),
	})
	require.NoError(t, err)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	return id
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func TestAbrirGaveta(t *testing.T) {
	env := newGavetaEnv(t)

	resp, err := env.svc.Abrir(context.Background(), env.admin, env.gavetaID, dto.AbrirGavetaRequest{
		ResponsavelID: env.responsavel.ID.String(),
		SaldoInicial:  d("150.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.SessaoAberta, resp.Status)
	assert.Equal(t, env.responsavel.ID.String(), resp.ResponsavelID)
	assert.Equal(t, env.admin.ID.String(), resp.AdminAberturaID)
	assert.True(t, resp.SaldoInicial.Equal(d("150.00")))
}

func TestAbrirGavetaSomenteAdmin(t *testing.T) {
	env := newGavetaEnv(t)

	_, err := env.svc.Abrir(context.Background(), env.responsavel, env.gavetaID, dto.AbrirGavetaRequest{
		ResponsavelID: env.responsavel.ID.String(),
		SaldoInicial:  d("100.00"),
	})
	assert.True(t, errors.Is(err, service.ErrPermissao))
}

func TestAbrirGavetaJaAberta(t *testing.T) {
	env := newGavetaEnv(t)
	env.abrir(t, "100.00")

	_, err := env.svc.Abrir(context.Background(), env.admin, env.gavetaID, dto.AbrirGavetaRequest{
		ResponsavelID: env.responsavel.ID.String(),
		SaldoInicial:  d("50.00"),
	})
	assert.True(t, errors.Is(err, service.ErrConflito))
}

func TestAbrirGavetaSaldoNegativo(t *testing.T) {
	env := newGavetaEnv(t)

	_, err := env.svc.Abrir(context.Background(), env.admin, env.gavetaID, dto.AbrirGavetaRequest{
		ResponsavelID: env.responsavel.ID.String(),
		SaldoInicial:  d("-10.00"),
	})
	assert.True(t, errors.Is(err, service.ErrValidacao))
}

func TestAbrirGavetaResponsavelInexistente(t *testing.T) {
	env := newGavetaEnv(t)

	_, err := env.svc.Abrir(context.Background(), env.admin, env.gavetaID, dto.AbrirGavetaRequest{
		ResponsavelID: uuid.NewString(),
		SaldoInicial:  d("100.00"),
	})
	assert.True(t, errors.Is(err, service.ErrNaoEncontrado))
}

// ── Resumo / Saldo ────────────────────────────────────────────────────────────

func TestResumoSemMovimentacoes(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "200.00")

	resumo, err := env.svc.Resumo(context.Background(), env.admin, sessaoID)
	require.NoError(t, err)
	assert.True(t, resumo.TotalEntradas.IsZero())
	assert.True(t, resumo.TotalSaidas.IsZero())
	assert.True(t, resumo.SaldoEsperado.Equal(d("200.00")))
}

func TestResumoComMovimentacoes(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")
	ctx := context.Background()

	_, err := env.movSvc.RegistrarEntrada(ctx, env.admin, sessaoID, dto.MovimentacaoRequest{
		Valor: d("50.00"), Descricao: "troco extra",
	})
	require.NoError(t, err)

	reciboID := uuid.NewString()
	_, err = env.movSvc.RegistrarSaida(ctx, env.responsavel, sessaoID, dto.MovimentacaoRequest{
		Valor: d("30.00"), Descricao: "pagamento diária", ReciboID: &reciboID,
	})
	require.NoError(t, err)
	_, err = env.movSvc.RegistrarSaida(ctx, env.responsavel, sessaoID, dto.MovimentacaoRequest{
		Valor: d("20.00"), Descricao: "compra de material",
	})
	require.NoError(t, err)

	resumo, err := env.svc.Resumo(ctx, env.admin, sessaoID)
	require.NoError(t, err)
	assert.True(t, resumo.TotalEntradas.Equal(d("50.00")))
	assert.True(t, resumo.TotalSaidas.Equal(d("50.00")))
	assert.True(t, resumo.TotalSaidasComRecibo.Equal(d("30.00")))
	assert.True(t, resumo.TotalSaidasSemRecibo.Equal(d("20.00")))
	assert.True(t, resumo.SaldoEsperado.Equal(d("100.00")))

	// reading the summary again yields the same figures — pure read
	resumo2, err := env.svc.Resumo(ctx, env.admin, sessaoID)
	require.NoError(t, err)
	assert.True(t, resumo2.SaldoEsperado.Equal(resumo.SaldoEsperado))
}

func TestConsultarSaldo(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "80.00")
	ctx := context.Background()

	_, err := env.movSvc.RegistrarEntrada(ctx, env.admin, sessaoID, dto.MovimentacaoRequest{
		Valor: d("20.00"), Descricao: "reforço de caixa",
	})
	require.NoError(t, err)

	saldo, err := env.svc.ConsultarSaldo(ctx, env.responsavel, env.gavetaID)
	require.NoError(t, err)
	assert.True(t, saldo.SaldoAtual.Equal(d("100.00")))

	// third user cannot peek at the drawer
	_, err = env.svc.ConsultarSaldo(ctx, service.Ator{ID: uuid.New()}, env.gavetaID)
	assert.True(t, errors.Is(err, service.ErrPermissao))
}

// ── Fechar ────────────────────────────────────────────────────────────────────

func TestFecharSemDivergencia(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")
	ctx := context.Background()

	_, err := env.movSvc.RegistrarEntrada(ctx, env.admin, sessaoID, dto.MovimentacaoRequest{
		Valor: d("40.00"), Descricao: "vendas em dinheiro",
	})
	require.NoError(t, err)

	resp, err := env.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{
		ValorContado: d("140.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, service.DivergenciaNenhuma, resp.Classificacao)
	assert.True(t, resp.Divergencia.IsZero())
	assert.Equal(t, model.SessaoFechada, resp.Status)
	assert.Equal(t, []uuid.UUID{sessaoID}, env.notificador.enfileiradas)

	sessao, err := env.sessaoRepo.FindByID(ctx, sessaoID)
	require.NoError(t, err)
	assert.Equal(t, model.SessaoFechada, sessao.Status)
	require.NotNil(t, sessao.AdminFechamentoID)
	assert.Equal(t, env.admin.ID, *sessao.AdminFechamentoID)
}

func TestFecharComDivergenciaSemJustificativa(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")
	ctx := context.Background()

	_, err := env.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{
		ValorContado: d("90.00"),
	})
	assert.True(t, errors.Is(err, service.ErrValidacao))

	// blank justification counts as absent
	branca := "   "
	_, err = env.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{
		ValorContado:  d("90.00"),
		Justificativa: &branca,
	})
	assert.True(t, errors.Is(err, service.ErrValidacao))

	// session must remain open after the failed attempts
	sessao, err := env.sessaoRepo.FindByID(ctx, sessaoID)
	require.NoError(t, err)
	assert.Equal(t, model.SessaoAberta, sessao.Status)
	assert.Empty(t, env.notificador.enfileiradas)
}

func TestFecharComDivergenciaJustificada(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")

	justificativa := "faltou troco na conferência"
	resp, err := env.svc.Fechar(context.Background(), env.admin, sessaoID, dto.FecharGavetaRequest{
		ValorContado:  d("90.00"),
		Justificativa: &justificativa,
	})
	require.NoError(t, err)
	assert.Equal(t, service.DivergenciaFalta, resp.Classificacao)
	assert.True(t, resp.Divergencia.Equal(d("-10.00")))
}

func TestFecharDivergenciaNoLimiar(t *testing.T) {
	env := newGavetaEnv(t)
	ctx := context.Background()

	// |divergência| = 0.01 exige justificativa
	sessaoID := env.abrir(t, "100.00")
	_, err := env.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{
		ValorContado: d("100.01"),
	})
	assert.True(t, errors.Is(err, service.ErrValidacao))

	justificativa := "sobra de um centavo"
	resp, err := env.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{
		ValorContado:  d("100.01"),
		Justificativa: &justificativa,
	})
	require.NoError(t, err)
	assert.Equal(t, service.DivergenciaSobra, resp.Classificacao)

	// |divergência| < 0.01 fecha sem justificativa
	env2 := newGavetaEnv(t)
	sessaoID2 := env2.abrir(t, "100.00")
	resp2, err := env2.svc.Fechar(ctx, env2.admin, sessaoID2, dto.FecharGavetaRequest{
		ValorContado: d("100.005"),
	})
	require.NoError(t, err)
	assert.Equal(t, service.DivergenciaNenhuma, resp2.Classificacao)
}

func TestFecharProibidoParaResponsavel(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")

	// even with the admin flag, the responsible cannot close their own drawer
	atorResponsavelAdmin := service.Ator{ID: env.responsavel.ID, Admin: true}
	_, err := env.svc.Fechar(context.Background(), atorResponsavelAdmin, sessaoID, dto.FecharGavetaRequest{
		ValorContado: d("100.00"),
	})
	assert.True(t, errors.Is(err, service.ErrPermissao))
}

func TestFecharDuasVezes(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")
	ctx := context.Background()

	_, err := env.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{ValorContado: d("100.00")})
	require.NoError(t, err)

	_, err = env.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{ValorContado: d("100.00")})
	assert.True(t, errors.Is(err, service.ErrConflito))
}

func TestFecharFalhaDePersistencia(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")
	ctx := context.Background()

	falha := errors.New("pq: connection reset by peer")
	env.sessaoRepo.fecharErr = falha

	_, err := env.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{ValorContado: d("100.00")})
	require.Error(t, err)

	// a storage fault is not a business conflict
	assert.False(t, errors.Is(err, service.ErrConflito))
	assert.True(t, errors.Is(err, falha))

	// the session is still open and no report was enqueued
	sessao, err := env.sessaoRepo.FindByID(ctx, sessaoID)
	require.NoError(t, err)
	assert.Equal(t, model.SessaoAberta, sessao.Status)
	assert.Empty(t, env.notificador.enfileiradas)
}

func TestFecharSessaoJaFechadaPeloResponsavel(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")
	ctx := context.Background()

	_, err := env.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{ValorContado: d("100.00")})
	require.NoError(t, err)

	// an admin who is also the responsible probing a closed session gets
	// the state conflict, not the self-close permission error
	atorResponsavelAdmin := service.Ator{ID: env.responsavel.ID, Admin: true}
	_, err = env.svc.Fechar(ctx, atorResponsavelAdmin, sessaoID, dto.FecharGavetaRequest{ValorContado: d("100.00")})
	assert.True(t, errors.Is(err, service.ErrConflito))
	assert.False(t, errors.Is(err, service.ErrPermissao))
}

func TestFecharNotificadorFalhaNaoImpedeFechamento(t *testing.T) {
	env := newGavetaEnv(t)
	env.notificador.err = errors.New("redis indisponível")
	sessaoID := env.abrir(t, "100.00")

	resp, err := env.svc.Fechar(context.Background(), env.admin, sessaoID, dto.FecharGavetaRequest{
		ValorContado: d("100.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.SessaoFechada, resp.Status)
}

func TestReabrirAposFechamento(t *testing.T) {
	env := newGavetaEnv(t)
	sessaoID := env.abrir(t, "100.00")
	ctx := context.Background()

	_, err := env.svc.Fechar(ctx, env.admin, sessaoID, dto.FecharGavetaRequest{ValorContado: d("100.00")})
	require.NoError(t, err)

	// the drawer is free for a new session once the previous one closed
	sessaoID2 := env.abrir(t, "50.00")
	assert.NotEqual(t, sessaoID, sessaoID2)
}
