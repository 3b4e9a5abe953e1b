package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alencarrgabriel/GeradorRecibos/internal/dto"
	"github.com/alencarrgabriel/GeradorRecibos/internal/model"
	"github.com/alencarrgabriel/GeradorRecibos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FechamentoNotificador enqueues the closing-report job after a successful
// close. Implemented by the worker dispatcher; failures here must never
// fail the close itself.
type FechamentoNotificador interface {
	EnfileirarRelatorioFechamento(ctx context.Context, sessaoID uuid.UUID) error
}

type GavetaService interface {
	CriarGaveta(ctx context.Context, ator Ator, req dto.CriarGavetaRequest) (*dto.GavetaResponse, error)
	ListarGavetas(ctx context.Context) ([]dto.GavetaResponse, error)

	Abrir(ctx context.Context, ator Ator, gavetaID uuid.UUID, req dto.AbrirGavetaRequest) (*dto.SessaoResponse, error)
	Fechar(ctx context.Context, ator Ator, sessaoID uuid.UUID, req dto.FecharGavetaRequest) (*dto.FechamentoResponse, error)
	// Resumo is the close preview; Fechar computes divergence from the same
	// figures, so preview and final report can never disagree.
	Resumo(ctx context.Context, ator Ator, sessaoID uuid.UUID) (*dto.ResumoSessaoResponse, error)
	ConsultarSaldo(ctx context.Context, ator Ator, gavetaID uuid.UUID) (*dto.SaldoResponse, error)

	SessaoPorID(ctx context.Context, sessaoID uuid.UUID) (*dto.SessaoResponse, error)
	ListarSessoes(ctx context.Context) ([]dto.SessaoResponse, error)
	ListarSessoesPorGaveta(ctx context.Context, gavetaID uuid.UUID) ([]dto.SessaoResponse, error)
}

type gavetaService struct {
	sessaoRepo  repository.SessaoRepository
	movRepo     repository.MovimentacaoRepository
	gavetaRepo  repository.GavetaRepository
	usuarioRepo repository.UsuarioRepository
	notificador FechamentoNotificador // optional
}

func NewGavetaService(
	sessaoRepo repository.SessaoRepository,
	movRepo repository.MovimentacaoRepository,
	gavetaRepo repository.GavetaRepository,
	usuarioRepo repository.UsuarioRepository,
	notificador FechamentoNotificador,
) GavetaService {
	return &gavetaService{
		sessaoRepo:  sessaoRepo,
		movRepo:     movRepo,
		gavetaRepo:  gavetaRepo,
		usuarioRepo: usuarioRepo,
		notificador: notificador,
	}
}

// ── Gaveta CRUD ───────────────────────────────────────────────────────────────

func (s *gavetaService) CriarGaveta(ctx context.Context, ator Ator, req dto.CriarGavetaRequest) (*dto.GavetaResponse, error) {
	if err := PodeAbrirGaveta(ator); err != nil {
		return nil, err
	}
	gaveta := &model.Gaveta{Nome: strings.TrimSpace(req.Nome), Ativa: true}
	if gaveta.Nome == "" {
		return nil, fmt.Errorf("%w: nome da gaveta é obrigatório", ErrValidacao)
	}
	if err := s.gavetaRepo.Create(ctx, gaveta); err != nil {
		return nil, err
	}
	return &dto.GavetaResponse{ID: gaveta.ID.String(), Nome: gaveta.Nome, Ativa: gaveta.Ativa}, nil
}

func (s *gavetaService) ListarGavetas(ctx context.Context) ([]dto.GavetaResponse, error) {
	gavetas, err := s.gavetaRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.GavetaResponse, len(gavetas))
	for i, g := range gavetas {
		resp[i] = dto.GavetaResponse{ID: g.ID.String(), Nome: g.Nome, Ativa: g.Ativa}
	}
	return resp, nil
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func (s *gavetaService) Abrir(ctx context.Context, ator Ator, gavetaID uuid.UUID, req dto.AbrirGavetaRequest) (*dto.SessaoResponse, error) {
	if err := PodeAbrirGaveta(ator); err != nil {
		return nil, err
	}

	if _, err := s.gavetaRepo.FindByID(ctx, gavetaID); err != nil {
		return nil, naoEncontrado(err, "gaveta não encontrada")
	}

	aberta, err := s.sessaoRepo.FindAbertaPorGaveta(ctx, gavetaID)
	if err != nil {
		return nil, err
	}
	if aberta != nil {
		return nil, fmt.Errorf("%w: esta gaveta já está aberta", ErrConflito)
	}

	responsavelID, err := uuid.Parse(req.ResponsavelID)
	if err != nil {
		return nil, fmt.Errorf("%w: responsavel_id inválido", ErrValidacao)
	}
	if _, err := s.usuarioRepo.FindByID(ctx, responsavelID); err != nil {
		return nil, naoEncontrado(err, "responsável não encontrado")
	}

	if req.SaldoInicial.IsNegative() {
		return nil, fmt.Errorf("%w: saldo inicial não pode ser negativo", ErrValidacao)
	}

	sessao := &model.GavetaSessao{
		GavetaID:        gavetaID,
		ResponsavelID:   responsavelID,
		AdminAberturaID: ator.ID,
		SaldoInicial:    req.SaldoInicial,
		Status:          model.SessaoAberta,
	}
	if err := s.sessaoRepo.Create(ctx, sessao); err != nil {
		return nil, err
	}

	resp := sessaoToResponse(sessao)
	return &resp, nil
}

// ── Fechar ────────────────────────────────────────────────────────────────────

func (s *gavetaService) Fechar(ctx context.Context, ator Ator, sessaoID uuid.UUID, req dto.FecharGavetaRequest) (*dto.FechamentoResponse, error) {
	sessao, err := s.sessaoRepo.FindByID(ctx, sessaoID)
	if err != nil {
		return nil, naoEncontrado(err, "sessão não encontrada")
	}
	// Precondition order: admin, session state, then the self-close rule.
	// Probing an already-closed drawer reports the conflict, not a
	// permission failure.
	if !ator.Admin {
		return nil, fmt.Errorf("%w: somente administradores podem fechar gavetas", ErrPermissao)
	}
	if sessao.Status != model.SessaoAberta {
		return nil, fmt.Errorf("%w: esta gaveta já está fechada", ErrConflito)
	}
	if err := PodeFecharGaveta(ator, sessao); err != nil {
		return nil, err
	}

	resumo, err := s.resumo(ctx, sessao)
	if err != nil {
		return nil, err
	}

	divergencia := CalcularDivergencia(req.ValorContado, resumo.SaldoEsperado)
	justificativa := normalizarJustificativa(req.Justificativa)
	if ExigeJustificativa(divergencia) && justificativa == nil {
		return nil, fmt.Errorf("%w: existe divergência de valores, justificativa é obrigatória", ErrValidacao)
	}

	if err := s.sessaoRepo.Fechar(ctx, sessaoID, ator.ID, req.ValorContado, justificativa); err != nil {
		// zero affected rows means a concurrent close won the race; any
		// other error is a storage fault and must not masquerade as one
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: esta gaveta já está fechada", ErrConflito)
		}
		return nil, err
	}

	if s.notificador != nil {
		if err := s.notificador.EnfileirarRelatorioFechamento(ctx, sessaoID); err != nil {
			log.Warn().Err(err).Str("sessao_id", sessaoID.String()).
				Msg("fechamento concluído, mas o relatório não pôde ser enfileirado")
		}
	}

	return &dto.FechamentoResponse{
		SessaoID:      sessaoID.String(),
		SaldoEsperado: resumo.SaldoEsperado,
		ValorContado:  req.ValorContado,
		Divergencia:   divergencia,
		Classificacao: ClassificarDivergencia(divergencia),
		Status:        model.SessaoFechada,
	}, nil
}

// ── Resumo / Saldo ────────────────────────────────────────────────────────────

func (s *gavetaService) Resumo(ctx context.Context, ator Ator, sessaoID uuid.UUID) (*dto.ResumoSessaoResponse, error) {
	sessao, err := s.sessaoRepo.FindByID(ctx, sessaoID)
	if err != nil {
		return nil, naoEncontrado(err, "sessão não encontrada")
	}
	if err := PodeConsultarSaldo(ator, sessao); err != nil {
		return nil, err
	}
	return s.resumo(ctx, sessao)
}

// resumo assembles the reconciliation summary from the current ledger
// state. Pure read — no counters are maintained anywhere.
func (s *gavetaService) resumo(ctx context.Context, sessao *model.GavetaSessao) (*dto.ResumoSessaoResponse, error) {
	totais, err := s.movRepo.TotaisPorSessao(ctx, sessao.ID)
	if err != nil {
		return nil, err
	}
	saldoEsperado := sessao.SaldoInicial.Add(totais.TotalEntradas).Sub(totais.TotalSaidas)
	return &dto.ResumoSessaoResponse{
		Sessao:               sessaoToResponse(sessao),
		SaldoInicial:         sessao.SaldoInicial,
		TotalEntradas:        totais.TotalEntradas,
		TotalSaidas:          totais.TotalSaidas,
		TotalSaidasComRecibo: totais.TotalSaidasComRecibo,
		TotalSaidasSemRecibo: totais.TotalSaidasSemRecibo,
		SaldoEsperado:        saldoEsperado,
	}, nil
}

func (s *gavetaService) ConsultarSaldo(ctx context.Context, ator Ator, gavetaID uuid.UUID) (*dto.SaldoResponse, error) {
	sessao, err := s.sessaoRepo.FindAbertaPorGaveta(ctx, gavetaID)
	if err != nil {
		return nil, err
	}
	if sessao == nil {
		return nil, fmt.Errorf("%w: esta gaveta não possui sessão aberta", ErrNaoEncontrado)
	}
	if err := PodeConsultarSaldo(ator, sessao); err != nil {
		return nil, err
	}

	totais, err := s.movRepo.TotaisPorSessao(ctx, sessao.ID)
	if err != nil {
		return nil, err
	}
	saldoAtual := sessao.SaldoInicial.Add(totais.TotalEntradas).Sub(totais.TotalSaidas)
	return &dto.SaldoResponse{
		Sessao:        sessaoToResponse(sessao),
		SaldoInicial:  sessao.SaldoInicial,
		TotalEntradas: totais.TotalEntradas,
		TotalSaidas:   totais.TotalSaidas,
		SaldoAtual:    saldoAtual,
	}, nil
}

// ── Lookups ───────────────────────────────────────────────────────────────────

func (s *gavetaService) SessaoPorID(ctx context.Context, sessaoID uuid.UUID) (*dto.SessaoResponse, error) {
	sessao, err := s.sessaoRepo.FindByID(ctx, sessaoID)
	if err != nil {
		return nil, naoEncontrado(err, "sessão não encontrada")
	}
	resp := sessaoToResponse(sessao)
	return &resp, nil
}

func (s *gavetaService) ListarSessoes(ctx context.Context) ([]dto.SessaoResponse, error) {
	sessoes, err := s.sessaoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return sessoesToResponse(sessoes), nil
}

func (s *gavetaService) ListarSessoesPorGaveta(ctx context.Context, gavetaID uuid.UUID) ([]dto.SessaoResponse, error) {
	sessoes, err := s.sessaoRepo.ListByGaveta(ctx, gavetaID)
	if err != nil {
		return nil, err
	}
	return sessoesToResponse(sessoes), nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// normalizarJustificativa treats blank text as absent.
func normalizarJustificativa(j *string) *string {
	if j == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*j)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func sessaoToResponse(sessao *model.GavetaSessao) dto.SessaoResponse {
	resp := dto.SessaoResponse{
		ID:              sessao.ID.String(),
		GavetaID:        sessao.GavetaID.String(),
		ResponsavelID:   sessao.ResponsavelID.String(),
		AdminAberturaID: sessao.AdminAberturaID.String(),
		SaldoInicial:    sessao.SaldoInicial,
		ValorContado:    sessao.ValorContado,
		Justificativa:   sessao.Justificativa,
		Status:          sessao.Status,
		AbertaEm:        sessao.AbertaEm.Format(time.RFC3339),
	}
	if sessao.AdminFechamentoID != nil {
		id := sessao.AdminFechamentoID.String()
		resp.AdminFechamentoID = &id
	}
	if sessao.FechadaEm != nil {
		t := sessao.FechadaEm.Format(time.RFC3339)
		resp.FechadaEm = &t
	}
	return resp
}

func sessoesToResponse(sessoes []model.GavetaSessao) []dto.SessaoResponse {
	resp := make([]dto.SessaoResponse, len(sessoes))
	for i := range sessoes {
		resp[i] = sessaoToResponse(&sessoes[i])
	}
	return resp
}
