package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alencarrgabriel/GeradorRecibos/internal/dto"
	"github.com/alencarrgabriel/GeradorRecibos/internal/model"
	"github.com/alencarrgabriel/GeradorRecibos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovimentacaoService is the append-only drawer ledger. It re-validates the
// structural invariants (open session, positive amount, non-blank
// description) on every write regardless of what the caller checked.
type MovimentacaoService interface {
	RegistrarEntrada(ctx context.Context, ator Ator, sessaoID uuid.UUID, req dto.MovimentacaoRequest) (*dto.MovimentacaoResponse, error)
	RegistrarSaida(ctx context.Context, ator Ator, sessaoID uuid.UUID, req dto.MovimentacaoRequest) (*dto.MovimentacaoResponse, error)
	ListarPorSessao(ctx context.Context, ator Ator, sessaoID uuid.UUID, somenteNaoCanceladas bool) ([]dto.MovimentacaoResponse, error)
	Totais(ctx context.Context, sessaoID uuid.UUID) (*repository.TotaisSessao, error)
	TotaisPorTipoRecibo(ctx context.Context, sessaoID uuid.UUID) (map[string]decimal.Decimal, error)
}

type movimentacaoService struct {
	movRepo    repository.MovimentacaoRepository
	sessaoRepo repository.SessaoRepository
}

func NewMovimentacaoService(movRepo repository.MovimentacaoRepository, sessaoRepo repository.SessaoRepository) MovimentacaoService {
	return &movimentacaoService{movRepo: movRepo, sessaoRepo: sessaoRepo}
}

func (s *movimentacaoService) RegistrarEntrada(ctx context.Context, ator Ator, sessaoID uuid.UUID, req dto.MovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	if err := PodeRegistrarEntrada(ator); err != nil {
		return nil, err
	}
	sessao, err := s.sessaoAberta(ctx, sessaoID)
	if err != nil {
		return nil, err
	}
	return s.registrar(ctx, ator, sessao, model.MovimentacaoEntrada, req)
}

func (s *movimentacaoService) RegistrarSaida(ctx context.Context, ator Ator, sessaoID uuid.UUID, req dto.MovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	sessao, err := s.sessaoAberta(ctx, sessaoID)
	if err != nil {
		return nil, err
	}
	if err := PodeRegistrarSaida(ator, sessao); err != nil {
		return nil, err
	}
	return s.registrar(ctx, ator, sessao, model.MovimentacaoSaida, req)
}

func (s *movimentacaoService) registrar(ctx context.Context, ator Ator, sessao *model.GavetaSessao, tipo string, req dto.MovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	if !req.Valor.IsPositive() {
		return nil, fmt.Errorf("%w: o valor deve ser maior que zero", ErrValidacao)
	}
	descricao := strings.TrimSpace(req.Descricao)
	if descricao == "" {
		return nil, fmt.Errorf("%w: descrição é obrigatória", ErrValidacao)
	}

	var reciboID *uuid.UUID
	if req.ReciboID != nil {
		id, err := uuid.Parse(*req.ReciboID)
		if err != nil {
			return nil, fmt.Errorf("%w: recibo_id inválido", ErrValidacao)
		}
		reciboID = &id
	}

	mov := &model.Movimentacao{
		SessaoID:  sessao.ID,
		UsuarioID: ator.ID,
		Tipo:      tipo,
		Valor:     req.Valor,
		Descricao: descricao,
		ReciboID:  reciboID,
	}
	if err := s.movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	resp := movimentacaoToResponse(mov)
	return &resp, nil
}

func (s *movimentacaoService) ListarPorSessao(ctx context.Context, ator Ator, sessaoID uuid.UUID, somenteNaoCanceladas bool) ([]dto.MovimentacaoResponse, error) {
	sessao, err := s.sessaoRepo.FindByID(ctx, sessaoID)
	if err != nil {
		return nil, naoEncontrado(err, "sessão não encontrada")
	}
	if err := PodeConsultarSaldo(ator, sessao); err != nil {
		return nil, err
	}
	movs, err := s.movRepo.ListBySessao(ctx, sessaoID, somenteNaoCanceladas)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimentacaoResponse, len(movs))
	for i := range movs {
		resp[i] = movimentacaoToResponse(&movs[i])
	}
	return resp, nil
}

func (s *movimentacaoService) Totais(ctx context.Context, sessaoID uuid.UUID) (*repository.TotaisSessao, error) {
	return s.movRepo.TotaisPorSessao(ctx, sessaoID)
}

func (s *movimentacaoService) TotaisPorTipoRecibo(ctx context.Context, sessaoID uuid.UUID) (map[string]decimal.Decimal, error) {
	return s.movRepo.TotaisPorTipoRecibo(ctx, sessaoID)
}

// sessaoAberta loads a session and rejects writes against a closed one.
func (s *movimentacaoService) sessaoAberta(ctx context.Context, sessaoID uuid.UUID) (*model.GavetaSessao, error) {
	sessao, err := s.sessaoRepo.FindByID(ctx, sessaoID)
	if err != nil {
		return nil, naoEncontrado(err, "sessão não encontrada")
	}
	if sessao.Status != model.SessaoAberta {
		return nil, fmt.Errorf("%w: não é possível movimentar uma gaveta fechada", ErrConflito)
	}
	return sessao, nil
}

func movimentacaoToResponse(mov *model.Movimentacao) dto.MovimentacaoResponse {
	resp := dto.MovimentacaoResponse{
		ID:        mov.ID.String(),
		SessaoID:  mov.SessaoID.String(),
		UsuarioID: mov.UsuarioID.String(),
		Tipo:      mov.Tipo,
		Valor:     mov.Valor,
		Descricao: mov.Descricao,
		CriadaEm:  mov.CreatedAt.Format(time.RFC3339),
	}
	if mov.ReciboID != nil {
		id := mov.ReciboID.String()
		resp.ReciboID = &id
	}
	return resp
}
