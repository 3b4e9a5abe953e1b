package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alencarrgabriel/GeradorRecibos/internal/docfiscal"
	"github.com/alencarrgabriel/GeradorRecibos/internal/dto"
	"github.com/alencarrgabriel/GeradorRecibos/internal/model"
	"github.com/alencarrgabriel/GeradorRecibos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReciboPDFRenderer writes the receipt PDF to disk and returns its path.
type ReciboPDFRenderer interface {
	RenderRecibo(rec *model.Recibo, empresa *model.Empresa) (string, error)
}

type ReciboService interface {
	Emitir(ctx context.Context, ator Ator, req dto.EmitirReciboRequest) (*dto.ReciboResponse, error)
	Cancelar(ctx context.Context, ator Ator, id uuid.UUID) error
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ReciboResponse, error)
	Listar(ctx context.Context, incluirCancelados bool) ([]dto.ReciboResponse, error)
}

type reciboService struct {
	reciboRepo  repository.ReciboRepository
	empresaRepo repository.EmpresaRepository
	movimentos  MovimentacaoService
	renderer    ReciboPDFRenderer
}

func NewReciboService(
	reciboRepo repository.ReciboRepository,
	empresaRepo repository.EmpresaRepository,
	movimentos MovimentacaoService,
	renderer ReciboPDFRenderer,
) ReciboService {
	return &reciboService{
		reciboRepo:  reciboRepo,
		empresaRepo: empresaRepo,
		movimentos:  movimentos,
		renderer:    renderer,
	}
}

// Emitir validates, persists and renders a receipt. When req.SessaoID is
// present it also registers a SAIDA on that drawer session; if the drawer
// write fails the receipt is cancelled so the ledger and the receipt book
// never disagree.
func (s *reciboService) Emitir(ctx context.Context, ator Ator, req dto.EmitirReciboRequest) (*dto.ReciboResponse, error) {
	empresaID, err := uuid.Parse(req.EmpresaID)
	if err != nil {
		return nil, fmt.Errorf("%w: empresa_id inválido", ErrValidacao)
	}
	empresa, err := s.empresaRepo.FindByID(ctx, empresaID)
	if err != nil {
		return nil, naoEncontrado(err, "empresa não encontrada")
	}
	if !empresa.Ativa {
		return nil, fmt.Errorf("%w: empresa inativa", ErrValidacao)
	}

	if !docfiscal.ValidDocumento(req.PessoaDocumento) {
		return nil, fmt.Errorf("%w: CPF/CNPJ inválido", ErrValidacao)
	}

	dataInicio, err := parseData(req.DataInicio)
	if err != nil {
		return nil, err
	}
	dataFim, err := parseData(req.DataFim)
	if err != nil {
		return nil, err
	}
	dataPagamento, err := parseData(req.DataPagamento)
	if err != nil {
		return nil, err
	}
	if dataFim.Before(dataInicio) {
		return nil, fmt.Errorf("%w: data_fim anterior a data_inicio", ErrValidacao)
	}

	rec := &model.Recibo{
		EmpresaID:       empresaID,
		UsuarioID:       ator.ID,
		Tipo:            req.Tipo,
		PessoaNome:      req.PessoaNome,
		PessoaDocumento: docfiscal.FormatDocumento(req.PessoaDocumento),
		Descricao:       req.Descricao,
		Valor:           req.Valor,
		DataInicio:      dataInicio,
		DataFim:         dataFim,
		DataPagamento:   dataPagamento,
		Status:          model.ReciboAtivo,
	}
	if err := s.reciboRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	caminho, err := s.renderer.RenderRecibo(rec, empresa)
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar PDF do recibo: %w", err)
	}
	rec.CaminhoPDF = caminho
	if err := s.reciboRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	if req.SessaoID != nil {
		if err := s.debitarGaveta(ctx, ator, rec, *req.SessaoID); err != nil {
			if cancelErr := s.reciboRepo.Cancelar(ctx, rec.ID); cancelErr != nil {
				log.Error().Err(cancelErr).Str("recibo_id", rec.ID.String()).
					Msg("falha ao cancelar recibo após erro na gaveta")
			}
			return nil, err
		}
	}

	resp := reciboToResponse(rec)
	return &resp, nil
}

// debitarGaveta records the receipt amount as a drawer withdrawal and
// links the movement back to the receipt row.
func (s *reciboService) debitarGaveta(ctx context.Context, ator Ator, rec *model.Recibo, sessaoIDStr string) error {
	sessaoID, err := uuid.Parse(sessaoIDStr)
	if err != nil {
		return fmt.Errorf("%w: sessao_id inválido", ErrValidacao)
	}
	reciboID := rec.ID.String()
	mov, err := s.movimentos.RegistrarSaida(ctx, ator, sessaoID, dto.MovimentacaoRequest{
		Valor:     rec.Valor,
		Descricao: fmt.Sprintf("Recibo %s - %s", rec.Tipo, rec.PessoaNome),
		ReciboID:  &reciboID,
	})
	if err != nil {
		return err
	}
	movID, err := uuid.Parse(mov.ID)
	if err != nil {
		return err
	}
	rec.MovimentacaoID = &movID
	return s.reciboRepo.Update(ctx, rec)
}

// Cancelar marks a receipt CANCELADO. Only admins may cancel; the linked
// drawer movement, if any, stays in the ledger and is excluded from the
// closing totals by the cancelled-receipt filter.
func (s *reciboService) Cancelar(ctx context.Context, ator Ator, id uuid.UUID) error {
	if !ator.Admin {
		return fmt.Errorf("%w: apenas administradores podem cancelar recibos", ErrPermissao)
	}
	if err := s.reciboRepo.Cancelar(ctx, id); err != nil {
		return naoEncontrado(err, "recibo não encontrado ou já cancelado")
	}
	return nil
}

func (s *reciboService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ReciboResponse, error) {
	rec, err := s.reciboRepo.FindByID(ctx, id)
	if err != nil {
		return nil, naoEncontrado(err, "recibo não encontrado")
	}
	resp := reciboToResponse(rec)
	return &resp, nil
}

func (s *reciboService) Listar(ctx context.Context, incluirCancelados bool) ([]dto.ReciboResponse, error) {
	recibos, err := s.reciboRepo.ListAll(ctx, incluirCancelados)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ReciboResponse, len(recibos))
	for i := range recibos {
		resp[i] = reciboToResponse(&recibos[i])
	}
	return resp, nil
}

func parseData(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: data inválida, use o formato AAAA-MM-DD", ErrValidacao)
	}
	return t, nil
}

func reciboToResponse(rec *model.Recibo) dto.ReciboResponse {
	resp := dto.ReciboResponse{
		ID:              rec.ID.String(),
		EmpresaID:       rec.EmpresaID.String(),
		UsuarioID:       rec.UsuarioID.String(),
		Tipo:            rec.Tipo,
		PessoaNome:      rec.PessoaNome,
		PessoaDocumento: rec.PessoaDocumento,
		Descricao:       rec.Descricao,
		Valor:           rec.Valor,
		DataInicio:      rec.DataInicio.Format("2006-01-02"),
		DataFim:         rec.DataFim.Format("2006-01-02"),
		DataPagamento:   rec.DataPagamento.Format("2006-01-02"),
		CaminhoPDF:      rec.CaminhoPDF,
		Status:          rec.Status,
		CriadoEm:        rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.MovimentacaoID != nil {
		id := rec.MovimentacaoID.String()
		resp.MovimentacaoID = &id
	}
	return resp
}
