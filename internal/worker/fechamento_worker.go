package worker

// fechamento_worker.go
// Processes closing-report jobs from QueueFechamento: renders the session's
// report PDF and hands it to the email queue. Runs after the close already
// committed, so any failure here never affects the session state.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alencarrgabriel/GeradorRecibos/internal/infra"
	"github.com/alencarrgabriel/GeradorRecibos/internal/repository"
	"github.com/alencarrgabriel/GeradorRecibos/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// FechamentoWorker builds and mails the drawer closing report.
type FechamentoWorker struct {
	sessaoRepo  repository.SessaoRepository
	gavetaRepo  repository.GavetaRepository
	usuarioRepo repository.UsuarioRepository
	movRepo     repository.MovimentacaoRepository
	pdf         *infra.PDFGenerator
	dispatcher  *Dispatcher
	// relatorioEmail receives the report; empty disables the mailing step.
	relatorioEmail string
}

func NewFechamentoWorker(
	sessaoRepo repository.SessaoRepository,
	gavetaRepo repository.GavetaRepository,
	usuarioRepo repository.UsuarioRepository,
	movRepo repository.MovimentacaoRepository,
	pdf *infra.PDFGenerator,
	dispatcher *Dispatcher,
	relatorioEmail string,
) *FechamentoWorker {
	return &FechamentoWorker{
		sessaoRepo:     sessaoRepo,
		gavetaRepo:     gavetaRepo,
		usuarioRepo:    usuarioRepo,
		movRepo:        movRepo,
		pdf:            pdf,
		dispatcher:     dispatcher,
		relatorioEmail: relatorioEmail,
	}
}

// Process renders the closing report for the session in the payload.
func (w *FechamentoWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload FechamentoJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("fechamento_worker: invalid payload: %w", err)
	}
	sessaoID, err := uuid.Parse(payload.SessaoID)
	if err != nil {
		return fmt.Errorf("fechamento_worker: invalid sessao_id %q", payload.SessaoID)
	}

	sessao, err := w.sessaoRepo.FindByID(ctx, sessaoID)
	if err != nil {
		return fmt.Errorf("fechamento_worker: load session: %w", err)
	}
	gaveta, err := w.gavetaRepo.FindByID(ctx, sessao.GavetaID)
	if err != nil {
		return fmt.Errorf("fechamento_worker: load drawer: %w", err)
	}
	responsavel, err := w.usuarioRepo.FindByID(ctx, sessao.ResponsavelID)
	if err != nil {
		return fmt.Errorf("fechamento_worker: load responsible user: %w", err)
	}

	totais, err := w.movRepo.TotaisPorSessao(ctx, sessaoID)
	if err != nil {
		return fmt.Errorf("fechamento_worker: session totals: %w", err)
	}
	porTipo, err := w.movRepo.TotaisPorTipoRecibo(ctx, sessaoID)
	if err != nil {
		return fmt.Errorf("fechamento_worker: per-type totals: %w", err)
	}
	movimentos, err := w.movRepo.ListBySessao(ctx, sessaoID, false)
	if err != nil {
		return fmt.Errorf("fechamento_worker: movement list: %w", err)
	}

	saldoEsperado := sessao.SaldoInicial.Add(totais.TotalEntradas).Sub(totais.TotalSaidas)
	divergencia := decimal.Zero
	if sessao.ValorContado != nil {
		divergencia = service.CalcularDivergencia(*sessao.ValorContado, saldoEsperado)
	}

	caminho, err := w.pdf.RenderFechamento(&infra.DadosFechamento{
		Sessao:        sessao,
		Gaveta:        gaveta,
		Responsavel:   responsavel,
		Totais:        *totais,
		SaldoEsperado: saldoEsperado,
		Divergencia:   divergencia,
		Classificacao: service.ClassificarDivergencia(divergencia),
		PorTipo:       porTipo,
		Movimentos:    movimentos,
	})
	if err != nil {
		return fmt.Errorf("fechamento_worker: render PDF: %w", err)
	}
	log.Info().Str("sessao_id", sessaoID.String()).Str("pdf", caminho).
		Msg("fechamento_worker: relatório gerado")

	if w.relatorioEmail == "" {
		return nil
	}
	return w.dispatcher.EnqueueEmail(ctx, EmailJobPayload{
		ToEmail: w.relatorioEmail,
		Subject: fmt.Sprintf("Fechamento de gaveta — %s", gaveta.Nome),
		Body: fmt.Sprintf(
			"Segue em anexo o relatório de fechamento da gaveta %q, sessão %s.",
			gaveta.Nome, sessaoID,
		),
		PDFPath: caminho,
	})
}
