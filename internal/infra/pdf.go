package infra

// pdf.go — PDF generation using go-pdf/fpdf.
// Two artifacts come out of here:
//   - payment receipts (A4, one per issued Recibo)
//   - drawer closing reports (A4, one per closed GavetaSessao)
// Files are written under the configured storage directory; only the path
// is persisted.

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alencarrgabriel/GeradorRecibos/internal/model"
	"github.com/alencarrgabriel/GeradorRecibos/internal/repository"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// PDFGenerator renders receipt and closing-report PDFs into storagePath.
type PDFGenerator struct {
	storagePath string
}

func NewPDFGenerator(storagePath string) *PDFGenerator {
	return &PDFGenerator{storagePath: storagePath}
}

var tipoLabels = map[string]string{
	model.ReciboPassagem:       "Passagem",
	model.ReciboDiaria:         "Diária",
	model.ReciboDobra:          "Dobra",
	model.ReciboFeriado:        "Feriado",
	model.ReciboPrestacao:      "Prestação de Serviço",
	model.ReciboFornecedor:     "Fornecedor",
	model.ReciboOutros:         "Outros",
	repository.TipoSaidaAvulsa: "Saída avulsa",
}

func tipoLabel(tipo string) string {
	if label, ok := tipoLabels[tipo]; ok {
		return label
	}
	return tipo
}

func brl(v decimal.Decimal) string {
	return "R$ " + v.StringFixed(2)
}

// RenderRecibo generates the A4 receipt document for rec and returns the
// absolute path of the written file.
func (g *PDFGenerator) RenderRecibo(rec *model.Recibo, empresa *model.Empresa) (string, error) {
	if err := os.MkdirAll(g.storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(g.storagePath, fmt.Sprintf("recibo_%s.pdf", rec.ID))

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	// ── Company header ───────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr(empresa.RazaoSocial), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr("CNPJ: "+empresa.CNPJ), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// ── Title and value box ──────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW*0.7, 10, "RECIBO", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW*0.3, 10, brl(rec.Valor), "1", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Body ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 11)
	corpo := fmt.Sprintf(
		"Recebi de %s a importância de %s, referente a %s (%s), no período de %s a %s.",
		empresa.RazaoSocial, brl(rec.Valor), rec.Descricao, tipoLabel(rec.Tipo),
		rec.DataInicio.Format("02/01/2006"), rec.DataFim.Format("02/01/2006"),
	)
	pdf.MultiCell(contentW, 6, tr(corpo), "", "L", false)
	pdf.Ln(4)

	if empresa.TextoPadrao != nil && *empresa.TextoPadrao != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(contentW, 5, tr(*empresa.TextoPadrao), "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, tr("Data do pagamento: "+rec.DataPagamento.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.Ln(20)

	// ── Signature line ───────────────────────────────────────────────────────
	lineY := pdf.GetY()
	pdf.Line(20+contentW*0.2, lineY, 20+contentW*0.8, lineY)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr(rec.PessoaNome), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr("CPF/CNPJ: "+rec.PessoaDocumento), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// DadosFechamento carries everything the closing report prints. The worker
// assembles it from the session, its totals and the per-type breakdown so
// rendering stays a pure function of its input.
type DadosFechamento struct {
	Sessao        *model.GavetaSessao
	Gaveta        *model.Gaveta
	Responsavel   *model.Usuario
	Totais        repository.TotaisSessao
	SaldoEsperado decimal.Decimal
	Divergencia   decimal.Decimal
	Classificacao string
	PorTipo       map[string]decimal.Decimal
	Movimentos    []model.Movimentacao
}

// RenderFechamento generates the closing report for a closed session and
// returns the absolute path of the written file.
func (g *PDFGenerator) RenderFechamento(dados *DadosFechamento) (string, error) {
	if err := os.MkdirAll(g.storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(g.storagePath, fmt.Sprintf("fechamento_%s.pdf", dados.Sessao.ID))

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Relatório de Fechamento de Gaveta"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr("Gaveta: "+dados.Gaveta.Nome), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, tr("Responsável: "+dados.Responsavel.Nome), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, "Abertura: "+dados.Sessao.AbertaEm.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	if dados.Sessao.FechadaEm != nil {
		pdf.CellFormat(contentW, 6, "Fechamento: "+dados.Sessao.FechadaEm.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Totals ───────────────────────────────────────────────────────────────
	labelW := contentW * 0.6
	valueW := contentW * 0.4

	linha := func(label string, v decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(labelW, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, brl(v), "", 1, "R", false, 0, "")
	}

	linha("Saldo inicial", dados.Sessao.SaldoInicial, false)
	linha("Total de entradas", dados.Totais.TotalEntradas, false)
	linha("Total de saídas", dados.Totais.TotalSaidas, false)
	linha("  Saídas com recibo", dados.Totais.TotalSaidasComRecibo, false)
	linha("  Saídas sem recibo", dados.Totais.TotalSaidasSemRecibo, false)
	linha("Saldo esperado", dados.SaldoEsperado, true)
	if dados.Sessao.ValorContado != nil {
		linha("Valor contado", *dados.Sessao.ValorContado, true)
	}
	linha("Divergência", dados.Divergencia, true)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelW, 6, tr("Classificação"), "", 0, "L", false, 0, "")
	pdf.CellFormat(valueW, 6, dados.Classificacao, "", 1, "R", false, 0, "")

	if dados.Sessao.Justificativa != nil && *dados.Sessao.Justificativa != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(contentW, 5, tr("Justificativa: "+*dados.Sessao.Justificativa), "", "L", false)
	}
	pdf.Ln(4)

	// ── Withdrawals by receipt type ──────────────────────────────────────────
	if len(dados.PorTipo) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, tr("Saídas por tipo de recibo"), "B", 1, "L", false, 0, "")

		tipos := make([]string, 0, len(dados.PorTipo))
		for tipo := range dados.PorTipo {
			tipos = append(tipos, tipo)
		}
		sort.Strings(tipos)

		pdf.SetFont("Helvetica", "", 9)
		for _, tipo := range tipos {
			pdf.CellFormat(labelW, 5, tr(tipoLabel(tipo)), "", 0, "L", false, 0, "")
			pdf.CellFormat(valueW, 5, brl(dados.PorTipo[tipo]), "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	// ── Movement list ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, tr("Movimentações"), "B", 1, "L", false, 0, "")

	colHora := contentW * 0.18
	colTipo := contentW * 0.15
	colDesc := contentW * 0.47
	colValor := contentW * 0.20

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colHora, 5, "Hora", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colTipo, 5, "Tipo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colDesc, 5, tr("Descrição"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(colValor, 5, "Valor", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, mov := range dados.Movimentos {
		descricao := truncar(mov.Descricao, 48)
		pdf.CellFormat(colHora, 5, mov.CreatedAt.Format("02/01 15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(colTipo, 5, mov.Tipo, "", 0, "L", false, 0, "")
		pdf.CellFormat(colDesc, 5, tr(descricao), "", 0, "L", false, 0, "")
		pdf.CellFormat(colValor, 5, brl(mov.Valor), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// truncar cuts a string to at most limite characters, counting runes so an
// accented description never has a multibyte character split in half.
func truncar(s string, limite int) string {
	runes := []rune(s)
	if len(runes) <= limite {
		return s
	}
	return string(runes[:limite-1]) + "…"
}
