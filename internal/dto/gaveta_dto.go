package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarGavetaRequest struct {
	Nome string `json:"nome" validate:"required,min=1,max=100"`
}

type AbrirGavetaRequest struct {
	ResponsavelID string          `json:"responsavel_id" validate:"required,uuid"`
	SaldoInicial  decimal.Decimal `json:"saldo_inicial"  validate:"min=0"`
}

type FecharGavetaRequest struct {
	ValorContado  decimal.Decimal `json:"valor_contado" validate:"min=0"`
	Justificativa *string         `json:"justificativa"`
}

type MovimentacaoRequest struct {
	Valor     decimal.Decimal `json:"valor"     validate:"required,gt=0"`
	Descricao string          `json:"descricao" validate:"required"`
	// ReciboID links a withdrawal to the receipt that justifies it.
	ReciboID *string `json:"recibo_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type GavetaResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Ativa bool   `json:"ativa"`
}

type SessaoResponse struct {
	ID                string           `json:"id"`
	GavetaID          string           `json:"gaveta_id"`
	ResponsavelID     string           `json:"responsavel_id"`
	AdminAberturaID   string           `json:"admin_abertura_id"`
	AdminFechamentoID *string          `json:"admin_fechamento_id"`
	SaldoInicial      decimal.Decimal  `json:"saldo_inicial"`
	ValorContado      *decimal.Decimal `json:"valor_contado"`
	Justificativa     *string          `json:"justificativa"`
	Status            string           `json:"status"`
	AbertaEm          string           `json:"aberta_em"`
	FechadaEm         *string          `json:"fechada_em"`
}

type MovimentacaoResponse struct {
	ID        string          `json:"id"`
	SessaoID  string          `json:"sessao_id"`
	UsuarioID string          `json:"usuario_id"`
	Tipo      string          `json:"tipo"`
	Valor     decimal.Decimal `json:"valor"`
	Descricao string          `json:"descricao"`
	ReciboID  *string         `json:"recibo_id"`
	CriadaEm  string          `json:"criada_em"`
}

// ResumoSessaoResponse is the closing summary: shown as the close preview
// and used verbatim by the close operation for divergence math.
type ResumoSessaoResponse struct {
	Sessao               SessaoResponse  `json:"sessao"`
	SaldoInicial         decimal.Decimal `json:"saldo_inicial"`
	TotalEntradas        decimal.Decimal `json:"total_entradas"`
	TotalSaidas          decimal.Decimal `json:"total_saidas"`
	TotalSaidasComRecibo decimal.Decimal `json:"total_saidas_com_recibo"`
	TotalSaidasSemRecibo decimal.Decimal `json:"total_saidas_sem_recibo"`
	SaldoEsperado        decimal.Decimal `json:"saldo_esperado"`
}

type SaldoResponse struct {
	Sessao        SessaoResponse  `json:"sessao"`
	SaldoInicial  decimal.Decimal `json:"saldo_inicial"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSaidas   decimal.Decimal `json:"total_saidas"`
	SaldoAtual    decimal.Decimal `json:"saldo_atual"`
}

type FechamentoResponse struct {
	SessaoID      string          `json:"sessao_id"`
	SaldoEsperado decimal.Decimal `json:"saldo_esperado"`
	ValorContado  decimal.Decimal `json:"valor_contado"`
	Divergencia   decimal.Decimal `json:"divergencia"`
	Classificacao string          `json:"classificacao"` // SEM_DIVERGENCIA | SOBRA | FALTA
	Status        string          `json:"status"`
}
