package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type EmitirReciboRequest struct {
	EmpresaID       string          `json:"empresa_id"       validate:"required,uuid"`
	Tipo            string          `json:"tipo"             validate:"required,oneof=PASSAGEM DIARIA DOBRA FERIADO PRESTACAO FORNECEDOR OUTROS"`
	PessoaNome      string          `json:"pessoa_nome"      validate:"required,min=2"`
	PessoaDocumento string          `json:"pessoa_documento" validate:"required"`
	Descricao       string          `json:"descricao"        validate:"required,min=3"`
	Valor           decimal.Decimal `json:"valor"            validate:"required,gt=0"`
	DataInicio      string          `json:"data_inicio"      validate:"required,datetime=2006-01-02"`
	DataFim         string          `json:"data_fim"         validate:"required,datetime=2006-01-02"`
	DataPagamento   string          `json:"data_pagamento"   validate:"required,datetime=2006-01-02"`
	// SessaoID, when present, also debits the open drawer session with a
	// SAIDA linked to this receipt.
	SessaoID *string `json:"sessao_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReciboResponse struct {
	ID              string          `json:"id"`
	EmpresaID       string          `json:"empresa_id"`
	UsuarioID       string          `json:"usuario_id"`
	Tipo            string          `json:"tipo"`
	PessoaNome      string          `json:"pessoa_nome"`
	PessoaDocumento string          `json:"pessoa_documento"`
	Descricao       string          `json:"descricao"`
	Valor           decimal.Decimal `json:"valor"`
	DataInicio      string          `json:"data_inicio"`
	DataFim         string          `json:"data_fim"`
	DataPagamento   string          `json:"data_pagamento"`
	CaminhoPDF      string          `json:"caminho_pdf"`
	Status          string          `json:"status"`
	MovimentacaoID  *string         `json:"movimentacao_id"`
	CriadoEm        string          `json:"criado_em"`
}
