package dto

import "github.com/shopspring/decimal"

// ─── Empresas ────────────────────────────────────────────────────────────────

type EmpresaRequest struct {
	RazaoSocial  string  `json:"razao_social"  validate:"required,min=2"`
	NomeFantasia *string `json:"nome_fantasia"`
	CNPJ         string  `json:"cnpj"          validate:"required,cnpj"`
	TextoPadrao  *string `json:"texto_padrao"`
}

type EmpresaResponse struct {
	ID           string  `json:"id"`
	RazaoSocial  string  `json:"razao_social"`
	NomeFantasia *string `json:"nome_fantasia"`
	CNPJ         string  `json:"cnpj"`
	TextoPadrao  *string `json:"texto_padrao"`
	Ativa        bool    `json:"ativa"`
}

// ─── Colaboradores ───────────────────────────────────────────────────────────

type ColaboradorRequest struct {
	Nome          string           `json:"nome" validate:"required,min=2"`
	CPF           string           `json:"cpf"  validate:"required,cpf"`
	ValorPassagem *decimal.Decimal `json:"valor_passagem"`
	ValorDiaria   *decimal.Decimal `json:"valor_diaria"`
	ValorDobra    *decimal.Decimal `json:"valor_dobra"`
}

type ColaboradorResponse struct {
	ID            string           `json:"id"`
	Nome          string           `json:"nome"`
	CPF           string           `json:"cpf"`
	ValorPassagem *decimal.Decimal `json:"valor_passagem"`
	ValorDiaria   *decimal.Decimal `json:"valor_diaria"`
	ValorDobra    *decimal.Decimal `json:"valor_dobra"`
	Ativo         bool             `json:"ativo"`
}

// ─── Prestadores ─────────────────────────────────────────────────────────────

type PrestadorRequest struct {
	Nome    string `json:"nome"     validate:"required,min=2"`
	CPFCNPJ string `json:"cpf_cnpj" validate:"required"`
	Tipo    string `json:"tipo"     validate:"required,oneof=PF PJ"`
}

type PrestadorResponse struct {
	ID      string `json:"id"`
	Nome    string `json:"nome"`
	CPFCNPJ string `json:"cpf_cnpj"`
	Tipo    string `json:"tipo"`
	Ativo   bool   `json:"ativo"`
}

// ─── Fornecedores ────────────────────────────────────────────────────────────

type FornecedorRequest struct {
	Nome string `json:"nome" validate:"required,min=2"`
	CNPJ string `json:"cnpj" validate:"required,cnpj"`
}

type FornecedorResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	CNPJ  string `json:"cnpj"`
	Ativo bool   `json:"ativo"`
}
