package handler

import (
	"net/http"

	"github.com/alencarrgabriel/GeradorRecibos/internal/apierror"
	"github.com/alencarrgabriel/GeradorRecibos/internal/docfiscal"
	"github.com/alencarrgabriel/GeradorRecibos/internal/dto"
	"github.com/alencarrgabriel/GeradorRecibos/internal/model"
	"github.com/alencarrgabriel/GeradorRecibos/internal/repository"

	"github.com/gin-gonic/gin"
)

// CadastroHandler serves the flat registry CRUD (companies, employees,
// contractors, suppliers). Thin enough to work straight on the repositories.
type CadastroHandler struct {
	empresas      repository.EmpresaRepository
	colaboradores repository.ColaboradorRepository
	prestadores   repository.PrestadorRepository
	fornecedores  repository.FornecedorRepository
}

func NewCadastroHandler(
	empresas repository.EmpresaRepository,
	colaboradores repository.ColaboradorRepository,
	prestadores repository.PrestadorRepository,
	fornecedores repository.FornecedorRepository,
) *CadastroHandler {
	return &CadastroHandler{
		empresas:      empresas,
		colaboradores: colaboradores,
		prestadores:   prestadores,
		fornecedores:  fornecedores,
	}
}

// ── Empresas ──────────────────────────────────────────────────────────────────

func (h *CadastroHandler) CriarEmpresa(c *gin.Context) {
	var req dto.EmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	empresa := &model.Empresa{
		RazaoSocial:  req.RazaoSocial,
		NomeFantasia: req.NomeFantasia,
		CNPJ:         docfiscal.FormatCNPJ(req.CNPJ),
		TextoPadrao:  req.TextoPadrao,
		Ativa:        true,
	}
	if err := h.empresas.Create(c.Request.Context(), empresa); err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, empresaToResponse(empresa))
}

func (h *CadastroHandler) ListarEmpresas(c *gin.Context) {
	empresas, err := h.empresas.List(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	resp := make([]dto.EmpresaResponse, len(empresas))
	for i := range empresas {
		resp[i] = empresaToResponse(&empresas[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastroHandler) AtualizarEmpresa(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.EmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	empresa, err := h.empresas.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Empresa não encontrada"))
		return
	}
	empresa.RazaoSocial = req.RazaoSocial
	empresa.NomeFantasia = req.NomeFantasia
	empresa.CNPJ = docfiscal.FormatCNPJ(req.CNPJ)
	empresa.TextoPadrao = req.TextoPadrao
	if err := h.empresas.Update(c.Request.Context(), empresa); err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, empresaToResponse(empresa))
}

func (h *CadastroHandler) RemoverEmpresa(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.empresas.SoftDelete(c.Request.Context(), id); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Colaboradores ─────────────────────────────────────────────────────────────

func (h *CadastroHandler) CriarColaborador(c *gin.Context) {
	var req dto.ColaboradorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	colaborador := &model.Colaborador{
		Nome:          req.Nome,
		CPF:           docfiscal.FormatCPF(req.CPF),
		ValorPassagem: req.ValorPassagem,
		ValorDiaria:   req.ValorDiaria,
		ValorDobra:    req.ValorDobra,
		Ativo:         true,
	}
	if err := h.colaboradores.Create(c.Request.Context(), colaborador); err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, colaboradorToResponse(colaborador))
}

func (h *CadastroHandler) ListarColaboradores(c *gin.Context) {
	colaboradores, err := h.colaboradores.List(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	resp := make([]dto.ColaboradorResponse, len(colaboradores))
	for i := range colaboradores {
		resp[i] = colaboradorToResponse(&colaboradores[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastroHandler) AtualizarColaborador(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ColaboradorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	colaborador, err := h.colaboradores.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Colaborador não encontrado"))
		return
	}
	colaborador.Nome = req.Nome
	colaborador.CPF = docfiscal.FormatCPF(req.CPF)
	colaborador.ValorPassagem = req.ValorPassagem
	colaborador.ValorDiaria = req.ValorDiaria
	colaborador.ValorDobra = req.ValorDobra
	if err := h.colaboradores.Update(c.Request.Context(), colaborador); err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, colaboradorToResponse(colaborador))
}

func (h *CadastroHandler) RemoverColaborador(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.colaboradores.SoftDelete(c.Request.Context(), id); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Prestadores ───────────────────────────────────────────────────────────────

func (h *CadastroHandler) CriarPrestador(c *gin.Context) {
	var req dto.PrestadorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !docfiscal.ValidDocumento(req.CPFCNPJ) {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("CPF/CNPJ inválido"))
		return
	}
	prestador := &model.Prestador{
		Nome:    req.Nome,
		CPFCNPJ: docfiscal.FormatDocumento(req.CPFCNPJ),
		Tipo:    req.Tipo,
		Ativo:   true,
	}
	if err := h.prestadores.Create(c.Request.Context(), prestador); err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, prestadorToResponse(prestador))
}

func (h *CadastroHandler) ListarPrestadores(c *gin.Context) {
	prestadores, err := h.prestadores.List(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	resp := make([]dto.PrestadorResponse, len(prestadores))
	for i := range prestadores {
		resp[i] = prestadorToResponse(&prestadores[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastroHandler) AtualizarPrestador(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.PrestadorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !docfiscal.ValidDocumento(req.CPFCNPJ) {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("CPF/CNPJ inválido"))
		return
	}
	prestador, err := h.prestadores.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Prestador não encontrado"))
		return
	}
	prestador.Nome = req.Nome
	prestador.CPFCNPJ = docfiscal.FormatDocumento(req.CPFCNPJ)
	prestador.Tipo = req.Tipo
	if err := h.prestadores.Update(c.Request.Context(), prestador); err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, prestadorToResponse(prestador))
}

func (h *CadastroHandler) RemoverPrestador(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.prestadores.SoftDelete(c.Request.Context(), id); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Fornecedores ──────────────────────────────────────────────────────────────

func (h *CadastroHandler) CriarFornecedor(c *gin.Context) {
	var req dto.FornecedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	fornecedor := &model.Fornecedor{
		Nome:  req.Nome,
		CNPJ:  docfiscal.FormatCNPJ(req.CNPJ),
		Ativo: true,
	}
	if err := h.fornecedores.Create(c.Request.Context(), fornecedor); err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, fornecedorToResponse(fornecedor))
}

func (h *CadastroHandler) ListarFornecedores(c *gin.Context) {
	fornecedores, err := h.fornecedores.List(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	resp := make([]dto.FornecedorResponse, len(fornecedores))
	for i := range fornecedores {
		resp[i] = fornecedorToResponse(&fornecedores[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastroHandler) AtualizarFornecedor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.FornecedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	fornecedor, err := h.fornecedores.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Fornecedor não encontrado"))
		return
	}
	fornecedor.Nome = req.Nome
	fornecedor.CNPJ = docfiscal.FormatCNPJ(req.CNPJ)
	if err := h.fornecedores.Update(c.Request.Context(), fornecedor); err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, fornecedorToResponse(fornecedor))
}

func (h *CadastroHandler) RemoverFornecedor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.fornecedores.SoftDelete(c.Request.Context(), id); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Mappers ───────────────────────────────────────────────────────────────────

func empresaToResponse(e *model.Empresa) dto.EmpresaResponse {
	return dto.EmpresaResponse{
		ID:           e.ID.String(),
		RazaoSocial:  e.RazaoSocial,
		NomeFantasia: e.NomeFantasia,
		CNPJ:         e.CNPJ,
		TextoPadrao:  e.TextoPadrao,
		Ativa:        e.Ativa,
	}
}

func colaboradorToResponse(c *model.Colaborador) dto.ColaboradorResponse {
	return dto.ColaboradorResponse{
		ID:            c.ID.String(),
		Nome:          c.Nome,
		CPF:           c.CPF,
		ValorPassagem: c.ValorPassagem,
		ValorDiaria:   c.ValorDiaria,
		ValorDobra:    c.ValorDobra,
		Ativo:         c.Ativo,
	}
}

func prestadorToResponse(p *model.Prestador) dto.PrestadorResponse {
	return dto.PrestadorResponse{
		ID:      p.ID.String(),
		Nome:    p.Nome,
		CPFCNPJ: p.CPFCNPJ,
		Tipo:    p.Tipo,
		Ativo:   p.Ativo,
	}
}

func fornecedorToResponse(f *model.Fornecedor) dto.FornecedorResponse {
	return dto.FornecedorResponse{
		ID:    f.ID.String(),
		Nome:  f.Nome,
		CNPJ:  f.CNPJ,
		Ativo: f.Ativo,
	}
}
