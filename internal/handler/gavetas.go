package handler

import (
	"net/http"

	"github.com/alencarrgabriel/GeradorRecibos/internal/dto"
	"github.com/alencarrgabriel/GeradorRecibos/internal/service"

	"github.com/gin-gonic/gin"
)

type GavetaHandler struct {
	gavetas    service.GavetaService
	movimentos service.MovimentacaoService
}

func NewGavetaHandler(gavetas service.GavetaService, movimentos service.MovimentacaoService) *GavetaHandler {
	return &GavetaHandler{gavetas: gavetas, movimentos: movimentos}
}

// Criar godoc
// @Summary Cadastra uma nova gaveta
// @Tags gavetas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarGavetaRequest true "Dados da gaveta"
// @Success 201 {object} dto.GavetaResponse
// @Failure 403 {object} apierror.APIError
// @Router /v1/gavetas [post]
func (h *GavetaHandler) Criar(c *gin.Context) {
	var req dto.CriarGavetaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.gavetas.CriarGaveta(c.Request.Context(), atorFromContext(c), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar returns every registered drawer.
func (h *GavetaHandler) Listar(c *gin.Context) {
	resp, err := h.gavetas.ListarGavetas(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Abrir godoc
// @Summary Abre uma sessão de gaveta para um responsável
// @Tags gavetas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da gaveta"
// @Param body body dto.AbrirGavetaRequest true "Dados de abertura"
// @Success 201 {object} dto.SessaoResponse
// @Failure 403 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/gavetas/{id}/abrir [post]
func (h *GavetaHandler) Abrir(c *gin.Context) {
	gavetaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AbrirGavetaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.gavetas.Abrir(c.Request.Context(), atorFromContext(c), gavetaID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Fechar godoc
// @Summary Fecha a sessão com o valor contado na conferência
// @Tags gavetas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da sessão"
// @Param body body dto.FecharGavetaRequest true "Valor contado e justificativa"
// @Success 200 {object} dto.FechamentoResponse
// @Failure 403 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Failure 422 {object} apierror.APIError
// @Router /v1/sessoes/{id}/fechar [post]
func (h *GavetaHandler) Fechar(c *gin.Context) {
	sessaoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.FecharGavetaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.gavetas.Fechar(c.Request.Context(), atorFromContext(c), sessaoID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumo returns the close preview for an open session.
func (h *GavetaHandler) Resumo(c *gin.Context) {
	sessaoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.gavetas.Resumo(c.Request.Context(), atorFromContext(c), sessaoID)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Saldo returns the live balance of the drawer's open session.
func (h *GavetaHandler) Saldo(c *gin.Context) {
	gavetaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.gavetas.ConsultarSaldo(c.Request.Context(), atorFromContext(c), gavetaID)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarSessoes returns session history, newest first.
func (h *GavetaHandler) ListarSessoes(c *gin.Context) {
	resp, err := h.gavetas.ListarSessoes(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SessoesDaGaveta returns the session history of a single drawer.
func (h *GavetaHandler) SessoesDaGaveta(c *gin.Context) {
	gavetaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.gavetas.ListarSessoesPorGaveta(c.Request.Context(), gavetaID)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterSessao returns one session by ID.
func (h *GavetaHandler) ObterSessao(c *gin.Context) {
	sessaoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.gavetas.SessaoPorID(c.Request.Context(), sessaoID)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarEntrada godoc
// @Summary Registra uma entrada de dinheiro na sessão
// @Tags movimentacoes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da sessão"
// @Param body body dto.MovimentacaoRequest true "Dados da movimentação"
// @Success 201 {object} dto.MovimentacaoResponse
// @Failure 403 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/sessoes/{id}/entradas [post]
func (h *GavetaHandler) RegistrarEntrada(c *gin.Context) {
	sessaoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.MovimentacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.movimentos.RegistrarEntrada(c.Request.Context(), atorFromContext(c), sessaoID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarSaida godoc
// @Summary Registra uma saída de dinheiro na sessão
// @Tags movimentacoes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da sessão"
// @Param body body dto.MovimentacaoRequest true "Dados da movimentação"
// @Success 201 {object} dto.MovimentacaoResponse
// @Failure 403 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/sessoes/{id}/saidas [post]
func (h *GavetaHandler) RegistrarSaida(c *gin.Context) {
	sessaoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.MovimentacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.movimentos.RegistrarSaida(c.Request.Context(), atorFromContext(c), sessaoID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarMovimentacoes returns the session ledger in append order.
// ?sem_cancelados=true hides movements tied to cancelled receipts.
func (h *GavetaHandler) ListarMovimentacoes(c *gin.Context) {
	sessaoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	somenteNaoCanceladas := c.Query("sem_cancelados") == "true"
	resp, err := h.movimentos.ListarPorSessao(c.Request.Context(), atorFromContext(c), sessaoID, somenteNaoCanceladas)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
