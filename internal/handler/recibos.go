package handler

import (
	"net/http"

	"github.com/alencarrgabriel/GeradorRecibos/internal/apierror"
	"github.com/alencarrgabriel/GeradorRecibos/internal/dto"
	"github.com/alencarrgabriel/GeradorRecibos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReciboHandler struct{ svc service.ReciboService }

func NewReciboHandler(svc service.ReciboService) *ReciboHandler { return &ReciboHandler{svc: svc} }

// Emitir godoc
// @Summary Emite um recibo e gera o PDF
// @Tags recibos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.EmitirReciboRequest true "Dados do recibo"
// @Success 201 {object} dto.ReciboResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.APIError
// @Router /v1/recibos [post]
func (h *ReciboHandler) Emitir(c *gin.Context) {
	var req dto.EmitirReciboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Emitir(c.Request.Context(), atorFromContext(c), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar returns issued receipts, newest first.
// ?incluir_cancelados=true also shows cancelled ones.
func (h *ReciboHandler) Listar(c *gin.Context) {
	incluirCancelados := c.Query("incluir_cancelados") == "true"
	resp, err := h.svc.Listar(c.Request.Context(), incluirCancelados)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter returns a single receipt by ID.
func (h *ReciboHandler) Obter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BaixarPDF streams the stored PDF artifact of a receipt.
func (h *ReciboHandler) BaixarPDF(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondErro(c, err)
		return
	}
	if resp.CaminhoPDF == "" {
		c.JSON(http.StatusNotFound, apierror.New("PDF não disponível para este recibo"))
		return
	}
	c.FileAttachment(resp.CaminhoPDF, "recibo_"+resp.ID+".pdf")
}

// Cancelar godoc
// @Summary Cancela um recibo emitido
// @Tags recibos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do recibo"
// @Success 204
// @Failure 403 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/recibos/{id} [delete]
func (h *ReciboHandler) Cancelar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Cancelar(c.Request.Context(), atorFromContext(c), id); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
