package handler

import (
	"net/http"

	"github.com/Henrique42/mercado-api/internal/dto"
	"github.com/Henrique42/mercado-api/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Criar POST /api/v1/clientes
func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	data, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success("Cliente criado com sucesso.", data))
}

// Obter GET /api/v1/clientes/:id
func (h *ClientesHandler) Obter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	data, err := h.svc.Obter(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Cliente retornado com sucesso.", data))
}

// Listar GET /api/v1/clientes
func (h *ClientesHandler) Listar(c *gin.Context) {
	var q dto.ListQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	data, err := h.svc.Listar(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Lista com todos os clientes obtida com sucesso.", data))
}

// Atualizar PATCH /api/v1/clientes/:id
func (h *ClientesHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	data, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.Success("Cliente atualizado com sucesso.", data))
}

// Remover DELETE /api/v1/clientes/:id
func (h *ClientesHandler) Remover(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.Success("Cliente removido com sucesso.", dto.DeleteData{ID: id}))
}
