package handler

import (
	"net/http"

	"github.com/Henrique42/mercado-api/internal/dto"
	"github.com/Henrique42/mercado-api/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Criar POST /api/v1/pedidos
func (h *PedidosHandler) Criar(c *gin.Context) {
	var req dto.CriarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	data, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success("Pedido criado com sucesso.", data))
}

// Obter GET /api/v1/pedidos/:id
func (h *PedidosHandler) Obter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	data, err := h.svc.Obter(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Pedido retornado com sucesso.", data))
}

// Listar GET /api/v1/pedidos
func (h *PedidosHandler) Listar(c *gin.Context) {
	var q dto.PedidoListQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	data, err := h.svc.Listar(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Lista de pedidos obtida com sucesso.", data))
}

// Atualizar PATCH /api/v1/pedidos/:id
func (h *PedidosHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	data, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.Success("Pedido atualizado com sucesso.", data))
}

// Remover DELETE /api/v1/pedidos/:id
func (h *PedidosHandler) Remover(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.Success("Pedido removido com sucesso.", dto.DeleteData{ID: id}))
}
