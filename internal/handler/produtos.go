package handler

import (
	"net/http"

	"github.com/Henrique42/mercado-api/internal/dto"
	"github.com/Henrique42/mercado-api/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

// Criar POST /api/v1/produtos
func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	data, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success("Produto criado com sucesso.", data))
}

// Obter GET /api/v1/produtos/:id
func (h *ProdutosHandler) Obter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	data, err := h.svc.Obter(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Produto retornado com sucesso.", data))
}

// Listar GET /api/v1/produtos
func (h *ProdutosHandler) Listar(c *gin.Context) {
	var q dto.ListQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	data, err := h.svc.Listar(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Lista com todos os produtos obtida com sucesso.", data))
}

// Atualizar PATCH /api/v1/produtos/:id
func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	data, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.Success("Produto atualizado com sucesso.", data))
}

// Remover DELETE /api/v1/produtos/:id
func (h *ProdutosHandler) Remover(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.Success("Produto removido com sucesso.", dto.DeleteData{ID: id}))
}
