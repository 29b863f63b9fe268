package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemPedidoRequest struct {
	ProdutoID  uint `json:"produto_id" validate:"required"`
	Quantidade int  `json:"quantidade" validate:"required,gt=0"`
}

type CriarPedidoRequest struct {
	ClienteID     uint                `json:"cliente_id" validate:"required"`
	Status        *string             `json:"status"     validate:"omitempty,oneof=pendente processando enviado entregue cancelado"`
	PeriodoInicio *Date               `json:"periodo_inicio"`
	PeriodoFim    *Date               `json:"periodo_fim"`
	Produtos      []ItemPedidoRequest `json:"produtos"   validate:"dive"`
}

// AtualizarPedidoRequest is a partial update. ClienteID and d_pedido are
// immutable. Produtos follows replace semantics: nil leaves the line items
// untouched, an empty slice clears them.
type AtualizarPedidoRequest struct {
	Status        *string              `json:"status"         validate:"omitempty,oneof=pendente processando enviado entregue cancelado"`
	PeriodoInicio *Date                `json:"periodo_inicio"`
	PeriodoFim    *Date                `json:"periodo_fim"`
	Produtos      *[]ItemPedidoRequest `json:"produtos"       validate:"omitempty,dive"`
}

func (r AtualizarPedidoRequest) Vazio() bool {
	return r.Status == nil && r.PeriodoInicio == nil && r.PeriodoFim == nil &&
		r.Produtos == nil
}

// PedidoListQuery paginates pedidos; pedidos have no nome, so the optional
// filter is by status instead.
type PedidoListQuery struct {
	Skip   int    `form:"skip,default=0"   validate:"min=0"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
	Status string `form:"status"           validate:"omitempty,oneof=pendente processando enviado entregue cancelado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemPedidoData struct {
	ID         uint `json:"id"`
	ProdutoID  uint `json:"produto_id"`
	Quantidade int  `json:"quantidade"`
}

type PedidoData struct {
	ID            uint             `json:"id"`
	ClienteID     uint             `json:"cliente_id"`
	DPedido       time.Time        `json:"d_pedido"`
	Status        string           `json:"status"`
	PeriodoInicio *Date            `json:"periodo_inicio"`
	PeriodoFim    *Date            `json:"periodo_fim"`
	Produtos      []ItemPedidoData `json:"produtos"`
}
