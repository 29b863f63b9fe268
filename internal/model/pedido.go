package model

import (
	"time"
)

// StatusPedido is persisted as a plain string. Any status may follow any
// other; the source system never enforced a transition graph and callers
// depend on that.
type StatusPedido string

const (
	StatusPendente    StatusPedido = "pendente"
	StatusProcessando StatusPedido = "processando"
	StatusEnviado     StatusPedido = "enviado"
	StatusEntregue    StatusPedido = "entregue"
	StatusCancelado   StatusPedido = "cancelado"
)

// Pedido is an order placed by a cliente. DPedido is assigned by the server
// at creation and never updated.
type Pedido struct {
	ID            uint         `gorm:"primaryKey"`
	ClienteID     uint         `gorm:"index;not null"`
	DPedido       time.Time    `gorm:"column:d_pedido;autoCreateTime"`
	Status        StatusPedido `gorm:"type:varchar(20);not null;default:'pendente'"`
	PeriodoInicio *time.Time   `gorm:"type:date"`
	PeriodoFim    *time.Time   `gorm:"type:date"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Produtos []PedidoProduto `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
}

func (Pedido) TableName() string { return "pedidos" }

// PedidoProduto is a line item: a product reference plus quantity, owned by
// its pedido.
type PedidoProduto struct {
	ID         uint `gorm:"primaryKey"`
	PedidoID   uint `gorm:"index;not null"`
	ProdutoID  uint `gorm:"index;not null"`
	Quantidade int  `gorm:"not null;default:1"`
}

func (PedidoProduto) TableName() string { return "pedido_produtos" }
