package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto is a catalog item. Imagens are fully owned: replaced as a set and
// deleted with the product. Line items referencing the product are also
// removed when it is deleted.
type Produto struct {
	ID           uint            `gorm:"primaryKey"`
	Nome         string          `gorm:"index;not null;size:255"`
	Descricao    *string         `gorm:"size:255"`
	Preco        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CodBarras    string          `gorm:"uniqueIndex;not null;size:13"`
	Secao        *string         `gorm:"size:50"`
	Estoque      int             `gorm:"not null;default:0"`
	DataValidade *time.Time      `gorm:"type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Imagens []ProdutoImagem `gorm:"foreignKey:ProdutoID;constraint:OnDelete:CASCADE"`
	// Itens exists only to declare the cascade from produtos to pedido_produtos.
	Itens []PedidoProduto `gorm:"foreignKey:ProdutoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Produto) TableName() string { return "produtos" }

// ProdutoImagem is an image URL owned by a product.
type ProdutoImagem struct {
	ID        uint   `gorm:"primaryKey"`
	ProdutoID uint   `gorm:"index;not null"`
	URL       string `gorm:"not null"`
}

func (ProdutoImagem) TableName() string { return "produto_imagens" }
