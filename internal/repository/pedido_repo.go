package repository

import (
	"context"

	"github.com/Henrique42/mercado-api/internal/dto"
	"github.com/Henrique42/mercado-api/internal/model"

	"gorm.io/gorm"
)

// PedidoRepository defines the data access contract for pedidos and their
// owned line items.
type PedidoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Pedido, error)
	List(ctx context.Context, q dto.PedidoListQuery) ([]model.Pedido, error)
	UpdateCampos(ctx context.Context, tx *gorm.DB, id uint, campos map[string]any) error

	// ReplaceItens deletes every line item of the pedido and inserts the new
	// set. Must run inside the caller's transaction.
	ReplaceItens(ctx context.Context, tx *gorm.DB, pedidoID uint, itens []model.PedidoProduto) error

	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	return conn(r.db, tx).WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Pedido, error) {
	var p model.Pedido
	if err := conn(r.db, tx).WithContext(ctx).Preload("Produtos").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) List(ctx context.Context, q dto.PedidoListQuery) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	query := r.db.WithContext(ctx).Model(&model.Pedido{}).Preload("Produtos")
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	err := query.Order("id ASC").Offset(q.Skip).Limit(q.Limit).Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) UpdateCampos(ctx context.Context, tx *gorm.DB, id uint, campos map[string]any) error {
	return conn(r.db, tx).WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Updates(campos).Error
}

func (r *pedidoRepo) ReplaceItens(ctx context.Context, tx *gorm.DB, pedidoID uint, itens []model.PedidoProduto) error {
	db := conn(r.db, tx).WithContext(ctx)
	if err := db.Where("pedido_id = ?", pedidoID).Delete(&model.PedidoProduto{}).Error; err != nil {
		return err
	}
	if len(itens) == 0 {
		return nil
	}
	for i := range itens {
		itens[i].PedidoID = pedidoID
	}
	return db.Create(&itens).Error
}

func (r *pedidoRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&model.Pedido{}, id).Error
}
