package repository

import (
	"context"
	"strings"

	"github.com/Henrique42/mercado-api/internal/dto"
	"github.com/Henrique42/mercado-api/internal/model"

	"gorm.io/gorm"
)

// ProdutoRepository defines the data access contract for produtos and their
// owned imagens.
type ProdutoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Produto) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Produto, error)
	List(ctx context.Context, q dto.ListQuery) ([]model.Produto, error)
	UpdateCampos(ctx context.Context, tx *gorm.DB, id uint, campos map[string]any) error

	// ReplaceImagens deletes every image owned by the product and inserts the
	// new set. Must run inside the caller's transaction.
	ReplaceImagens(ctx context.Context, tx *gorm.DB, produtoID uint, imagens []model.ProdutoImagem) error

	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) DB() *gorm.DB { return r.db }

func (r *produtoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Produto) error {
	// Imagens attached to p are inserted with it, FK populated by GORM.
	return conn(r.db, tx).WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Produto, error) {
	var p model.Produto
	if err := conn(r.db, tx).WithContext(ctx).Preload("Imagens").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) List(ctx context.Context, q dto.ListQuery) ([]model.Produto, error) {
	var produtos []model.Produto
	query := r.db.WithContext(ctx).Model(&model.Produto{}).Preload("Imagens")
	if q.Search != "" {
		query = query.Where("lower(nome) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}
	err := query.Order("id ASC").Offset(q.Skip).Limit(q.Limit).Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) UpdateCampos(ctx context.Context, tx *gorm.DB, id uint, campos map[string]any) error {
	return conn(r.db, tx).WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id).Updates(campos).Error
}

func (r *produtoRepo) ReplaceImagens(ctx context.Context, tx *gorm.DB, produtoID uint, imagens []model.ProdutoImagem) error {
	db := conn(r.db, tx).WithContext(ctx)
	if err := db.Where("produto_id = ?", produtoID).Delete(&model.ProdutoImagem{}).Error; err != nil {
		return err
	}
	if len(imagens) == 0 {
		return nil
	}
	for i := range imagens {
		imagens[i].ProdutoID = produtoID
	}
	return db.Create(&imagens).Error
}

func (r *produtoRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	// Imagens and pedido_produtos rows go with it via ON DELETE CASCADE.
	return conn(r.db, tx).WithContext(ctx).Delete(&model.Produto{}, id).Error
}
