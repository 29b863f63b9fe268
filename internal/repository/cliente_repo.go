package repository

import (
	"context"
	"strings"

	"github.com/Henrique42/mercado-api/internal/dto"
	"github.com/Henrique42/mercado-api/internal/model"

	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for clientes.
type ClienteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Cliente) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Cliente, error)
	List(ctx context.Context, q dto.ListQuery) ([]model.Cliente, error)
	UpdateCampos(ctx context.Context, tx *gorm.DB, id uint, campos map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) DB() *gorm.DB { return r.db }

func (r *clienteRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Cliente) error {
	return conn(r.db, tx).WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*model.Cliente, error) {
	var c model.Cliente
	if err := conn(r.db, tx).WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) List(ctx context.Context, q dto.ListQuery) ([]model.Cliente, error) {
	var clientes []model.Cliente
	query := r.db.WithContext(ctx).Model(&model.Cliente{})
	if q.Search != "" {
		// lower(...) LIKE instead of ILIKE so the same query runs on every driver
		query = query.Where("lower(nome) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}
	err := query.Order("id ASC").Offset(q.Skip).Limit(q.Limit).Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) UpdateCampos(ctx context.Context, tx *gorm.DB, id uint, campos map[string]any) error {
	return conn(r.db, tx).WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).Updates(campos).Error
}

func (r *clienteRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&model.Cliente{}, id).Error
}
