// Package infra holds connections to external resources.
package infra

import (
	"fmt"

	"github.com/Henrique42/mercado-api/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create / update all tables.
//
// TranslateError is on so constraint violations surface as
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated and the error
// classifier does not need driver-specific SQLSTATE checks.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema, including the ON DELETE CASCADE
// constraints declared on the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Cliente{},
		&model.Produto{},
		&model.ProdutoImagem{},
		&model.Pedido{},
		&model.PedidoProduto{},
	)
}
