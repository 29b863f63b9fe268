// Package service implements the business operations layer: DTOs in, DTOs
// out, typed failures on error. Every write runs inside a single unit of
// work; on any failure the transaction rolls back and the store is left
// unchanged.
package service

import (
	"context"
	"errors"

	"github.com/Henrique42/mercado-api/internal/apierror"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// normalizar classifies any error escaping a repository call. Typed failures
// pass through untouched; raw store errors are mapped to the closed taxonomy.
func normalizar(err error, entidade string) error {
	var ae *apierror.Error
	if errors.As(err, &ae) {
		return ae
	}
	return apierror.FromDB(err, entidade)
}
