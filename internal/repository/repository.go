// Package repository holds the data access layer. Services depend on the
// interfaces, not on the concrete GORM implementations, enabling unit
// testing against alternative stores.
//
// Methods that may participate in a service-managed transaction take a
// tx *gorm.DB; passing nil falls back to the pooled handle.
package repository

import "gorm.io/gorm"

func conn(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}
