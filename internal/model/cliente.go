package model

import (
	"time"
)

// Cliente represents a customer. Ativo is a plain flag with no cascading
// behavior; deactivating a client does not touch its pedidos.
type Cliente struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"index;not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	CPF       string `gorm:"uniqueIndex;not null;size:14"`
	Ativo     bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Pedidos are removed by the database when the cliente row is deleted.
	Pedidos []Pedido `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides GORM's default singular → plural logic for Portuguese names.
func (Cliente) TableName() string { return "clientes" }
