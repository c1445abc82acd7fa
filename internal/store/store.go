// Package store owns all persisted state: customers, products, orders and
// the order_products join rows. Every mutation runs inside a transaction on
// the shared *gorm.DB; nothing is cached in process, so the database stays
// the single source of truth under concurrent writers.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
