// Package query provides the read-only projections: paginated listings and
// lookups by id. Pages are 1-indexed and a page past the end of the data is
// an empty result, not an error.
package query

import (
	"context"

	"gorm.io/gorm"

	"github.com/ThorntonMercy/ecommerce-api/internal/models"
	"github.com/ThorntonMercy/ecommerce-api/internal/store"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Service struct {
	db    *gorm.DB
	store *store.Store
}

func New(db *gorm.DB) *Service {
	return &Service{db: db, store: store.New(db)}
}

func (s *Service) ListCustomers(ctx context.Context, page, pageSize int) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := s.paginate(ctx, page, pageSize).Find(&customers).Error
	return customers, err
}

func (s *Service) ListProducts(ctx context.Context, page, pageSize int) ([]models.Product, error) {
	products := []models.Product{}
	err := s.paginate(ctx, page, pageSize).Find(&products).Error
	return products, err
}

func (s *Service) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	return s.store.GetCustomer(ctx, id)
}

func (s *Service) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.store.GetProduct(ctx, id)
}

func (s *Service) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.store.GetOrder(ctx, id)
}

// paginate clamps the page parameters and orders by id so pages are stable
// for a given snapshot of the table.
func (s *Service) paginate(ctx context.Context, page, pageSize int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return s.db.WithContext(ctx).
		Order("id").
		Limit(pageSize).
		Offset((page - 1) * pageSize)
}
