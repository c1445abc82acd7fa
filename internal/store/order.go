package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ThorntonMercy/ecommerce-api/internal/models"
)

// OrderUpdate is a typed partial update: nil fields are left untouched.
type OrderUpdate struct {
	OrderDate  *time.Time
	CustomerID *uint
}

// CreateOrder creates an order for an existing customer. A nil orderDate
// defaults to the current time.
func (s *Store) CreateOrder(ctx context.Context, customerID uint, orderDate *time.Time) (*models.Order, error) {
	order := models.Order{
		CustomerID: customerID,
		OrderDate:  time.Now().UTC(),
	}
	if orderDate != nil {
		order.OrderDate = *orderDate
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := customerExists(tx, customerID); err != nil {
			return err
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (s *Store) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order

	err := s.db.WithContext(ctx).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (s *Store) UpdateOrder(ctx context.Context, id uint, update OrderUpdate) (*models.Order, error) {
	var order models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		changes := map[string]any{}
		if update.OrderDate != nil {
			changes["order_date"] = *update.OrderDate
		}
		if update.CustomerID != nil {
			if err := customerExists(tx, *update.CustomerID); err != nil {
				return err
			}
			changes["customer_id"] = *update.CustomerID
		}
		if len(changes) == 0 {
			return nil
		}

		if err := tx.Model(&order).Updates(changes).Error; err != nil {
			return err
		}

		return tx.First(&order, id).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// DeleteOrder removes the order and all of its join rows in one transaction,
// so a concurrent product listing never sees associations of a dead order.
func (s *Store) DeleteOrder(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if err := tx.Where("order_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}

		return tx.Delete(&order).Error
	})
}

func customerExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
