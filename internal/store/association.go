package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ThorntonMercy/ecommerce-api/internal/models"
)

// AddProductToOrder links a product to an order. The existence checks only
// decide which not-found error to report; duplicate detection is left to the
// composite primary key on order_products, so two concurrent adds of the
// same pair cannot both insert — the loser gets ErrAssociationExists.
func (s *Store) AddProductToOrder(ctx context.Context, orderID, productID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Order{}, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if err := tx.First(&models.Product{}, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		err := tx.Create(&models.OrderProduct{OrderID: orderID, ProductID: productID}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAssociationExists
		}
		return err
	})
}

// RemoveProductFromOrder unlinks a product from an order. An absent pair is
// reported, never silently ignored.
func (s *Store) RemoveProductFromOrder(ctx context.Context, orderID, productID uint) error {
	result := s.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&models.OrderProduct{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssociationNotFound
	}
	return nil
}

// ProductsForOrder lists the products linked to an order, in storage order.
func (s *Store) ProductsForOrder(ctx context.Context, orderID uint) ([]models.Product, error) {
	var order models.Order

	err := s.db.WithContext(ctx).First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := s.db.WithContext(ctx).Model(&order).Association("Products").Find(&products); err != nil {
		return nil, err
	}

	return products, nil
}

// OrdersForCustomer lists a customer's orders. A customer without orders
// yields an empty slice; an unknown customer is an error.
func (s *Store) OrdersForCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	if err := customerExists(s.db.WithContext(ctx), customerID); err != nil {
		return nil, err
	}

	orders := []models.Order{}
	err := s.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}
