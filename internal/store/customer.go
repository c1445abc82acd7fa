package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ThorntonMercy/ecommerce-api/internal/models"
)

// CustomerUpdate is a typed partial update: nil fields are left untouched.
type CustomerUpdate struct {
	Name    *string
	Address *string
	Email   *string
}

func (s *Store) CreateCustomer(ctx context.Context, name, address, email string) (*models.Customer, error) {
	customer := models.Customer{
		Name:    name,
		Address: address,
		Email:   email,
	}

	err := s.db.WithContext(ctx).Create(&customer).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (s *Store) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer

	err := s.db.WithContext(ctx).First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, id uint, update CustomerUpdate) (*models.Customer, error) {
	var customer models.Customer

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		changes := map[string]any{}
		if update.Name != nil {
			changes["name"] = *update.Name
		}
		if update.Address != nil {
			changes["address"] = *update.Address
		}
		if update.Email != nil {
			changes["email"] = *update.Email
		}
		if len(changes) == 0 {
			return nil
		}

		if err := tx.Model(&customer).Updates(changes).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return err
		}

		return tx.First(&customer, id).Error
	})
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

// DeleteCustomer removes the customer together with its orders and their
// join rows, all in one transaction.
func (s *Store) DeleteCustomer(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		var orderIDs []uint
		if err := tx.Model(&models.Order{}).Where("customer_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}

		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.OrderProduct{}).Error; err != nil {
				return err
			}
			if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&customer).Error
	})
}
