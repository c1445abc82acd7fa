package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ThorntonMercy/ecommerce-api/internal/models"
)

// ProductUpdate is a typed partial update: nil fields are left untouched.
type ProductUpdate struct {
	Name  *string
	Price *float64
}

func (s *Store) CreateProduct(ctx context.Context, name string, price float64) (*models.Product, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	product := models.Product{
		Name:  name,
		Price: price,
	}

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *Store) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product

	err := s.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id uint, update ProductUpdate) (*models.Product, error) {
	if update.Price != nil && *update.Price < 0 {
		return nil, ErrInvalidPrice
	}

	var product models.Product

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		changes := map[string]any{}
		if update.Name != nil {
			changes["name"] = *update.Name
		}
		if update.Price != nil {
			changes["price"] = *update.Price
		}
		if len(changes) == 0 {
			return nil
		}

		if err := tx.Model(&product).Updates(changes).Error; err != nil {
			return err
		}

		return tx.First(&product, id).Error
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// DeleteProduct removes the product and strips it from every order that
// references it.
func (s *Store) DeleteProduct(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if err := tx.Where("product_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}

		return tx.Delete(&product).Error
	})
}
