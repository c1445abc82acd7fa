package models

import "time"

// Order belongs to a Customer and links to Products through the
// order_products join table (see OrderProduct).
type Order struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderDate  time.Time `json:"order_date"`
	CustomerID uint      `json:"customer_id" gorm:"index;not null"`

	Products []Product `json:"products,omitempty" gorm:"many2many:order_products"`
}

// OrderProduct is the join row for the Order<->Product many-to-many link.
// The composite primary key is what makes concurrent duplicate adds fail at
// the storage layer instead of depending on a check-then-insert.
type OrderProduct struct {
	OrderID   uint `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
}
