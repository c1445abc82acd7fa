package models

// Customer owns zero or more Orders. Email is unique across all customers;
// the unique index makes the store reject duplicates rather than relying on
// a lookup before the insert.
type Customer struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:100"`
	Address string `json:"address" gorm:"size:200"`
	Email   string `json:"email" gorm:"size:100;uniqueIndex"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}
