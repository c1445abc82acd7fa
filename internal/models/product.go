package models

type Product struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"size:100"`
	Price float64 `json:"price"`
}
