package dto

import "github.com/ThorntonMercy/ecommerce-api/internal/models"

type ProductsOutput struct {
	Body struct {
		Products []models.Product `json:"products"`
	}
}

type ProductOutput struct {
	Body models.Product
}

type ProductCreateBody struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ProductCreateInput struct {
	Body ProductCreateBody
}

type ProductUpdateBody struct {
	Name  *string  `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty"`
}

type ProductUpdateInput struct {
	Body ProductUpdateBody
}
