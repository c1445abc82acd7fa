package dto

import "github.com/ThorntonMercy/ecommerce-api/internal/models"

type CustomersOutput struct {
	Body struct {
		Customers []models.Customer `json:"customers"`
	}
}

type CustomerOutput struct {
	Body models.Customer
}

type CustomerCreateBody struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email" format:"email"`
}

type CustomerCreateInput struct {
	Body CustomerCreateBody
}

// CustomerUpdateBody carries the recognized fields only; anything absent
// from the payload stays nil and is left untouched.
type CustomerUpdateBody struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Email   *string `json:"email,omitempty" format:"email"`
}

type CustomerUpdateInput struct {
	Body CustomerUpdateBody
}
