package dto

import (
	"time"

	"github.com/ThorntonMercy/ecommerce-api/internal/models"
)

type OrdersOutput struct {
	Body struct {
		Orders []models.Order `json:"orders"`
	}
}

type OrderOutput struct {
	Body models.Order
}

type OrderCreateBody struct {
	CustomerID uint       `json:"customer_id"`
	OrderDate  *time.Time `json:"order_date,omitempty"`
}

type OrderCreateInput struct {
	Body OrderCreateBody
}

type OrderUpdateBody struct {
	CustomerID *uint      `json:"customer_id,omitempty"`
	OrderDate  *time.Time `json:"order_date,omitempty"`
}

type OrderUpdateInput struct {
	Body OrderUpdateBody
}

// MessageOutput is the payload for association add/remove confirmations.
type MessageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}
