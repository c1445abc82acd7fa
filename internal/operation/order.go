package operation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"

	"github.com/ThorntonMercy/ecommerce-api/internal/dto"
	"github.com/ThorntonMercy/ecommerce-api/internal/query"
	"github.com/ThorntonMercy/ecommerce-api/internal/rabbitmq"
	"github.com/ThorntonMercy/ecommerce-api/internal/store"
)

// Get a single order by ID
func GetOrder(ctx context.Context, qs *query.Service, id uint) (*dto.OrderOutput, error) {
	order, err := qs.GetOrder(ctx, id)
	if err != nil {
		return nil, asHTTPError(err)
	}

	return &dto.OrderOutput{Body: *order}, nil
}

// Create a new order for an existing customer
func CreateOrder(ctx context.Context, st *store.Store, ch *amqp.Channel, input *dto.OrderCreateInput) (*dto.OrderOutput, error) {
	order, err := st.CreateOrder(ctx, input.Body.CustomerID, input.Body.OrderDate)
	if err != nil {
		return nil, asHTTPError(err)
	}

	if ch != nil {
		_ = rabbitmq.PublishEntityEvent(ch, rabbitmq.OrderCreated, order)
	}

	return &dto.OrderOutput{Body: *order}, nil
}

// Update recognized order fields
func UpdateOrder(ctx context.Context, st *store.Store, ch *amqp.Channel, id uint, input *dto.OrderUpdateInput) (*dto.OrderOutput, error) {
	order, err := st.UpdateOrder(ctx, id, store.OrderUpdate{
		OrderDate:  input.Body.OrderDate,
		CustomerID: input.Body.CustomerID,
	})
	if err != nil {
		return nil, asHTTPError(err)
	}

	if ch != nil {
		_ = rabbitmq.PublishEntityEvent(ch, rabbitmq.OrderUpdated, order)
	}

	return &dto.OrderOutput{Body: *order}, nil
}

// Delete an order and its product links
func DeleteOrder(ctx context.Context, st *store.Store, ch *amqp.Channel, id uint) error {
	if err := st.DeleteOrder(ctx, id); err != nil {
		return asHTTPError(err)
	}

	if ch != nil {
		_ = rabbitmq.PublishEntityEvent(ch, rabbitmq.OrderDeleted, map[string]uint{"id": id})
	}

	return nil
}

// Add a product to an order
func AddProductToOrder(ctx context.Context, st *store.Store, ch *amqp.Channel, orderID, productID uint) (*dto.MessageOutput, error) {
	if err := st.AddProductToOrder(ctx, orderID, productID); err != nil {
		return nil, asHTTPError(err)
	}

	if ch != nil {
		_ = rabbitmq.PublishEntityEvent(ch, rabbitmq.OrderProductAdded, rabbitmq.AssociationEventData{
			OrderID:   orderID,
			ProductID: productID,
		})
	}

	resp := &dto.MessageOutput{}
	resp.Body.Message = "Product added to order"
	return resp, nil
}

// Remove a product from an order
func RemoveProductFromOrder(ctx context.Context, st *store.Store, ch *amqp.Channel, orderID, productID uint) (*dto.MessageOutput, error) {
	if err := st.RemoveProductFromOrder(ctx, orderID, productID); err != nil {
		return nil, asHTTPError(err)
	}

	if ch != nil {
		_ = rabbitmq.PublishEntityEvent(ch, rabbitmq.OrderProductRemoved, rabbitmq.AssociationEventData{
			OrderID:   orderID,
			ProductID: productID,
		})
	}

	resp := &dto.MessageOutput{}
	resp.Body.Message = "Product removed from order"
	return resp, nil
}

// Get the products linked to an order
func GetOrderProducts(ctx context.Context, st *store.Store, orderID uint) (*dto.ProductsOutput, error) {
	resp := &dto.ProductsOutput{}

	products, err := st.ProductsForOrder(ctx, orderID)
	if err != nil {
		return nil, asHTTPError(err)
	}

	resp.Body.Products = products
	return resp, nil
}

// ----------------------
// Register routes with Huma
// ----------------------
func RegisterOrderRoutes(api huma.API, dbConn *gorm.DB, ch *amqp.Channel) {
	st := store.New(dbConn)
	qs := query.New(dbConn)

	huma.Register(api, huma.Operation{
		OperationID: "get-order",
		Summary:     "Get an order",
		Method:      http.MethodGet,
		Path:        "/orders/{id}",
		Tags:        []string{"orders"},
	}, func(ctx context.Context, input *struct {
		Id uint `path:"id"`
	}) (*dto.OrderOutput, error) {
		return GetOrder(ctx, qs, input.Id)
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-order",
		Summary:       "Create an order",
		Method:        http.MethodPost,
		DefaultStatus: http.StatusCreated,
		Path:          "/orders",
		Tags:          []string{"orders"},
	}, func(ctx context.Context, input *dto.OrderCreateInput) (*dto.OrderOutput, error) {
		return CreateOrder(ctx, st, ch, input)
	})

	huma.Register(api, huma.Operation{
		OperationID: "put-order",
		Summary:     "Update an order",
		Method:      http.MethodPut,
		Path:        "/orders/{id}",
		Tags:        []string{"orders"},
	}, func(ctx context.Context, input *struct {
		Id uint `path:"id"`
		dto.OrderUpdateInput
	}) (*dto.OrderOutput, error) {
		return UpdateOrder(ctx, st, ch, input.Id, &input.OrderUpdateInput)
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-order",
		Summary:       "Delete an order",
		Method:        http.MethodDelete,
		DefaultStatus: http.StatusNoContent,
		Path:          "/orders/{id}",
		Tags:          []string{"orders"},
	}, func(ctx context.Context, input *struct {
		Id uint `path:"id"`
	}) (*struct{}, error) {
		err := DeleteOrder(ctx, st, ch, input.Id)
		return &struct{}{}, err
	})

	huma.Register(api, huma.Operation{
		OperationID:   "add-order-product",
		Summary:       "Add a product to an order",
		Method:        http.MethodPut,
		DefaultStatus: http.StatusCreated,
		Path:          "/orders/{orderId}/products/{productId}",
		Tags:          []string{"orders"},
	}, func(ctx context.Context, input *struct {
		OrderId   uint `path:"orderId"`
		ProductId uint `path:"productId"`
	}) (*dto.MessageOutput, error) {
		return AddProductToOrder(ctx, st, ch, input.OrderId, input.ProductId)
	})

	huma.Register(api, huma.Operation{
		OperationID: "remove-order-product",
		Summary:     "Remove a product from an order",
		Method:      http.MethodDelete,
		Path:        "/orders/{orderId}/products/{productId}",
		Tags:        []string{"orders"},
	}, func(ctx context.Context, input *struct {
		OrderId   uint `path:"orderId"`
		ProductId uint `path:"productId"`
	}) (*dto.MessageOutput, error) {
		return RemoveProductFromOrder(ctx, st, ch, input.OrderId, input.ProductId)
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-order-products",
		Summary:     "Get the products in an order",
		Method:      http.MethodGet,
		Path:        "/orders/{orderId}/products",
		Tags:        []string{"orders"},
	}, func(ctx context.Context, input *struct {
		OrderId uint `path:"orderId"`
	}) (*dto.ProductsOutput, error) {
		return GetOrderProducts(ctx, st, input.OrderId)
	})
}
