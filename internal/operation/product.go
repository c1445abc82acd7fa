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

// Get a page of products
func GetProducts(ctx context.Context, qs *query.Service, page, perPage int) (*dto.ProductsOutput, error) {
	resp := &dto.ProductsOutput{}

	products, err := qs.ListProducts(ctx, page, perPage)
	if err != nil {
		return nil, err
	}

	resp.Body.Products = products
	return resp, nil
}

// Get a single product by ID
func GetProduct(ctx context.Context, qs *query.Service, id uint) (*dto.ProductOutput, error) {
	product, err := qs.GetProduct(ctx, id)
	if err != nil {
		return nil, asHTTPError(err)
	}

	return &dto.ProductOutput{Body: *product}, nil
}

// Create a new product
func CreateProduct(ctx context.Context, st *store.Store, ch *amqp.Channel, input *dto.ProductCreateInput) (*dto.ProductOutput, error) {
	product, err := st.CreateProduct(ctx, input.Body.Name, input.Body.Price)
	if err != nil {
		return nil, asHTTPError(err)
	}

	if ch != nil {
		_ = rabbitmq.PublishEntityEvent(ch, rabbitmq.ProductCreated, product)
	}

	return &dto.ProductOutput{Body: *product}, nil
}

// Update recognized product fields
func UpdateProduct(ctx context.Context, st *store.Store, ch *amqp.Channel, id uint, input *dto.ProductUpdateInput) (*dto.ProductOutput, error) {
	product, err := st.UpdateProduct(ctx, id, store.ProductUpdate{
		Name:  input.Body.Name,
		Price: input.Body.Price,
	})
	if err != nil {
		return nil, asHTTPError(err)
	}

	if ch != nil {
		_ = rabbitmq.PublishEntityEvent(ch, rabbitmq.ProductUpdated, product)
	}

	return &dto.ProductOutput{Body: *product}, nil
}

// Delete a product, stripping it from every order
func DeleteProduct(ctx context.Context, st *store.Store, ch *amqp.Channel, id uint) error {
	if err := st.DeleteProduct(ctx, id); err != nil {
		return asHTTPError(err)
	}

	if ch != nil {
		_ = rabbitmq.PublishEntityEvent(ch, rabbitmq.ProductDeleted, map[string]uint{"id": id})
	}

	return nil
}

// ----------------------
// Register routes with Huma
// ----------------------
func RegisterProductRoutes(api huma.API, dbConn *gorm.DB, ch *amqp.Channel) {
	st := store.New(dbConn)
	qs := query.New(dbConn)

	huma.Register(api, huma.Operation{
		OperationID: "get-products",
		Summary:     "Get products, paginated",
		Method:      http.MethodGet,
		Path:        "/products",
		Tags:        []string{"products"},
	}, func(ctx context.Context, input *PageInput) (*dto.ProductsOutput, error) {
		return GetProducts(ctx, qs, input.Page, input.PerPage)
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Summary:     "Get a product",
		Method:      http.MethodGet,
		Path:        "/products/{id}",
		Tags:        []string{"products"},
	}, func(ctx context.Context, input *struct {
		Id uint `path:"id"`
	}) (*dto.ProductOutput, error) {
		return GetProduct(ctx, qs, input.Id)
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-product",
		Summary:       "Create a product",
		Method:        http.MethodPost,
		DefaultStatus: http.StatusCreated,
		Path:          "/products",
		Tags:          []string{"products"},
	}, func(ctx context.Context, input *dto.ProductCreateInput) (*dto.ProductOutput, error) {
		return CreateProduct(ctx, st, ch, input)
	})

	huma.Register(api, huma.Operation{
		OperationID: "put-product",
		Summary:     "Update a product",
		Method:      http.MethodPut,
		Path:        "/products/{id}",
		Tags:        []string{"products"},
	}, func(ctx context.Context, input *struct {
		Id uint `path:"id"`
		dto.ProductUpdateInput
	}) (*dto.ProductOutput, error) {
		return UpdateProduct(ctx, st, ch, input.Id, &input.ProductUpdateInput)
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-product",
		Summary:       "Delete a product",
		Method:        http.MethodDelete,
		DefaultStatus: http.StatusNoContent,
		Path:          "/products/{id}",
		Tags:          []string{"products"},
	}, func(ctx context.Context, input *struct {
		Id uint `path:"id"`
	}) (*struct{}, error) {
		err := DeleteProduct(ctx, st, ch, input.Id)
		return &struct{}{}, err
	})
}
