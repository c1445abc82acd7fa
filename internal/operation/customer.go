package operation

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/ThorntonMercy/ecommerce-api/internal/dto"
	"github.com/ThorntonMercy/ecommerce-api/internal/query"
	"github.com/ThorntonMercy/ecommerce-api/internal/rabbitmq"
	"github.com/ThorntonMercy/ecommerce-api/internal/store"
)

// Get a page of customers
func GetCustomers(ctx context.Context, qs *query.Service, page, perPage int) (*dto.CustomersOutput, error) {
	resp := &dto.CustomersOutput{}

	customers, err := qs.ListCustomers(ctx, page, perPage)
	if err != nil {
		return nil, err
	}

	resp.Body.Customers = customers
	return resp, nil
}

// Get a single customer by ID
func GetCustomer(ctx context.Context, qs *query.Service, id uint) (*dto.CustomerOutput, error) {
	customer, err := qs.GetCustomer(ctx, id)
	if err != nil {
		return nil, asHTTPError(err)
	}

	return &dto.CustomerOutput{Body: *customer}, nil
}

// Create a new customer
func CreateCustomer(ctx context.Context, st *store.Store, ch *amqp.Channel, input *dto.CustomerCreateInput) (*dto.CustomerOutput, error) {
	name := cases.Title(language.English).String(input.Body.Name)
	email := strings.ToLower(input.Body.Email)

	customer, err := st.CreateCustomer(ctx, name, input.Body.Address, email)
	if err != nil {
		return nil, asHTTPError(err)
	}

	if ch != nil {
		_ = rabbitmq.PublishEntityEvent(ch, rabbitmq.CustomerCreated, customer) // ignore publish error
	}

	return &dto.CustomerOutput{Body: *customer}, nil
}

// Update recognized customer fields
func UpdateCustomer(ctx context.Context, st *store.Store, ch *amqp.Channel, id uint, input *dto.CustomerUpdateInput) (*dto.CustomerOutput, error) {
	update := store.CustomerUpdate{
		Address: input.Body.Address,
	}
	if input.Body.Name != nil {
		name := cases.Title(language.English).String(*input.Body.Name)
		update.Name = &name
	}
	if input.Body.Email != nil {
		email := strings.ToLower(*input.Body.Email)
		update.Email = &email
	}

	customer, err := st.UpdateCustomer(ctx, id, update)
	if err != nil {
		return nil, asHTTPError(err)
	}

	if ch != nil {
		_ = rabbitmq.PublishEntityEvent(ch, rabbitmq.CustomerUpdated, customer)
	}

	return &dto.CustomerOutput{Body: *customer}, nil
}

// Delete a customer and everything that depends on it
func DeleteCustomer(ctx context.Context, st *store.Store, ch *amqp.Channel, id uint) error {
	if err := st.DeleteCustomer(ctx, id); err != nil {
		return asHTTPError(err)
	}

	if ch != nil {
		_ = rabbitmq.PublishEntityEvent(ch, rabbitmq.CustomerDeleted, map[string]uint{"id": id})
	}

	return nil
}

// Get the orders placed by a customer
func GetCustomerOrders(ctx context.Context, st *store.Store, id uint) (*dto.OrdersOutput, error) {
	resp := &dto.OrdersOutput{}

	orders, err := st.OrdersForCustomer(ctx, id)
	if err != nil {
		return nil, asHTTPError(err)
	}

	resp.Body.Orders = orders
	return resp, nil
}

// ----------------------
// Register routes with Huma
// ----------------------
func RegisterCustomerRoutes(api huma.API, dbConn *gorm.DB, ch *amqp.Channel) {
	st := store.New(dbConn)
	qs := query.New(dbConn)

	huma.Register(api, huma.Operation{
		OperationID: "get-customers",
		Summary:     "Get customers, paginated",
		Method:      http.MethodGet,
		Path:        "/customers",
		Tags:        []string{"customers"},
	}, func(ctx context.Context, input *PageInput) (*dto.CustomersOutput, error) {
		return GetCustomers(ctx, qs, input.Page, input.PerPage)
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-customer",
		Summary:     "Get a customer",
		Method:      http.MethodGet,
		Path:        "/customers/{id}",
		Tags:        []string{"customers"},
	}, func(ctx context.Context, input *struct {
		Id uint `path:"id"`
	}) (*dto.CustomerOutput, error) {
		return GetCustomer(ctx, qs, input.Id)
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-customer",
		Summary:       "Create a customer",
		Method:        http.MethodPost,
		DefaultStatus: http.StatusCreated,
		Path:          "/customers",
		Tags:          []string{"customers"},
	}, func(ctx context.Context, input *dto.CustomerCreateInput) (*dto.CustomerOutput, error) {
		return CreateCustomer(ctx, st, ch, input)
	})

	huma.Register(api, huma.Operation{
		OperationID: "put-customer",
		Summary:     "Update a customer",
		Method:      http.MethodPut,
		Path:        "/customers/{id}",
		Tags:        []string{"customers"},
	}, func(ctx context.Context, input *struct {
		Id uint `path:"id"`
		dto.CustomerUpdateInput
	}) (*dto.CustomerOutput, error) {
		return UpdateCustomer(ctx, st, ch, input.Id, &input.CustomerUpdateInput)
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-customer",
		Summary:       "Delete a customer",
		Method:        http.MethodDelete,
		DefaultStatus: http.StatusNoContent,
		Path:          "/customers/{id}",
		Tags:          []string{"customers"},
	}, func(ctx context.Context, input *struct {
		Id uint `path:"id"`
	}) (*struct{}, error) {
		err := DeleteCustomer(ctx, st, ch, input.Id)
		return &struct{}{}, err
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-customer-orders",
		Summary:     "Get a customer's orders",
		Method:      http.MethodGet,
		Path:        "/customers/{id}/orders",
		Tags:        []string{"customers", "orders"},
	}, func(ctx context.Context, input *struct {
		Id uint `path:"id"`
	}) (*dto.OrdersOutput, error) {
		return GetCustomerOrders(ctx, st, input.Id)
	})
}
