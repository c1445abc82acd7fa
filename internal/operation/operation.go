package operation

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"

	"github.com/ThorntonMercy/ecommerce-api/internal/store"
)

// RegisterRoutes wires every API route. The channel may be nil, in which
// case mutations skip event publishing.
func RegisterRoutes(api huma.API, dbConn *gorm.DB, ch *amqp.Channel) {
	registerHealthRoute(api)
	RegisterCustomerRoutes(api, dbConn, ch)
	RegisterProductRoutes(api, dbConn, ch)
	RegisterOrderRoutes(api, dbConn, ch)
}

// asHTTPError maps store outcomes to response codes. Anything unmatched is
// a storage fault and falls through as a 500.
func asHTTPError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrCustomerNotFound),
		errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrAssociationNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrDuplicateEmail),
		errors.Is(err, store.ErrAssociationExists):
		return huma.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrInvalidPrice):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	default:
		return err
	}
}

// PageInput holds the pagination query parameters shared by list routes.
type PageInput struct {
	Page    int `query:"page" default:"1"`
	PerPage int `query:"per_page" default:"10"`
}

func registerHealthRoute(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Summary:     "Health check endpoint",
		Method:      http.MethodGet,
		Path:        "/health",
		Tags:        []string{"health"},
	}, func(ctx context.Context, input *struct{}) (*struct {
		Status string `json:"status"`
	}, error) {
		return &struct {
			Status string `json:"status"`
		}{Status: "ok"}, nil
	})
}
