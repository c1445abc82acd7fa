package operation_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ThorntonMercy/ecommerce-api/internal/dto"
	"github.com/ThorntonMercy/ecommerce-api/internal/operation"
	"github.com/ThorntonMercy/ecommerce-api/internal/query"
	"github.com/ThorntonMercy/ecommerce-api/internal/store"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	dbMock, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: dbMock,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open gorm DB: %v", err)
	}

	return gormDB, mock
}

func TestGetCustomers(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "address", "email"}).
		AddRow(1, "John Doe", "1 Main St", "jdoe@example.com").
		AddRow(2, "Alice Smith", "2 High St", "asmith@example.com")

	mock.ExpectQuery(`SELECT \* FROM "customers"`).WillReturnRows(rows)

	resp, err := operation.GetCustomers(context.Background(), query.New(db), 1, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(resp.Body.Customers) != 2 {
		t.Errorf("expected 2 customers, got %d", len(resp.Body.Customers))
	}

	if resp.Body.Customers[0].Email != "jdoe@example.com" {
		t.Errorf("expected first customer 'jdoe@example.com', got '%s'", resp.Body.Customers[0].Email)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled sqlmock expectations: %v", err)
	}
}

func TestGetCustomersDBError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "customers"`).
		WillReturnError(errors.New("db failure"))

	_, err := operation.GetCustomers(context.Background(), query.New(db), 1, 10)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetCustomerOK(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "address", "email"}).
		AddRow(1, "John Doe", "1 Main St", "jdoe@example.com")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "customers" WHERE "customers"."id" = $1 ORDER BY "customers"."id" LIMIT $2`,
	)).
		WithArgs(1, sqlmock.AnyArg()).
		WillReturnRows(rows)

	resp, err := operation.GetCustomer(context.Background(), query.New(db), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.Body.Email != "jdoe@example.com" {
		t.Errorf("expected email 'jdoe@example.com', got '%s'", resp.Body.Email)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled sqlmock expectations: %v", err)
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" WHERE "customers"."id" = $1`)).
		WithArgs(1, sqlmock.AnyArg()).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := operation.GetCustomer(context.Background(), query.New(db), 1)
	if err == nil {
		t.Fatal("expected error for non-existent customer")
	}
}

func TestCreateCustomer(t *testing.T) {
	db, mock := setupMockDB(t)

	input := &dto.CustomerCreateInput{
		Body: dto.CustomerCreateBody{
			Name:    "john doe",
			Address: "1 Main St",
			Email:   "John.Doe@Example.com",
		},
	}

	// Mock insert
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "customers"`)).
		WithArgs("John Doe", "1 Main St", "john.doe@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	resp, err := operation.CreateCustomer(context.Background(), store.New(db), nil, input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.Body.Name != "John Doe" {
		t.Errorf("expected name 'John Doe', got '%s'", resp.Body.Name)
	}

	if resp.Body.Email != "john.doe@example.com" {
		t.Errorf("expected lowercased email, got '%s'", resp.Body.Email)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled sqlmock expectations: %v", err)
	}
}
