package query_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ThorntonMercy/ecommerce-api/internal/db"
	"github.com/ThorntonMercy/ecommerce-api/internal/query"
	"github.com/ThorntonMercy/ecommerce-api/internal/store"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gormDB
}

func seedCustomers(t *testing.T, gormDB *gorm.DB, n int) {
	t.Helper()

	st := store.New(gormDB)
	for i := 0; i < n; i++ {
		_, err := st.CreateCustomer(context.Background(),
			fmt.Sprintf("Customer %02d", i),
			"Somewhere",
			fmt.Sprintf("customer%02d@example.com", i))
		require.NoError(t, err)
	}
}

func TestListCustomersPages(t *testing.T) {
	gormDB := setupTestDB(t)
	seedCustomers(t, gormDB, 5)
	qs := query.New(gormDB)

	first, err := qs.ListCustomers(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := qs.ListCustomers(context.Background(), 2, 3)
	require.NoError(t, err)
	require.Len(t, second, 2)

	// Pages do not overlap: ordering by id is stable.
	require.NotEqual(t, first[0].ID, second[0].ID)
}

func TestListCustomersBeyondRange(t *testing.T) {
	gormDB := setupTestDB(t)
	seedCustomers(t, gormDB, 5)
	qs := query.New(gormDB)

	page, err := qs.ListCustomers(context.Background(), 1000, 10)
	require.NoError(t, err)
	require.Empty(t, page)
}

func TestListCustomersClampsPageSize(t *testing.T) {
	gormDB := setupTestDB(t)
	seedCustomers(t, gormDB, 5)
	qs := query.New(gormDB)

	// Nonsense page parameters fall back to sane values instead of erroring.
	page, err := qs.ListCustomers(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, page, 5)

	page, err = qs.ListCustomers(context.Background(), 1, query.MaxPageSize+1)
	require.NoError(t, err)
	require.Len(t, page, 5)
}

func TestListProductsEmpty(t *testing.T) {
	qs := query.New(setupTestDB(t))

	page, err := qs.ListProducts(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Empty(t, page)
}

func TestGetByIDDelegates(t *testing.T) {
	gormDB := setupTestDB(t)
	st := store.New(gormDB)
	qs := query.New(gormDB)
	ctx := context.Background()

	customer, err := st.CreateCustomer(ctx, "Ada", "Somewhere", "ada@example.com")
	require.NoError(t, err)

	got, err := qs.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Equal(t, customer.Email, got.Email)

	_, err = qs.GetProduct(ctx, 999)
	require.ErrorIs(t, err, store.ErrProductNotFound)

	_, err = qs.GetOrder(ctx, 999)
	require.ErrorIs(t, err, store.ErrOrderNotFound)
}
