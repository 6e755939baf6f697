package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"online-ordering/internal/domain"
	"online-ordering/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestOrderRepository_UpdateOrderType(t *testing.T) {
	ctx := context.Background()

	t.Run("matching_version_updates_one_row", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := storage.NewOrderRepository(db)

		mock.ExpectExec("UPDATE order_types").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateOrderType(ctx, &domain.OrderType{ID: 3, Name: "Delivery", RowVersion: "4"})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale_version_matches_zero_rows", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := storage.NewOrderRepository(db)

		mock.ExpectExec("UPDATE order_types").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateOrderType(ctx, &domain.OrderType{ID: 3, Name: "Delivery", RowVersion: "2"})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("garbage_version_never_reaches_db", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := storage.NewOrderRepository(db)

		err := repo.UpdateOrderType(ctx, &domain.OrderType{ID: 3, RowVersion: "not-a-number"})
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrderType_VersionAsString(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := storage.NewOrderRepository(db)

	columns := []string{"id", "name", "code", "is_active", "requires_name", "requires_table",
		"requires_address", "requires_phone", "min_order_amount", "service_charge",
		"estimated_minutes", "row_version"}
	mock.ExpectQuery("FROM order_types WHERE id").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(3, "Delivery", "delivery", true, true, false, true, true, 100.0, 10.0, 45, int64(7)))

	ot, err := repo.GetOrderType(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, "7", ot.RowVersion)
	assert.Equal(t, 100.0, ot.MinOrderAmount)
}

func TestOrderRepository_InsertOrder_PersistsCustomizations(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := storage.NewOrderRepository(db)

	order := &domain.Order{
		BranchID:    1,
		OrderTypeID: 2,
		TotalAmount: 140,
		Status:      "received",
		Items: []domain.OrderItem{{
			BranchProductID: 3, ProductName: "Burger", Quantity: 2, Price: 50, TotalPrice: 140,
			Addons: []domain.OrderItemAddon{{Name: "Cheese", Price: 10, Quantity: 1}},
			Extras: []domain.OrderItemExtra{{Name: "Onions", Quantity: 1, IsRemoval: true}},
		}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(42, 3, "Burger", 50.0, 2, 140.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(77))
	mock.ExpectExec("INSERT INTO order_item_addons").
		WithArgs(77, "Cheese", 10.0, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_item_extras").
		WithArgs(77, "Onions", 0.0, 1, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.InsertOrder(context.Background(), order)
	assert.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.Equal(t, 77, order.Items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBasketRepository_GetBasket(t *testing.T) {
	ctx := context.Background()

	t.Run("no_basket_row_is_empty_basket", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := storage.NewBasketRepository(db)

		mock.ExpectQuery("SELECT id FROM baskets").
			WithArgs("sess").
			WillReturnError(sql.ErrNoRows)

		basket, err := repo.GetBasket(ctx, "sess")
		assert.NoError(t, err)
		assert.Equal(t, 0, basket.ItemCount)
		assert.Empty(t, basket.Items)
	})

	t.Run("totals_cover_addons_and_extras", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := storage.NewBasketRepository(db)

		mock.ExpectQuery("SELECT id FROM baskets").
			WithArgs("sess").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery("SELECT id, branch_product_id").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "branch_product_id", "product_name", "unit_price", "quantity"}).
				AddRow(5, 3, "Burger", 50.0, 2))
		mock.ExpectQuery("basket_item_addons").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "addon_branch_product_id", "name", "unit_price", "quantity", "max_quantity"}).
				AddRow(10, 5, 8, "Cheese", 10.0, 1, 2))
		mock.ExpectQuery("basket_item_extras").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"item_id", "branch_product_extra_id", "extra_id", "name", "unit_price", "quantity", "is_removal", "min_quantity", "max_quantity"}).
				AddRow(5, 41, 4, "Bacon", 5.0, 2, false, 1, 3))

		basket, err := repo.GetBasket(ctx, "sess")
		assert.NoError(t, err)
		assert.Len(t, basket.Items, 1)
		// Customizations are priced per unit: 50*2 + 10*1*2 + 5*2*2.
		assert.Equal(t, 140.0, basket.Items[0].TotalPrice)
		assert.Equal(t, 140.0, basket.TotalPrice)
		assert.Equal(t, 2, basket.ItemCount)
	})
}

func TestBasketRepository_DuplicateItem(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := storage.NewBasketRepository(db)

	mock.ExpectBegin()
	for n := 0; n < 2; n++ {
		newID := 101 + n
		mock.ExpectQuery("INSERT INTO basket_items").
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID))
		mock.ExpectExec("INSERT INTO basket_item_addons").
			WithArgs(7, newID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO basket_item_extras").
			WithArgs(7, newID).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.DuplicateItem(context.Background(), 7, 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBasketRepository_DuplicateItem_RollsBackOnFailure(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := storage.NewBasketRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO basket_items").
		WithArgs(7).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.DuplicateItem(context.Background(), 7, 2)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_GetExtra(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := storage.NewCatalogRepository(db)

	mock.ExpectQuery("FROM product_extras").
		WithArgs(41).
		WillReturnRows(sqlmock.NewRows([]string{"id", "extra_id", "name", "price", "is_removal", "min_quantity", "max_quantity"}).
			AddRow(41, 4, "Bacon", 5.0, false, 1, 3))

	extra, err := repo.GetExtra(context.Background(), 41)
	assert.NoError(t, err)
	assert.Equal(t, "Bacon", extra.Name)
	assert.Equal(t, 3, extra.MaxQuantity)
}
