package tests

import (
	"context"
	"database/sql"
	"testing"

	"online-ordering/internal/domain"
	"online-ordering/internal/mocks"
	"online-ordering/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestSettingsService_UpdateOrderType(t *testing.T) {
	orderTypes := mocks.NewOrderTypeRepository(t)
	prefs := mocks.NewPreferencesRepository(t)
	svc := service.NewSettingsService(orderTypes, prefs)

	ctx := context.Background()

	t.Run("success_returns_reloaded_row", func(t *testing.T) {
		edit := &domain.OrderType{ID: 3, Name: "Delivery", MinOrderAmount: 120, RowVersion: "4"}
		orderTypes.On("UpdateOrderType", ctx, edit).Return(nil).Once()
		orderTypes.On("GetOrderType", ctx, 3).
			Return(&domain.OrderType{ID: 3, Name: "Delivery", MinOrderAmount: 120, RowVersion: "5"}, nil).Once()

		updated, err := svc.UpdateOrderType(ctx, edit)
		assert.NoError(t, err)
		assert.Equal(t, "5", updated.RowVersion)
	})

	t.Run("stale_row_version_is_conflict", func(t *testing.T) {
		edit := &domain.OrderType{ID: 3, Name: "Delivery", RowVersion: "2"}
		orderTypes.On("UpdateOrderType", ctx, edit).Return(sql.ErrNoRows).Once()

		_, err := svc.UpdateOrderType(ctx, edit)
		assert.ErrorIs(t, err, service.ErrVersionConflict)
	})
}

func TestSettingsService_OrderType(t *testing.T) {
	orderTypes := mocks.NewOrderTypeRepository(t)
	prefs := mocks.NewPreferencesRepository(t)
	svc := service.NewSettingsService(orderTypes, prefs)

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		orderTypes.On("GetOrderType", ctx, 3).
			Return(&domain.OrderType{ID: 3, Name: "Delivery", RowVersion: "4"}, nil).Once()

		ot, err := svc.OrderType(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, "Delivery", ot.Name)
	})

	t.Run("unknown_id", func(t *testing.T) {
		orderTypes.On("GetOrderType", ctx, 99).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.OrderType(ctx, 99)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestSettingsService_BranchPreferences(t *testing.T) {
	orderTypes := mocks.NewOrderTypeRepository(t)
	prefs := mocks.NewPreferencesRepository(t)
	svc := service.NewSettingsService(orderTypes, prefs)

	ctx := context.Background()

	t.Run("missing_row", func(t *testing.T) {
		prefs.On("GetBranchPreferences", ctx, 99).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.BranchPreferences(ctx, 99)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("update_success_reloads", func(t *testing.T) {
		edit := &domain.BranchPreferences{BranchID: 1, AcceptsCash: true, RowVersion: "1"}
		prefs.On("UpdateBranchPreferences", ctx, edit).Return(nil).Once()
		prefs.On("GetBranchPreferences", ctx, 1).
			Return(&domain.BranchPreferences{BranchID: 1, AcceptsCash: true, RowVersion: "2"}, nil).Once()

		updated, err := svc.UpdateBranchPreferences(ctx, edit)
		assert.NoError(t, err)
		assert.Equal(t, "2", updated.RowVersion)
	})

	t.Run("update_stale_version", func(t *testing.T) {
		edit := &domain.BranchPreferences{BranchID: 1, RowVersion: "1"}
		prefs.On("UpdateBranchPreferences", ctx, edit).Return(sql.ErrNoRows).Once()

		_, err := svc.UpdateBranchPreferences(ctx, edit)
		assert.ErrorIs(t, err, service.ErrVersionConflict)
	})
}

func TestSettingsService_RestaurantPreferences(t *testing.T) {
	orderTypes := mocks.NewOrderTypeRepository(t)
	prefs := mocks.NewPreferencesRepository(t)
	svc := service.NewSettingsService(orderTypes, prefs)

	ctx := context.Background()

	t.Run("update_success_reloads", func(t *testing.T) {
		edit := &domain.RestaurantPreferences{ID: 1, RestaurantName: "Overlook", RowVersion: "3"}
		prefs.On("UpdateRestaurantPreferences", ctx, edit).Return(nil).Once()
		prefs.On("GetRestaurantPreferences", ctx).
			Return(&domain.RestaurantPreferences{ID: 1, RestaurantName: "Overlook", RowVersion: "4"}, nil).Once()

		updated, err := svc.UpdateRestaurantPreferences(ctx, edit)
		assert.NoError(t, err)
		assert.Equal(t, "4", updated.RowVersion)
	})

	t.Run("update_stale_version", func(t *testing.T) {
		edit := &domain.RestaurantPreferences{ID: 1, RowVersion: "1"}
		prefs.On("UpdateRestaurantPreferences", ctx, edit).Return(sql.ErrNoRows).Once()

		_, err := svc.UpdateRestaurantPreferences(ctx, edit)
		assert.ErrorIs(t, err, service.ErrVersionConflict)
	})
}
