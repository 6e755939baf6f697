package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"online-ordering/internal/domain"
)

// SettingsService backs the dashboard editors. Updates send the entire
// object with the last-known row version; a stale version is a conflict, no
// merge or retry is attempted.
type SettingsService struct {
	orderTypes OrderTypeRepository
	prefs      PreferencesRepository
}

func NewSettingsService(orderTypes OrderTypeRepository, prefs PreferencesRepository) *SettingsService {
	return &SettingsService{orderTypes: orderTypes, prefs: prefs}
}

func (s *SettingsService) ListOrderTypes(ctx context.Context) ([]domain.OrderType, error) {
	return s.orderTypes.ListOrderTypes(ctx)
}

func (s *SettingsService) OrderType(ctx context.Context, id int) (*domain.OrderType, error) {
	ot, err := s.orderTypes.GetOrderType(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ot, nil
}

func (s *SettingsService) UpdateOrderType(ctx context.Context, ot *domain.OrderType) (*domain.OrderType, error) {
	if err := s.orderTypes.UpdateOrderType(ctx, ot); err != nil {
		// Zero rows matched: either the row is gone or the version is stale.
		// Both read as "someone else changed it" to the editor.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVersionConflict
		}
		return nil, err
	}
	updated, err := s.orderTypes.GetOrderType(ctx, ot.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order type: %w", err)
	}
	return updated, nil
}

func (s *SettingsService) BranchPreferences(ctx context.Context, branchID int) (*domain.BranchPreferences, error) {
	prefs, err := s.prefs.GetBranchPreferences(ctx, branchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return prefs, nil
}

func (s *SettingsService) UpdateBranchPreferences(ctx context.Context, p *domain.BranchPreferences) (*domain.BranchPreferences, error) {
	if err := s.prefs.UpdateBranchPreferences(ctx, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVersionConflict
		}
		return nil, err
	}
	return s.BranchPreferences(ctx, p.BranchID)
}

func (s *SettingsService) RestaurantPreferences(ctx context.Context) (*domain.RestaurantPreferences, error) {
	prefs, err := s.prefs.GetRestaurantPreferences(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return prefs, nil
}

func (s *SettingsService) UpdateRestaurantPreferences(ctx context.Context, p *domain.RestaurantPreferences) (*domain.RestaurantPreferences, error) {
	if err := s.prefs.UpdateRestaurantPreferences(ctx, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVersionConflict
		}
		return nil, err
	}
	return s.RestaurantPreferences(ctx)
}
