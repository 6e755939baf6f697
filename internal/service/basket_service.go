package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"online-ordering/internal/domain"
)

type BasketService struct {
	repo    BasketRepository
	catalog CatalogRepository
}

func NewBasketService(repo BasketRepository, catalog CatalogRepository) *BasketService {
	return &BasketService{repo: repo, catalog: catalog}
}

// GetBasket returns the session's basket with server-computed totals. A
// session with no basket yet gets an empty basket, not an error.
func (s *BasketService) GetBasket(ctx context.Context, sessionID string) (*domain.Basket, error) {
	return s.repo.GetBasket(ctx, sessionID)
}

func (s *BasketService) AddUnifiedItem(ctx context.Context, sessionID string, req *domain.AddUnifiedItemRequest) (*domain.Basket, error) {
	item, err := s.buildItem(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.InsertItem(ctx, sessionID, item); err != nil {
		return nil, fmt.Errorf("failed to add basket item: %w", err)
	}
	return s.repo.GetBasket(ctx, sessionID)
}

func (s *BasketService) AddItemsBatch(ctx context.Context, sessionID string, req *domain.BatchAddItemsRequest) (*domain.Basket, error) {
	if len(req.Items) == 0 {
		return nil, ErrQuantityBounds
	}
	items := make([]*domain.BasketItem, 0, len(req.Items))
	for i := range req.Items {
		item, err := s.buildItem(ctx, &req.Items[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := s.repo.InsertItems(ctx, sessionID, items); err != nil {
		return nil, fmt.Errorf("failed to add basket items: %w", err)
	}
	return s.repo.GetBasket(ctx, sessionID)
}

// UpdateQuantity applies a delta using DecideQuantityStrategy. Customized
// lines are duplicated, never bumped in place; a result below one deletes the
// line instead of writing a non-positive quantity.
func (s *BasketService) UpdateQuantity(ctx context.Context, sessionID string, itemID, delta int) (*domain.Basket, error) {
	item, err := s.getItem(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}

	switch DecideQuantityStrategy(item, delta) {
	case StrategyDelete:
		err = s.repo.DeleteItem(ctx, itemID)
	case StrategyDuplicate:
		err = s.repo.DuplicateItem(ctx, itemID, delta)
	default:
		err = s.repo.UpdateItemQuantity(ctx, itemID, item.Quantity+delta)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}
	return s.repo.GetBasket(ctx, sessionID)
}

func (s *BasketService) DeleteItem(ctx context.Context, sessionID string, itemID int) (*domain.Basket, error) {
	if _, err := s.getItem(ctx, sessionID, itemID); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return nil, fmt.Errorf("failed to delete basket item: %w", err)
	}
	return s.repo.GetBasket(ctx, sessionID)
}

func (s *BasketService) ClearBasket(ctx context.Context, sessionID string) (*domain.Basket, error) {
	if err := s.repo.ClearBasket(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear basket: %w", err)
	}
	return s.repo.GetBasket(ctx, sessionID)
}

// UpdateAddonQuantity moves an addon's quantity by delta. Below one the addon
// row is deleted; above its max the call is rejected without a write.
func (s *BasketService) UpdateAddonQuantity(ctx context.Context, sessionID string, itemID, addonID, delta int) (*domain.Basket, error) {
	item, err := s.getItem(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}

	var addon *domain.AddonItem
	for i := range item.Addons {
		if item.Addons[i].ID == addonID {
			addon = &item.Addons[i]
			break
		}
	}
	if addon == nil {
		return nil, ErrNotFound
	}

	quantity := addon.Quantity + delta
	switch {
	case quantity < 1:
		err = s.repo.DeleteAddon(ctx, addonID)
	case quantity > addon.MaxQuantity:
		return nil, ErrQuantityBounds
	default:
		err = s.repo.UpdateAddonQuantity(ctx, addonID, quantity)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update addon quantity: %w", err)
	}
	return s.repo.GetBasket(ctx, sessionID)
}

// ReplaceExtras validates and submits the full extras set for one line; the
// stored set is replaced wholesale, not patched.
func (s *BasketService) ReplaceExtras(ctx context.Context, sessionID string, itemID int, selections []domain.ExtraSelection) (*domain.Basket, error) {
	if _, err := s.getItem(ctx, sessionID, itemID); err != nil {
		return nil, err
	}
	extras := make([]domain.ExtraItem, 0, len(selections))
	for _, sel := range selections {
		extra, err := s.buildExtra(ctx, sel)
		if err != nil {
			return nil, err
		}
		extras = append(extras, *extra)
	}
	if err := s.repo.ReplaceExtras(ctx, itemID, extras); err != nil {
		return nil, fmt.Errorf("failed to replace extras: %w", err)
	}
	return s.repo.GetBasket(ctx, sessionID)
}

func (s *BasketService) ToggleExtra(ctx context.Context, sessionID string, itemID, branchProductExtraID int) (*domain.Basket, error) {
	item, err := s.getItem(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}

	extras := make([]domain.ExtraItem, 0, len(item.Extras)+1)
	found := false
	for _, extra := range item.Extras {
		if extra.BranchProductExtraID == branchProductExtraID {
			found = true
			continue
		}
		extras = append(extras, extra)
	}
	if !found {
		def, err := s.catalog.GetExtra(ctx, branchProductExtraID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		extras = append(extras, newExtraItem(def, initialExtraQuantity(def)))
	}

	if err := s.repo.ReplaceExtras(ctx, itemID, extras); err != nil {
		return nil, fmt.Errorf("failed to toggle extra: %w", err)
	}
	return s.repo.GetBasket(ctx, sessionID)
}

// UpdateExtraQuantity clamps the new quantity to the extra's [min,max].
// Removal extras are presence-only and refuse quantity changes.
func (s *BasketService) UpdateExtraQuantity(ctx context.Context, sessionID string, itemID, branchProductExtraID, delta int) (*domain.Basket, error) {
	item, err := s.getItem(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}

	extras := make([]domain.ExtraItem, 0, len(item.Extras))
	found := false
	for _, extra := range item.Extras {
		if extra.BranchProductExtraID == branchProductExtraID {
			found = true
			if extra.IsRemoval {
				return nil, ErrRemovalExtra
			}
			quantity := clamp(extra.Quantity+delta, extra.MinQuantity, extra.MaxQuantity)
			if quantity < 1 {
				continue
			}
			extra.Quantity = quantity
		}
		extras = append(extras, extra)
	}
	if !found {
		return nil, ErrNotFound
	}

	if err := s.repo.ReplaceExtras(ctx, itemID, extras); err != nil {
		return nil, fmt.Errorf("failed to update extra quantity: %w", err)
	}
	return s.repo.GetBasket(ctx, sessionID)
}

// ConfirmPriceChanges re-reads catalog prices into the basket rows so the
// stored snapshot matches the menu again.
func (s *BasketService) ConfirmPriceChanges(ctx context.Context, sessionID string) (*domain.Basket, error) {
	if err := s.repo.RefreshPrices(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to confirm price changes: %w", err)
	}
	return s.repo.GetBasket(ctx, sessionID)
}

func (s *BasketService) getItem(ctx context.Context, sessionID string, itemID int) (*domain.BasketItem, error) {
	item, err := s.repo.GetItem(ctx, sessionID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load basket item: %w", err)
	}
	return item, nil
}

func (s *BasketService) buildItem(ctx context.Context, req *domain.AddUnifiedItemRequest) (*domain.BasketItem, error) {
	if req.Quantity < 1 {
		return nil, ErrQuantityBounds
	}
	product, err := s.catalog.GetProduct(ctx, req.BranchProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	item := &domain.BasketItem{
		BranchProductID: product.ID,
		ProductName:     product.Name,
		Quantity:        req.Quantity,
		Price:           product.Price,
	}

	for _, sel := range req.Addons {
		var def *domain.ProductAddon
		for i := range product.Addons {
			if product.Addons[i].ID == sel.AddonBranchProductID {
				def = &product.Addons[i]
				break
			}
		}
		if def == nil {
			return nil, ErrNotFound
		}
		if sel.Quantity < 1 || sel.Quantity > def.MaxQuantity {
			return nil, ErrQuantityBounds
		}
		item.Addons = append(item.Addons, domain.AddonItem{
			AddonBranchProductID: def.ID,
			Name:                 def.Name,
			Price:                def.Price,
			Quantity:             sel.Quantity,
			MaxQuantity:          def.MaxQuantity,
		})
	}

	for _, sel := range req.Extras {
		extra, err := s.buildExtra(ctx, sel)
		if err != nil {
			return nil, err
		}
		item.Extras = append(item.Extras, *extra)
	}
	return item, nil
}

func (s *BasketService) buildExtra(ctx context.Context, sel domain.ExtraSelection) (*domain.ExtraItem, error) {
	def, err := s.catalog.GetExtra(ctx, sel.BranchProductExtraID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	quantity := sel.Quantity
	if def.IsRemoval {
		quantity = 1
	} else {
		if quantity == 0 {
			quantity = initialExtraQuantity(def)
		}
		if quantity < def.MinQuantity || quantity > def.MaxQuantity || quantity < 1 {
			return nil, ErrQuantityBounds
		}
	}
	extra := newExtraItem(def, quantity)
	return &extra, nil
}

func newExtraItem(def *domain.ProductExtra, quantity int) domain.ExtraItem {
	return domain.ExtraItem{
		BranchProductExtraID: def.ID,
		ExtraID:              def.ExtraID,
		Name:                 def.Name,
		Price:                def.Price,
		Quantity:             quantity,
		IsRemoval:            def.IsRemoval,
		MinQuantity:          def.MinQuantity,
		MaxQuantity:          def.MaxQuantity,
	}
}

func initialExtraQuantity(def *domain.ProductExtra) int {
	if def.IsRemoval || def.MinQuantity < 1 {
		return 1
	}
	return def.MinQuantity
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
