package storage

import (
	"context"
	"database/sql"
	"errors"

	"online-ordering/internal/domain"
)

type BasketRepository struct {
	DB *sql.DB
}

func NewBasketRepository(db *sql.DB) *BasketRepository {
	return &BasketRepository{DB: db}
}

// GetBasket reads the basket with all children and computes totals. Totals
// only ever come from this read path, so every mutation returns what the
// database holds, never a client-side estimate.
func (r *BasketRepository) GetBasket(ctx context.Context, sessionID string) (*domain.Basket, error) {
	basket := &domain.Basket{Items: []domain.BasketItem{}}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id FROM baskets WHERE session_id = $1
	`, sessionID).Scan(&basket.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return basket, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, branch_product_id, product_name, unit_price, quantity
		FROM basket_items WHERE basket_id = $1 ORDER BY id
	`, basket.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := map[int]int{}
	for rows.Next() {
		var item domain.BasketItem
		if err := rows.Scan(&item.ID, &item.BranchProductID, &item.ProductName, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		item.Addons = []domain.AddonItem{}
		item.Extras = []domain.ExtraItem{}
		index[item.ID] = len(basket.Items)
		basket.Items = append(basket.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	addonRows, err := r.DB.QueryContext(ctx, `
		SELECT a.id, a.item_id, a.addon_branch_product_id, a.name, a.unit_price, a.quantity, a.max_quantity
		FROM basket_item_addons a
		JOIN basket_items i ON a.item_id = i.id
		WHERE i.basket_id = $1 ORDER BY a.id
	`, basket.ID)
	if err != nil {
		return nil, err
	}
	defer addonRows.Close()
	for addonRows.Next() {
		var itemID int
		var a domain.AddonItem
		if err := addonRows.Scan(&a.ID, &itemID, &a.AddonBranchProductID, &a.Name, &a.Price, &a.Quantity, &a.MaxQuantity); err != nil {
			return nil, err
		}
		if i, ok := index[itemID]; ok {
			basket.Items[i].Addons = append(basket.Items[i].Addons, a)
		}
	}

	extraRows, err := r.DB.QueryContext(ctx, `
		SELECT e.item_id, e.branch_product_extra_id, e.extra_id, e.name, e.unit_price, e.quantity, e.is_removal, e.min_quantity, e.max_quantity
		FROM basket_item_extras e
		JOIN basket_items i ON e.item_id = i.id
		WHERE i.basket_id = $1 ORDER BY e.id
	`, basket.ID)
	if err != nil {
		return nil, err
	}
	defer extraRows.Close()
	for extraRows.Next() {
		var itemID int
		var e domain.ExtraItem
		if err := extraRows.Scan(&itemID, &e.BranchProductExtraID, &e.ExtraID, &e.Name, &e.Price, &e.Quantity, &e.IsRemoval, &e.MinQuantity, &e.MaxQuantity); err != nil {
			return nil, err
		}
		if i, ok := index[itemID]; ok {
			basket.Items[i].Extras = append(basket.Items[i].Extras, e)
		}
	}

	for i := range basket.Items {
		item := &basket.Items[i]
		// Addon/extra quantities are per unit, so they scale with the line's
		// own quantity.
		total := item.Price * float64(item.Quantity)
		for _, a := range item.Addons {
			total += a.Price * float64(a.Quantity) * float64(item.Quantity)
		}
		for _, e := range item.Extras {
			total += e.Price * float64(e.Quantity) * float64(item.Quantity)
		}
		item.TotalPrice = total
		basket.TotalPrice += total
		basket.ItemCount += item.Quantity
	}
	return basket, nil
}

// GetItem is session-scoped so one session can never mutate another's lines.
func (r *BasketRepository) GetItem(ctx context.Context, sessionID string, itemID int) (*domain.BasketItem, error) {
	var item domain.BasketItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT i.id, i.branch_product_id, i.product_name, i.unit_price, i.quantity
		FROM basket_items i
		JOIN baskets b ON i.basket_id = b.id
		WHERE i.id = $1 AND b.session_id = $2
	`, itemID, sessionID).Scan(&item.ID, &item.BranchProductID, &item.ProductName, &item.Price, &item.Quantity)
	if err != nil {
		return nil, err
	}

	addonRows, err := r.DB.QueryContext(ctx, `
		SELECT id, addon_branch_product_id, name, unit_price, quantity, max_quantity
		FROM basket_item_addons WHERE item_id = $1 ORDER BY id
	`, item.ID)
	if err != nil {
		return nil, err
	}
	defer addonRows.Close()
	for addonRows.Next() {
		var a domain.AddonItem
		if err := addonRows.Scan(&a.ID, &a.AddonBranchProductID, &a.Name, &a.Price, &a.Quantity, &a.MaxQuantity); err != nil {
			return nil, err
		}
		item.Addons = append(item.Addons, a)
	}

	extraRows, err := r.DB.QueryContext(ctx, `
		SELECT branch_product_extra_id, extra_id, name, unit_price, quantity, is_removal, min_quantity, max_quantity
		FROM basket_item_extras WHERE item_id = $1 ORDER BY id
	`, item.ID)
	if err != nil {
		return nil, err
	}
	defer extraRows.Close()
	for extraRows.Next() {
		var e domain.ExtraItem
		if err := extraRows.Scan(&e.BranchProductExtraID, &e.ExtraID, &e.Name, &e.Price, &e.Quantity, &e.IsRemoval, &e.MinQuantity, &e.MaxQuantity); err != nil {
			return nil, err
		}
		item.Extras = append(item.Extras, e)
	}
	return &item, nil
}

func (r *BasketRepository) InsertItem(ctx context.Context, sessionID string, item *domain.BasketItem) error {
	return r.InsertItems(ctx, sessionID, []*domain.BasketItem{item})
}

// InsertItems creates the basket lazily and adds all items in one
// transaction, so a batch either lands whole or not at all.
func (r *BasketRepository) InsertItems(ctx context.Context, sessionID string, items []*domain.BasketItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var basketID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO baskets (session_id) VALUES ($1)
		ON CONFLICT (session_id) DO UPDATE SET session_id = EXCLUDED.session_id
		RETURNING id
	`, sessionID).Scan(&basketID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := insertItemTx(ctx, tx, basketID, item); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertItemTx(ctx context.Context, tx *sql.Tx, basketID int, item *domain.BasketItem) error {
	err := tx.QueryRowContext(ctx, `
		INSERT INTO basket_items (basket_id, branch_product_id, product_name, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, basketID, item.BranchProductID, item.ProductName, item.Price, item.Quantity).Scan(&item.ID)
	if err != nil {
		return err
	}

	for i := range item.Addons {
		a := &item.Addons[i]
		err := tx.QueryRowContext(ctx, `
			INSERT INTO basket_item_addons (item_id, addon_branch_product_id, name, unit_price, quantity, max_quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, item.ID, a.AddonBranchProductID, a.Name, a.Price, a.Quantity, a.MaxQuantity).Scan(&a.ID)
		if err != nil {
			return err
		}
	}
	for _, e := range item.Extras {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO basket_item_extras (item_id, branch_product_extra_id, extra_id, name, unit_price, quantity, is_removal, min_quantity, max_quantity)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, item.ID, e.BranchProductExtraID, e.ExtraID, e.Name, e.Price, e.Quantity, e.IsRemoval, e.MinQuantity, e.MaxQuantity)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *BasketRepository) UpdateItemQuantity(ctx context.Context, itemID, quantity int) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE basket_items SET quantity = $1 WHERE id = $2
	`, quantity, itemID)
	return err
}

// DuplicateItem inserts copies of the full line, each with quantity one and
// the source line's addon/extra rows, inside a single transaction. A failing
// copy rolls back the whole duplication.
func (r *BasketRepository) DuplicateItem(ctx context.Context, itemID, copies int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for n := 0; n < copies; n++ {
		var newID int
		err := tx.QueryRowContext(ctx, `
			INSERT INTO basket_items (basket_id, branch_product_id, product_name, unit_price, quantity)
			SELECT basket_id, branch_product_id, product_name, unit_price, 1
			FROM basket_items WHERE id = $1
			RETURNING id
		`, itemID).Scan(&newID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO basket_item_addons (item_id, addon_branch_product_id, name, unit_price, quantity, max_quantity)
			SELECT $2, addon_branch_product_id, name, unit_price, quantity, max_quantity
			FROM basket_item_addons WHERE item_id = $1
		`, itemID, newID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO basket_item_extras (item_id, branch_product_extra_id, extra_id, name, unit_price, quantity, is_removal, min_quantity, max_quantity)
			SELECT $2, branch_product_extra_id, extra_id, name, unit_price, quantity, is_removal, min_quantity, max_quantity
			FROM basket_item_extras WHERE item_id = $1
		`, itemID, newID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *BasketRepository) DeleteItem(ctx context.Context, itemID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM basket_items WHERE id = $1`, itemID)
	return err
}

func (r *BasketRepository) ClearBasket(ctx context.Context, sessionID string) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM basket_items
		USING baskets
		WHERE basket_items.basket_id = baskets.id AND baskets.session_id = $1
	`, sessionID)
	return err
}

func (r *BasketRepository) UpdateAddonQuantity(ctx context.Context, addonID, quantity int) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE basket_item_addons SET quantity = $1 WHERE id = $2
	`, quantity, addonID)
	return err
}

func (r *BasketRepository) DeleteAddon(ctx context.Context, addonID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM basket_item_addons WHERE id = $1`, addonID)
	return err
}

// ReplaceExtras swaps the line's extras set wholesale.
func (r *BasketRepository) ReplaceExtras(ctx context.Context, itemID int, extras []domain.ExtraItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM basket_item_extras WHERE item_id = $1`, itemID); err != nil {
		return err
	}
	for _, e := range extras {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO basket_item_extras (item_id, branch_product_extra_id, extra_id, name, unit_price, quantity, is_removal, min_quantity, max_quantity)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, itemID, e.BranchProductExtraID, e.ExtraID, e.Name, e.Price, e.Quantity, e.IsRemoval, e.MinQuantity, e.MaxQuantity)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// RefreshPrices rewrites the basket's price snapshots from the catalog.
func (r *BasketRepository) RefreshPrices(ctx context.Context, sessionID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		UPDATE basket_items i SET unit_price = p.price
		FROM branch_products p, baskets b
		WHERE i.branch_product_id = p.id AND i.basket_id = b.id AND b.session_id = $1
	`, sessionID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE basket_item_addons a SET unit_price = pa.price
		FROM product_addons pa, basket_items i, baskets b
		WHERE a.addon_branch_product_id = pa.id AND a.item_id = i.id AND i.basket_id = b.id AND b.session_id = $1
	`, sessionID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE basket_item_extras e SET unit_price = pe.price
		FROM product_extras pe, basket_items i, baskets b
		WHERE e.branch_product_extra_id = pe.id AND e.item_id = i.id AND i.basket_id = b.id AND b.session_id = $1
	`, sessionID); err != nil {
		return err
	}
	return tx.Commit()
}
