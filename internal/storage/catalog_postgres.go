package storage

import (
	"context"
	"database/sql"

	"online-ordering/internal/domain"
)

type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) GetBranchByPublicID(ctx context.Context, publicID string) (*domain.Branch, error) {
	var branch domain.Branch
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, public_id FROM branches WHERE public_id = $1
	`, publicID).Scan(&branch.ID, &branch.Name, &branch.PublicID)
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *CatalogRepository) GetPublicID(ctx context.Context, branchID int) (string, error) {
	var publicID string
	err := r.DB.QueryRowContext(ctx, `
		SELECT public_id FROM branches WHERE id = $1
	`, branchID).Scan(&publicID)
	return publicID, err
}

func (r *CatalogRepository) GetMenu(ctx context.Context, publicID string) (*domain.Menu, error) {
	branch, err := r.GetBranchByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, branch_id, name, description, category, price, is_active
		FROM branch_products
		WHERE branch_id = $1 AND is_active = TRUE
		ORDER BY category, id
	`, branch.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menu := &domain.Menu{Branch: *branch, Products: []domain.BranchProduct{}}
	index := map[int]int{}
	for rows.Next() {
		var p domain.BranchProduct
		if err := rows.Scan(&p.ID, &p.BranchID, &p.Name, &p.Description, &p.Category, &p.Price, &p.IsActive); err != nil {
			return nil, err
		}
		index[p.ID] = len(menu.Products)
		menu.Products = append(menu.Products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	addonRows, err := r.DB.QueryContext(ctx, `
		SELECT a.id, a.branch_product_id, a.name, a.price, a.max_quantity
		FROM product_addons a
		JOIN branch_products p ON a.branch_product_id = p.id
		WHERE p.branch_id = $1
		ORDER BY a.id
	`, branch.ID)
	if err != nil {
		return nil, err
	}
	defer addonRows.Close()
	for addonRows.Next() {
		var productID int
		var a domain.ProductAddon
		if err := addonRows.Scan(&a.ID, &productID, &a.Name, &a.Price, &a.MaxQuantity); err != nil {
			return nil, err
		}
		if i, ok := index[productID]; ok {
			menu.Products[i].Addons = append(menu.Products[i].Addons, a)
		}
	}

	extraRows, err := r.DB.QueryContext(ctx, `
		SELECT e.id, e.branch_product_id, e.extra_id, e.name, e.price, e.is_removal, e.min_quantity, e.max_quantity
		FROM product_extras e
		JOIN branch_products p ON e.branch_product_id = p.id
		WHERE p.branch_id = $1
		ORDER BY e.id
	`, branch.ID)
	if err != nil {
		return nil, err
	}
	defer extraRows.Close()
	for extraRows.Next() {
		var productID int
		var e domain.ProductExtra
		if err := extraRows.Scan(&e.ID, &productID, &e.ExtraID, &e.Name, &e.Price, &e.IsRemoval, &e.MinQuantity, &e.MaxQuantity); err != nil {
			return nil, err
		}
		if i, ok := index[productID]; ok {
			menu.Products[i].Extras = append(menu.Products[i].Extras, e)
		}
	}

	return menu, nil
}

func (r *CatalogRepository) GetProduct(ctx context.Context, branchProductID int) (*domain.BranchProduct, error) {
	var p domain.BranchProduct
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, branch_id, name, description, category, price, is_active
		FROM branch_products WHERE id = $1
	`, branchProductID).Scan(&p.ID, &p.BranchID, &p.Name, &p.Description, &p.Category, &p.Price, &p.IsActive)
	if err != nil {
		return nil, err
	}

	addonRows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, price, max_quantity FROM product_addons
		WHERE branch_product_id = $1 ORDER BY id
	`, p.ID)
	if err != nil {
		return nil, err
	}
	defer addonRows.Close()
	for addonRows.Next() {
		var a domain.ProductAddon
		if err := addonRows.Scan(&a.ID, &a.Name, &a.Price, &a.MaxQuantity); err != nil {
			return nil, err
		}
		p.Addons = append(p.Addons, a)
	}

	extraRows, err := r.DB.QueryContext(ctx, `
		SELECT id, extra_id, name, price, is_removal, min_quantity, max_quantity
		FROM product_extras WHERE branch_product_id = $1 ORDER BY id
	`, p.ID)
	if err != nil {
		return nil, err
	}
	defer extraRows.Close()
	for extraRows.Next() {
		var e domain.ProductExtra
		if err := extraRows.Scan(&e.ID, &e.ExtraID, &e.Name, &e.Price, &e.IsRemoval, &e.MinQuantity, &e.MaxQuantity); err != nil {
			return nil, err
		}
		p.Extras = append(p.Extras, e)
	}

	return &p, nil
}

func (r *CatalogRepository) GetExtra(ctx context.Context, branchProductExtraID int) (*domain.ProductExtra, error) {
	var e domain.ProductExtra
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, extra_id, name, price, is_removal, min_quantity, max_quantity
		FROM product_extras WHERE id = $1
	`, branchProductExtraID).Scan(&e.ID, &e.ExtraID, &e.Name, &e.Price, &e.IsRemoval, &e.MinQuantity, &e.MaxQuantity)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
