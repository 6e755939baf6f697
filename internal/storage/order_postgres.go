package storage

import (
	"context"
	"database/sql"
	"strconv"

	"online-ordering/internal/domain"
)

// OrderRepository owns order types and placed orders. Row versions are
// exposed to clients as opaque strings and kept as bigints here; an update
// whose version no longer matches affects zero rows and surfaces as
// sql.ErrNoRows for the service layer to classify.
type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) ListOrderTypes(ctx context.Context) ([]domain.OrderType, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, code, is_active, requires_name, requires_table, requires_address, requires_phone,
		       min_order_amount, service_charge, estimated_minutes, row_version
		FROM order_types ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.OrderType
	for rows.Next() {
		ot, err := scanOrderType(rows.Scan)
		if err != nil {
			return nil, err
		}
		types = append(types, *ot)
	}
	return types, rows.Err()
}

func (r *OrderRepository) GetOrderType(ctx context.Context, id int) (*domain.OrderType, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, name, code, is_active, requires_name, requires_table, requires_address, requires_phone,
		       min_order_amount, service_charge, estimated_minutes, row_version
		FROM order_types WHERE id = $1
	`, id)
	return scanOrderType(row.Scan)
}

func scanOrderType(scan func(...interface{}) error) (*domain.OrderType, error) {
	var ot domain.OrderType
	var version int64
	err := scan(&ot.ID, &ot.Name, &ot.Code, &ot.IsActive, &ot.RequiresName, &ot.RequiresTable,
		&ot.RequiresAddress, &ot.RequiresPhone, &ot.MinOrderAmount, &ot.ServiceCharge,
		&ot.EstimatedMinutes, &version)
	if err != nil {
		return nil, err
	}
	ot.RowVersion = strconv.FormatInt(version, 10)
	return &ot, nil
}

func (r *OrderRepository) UpdateOrderType(ctx context.Context, ot *domain.OrderType) error {
	version, err := strconv.ParseInt(ot.RowVersion, 10, 64)
	if err != nil {
		return sql.ErrNoRows
	}
	result, err := r.DB.ExecContext(ctx, `
		UPDATE order_types
		SET name = $1, code = $2, is_active = $3, requires_name = $4, requires_table = $5,
		    requires_address = $6, requires_phone = $7, min_order_amount = $8, service_charge = $9,
		    estimated_minutes = $10, row_version = row_version + 1
		WHERE id = $11 AND row_version = $12
	`, ot.Name, ot.Code, ot.IsActive, ot.RequiresName, ot.RequiresTable, ot.RequiresAddress,
		ot.RequiresPhone, ot.MinOrderAmount, ot.ServiceCharge, ot.EstimatedMinutes, ot.ID, version)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *OrderRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (branch_id, order_type_id, customer_name, table_number, delivery_address,
		                    customer_phone, payment_method, service_charge, total_amount, status, whatsapp_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`, order.BranchID, order.OrderTypeID, order.CustomerName, order.TableNumber, order.DeliveryAddress,
		order.CustomerPhone, order.PaymentMethod, order.ServiceCharge, order.TotalAmount,
		order.Status, order.WhatsappLink).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, branch_product_id, product_name, unit_price, quantity, total_price)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, order.ID, item.BranchProductID, item.ProductName, item.Price, item.Quantity, item.TotalPrice).Scan(&item.ID)
		if err != nil {
			return err
		}
		for _, a := range item.Addons {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO order_item_addons (order_item_id, name, unit_price, quantity)
				VALUES ($1, $2, $3, $4)
			`, item.ID, a.Name, a.Price, a.Quantity)
			if err != nil {
				return err
			}
		}
		for _, e := range item.Extras {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO order_item_extras (order_item_id, name, unit_price, quantity, is_removal)
				VALUES ($1, $2, $3, $4, $5)
			`, item.ID, e.Name, e.Price, e.Quantity, e.IsRemoval)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

func (r *OrderRepository) GetOrderQRCode(ctx context.Context, orderID int) ([]byte, string, error) {
	var png []byte
	var link string
	err := r.DB.QueryRowContext(ctx, `
		SELECT qr_code, COALESCE(whatsapp_link, '') FROM orders WHERE id = $1
	`, orderID).Scan(&png, &link)
	return png, link, err
}

func (r *OrderRepository) StoreOrderQRCode(ctx context.Context, orderID int, png []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, png, orderID)
	return err
}
