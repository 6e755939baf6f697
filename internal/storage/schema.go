package storage

import (
	"database/sql"
	"fmt"
)

// EnsureSchema applies idempotent DDL so a fresh database is usable without a
// separate migration step.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS branches (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			public_id TEXT UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS branch_products (
			id SERIAL PRIMARY KEY,
			branch_id INT NOT NULL REFERENCES branches(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT DEFAULT '',
			category TEXT DEFAULT '',
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS product_addons (
			id SERIAL PRIMARY KEY,
			branch_product_id INT NOT NULL REFERENCES branch_products(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			max_quantity INT NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS product_extras (
			id SERIAL PRIMARY KEY,
			branch_product_id INT NOT NULL REFERENCES branch_products(id) ON DELETE CASCADE,
			extra_id INT NOT NULL DEFAULT 0,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			is_removal BOOLEAN NOT NULL DEFAULT FALSE,
			min_quantity INT NOT NULL DEFAULT 0,
			max_quantity INT NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS baskets (
			id SERIAL PRIMARY KEY,
			session_id TEXT UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS basket_items (
			id SERIAL PRIMARY KEY,
			basket_id INT NOT NULL REFERENCES baskets(id) ON DELETE CASCADE,
			branch_product_id INT NOT NULL,
			product_name TEXT NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			quantity INT NOT NULL CHECK (quantity > 0)
		)`,
		`CREATE TABLE IF NOT EXISTS basket_item_addons (
			id SERIAL PRIMARY KEY,
			item_id INT NOT NULL REFERENCES basket_items(id) ON DELETE CASCADE,
			addon_branch_product_id INT NOT NULL,
			name TEXT NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			quantity INT NOT NULL CHECK (quantity > 0),
			max_quantity INT NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS basket_item_extras (
			id SERIAL PRIMARY KEY,
			item_id INT NOT NULL REFERENCES basket_items(id) ON DELETE CASCADE,
			branch_product_extra_id INT NOT NULL,
			extra_id INT NOT NULL DEFAULT 0,
			name TEXT NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			quantity INT NOT NULL CHECK (quantity > 0),
			is_removal BOOLEAN NOT NULL DEFAULT FALSE,
			min_quantity INT NOT NULL DEFAULT 0,
			max_quantity INT NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS order_types (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			code TEXT UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			requires_name BOOLEAN NOT NULL DEFAULT FALSE,
			requires_table BOOLEAN NOT NULL DEFAULT FALSE,
			requires_address BOOLEAN NOT NULL DEFAULT FALSE,
			requires_phone BOOLEAN NOT NULL DEFAULT FALSE,
			min_order_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			service_charge NUMERIC(10,2) NOT NULL DEFAULT 0,
			estimated_minutes INT NOT NULL DEFAULT 0,
			row_version BIGINT NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			branch_id INT NOT NULL,
			order_type_id INT NOT NULL,
			customer_name TEXT DEFAULT '',
			table_number TEXT DEFAULT '',
			delivery_address TEXT DEFAULT '',
			customer_phone TEXT DEFAULT '',
			payment_method TEXT DEFAULT '',
			service_charge NUMERIC(10,2) NOT NULL DEFAULT 0,
			total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'received',
			whatsapp_link TEXT DEFAULT '',
			qr_code BYTEA,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			branch_product_id INT NOT NULL,
			product_name TEXT NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			quantity INT NOT NULL,
			total_price NUMERIC(10,2) NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS order_item_addons (
			id SERIAL PRIMARY KEY,
			order_item_id INT NOT NULL REFERENCES order_items(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			quantity INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_item_extras (
			id SERIAL PRIMARY KEY,
			order_item_id INT NOT NULL REFERENCES order_items(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			quantity INT NOT NULL,
			is_removal BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS branch_preferences (
			branch_id INT PRIMARY KEY REFERENCES branches(id) ON DELETE CASCADE,
			accepts_cash BOOLEAN NOT NULL DEFAULT FALSE,
			accepts_card BOOLEAN NOT NULL DEFAULT FALSE,
			accepts_online_payment BOOLEAN NOT NULL DEFAULT FALSE,
			whatsapp_ordering_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			whatsapp_phone TEXT DEFAULT '',
			default_language TEXT DEFAULT 'en',
			default_currency TEXT DEFAULT 'USD',
			row_version BIGINT NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS restaurant_preferences (
			id INT PRIMARY KEY DEFAULT 1,
			restaurant_name TEXT DEFAULT '',
			default_language TEXT DEFAULT 'en',
			default_currency TEXT DEFAULT 'USD',
			time_zone TEXT DEFAULT 'UTC',
			row_version BIGINT NOT NULL DEFAULT 1
		)`,
		// Order types are edited through the dashboard but never created
		// there, so the standard set is seeded up front.
		`INSERT INTO order_types (name, code, is_active, requires_name, requires_table, requires_address, requires_phone)
			VALUES
				('Dine-in', 'dine_in', TRUE, FALSE, TRUE, FALSE, FALSE),
				('Pickup', 'pickup', TRUE, TRUE, FALSE, FALSE, TRUE),
				('Delivery', 'delivery', TRUE, TRUE, FALSE, TRUE, TRUE)
			ON CONFLICT (code) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
