package storage

import (
	"context"
	"database/sql"
	"strconv"

	"online-ordering/internal/domain"
)

type PreferencesRepository struct {
	DB *sql.DB
}

func NewPreferencesRepository(db *sql.DB) *PreferencesRepository {
	return &PreferencesRepository{DB: db}
}

func (r *PreferencesRepository) GetBranchPreferences(ctx context.Context, branchID int) (*domain.BranchPreferences, error) {
	var p domain.BranchPreferences
	var version int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT branch_id, accepts_cash, accepts_card, accepts_online_payment,
		       whatsapp_ordering_enabled, whatsapp_phone, default_language, default_currency, row_version
		FROM branch_preferences WHERE branch_id = $1
	`, branchID).Scan(&p.BranchID, &p.AcceptsCash, &p.AcceptsCard, &p.AcceptsOnlinePayment,
		&p.WhatsappOrderingEnabled, &p.WhatsappPhone, &p.DefaultLanguage, &p.DefaultCurrency, &version)
	if err != nil {
		return nil, err
	}
	p.RowVersion = strconv.FormatInt(version, 10)
	return &p, nil
}

func (r *PreferencesRepository) UpdateBranchPreferences(ctx context.Context, p *domain.BranchPreferences) error {
	version, err := strconv.ParseInt(p.RowVersion, 10, 64)
	if err != nil {
		return sql.ErrNoRows
	}
	result, err := r.DB.ExecContext(ctx, `
		UPDATE branch_preferences
		SET accepts_cash = $1, accepts_card = $2, accepts_online_payment = $3,
		    whatsapp_ordering_enabled = $4, whatsapp_phone = $5, default_language = $6,
		    default_currency = $7, row_version = row_version + 1
		WHERE branch_id = $8 AND row_version = $9
	`, p.AcceptsCash, p.AcceptsCard, p.AcceptsOnlinePayment, p.WhatsappOrderingEnabled,
		p.WhatsappPhone, p.DefaultLanguage, p.DefaultCurrency, p.BranchID, version)
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

func (r *PreferencesRepository) GetRestaurantPreferences(ctx context.Context) (*domain.RestaurantPreferences, error) {
	var p domain.RestaurantPreferences
	var version int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_name, default_language, default_currency, time_zone, row_version
		FROM restaurant_preferences WHERE id = 1
	`).Scan(&p.ID, &p.RestaurantName, &p.DefaultLanguage, &p.DefaultCurrency, &p.TimeZone, &version)
	if err != nil {
		return nil, err
	}
	p.RowVersion = strconv.FormatInt(version, 10)
	return &p, nil
}

func (r *PreferencesRepository) UpdateRestaurantPreferences(ctx context.Context, p *domain.RestaurantPreferences) error {
	version, err := strconv.ParseInt(p.RowVersion, 10, 64)
	if err != nil {
		return sql.ErrNoRows
	}
	result, err := r.DB.ExecContext(ctx, `
		UPDATE restaurant_preferences
		SET restaurant_name = $1, default_language = $2, default_currency = $3,
		    time_zone = $4, row_version = row_version + 1
		WHERE id = 1 AND row_version = $5
	`, p.RestaurantName, p.DefaultLanguage, p.DefaultCurrency, p.TimeZone, version)
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
