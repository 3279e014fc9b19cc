package repositories

import (
	"context"

	"hotel-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HotelSettingRepository struct {
	DB *pgxpool.Pool
}

func NewHotelSettingRepository(db *pgxpool.Pool) *HotelSettingRepository {
	return &HotelSettingRepository{DB: db}
}

// Get returns the hotel settings row. Single-tenant: the first row wins.
func (r *HotelSettingRepository) Get(ctx context.Context) (*models.HotelSettings, error) {
	query := `
		SELECT id, name, address, phone, COALESCE(email, ''), COALESCE(gstin, ''),
		       gst_percent, updated_at
		FROM hotel_settings
		ORDER BY id
		LIMIT 1
	`

	s := &models.HotelSettings{}
	err := r.DB.QueryRow(ctx, query).Scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &s.Email, &s.GSTIN,
		&s.GSTPercent, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Update writes the settings form; inserts the row when none exists yet.
func (r *HotelSettingRepository) Update(ctx context.Context, req *models.UpdateHotelSettingsRequest) error {
	query := `
		INSERT INTO hotel_settings (id, name, address, phone, email, gstin, gst_percent, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			gstin = EXCLUDED.gstin,
			gst_percent = EXCLUDED.gst_percent,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.DB.Exec(ctx, query,
		req.Name, req.Address, req.Phone, req.Email, req.GSTIN, req.GSTPercent)
	return err
}
