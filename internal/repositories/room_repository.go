package repositories

import (
	"context"

	"hotel-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	DB *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{DB: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (number, room_type_id, tariff, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(ctx, query,
		room.Number, room.RoomTypeID, room.Tariff, models.RoomAvailable,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
}

func (r *RoomRepository) Get(ctx context.Context, id int) (*models.Room, error) {
	query := `
		SELECT r.id, r.number, r.room_type_id, COALESCE(t.name, ''), r.tariff,
		       r.status, r.created_at, r.updated_at
		FROM rooms r
		LEFT JOIN room_types t ON r.room_type_id = t.id
		WHERE r.id = $1
	`
	room := &models.Room{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&room.ID, &room.Number, &room.RoomTypeID, &room.RoomType, &room.Tariff,
		&room.Status, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*models.Room, error) {
	query := `
		SELECT r.id, r.number, r.room_type_id, COALESCE(t.name, ''), r.tariff,
		       r.status, r.created_at, r.updated_at
		FROM rooms r
		LEFT JOIN room_types t ON r.room_type_id = t.id
		ORDER BY r.number
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room := &models.Room{}
		err := rows.Scan(
			&room.ID, &room.Number, &room.RoomTypeID, &room.RoomType, &room.Tariff,
			&room.Status, &room.CreatedAt, &room.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, id int, req *models.UpdateRoomRequest) error {
	query := `
		UPDATE rooms
		SET room_type_id = $1, tariff = $2, status = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`
	_, err := r.DB.Exec(ctx, query, req.RoomTypeID, req.Tariff, req.Status, id)
	return err
}

func (r *RoomRepository) SetStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE rooms SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		status, id)
	return err
}

func (r *RoomRepository) GetRoomType(ctx context.Context, id int) (*models.RoomType, error) {
	t := &models.RoomType{}
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, base_rate, additional_guest_charge FROM room_types WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Name, &t.BaseRate, &t.AdditionalGuestCharge)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *RoomRepository) ListRoomTypes(ctx context.Context) ([]*models.RoomType, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, base_rate, additional_guest_charge FROM room_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.RoomType
	for rows.Next() {
		t := &models.RoomType{}
		if err := rows.Scan(&t.ID, &t.Name, &t.BaseRate, &t.AdditionalGuestCharge); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
