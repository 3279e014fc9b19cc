package repositories

import (
	"context"

	"hotel-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FoodRepository struct {
	DB *pgxpool.Pool
}

func NewFoodRepository(db *pgxpool.Pool) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) CreateItem(ctx context.Context, item *models.FoodItem) error {
	return r.DB.QueryRow(ctx, `
		INSERT INTO food_items (name, category, price, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id, created_at
	`, item.Name, item.Category, item.Price).Scan(&item.ID, &item.CreatedAt)
}

func (r *FoodRepository) GetItem(ctx context.Context, id int) (*models.FoodItem, error) {
	item := &models.FoodItem{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, COALESCE(category, ''), price, is_active, created_at
		FROM food_items WHERE id = $1
	`, id).Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.IsActive, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *FoodRepository) ListItems(ctx context.Context) ([]*models.FoodItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, COALESCE(category, ''), price, is_active, created_at
		FROM food_items WHERE is_active ORDER BY category, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.FoodItem
	for rows.Next() {
		item := &models.FoodItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.IsActive, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// CreateOrder inserts an order with its lines in one transaction.
func (r *FoodRepository) CreateOrder(ctx context.Context, order *models.FoodOrder) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO food_orders (booking_id, status, total)
		VALUES ($1, $2, $3)
		RETURNING id, ordered_at
	`, order.BookingID, models.FoodOrderUnbilled, order.Total).Scan(&order.ID, &order.OrderedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO food_order_items (order_id, food_item_id, name, quantity, unit_price, line_total)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, order.ID, item.FoodItemID, item.Name, item.Quantity, item.UnitPrice, item.LineTotal).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListUnbilledByBooking returns the booking's food orders that have not yet
// appeared on any invoice, lines included.
func (r *FoodRepository) ListUnbilledByBooking(ctx context.Context, bookingID int) ([]*models.FoodOrder, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, booking_id, status, total, ordered_at
		FROM food_orders
		WHERE booking_id = $1 AND status = $2
		ORDER BY ordered_at
	`, bookingID, models.FoodOrderUnbilled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.FoodOrder
	for rows.Next() {
		o := &models.FoodOrder{}
		if err := rows.Scan(&o.ID, &o.BookingID, &o.Status, &o.Total, &o.OrderedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	rows.Close()

	for _, o := range orders {
		itemRows, err := r.DB.Query(ctx, `
			SELECT id, order_id, food_item_id, name, quantity, unit_price, line_total
			FROM food_order_items WHERE order_id = $1 ORDER BY id
		`, o.ID)
		if err != nil {
			return nil, err
		}
		for itemRows.Next() {
			var item models.FoodOrderItem
			if err := itemRows.Scan(&item.ID, &item.OrderID, &item.FoodItemID, &item.Name,
				&item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
				itemRows.Close()
				return nil, err
			}
			o.Items = append(o.Items, item)
		}
		itemRows.Close()
	}
	return orders, nil
}

// SumUnbilledByBooking returns the rupee total of orders not yet invoiced.
func (r *FoodRepository) SumUnbilledByBooking(ctx context.Context, bookingID int) (float64, error) {
	var sum float64
	err := r.DB.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0)
		FROM food_orders
		WHERE booking_id = $1 AND status = $2
	`, bookingID, models.FoodOrderUnbilled).Scan(&sum)
	return sum, err
}

// MarkBilled stamps all of a booking's unbilled orders as billed, once they
// have been folded into an invoice.
func (r *FoodRepository) MarkBilled(ctx context.Context, bookingID int) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE food_orders SET status = $1
		WHERE booking_id = $2 AND status = $3
	`, models.FoodOrderBilled, bookingID, models.FoodOrderUnbilled)
	return err
}
