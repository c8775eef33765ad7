package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artifyai/storefront/internal/apperror"
	"github.com/artifyai/storefront/internal/model"
)

func (db *DB) CreateOrder(ctx context.Context, in model.InsertOrder) (*model.Order, error) {
	status := in.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	createdAt := time.Now()
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO orders (user_id, artwork_id, size, frame, price, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.ArtworkID, in.Size, in.Frame, in.Price, status, createdAt)
	if err != nil {
		return nil, fmt.Errorf("sqlite: creating order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading order id: %w", err)
	}

	return &model.Order{
		ID:        int(id),
		UserID:    in.UserID,
		ArtworkID: in.ArtworkID,
		Size:      in.Size,
		Frame:     in.Frame,
		Price:     in.Price,
		Status:    status,
		CreatedAt: createdAt,
	}, nil
}

func (db *DB) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	var order model.Order
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, user_id, artwork_id, size, frame, price, status, created_at
		 FROM orders WHERE id = ?`,
		id,
	).Scan(&order.ID, &order.UserID, &order.ArtworkID, &order.Size,
		&order.Frame, &order.Price, &order.Status, &order.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("order", id)
		}
		return nil, fmt.Errorf("sqlite: getting order %d: %w", id, err)
	}
	return &order, nil
}

func (db *DB) GetUserOrders(ctx context.Context, userID int) ([]model.Order, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, artwork_id, size, frame, price, status, created_at
		 FROM orders WHERE user_id = ? ORDER BY id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: querying orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var order model.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.ArtworkID, &order.Size,
			&order.Frame, &order.Price, &order.Status, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating orders: %w", err)
	}
	return orders, nil
}
