package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/artifyai/storefront/internal/model"
	"github.com/artifyai/storefront/internal/repository"
)

// OrderService handles print order creation and per-user order history.
type OrderService struct {
	store    repository.Storage
	validate *validator.Validate
	logger   *slog.Logger
}

func NewOrderService(store repository.Storage, logger *slog.Logger) *OrderService {
	return &OrderService{
		store:    store,
		validate: newValidator(),
		logger:   logger,
	}
}

// Create validates and stores a new order. Status defaults to "pending"
// when the payload omits it.
func (s *OrderService) Create(ctx context.Context, in model.InsertOrder) (*model.Order, error) {
	if err := validatePayload(s.validate, in, "Invalid order data"); err != nil {
		return nil, err
	}

	order, err := s.store.CreateOrder(ctx, in)
	if err != nil {
		s.logger.Error("failed to create order",
			slog.Int("userId", in.UserID),
			slog.Int("artworkId", in.ArtworkID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating order: %w", err)
	}

	s.logger.Info("order created",
		slog.Int("id", order.ID),
		slog.Int("userId", order.UserID),
		slog.Int("price", order.Price),
		slog.String("status", order.Status),
	)
	return order, nil
}

// UserOrders returns all orders placed by a user, oldest first.
func (s *OrderService) UserOrders(ctx context.Context, userID int) ([]model.Order, error) {
	orders, err := s.store.GetUserOrders(ctx, userID)
	if err != nil {
		s.logger.Error("failed to fetch orders",
			slog.Int("userId", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("fetching orders: %w", err)
	}
	return orders, nil
}
