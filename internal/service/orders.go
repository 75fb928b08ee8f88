package service

import (
	"context"

	"sanctuary-api/internal/apierr"
	"sanctuary-api/internal/models"
	"sanctuary-api/internal/query"
	"sanctuary-api/internal/util"

	"go.uber.org/zap"
)

// FetchOrders lists orders. Without a token every matching order is visible
// (optionally narrowed by the query's userId); a non-admin token restricts
// the result to that user's own orders; an admin token sees everything.
func (s *Service) FetchOrders(ctx context.Context, q OrderQuery, token string) (query.Page[models.Order], error) {
	return run(ctx, s, "orders:list", map[string]any{"query": q}, func() (query.Page[models.Order], error) {
		orders := s.store.Orders()

		if token != "" {
			sess, err := s.sessions.Require(token)
			if err != nil {
				return query.Page[models.Order]{}, err
			}
			user, err := s.store.UserByID(sess.UserID)
			if err != nil {
				return query.Page[models.Order]{}, err
			}
			if user.Role != models.RoleAdmin {
				orders = query.Filter(orders, func(o models.Order) bool { return o.UserID == user.ID })
			}
		} else if q.UserID != "" {
			orders = query.Filter(orders, func(o models.Order) bool { return o.UserID == q.UserID })
		}

		var byStatus func(models.Order) bool
		if q.Status != "" {
			byStatus = func(o models.Order) bool { return o.Status == q.Status }
		}
		orders = query.Filter(orders, byStatus)

		query.SortStable(orders, func(a, b models.Order) bool { return a.CreatedAt.After(b.CreatedAt) })
		return query.Paginate(orders, q.Params), nil
	})
}

// CreateOrder places an order: stock is checked and decremented per line in
// request order, and the current product price is snapshotted into each line.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (models.Order, error) {
	return run(ctx, s, "orders:create", req, func() (models.Order, error) {
		order, err := s.store.CreateOrder(req.UserID, req.Items, req.ShippingAddress, req.Notes)
		if err != nil {
			reason := "error"
			if apiErr := apierr.As(err); apiErr != nil {
				reason = apiErr.Kind
			}
			util.OrdersFailedTotal.WithLabelValues(reason).Inc()
			return models.Order{}, err
		}

		util.OrdersCreatedTotal.Inc()
		s.logger.Info("Order created",
			zap.String("order_id", order.ID),
			zap.String("user_id", order.UserID),
			zap.Float64("total_amount", order.TotalAmount))
		return order, nil
	})
}

// UpdateOrderStatus appends a timeline entry and re-derives the order total.
func (s *Service) UpdateOrderStatus(ctx context.Context, id, status, note string) (models.Order, error) {
	payload := map[string]any{"id": id, "status": status, "note": note}
	return run(ctx, s, "orders:updateStatus", payload, func() (models.Order, error) {
		order, err := s.store.UpdateOrderStatus(id, status, note)
		if err != nil {
			return models.Order{}, err
		}

		s.logger.Info("Order status updated",
			zap.String("order_id", order.ID),
			zap.String("status", status))
		return order, nil
	})
}

// DeleteOrder removes an order.
func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	return runVoid(ctx, s, "orders:delete", map[string]any{"id": id}, func() error {
		return s.store.DeleteOrder(id)
	})
}
