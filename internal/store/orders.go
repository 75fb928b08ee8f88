package store

import (
	"fmt"

	"sanctuary-api/internal/apierr"
	"sanctuary-api/internal/models"
)

const orderReceivedNote = "Order received and awaiting processing."

// fallback currency for orders with no line items
const defaultCurrency = "USD"

// Orders returns clones of every order.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.data.orders))
	for i, order := range s.data.orders {
		out[i] = order.Clone()
	}
	return out
}

func orderTotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// CreateOrder validates the user and each requested line, decrements stock
// and bumps the sold metric per line in request order, snapshots the current
// price and currency into the line, and records the order with a pending
// timeline entry.
//
// Lines are applied as they are checked: if a later line fails, stock already
// taken by earlier lines in the same call is not restored.
func (s *Store) CreateOrder(userID string, lines []models.OrderLineRequest, address models.ShippingAddress, notes string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.findUser(userID)
	if err != nil {
		return models.Order{}, err
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		product := s.findProduct(line.ProductID)
		if product == nil {
			return models.Order{}, apierr.NotFound(apierr.KindProductNotFound, fmt.Sprintf("Product %s not found", line.ProductID))
		}

		if product.Stock < line.Quantity {
			return models.Order{}, apierr.New(409, apierr.KindInsufficientStock, fmt.Sprintf("Insufficient stock for %s", product.Name))
		}

		product.Stock -= line.Quantity
		product.Metrics.Sold += line.Quantity

		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Currency:  product.Currency,
		})
	}

	currency := defaultCurrency
	if len(items) > 0 {
		currency = items[0].Currency
	}

	now := s.now()
	order := models.Order{
		ID:              s.newID("order"),
		UserID:          user.ID,
		Items:           items,
		Status:          models.OrderStatusPending,
		TotalAmount:     orderTotal(items),
		Currency:        currency,
		CreatedAt:       now,
		UpdatedAt:       now,
		ShippingAddress: address,
		Notes:           notes,
		Timeline: []models.OrderTimelineEvent{
			{Status: models.OrderStatusPending, OccurredAt: now, Note: orderReceivedNote},
		},
	}

	s.data.orders = append([]models.Order{order}, s.data.orders...)
	return order.Clone(), nil
}

// UpdateOrderStatus appends a timeline entry and re-derives the total from
// the current line items. Transitions are not validated; any status may
// follow any other.
func (s *Store) UpdateOrderStatus(id, status, note string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.orders {
		if s.data.orders[i].ID != id {
			continue
		}

		order := &s.data.orders[i]
		now := s.now()
		order.Status = status
		order.Timeline = append(order.Timeline, models.OrderTimelineEvent{
			Status:     status,
			Note:       note,
			OccurredAt: now,
		})
		order.TotalAmount = orderTotal(order.Items)
		order.UpdatedAt = now

		return order.Clone(), nil
	}

	return models.Order{}, apierr.NotFound(apierr.KindOrderNotFound, fmt.Sprintf("Order %s not found", id))
}

// DeleteOrder removes an order by ID.
func (s *Store) DeleteOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.orders {
		if s.data.orders[i].ID == id {
			s.data.orders = append(s.data.orders[:i], s.data.orders[i+1:]...)
			return nil
		}
	}
	return apierr.NotFound(apierr.KindOrderNotFound, fmt.Sprintf("Order %s not found", id))
}

// findUser and findProduct return owned references; callers must hold the
// store lock.
func (s *Store) findUser(id string) (*models.User, error) {
	for i := range s.data.users {
		if s.data.users[i].ID == id {
			return &s.data.users[i], nil
		}
	}
	return nil, apierr.NotFound(apierr.KindUserNotFound, fmt.Sprintf("User %s not found", id))
}

func (s *Store) findProduct(id string) *models.Product {
	for i := range s.data.products {
		if s.data.products[i].ID == id {
			return &s.data.products[i]
		}
	}
	return nil
}
