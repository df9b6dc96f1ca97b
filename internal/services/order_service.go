package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"worqely/internal/models"
)

type OrderService struct {
	mu          sync.RWMutex
	orders      map[string]*models.Order // order_id -> order
	userOrders  map[string][]string      // user_id -> order_ids, oldest first
	cartService *CartService

	// Statistics for monitoring
	stats struct {
		sync.RWMutex
		totalOrders     int64
		failedCheckouts int64
		revenue         decimal.Decimal
	}
}

func NewOrderService(cartService *CartService) *OrderService {
	return &OrderService{
		orders:      make(map[string]*models.Order),
		userOrders:  make(map[string][]string),
		cartService: cartService,
	}
}

// Checkout turns the session's cart into an order for userID and empties the
// cart. Payment is simulated: the order is recorded as placed.
func (s *OrderService) Checkout(sessionID, userID string) (*models.Order, error) {
	cart, exists := s.cartService.Detach(sessionID)
	if !exists || cart.IsEmpty() {
		s.stats.Lock()
		s.stats.failedCheckouts++
		s.stats.Unlock()
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, models.OrderItem{
			ProductID:  line.Product.ID,
			Name:       line.Product.Name,
			Mode:       line.Mode,
			RentalDays: line.RentalDays,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice(),
			LineTotal:  line.Total(),
		})
	}

	order := &models.Order{
		ID:        "order_" + uuid.NewString(),
		UserID:    userID,
		Items:     items,
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(),
		Status:    models.OrderStatusPlaced,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.orders[order.ID] = order
	s.userOrders[userID] = append(s.userOrders[userID], order.ID)
	s.mu.Unlock()

	s.stats.Lock()
	s.stats.totalOrders++
	s.stats.revenue = s.stats.revenue.Add(order.Total)
	s.stats.Unlock()

	log.Printf("OrderService.Checkout - OrderID: %s, UserID: %s, Items: %d, Total: %s", order.ID, userID, order.ItemCount, order.Total)
	return copyOrder(order), nil
}

// History returns the user's orders, newest first.
func (s *OrderService) History(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.userOrders[userID]
	history := make([]models.Order, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		history = append(history, *copyOrder(s.orders[ids[i]]))
	}
	return history
}

// GetOrder returns the order if it belongs to userID.
func (s *OrderService) GetOrder(orderID, userID string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, exists := s.orders[orderID]
	if !exists || order.UserID != userID {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return copyOrder(order), nil
}

// UpdateStatus moves an order along the delivery track.
func (s *OrderService) UpdateStatus(orderID string, status models.OrderStatus) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, exists := s.orders[orderID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	order.Status = status
	return copyOrder(order), nil
}

func (s *OrderService) Stats() models.OrderStats {
	s.stats.RLock()
	defer s.stats.RUnlock()

	return models.OrderStats{
		TotalOrders:     s.stats.totalOrders,
		FailedCheckouts: s.stats.failedCheckouts,
		Revenue:         s.stats.revenue,
	}
}

func copyOrder(order *models.Order) *models.Order {
	c := *order
	c.Items = append([]models.OrderItem(nil), order.Items...)
	return &c
}
