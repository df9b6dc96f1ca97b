package services

import (
	"fmt"
	"log"
	"sync"

	"worqely/internal/models"
)

// CartService keeps one in-memory cart per session. Callers only ever see
// copies; the stored carts are mutated under mu.
type CartService struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart // session_id -> cart
}

func NewCartService() *CartService {
	return &CartService{
		carts: make(map[string]*models.Cart),
	}
}

// GetCart returns the session's cart, creating an empty one on first access.
func (s *CartService) GetCart(sessionID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cartLocked(sessionID).Clone()
}

// ItemCount is the cart badge count; zero for sessions without a cart.
func (s *CartService) ItemCount(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		return 0
	}
	return cart.ItemCount()
}

// AddItem adds one unit of product in the given mode. Availability and
// rental eligibility are checked by the caller.
func (s *CartService) AddItem(sessionID string, product models.Product, mode models.PurchaseMode, rentalDays int) *models.Cart {
	if mode == "" {
		mode = models.ModePurchase
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(sessionID)
	line := cart.AddItem(product, mode, rentalDays)
	log.Printf("CartService.AddItem - SessionID: %s, ProductID: %s, Mode: %s, Quantity: %d", sessionID, product.ID, mode, line.Quantity)

	return cart.Clone()
}

// ChangeQuantity adjusts the (product, mode) line by delta; a line driven to
// zero is removed. The cart is left untouched when the line does not exist.
func (s *CartService) ChangeQuantity(sessionID, productID string, mode models.PurchaseMode, delta int) (*models.Cart, error) {
	if mode == "" {
		mode = models.ModePurchase
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		return nil, ErrCartNotFound
	}

	if !cart.ChangeQuantity(productID, mode, delta) {
		return nil, fmt.Errorf("%w: %s (%s)", ErrLineNotFound, productID, mode)
	}
	log.Printf("CartService.ChangeQuantity - SessionID: %s, ProductID: %s, Mode: %s, Delta: %d, Lines: %d", sessionID, productID, mode, delta, len(cart.Lines))

	return cart.Clone(), nil
}

// Reset drops the session's cart.
func (s *CartService) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}

// Detach removes the session's cart and hands it to the caller. Checkout uses
// it so no line can be added between reading the cart and clearing it.
func (s *CartService) Detach(sessionID string) (*models.Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		return nil, false
	}
	delete(s.carts, sessionID)
	return cart, true
}

func (s *CartService) cartLocked(sessionID string) *models.Cart {
	cart, exists := s.carts[sessionID]
	if !exists {
		cart = models.NewCart(sessionID)
		s.carts[sessionID] = cart
	}
	return cart
}
