package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worqely/internal/models"
)

func product(t *testing.T, id string) models.Product {
	t.Helper()
	p, ok := newCatalog().GetProductByID(id)
	require.True(t, ok, id)
	return p
}

func TestCartService_GetCart_CreatesEmptyCart(t *testing.T) {
	s := NewCartService()

	cart := s.GetCart("session-1")

	assert.Equal(t, "session-1", cart.SessionID)
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, s.ItemCount("session-1"))
}

func TestCartService_AddItem(t *testing.T) {
	s := NewCartService()
	drill := product(t, "drill-1")

	s.AddItem("session-1", drill, models.ModeRental, 3)
	cart := s.AddItem("session-1", drill, models.ModeRental, 3)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "1200", cart.Total().String())

	cart = s.AddItem("session-1", drill, models.ModePurchase, 0)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "3700", cart.Total().String())
	assert.Equal(t, 3, s.ItemCount("session-1"))
}

func TestCartService_AddItem_DefaultsToPurchase(t *testing.T) {
	s := NewCartService()

	cart := s.AddItem("session-1", product(t, "hammer-1"), "", 0)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, models.ModePurchase, cart.Lines[0].Mode)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	s := NewCartService()

	s.AddItem("a", product(t, "hammer-1"), models.ModePurchase, 0)

	assert.Equal(t, 1, s.ItemCount("a"))
	assert.True(t, s.GetCart("b").IsEmpty())
}

func TestCartService_ReturnedCartIsACopy(t *testing.T) {
	s := NewCartService()
	cart := s.AddItem("a", product(t, "hammer-1"), models.ModePurchase, 0)

	cart.Lines[0].Quantity = 99

	assert.Equal(t, 1, s.GetCart("a").Lines[0].Quantity)
}

func TestCartService_ChangeQuantity(t *testing.T) {
	s := NewCartService()
	s.AddItem("a", product(t, "hammer-1"), models.ModePurchase, 0)

	cart, err := s.ChangeQuantity("a", "hammer-1", models.ModePurchase, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Lines[0].Quantity)

	cart, err = s.ChangeQuantity("a", "hammer-1", "", -3)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_ChangeQuantity_Missing(t *testing.T) {
	s := NewCartService()

	_, err := s.ChangeQuantity("a", "hammer-1", models.ModePurchase, 1)
	assert.ErrorIs(t, err, ErrCartNotFound)

	s.AddItem("a", product(t, "drill-1"), models.ModeRental, 2)
	_, err = s.ChangeQuantity("a", "drill-1", models.ModePurchase, -1)
	assert.ErrorIs(t, err, ErrLineNotFound)

	cart := s.GetCart("a")
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCartService_ResetAndDetach(t *testing.T) {
	s := NewCartService()
	s.AddItem("a", product(t, "hammer-1"), models.ModePurchase, 0)
	s.AddItem("b", product(t, "vest-1"), models.ModePurchase, 0)

	s.Reset("a")
	assert.True(t, s.GetCart("a").IsEmpty())

	cart, ok := s.Detach("b")
	require.True(t, ok)
	assert.Len(t, cart.Lines, 1)
	assert.Zero(t, s.ItemCount("b"))

	_, ok = s.Detach("b")
	assert.False(t, ok)
}

func TestCartService_ConcurrentAdds(t *testing.T) {
	s := NewCartService()
	hammer := product(t, "hammer-1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddItem("a", hammer, models.ModePurchase, 0)
		}()
	}
	wg.Wait()

	cart := s.GetCart("a")
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 50, cart.Lines[0].Quantity)
}
