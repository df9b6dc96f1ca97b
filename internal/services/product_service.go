package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"worqely/internal/models"
)

const unsplash = "https://images.unsplash.com/"

type ProductService struct {
	mu       sync.RWMutex
	products map[string]*models.Product
	order    []string // insertion order, used for listing
}

func NewProductService() *ProductService {
	return &ProductService{
		products: make(map[string]*models.Product),
	}
}

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func perDay(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func image(photo string) string {
	return unsplash + photo + "?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&w=400"
}

// InitSampleData seeds the merchandise catalog shown in the customer dashboard.
func (s *ProductService) InitSampleData() {
	s.Load([]models.Product{
		{ID: "drill-1", Name: "Heavy Duty Drill Machine", Category: models.CategoryTools, Price: money(2500), RentPrice: perDay(200), Image: image("photo-1572981779307-38b8cabb2407"), Description: "Professional grade drill machine suitable for construction work", InStock: true, Rating: 4.5, Reviews: 124, IsRental: true},
		{ID: "hammer-1", Name: "Steel Claw Hammer", Category: models.CategoryTools, Price: money(450), Image: image("photo-1609205807107-e0be36c5c432"), Description: "Durable steel hammer for construction and repair work", InStock: true, Rating: 4.7, Reviews: 89},
		{ID: "screwdriver-set", Name: "Professional Screwdriver Set", Category: models.CategoryTools, Price: money(650), Image: image("photo-1609547203525-26ce4a6b04cb"), Description: "Complete set of screwdrivers for electrical and mechanical work", InStock: true, Rating: 4.3, Reviews: 67},
		{ID: "ladder-1", Name: "Aluminum Step Ladder", Category: models.CategoryTools, Price: money(3200), RentPrice: perDay(150), Image: image("photo-1607472586893-edb57bdc0e39"), Description: "6-step aluminum ladder for safe height work", InStock: true, Rating: 4.6, Reviews: 156, IsRental: true},
		{ID: "cutter-1", Name: "Angle Grinder Cutter", Category: models.CategoryTools, Price: money(1800), RentPrice: perDay(120), Image: image("photo-1617469165786-8007eda82c84"), Description: "Heavy duty angle grinder for cutting and grinding", InStock: true, Rating: 4.4, Reviews: 93, IsRental: true},

		{ID: "helmet-1", Name: "Safety Hard Hat", Category: models.CategorySafety, Price: money(280), Image: image("photo-1631370509165-d0dd14fa6e21"), Description: "ANSI approved safety helmet for construction sites", InStock: true, Rating: 4.8, Reviews: 245},
		{ID: "gloves-1", Name: "Work Safety Gloves", Category: models.CategorySafety, Price: money(120), Image: image("photo-1607116814929-aff4ce3d0d6f"), Description: "Cut-resistant work gloves for hand protection", InStock: true, Rating: 4.5, Reviews: 187},
		{ID: "vest-1", Name: "High Visibility Safety Vest", Category: models.CategorySafety, Price: money(180), Image: image("photo-1582747043124-4eff24c7c3dd"), Description: "Reflective safety vest for high visibility work", InStock: true, Rating: 4.6, Reviews: 156},
		{ID: "boots-1", Name: "Steel Toe Safety Boots", Category: models.CategorySafety, Price: money(850), Image: image("photo-1606190858648-e6e271735ac7"), Description: "Heavy duty steel toe boots for foot protection", InStock: true, Rating: 4.7, Reviews: 298},

		{ID: "water-bottle", Name: "Insulated Water Bottle", Category: models.CategoryEssentials, Price: money(350), Image: image("photo-1556909114-f6e7ad7d3136"), Description: "Keep water cool during long work hours", InStock: true, Rating: 4.4, Reviews: 87},
		{ID: "lunch-box", Name: "Stainless Steel Lunch Box", Category: models.CategoryEssentials, Price: money(450), Image: image("photo-1596040435569-77eebca74ae4"), Description: "Durable lunch box for daily meals", InStock: true, Rating: 4.6, Reviews: 134},
		{ID: "first-aid", Name: "Basic First Aid Kit", Category: models.CategoryEssentials, Price: money(280), Image: image("photo-1603398938253-11e8b2a3e9dc"), Description: "Essential first aid supplies for workplace safety", InStock: true, Rating: 4.7, Reviews: 98},
	})
}

// Load replaces the catalog.
func (s *ProductService) Load(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make(map[string]*models.Product, len(products))
	s.order = s.order[:0]
	for i := range products {
		p := products[i]
		if _, dup := s.products[p.ID]; !dup {
			s.order = append(s.order, p.ID)
		}
		s.products[p.ID] = &p
	}
}

// ListProducts returns the products shown under a catalog tab. The rental tab
// lists every rental-eligible product; an empty category lists everything.
func (s *ProductService) ListProducts(category models.Category) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match func(p *models.Product) bool
	switch category {
	case "":
		match = func(*models.Product) bool { return true }
	case models.CategoryRental:
		match = func(p *models.Product) bool { return p.IsRental }
	case models.CategoryTools, models.CategorySafety, models.CategoryEssentials:
		match = func(p *models.Product) bool { return p.Category == category }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	products := []models.Product{}
	for _, id := range s.order {
		if p := s.products[id]; match(p) {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (s *ProductService) GetProductByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[id]
	if !exists {
		return models.Product{}, false
	}
	return *product, true
}

// SearchProducts matches query case-insensitively against name and
// description within a catalog tab.
func (s *ProductService) SearchProducts(query string, category models.Category) ([]models.Product, error) {
	products, err := s.ListProducts(category)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products, nil
	}

	results := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			results = append(results, p)
		}
	}
	return results, nil
}

// Categories returns the catalog tabs in display order with their product
// counts. label resolves a tab's translation key.
func (s *ProductService) Categories(label func(key string) string) []models.CategoryTab {
	tabs := []struct {
		id  models.Category
		key string
	}{
		{models.CategoryTools, "categoryTools"},
		{models.CategorySafety, "categorySafety"},
		{models.CategoryEssentials, "categoryEssentials"},
		{models.CategoryRental, "categoryRental"},
	}

	result := make([]models.CategoryTab, 0, len(tabs))
	for _, tab := range tabs {
		products, _ := s.ListProducts(tab.id)
		result = append(result, models.CategoryTab{
			ID:    tab.id,
			Label: label(tab.key),
			Count: len(products),
		})
	}
	return result
}
