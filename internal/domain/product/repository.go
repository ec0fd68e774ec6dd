// internal/domain/product/repository.go
package product

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Repository is the in-memory catalog store. All access goes through its
// lock; stock for a given product can never be observed half-decremented.
type Repository struct {
	mu       sync.RWMutex
	products map[uint]*Product
	nextID   uint
}

// NewRepository creates an empty catalog store
func NewRepository() *Repository {
	return &Repository{
		products: make(map[uint]*Product),
		nextID:   1,
	}
}

// Get returns the product with the given ID
func (r *Repository) Get(id uint) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *p
	return &found, nil
}

// List returns all products sorted by ID
func (r *Repository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// ListByCategory returns all products in the given category, sorted by ID
func (r *Repository) ListByCategory(category string) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Product
	for _, p := range r.products {
		if p.Category == category {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Search returns products whose name or description contains the query,
// case-insensitive, sorted by ID
func (r *Repository) Search(query string) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	var result []Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Save stores the product, assigning an ID when it has none, and returns
// the stored copy
func (r *Repository) Save(p *Product) (*Product, error) {
	if p.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if p.Stock < 0 {
		return nil, ErrInvalidStock
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	stored := *p
	if stored.ID == 0 {
		stored.ID = r.nextID
		r.nextID++
		stored.CreatedAt = now
	} else if existing, ok := r.products[stored.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.products[stored.ID] = &stored
	result := stored
	return &result, nil
}

// Delete removes the product with the given ID
func (r *Repository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// DecrementStock atomically decrements stock for one product. It succeeds
// only when the product exists and has at least qty units; otherwise it
// leaves stock untouched and reports failure.
func (r *Repository) DecrementStock(id uint, qty int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return false
	}
	p.Stock -= qty
	p.UpdatedAt = time.Now().UTC()
	return true
}

// Reserve commits a multi-line stock reservation under a single lock
// acquisition. Every line is dry-run checked first; if any line cannot be
// satisfied no stock is mutated and an InsufficientStockError identifying
// the short product is returned.
func (r *Repository) Reserve(lines []Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range lines {
		p, ok := r.products[line.ProductID]
		if !ok {
			return &InsufficientStockError{ProductID: line.ProductID, Requested: line.Quantity}
		}
		if p.Stock < line.Quantity {
			return &InsufficientStockError{
				ProductID: line.ProductID,
				Requested: line.Quantity,
				Available: p.Stock,
			}
		}
	}

	now := time.Now().UTC()
	for _, line := range lines {
		p := r.products[line.ProductID]
		p.Stock -= line.Quantity
		p.UpdatedAt = now
	}
	return nil
}

// Seed loads the demo catalog used in development mode
func (r *Repository) Seed(log *logrus.Logger) {
	demo := []Product{
		{Name: "Laptop", Description: "High-performance laptop", Price: decimal.NewFromFloat(999.99), Stock: 10, Category: "Electronics", IsActive: true},
		{Name: "Mouse", Description: "Wireless mouse", Price: decimal.NewFromFloat(29.99), Stock: 50, Category: "Electronics", IsActive: true},
		{Name: "Keyboard", Description: "Mechanical keyboard", Price: decimal.NewFromFloat(79.99), Stock: 30, Category: "Electronics", IsActive: true},
		{Name: "Monitor", Description: "27-inch 4K monitor", Price: decimal.NewFromFloat(399.99), Stock: 15, Category: "Electronics", IsActive: true},
		{Name: "Desk Chair", Description: "Ergonomic office chair", Price: decimal.NewFromFloat(299.99), Stock: 20, Category: "Furniture", IsActive: true},
	}

	for i := range demo {
		if _, err := r.Save(&demo[i]); err != nil {
			log.WithError(err).WithField("product", demo[i].Name).Warn("Failed to seed demo product")
		}
	}

	log.WithField("count", len(demo)).Info("Seeded demo catalog")
}
