// Package catalog provides the static product catalog for shopfront.
package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Product is a single purchasable item. Instances are created once at
// startup and never mutated; callers must treat them as read-only.
// The json tags define the persisted snapshot shape.
type Product struct {
	ID       int     `json:"id" validate:"required,gt=0"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category" validate:"required"`
	Image    string  `json:"image" validate:"omitempty,url"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
	Stock    int     `json:"stock" validate:"gte=0"`
}

// Products returns the bundled catalog. The returned slice is shared;
// callers must not modify it.
func Products() []Product {
	return products
}

// Validate checks every catalog entry against its field constraints and
// rejects duplicate ids. A failure here means the bundled data is broken
// and is treated as a fatal startup error by the caller.
func Validate(items []Product) error {
	v := validator.New()
	seen := make(map[int]struct{}, len(items))
	for i, p := range items {
		if err := v.Struct(p); err != nil {
			return fmt.Errorf("catalog entry %d (id %d): %w", i, p.ID, err)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("catalog entry %d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// Categories returns "All" followed by each distinct category in
// first-appearance order.
func Categories(items []Product) []string {
	out := []string{"All"}
	seen := make(map[string]struct{}, 8)
	for _, p := range items {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
