package catalog

import (
	"context"
	"fmt"
	"sync"
)

//go:generate mockgen -source=catalog_repo.go -destination=../mock/catalog/catalog_repo_mock.go -package=catalogmock

// Repository is the catalog read store plus the one write the order
// pipeline needs.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	BySlug(ctx context.Context, slug string) (Product, error)
	ByID(ctx context.Context, id string) (Product, error)

	// DecrementStock reduces a variant's stock, flooring at zero.
	DecrementStock(ctx context.Context, productID, variantID string, quantity int64) error
}

// ErrProductNotFound is returned for unknown slugs and ids.
var ErrProductNotFound = fmt.Errorf("catalog: product not found")

// ErrVariantNotFound is returned when a stock mutation names an unknown
// variant.
var ErrVariantNotFound = fmt.Errorf("catalog: variant not found")

// memoryRepo keeps the catalog in process. The catalog is small and
// edited through deploys, so a database adds nothing here.
type memoryRepo struct {
	mu       sync.RWMutex
	products []Product
	bySlug   map[string]int
	byID     map[string]int
}

// NewMemoryRepository builds a repository over the given products.
func NewMemoryRepository(products []Product) Repository {
	r := &memoryRepo{
		products: products,
		bySlug:   make(map[string]int, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		r.bySlug[p.Slug] = i
		r.byID[p.ID] = i
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.products))
	for i, p := range r.products {
		out[i] = copyProduct(p)
	}
	return out, nil
}

func (r *memoryRepo) BySlug(_ context.Context, slug string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.bySlug[slug]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return copyProduct(r.products[i]), nil
}

func (r *memoryRepo) ByID(_ context.Context, id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return copyProduct(r.products[i]), nil
}

func (r *memoryRepo) DecrementStock(_ context.Context, productID, variantID string, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[productID]
	if !ok {
		return ErrProductNotFound
	}

	for vi := range r.products[i].Variants {
		v := &r.products[i].Variants[vi]
		if v.ID != variantID {
			continue
		}
		v.Stock -= quantity
		if v.Stock < 0 {
			v.Stock = 0
		}
		return nil
	}
	return ErrVariantNotFound
}

func copyProduct(p Product) Product {
	out := p
	out.Variants = append([]Variant(nil), p.Variants...)
	out.Images = append([]string(nil), p.Images...)
	out.Features = append([]string(nil), p.Features...)
	out.Ingredients = append([]string(nil), p.Ingredients...)
	out.Certifications = append([]string(nil), p.Certifications...)
	out.Tags = append([]string(nil), p.Tags...)
	return out
}
