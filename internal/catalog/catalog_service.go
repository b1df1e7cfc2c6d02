package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=catalogmock

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]ProductView, error)
	BySlug(ctx context.Context, slug string) (ProductView, error)

	// DecrementStock is called by the order-events consumer after an
	// order is placed.
	DecrementStock(ctx context.Context, productID, variantID string, quantity int64) error
}

// ListFilter narrows the catalog listing. Zero value lists everything.
type ListFilter struct {
	Category   string
	Tag        string
	Featured   bool
	BestSeller bool
	New        bool
}

type Deps struct {
	Repo   Repository
	Logger *zap.Logger
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("catalog: Repo is required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{repo: deps.Repo, logger: deps.Logger}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]ProductView, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		if !matches(p, filter) {
			continue
		}
		views = append(views, toView(p))
	}
	return views, nil
}

func (s *service) BySlug(ctx context.Context, slug string) (ProductView, error) {
	p, err := s.repo.BySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return ProductView{}, err
	}
	return toView(p), nil
}

func (s *service) DecrementStock(ctx context.Context, productID, variantID string, quantity int64) error {
	if err := s.repo.DecrementStock(ctx, productID, variantID, quantity); err != nil {
		return err
	}

	s.logger.Info("stock decremented",
		zap.String("product_id", productID),
		zap.String("variant_id", variantID),
		zap.Int64("quantity", quantity),
	)
	return nil
}

func matches(p Product, f ListFilter) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Featured && !p.IsFeatured {
		return false
	}
	if f.BestSeller && !p.IsBestSeller {
		return false
	}
	if f.New && !p.IsNew {
		return false
	}
	if f.Tag != "" {
		found := false
		for _, tag := range p.Tags {
			if strings.EqualFold(tag, f.Tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func toView(p Product) ProductView {
	views := make([]VariantView, len(p.Variants))
	for i, v := range p.Variants {
		views[i] = View(v)
	}
	return ProductView{Product: p, Variants: views}
}
