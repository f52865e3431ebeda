package service

import (
	"context"
	"slices"

	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/serviceerrors"
)

type ProductService struct {
	catalog *domain.Catalog
}

func NewProductService(catalog *domain.Catalog) *ProductService {
	return &ProductService{catalog: catalog}
}

func (s *ProductService) Catalog() *domain.Catalog {
	return s.catalog
}

// Search filters the catalog by name. An empty query lists every product.
func (s *ProductService) Search(ctx context.Context, query string) []domain.Product {
	return slices.Collect(s.catalog.Filter(query))
}

func (s *ProductService) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	p, ok := s.catalog.Lookup(name)
	if !ok {
		return nil, serviceerrors.NewNotFoundError("product not found")
	}
	return &p, nil
}

func (s *ProductService) PaymentMethods(ctx context.Context) []domain.PaymentMethod {
	return domain.PaymentMethods()
}
