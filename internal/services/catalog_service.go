package services

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService struct {
	products repository.ProductRepository
}

func NewCatalogService(products repository.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) List(ctx context.Context, query, category string) ([]domain.Product, error) {
	return s.products.FindAll(query, category)
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.products.Categories()
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) Create(ctx context.Context, p *domain.Product) error {
	if p.Category == "" {
		p.Category = "General"
	}
	return s.products.Save(p)
}

func (s *CatalogService) Update(ctx context.Context, p *domain.Product) error {
	existing, err := s.products.FindByID(p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	return s.products.Update(p)
}

func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	existing, err := s.products.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	return s.products.Delete(id)
}
