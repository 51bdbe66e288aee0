package service

import (
	"context"

	"github.com/go-faster/errors"
	lru "github.com/hashicorp/golang-lru/v2"

	"miniattic-api/internal/dto"
	"miniattic-api/internal/model"
)

type PageRepository interface {
	FindAll(ctx context.Context) ([]model.Page, error)
	FindContaining(ctx context.Context, text string) ([]model.Page, error)
	FindByItem(ctx context.Context, item string) (*model.Page, error)
	Update(ctx context.Context, item string, p model.Page) (*model.Page, error)
	SetImage(ctx context.Context, item, img string) error
}

// PageService maneja el contenido estático. Las URLs de imagen de /img/:item
// pasan por un LRU acotado que se invalida al subir una imagen nueva.
type PageService struct {
	pages     PageRepository
	products  ProductRepository
	imageBase string
	images    *lru.Cache[string, string]
}

func NewPageService(pages PageRepository, products ProductRepository, imageBase string, cacheSize int) (*PageService, error) {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "image cache")
	}
	return &PageService{
		pages:     pages,
		products:  products,
		imageBase: imageBase,
		images:    cache,
	}, nil
}

func (s *PageService) view(p model.Page) dto.PageView {
	return dto.PageView{
		Item:         p.Item,
		Src:          ImageURL(s.imageBase, p.Img),
		Description1: p.Description1,
		Description2: p.Description2,
		Description3: p.Description3,
		Link:         p.Link,
		Show:         p.Show,
	}
}

func (s *PageService) views(pages []model.Page) []dto.PageView {
	out := make([]dto.PageView, 0, len(pages))
	for _, p := range pages {
		out = append(out, s.view(p))
	}
	return out
}

func (s *PageService) ListPages(ctx context.Context) ([]dto.PageView, error) {
	pages, err := s.pages.FindAll(ctx)
	if err != nil {
		return nil, persistence("find pages", err)
	}
	return s.views(pages), nil
}

// SearchPages devuelve las páginas cuyo item contiene condition.
func (s *PageService) SearchPages(ctx context.Context, condition string) ([]dto.PageView, error) {
	pages, err := s.pages.FindContaining(ctx, condition)
	if err != nil {
		return nil, persistence("search pages", err)
	}
	return s.views(pages), nil
}

func (s *PageService) UpdatePage(ctx context.Context, item string, p model.Page) (*model.Page, error) {
	res, err := s.pages.Update(ctx, item, p)
	return res, classify("update page", err)
}

// ImageFor resuelve la URL de la imagen de una página.
func (s *PageService) ImageFor(ctx context.Context, item string) (string, error) {
	if url, ok := s.images.Get(item); ok {
		return url, nil
	}

	p, err := s.pages.FindByItem(ctx, item)
	if err != nil {
		return "", classify("find page", err)
	}

	url := ImageURL(s.imageBase, p.Img)
	s.images.Add(item, url)
	return url, nil
}

// WebData: lo visible para el frontend, páginas y productos con show=true.
func (s *PageService) WebData(ctx context.Context, catalog *CatalogService) ([]dto.PageView, []dto.ProductView, error) {
	pages, err := s.pages.FindAll(ctx)
	if err != nil {
		return nil, nil, persistence("find pages", err)
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, nil, persistence("find products", err)
	}

	pv := make([]dto.PageView, 0, len(pages))
	for _, p := range pages {
		if p.Show {
			pv = append(pv, s.view(p))
		}
	}
	prv := make([]dto.ProductView, 0, len(products))
	for _, p := range products {
		if p.Show {
			prv = append(prv, catalog.ProductView(p))
		}
	}
	return pv, prv, nil
}

func (s *PageService) forgetImage(item string) {
	s.images.Remove(item)
}
