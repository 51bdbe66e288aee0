package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"miniattic-api/internal/dto"
	"miniattic-api/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, item string, p model.Product) (*model.Product, error)
	SetImage(ctx context.Context, item, img string) error
	Delete(ctx context.Context, item string) (*model.Product, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	FindAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, item string, c model.Category) (*model.Category, error)
	Delete(ctx context.Context, item string) (*model.Category, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
	FindAll(ctx context.Context) ([]model.Payment, error)
	Update(ctx context.Context, item string, p model.Payment) (*model.Payment, error)
	Delete(ctx context.Context, item string) (*model.Payment, error)
}

// CatalogService: CRUD de productos, categorías y medios de pago.
type CatalogService struct {
	products   ProductRepository
	categories CategoryRepository
	payments   PaymentRepository
	imageBase  string
}

func NewCatalogService(products ProductRepository, categories CategoryRepository, payments PaymentRepository, imageBase string) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		payments:   payments,
		imageBase:  imageBase,
	}
}

// ImageURL antepone la base pública a la ruta guardada.
func ImageURL(base, img string) string {
	if img == "" || strings.HasPrefix(img, "http://") || strings.HasPrefix(img, "https://") {
		return img
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(img, "/")
}

func (s *CatalogService) ProductView(p model.Product) dto.ProductView {
	return dto.ProductView{
		Item:        p.Item,
		Src:         ImageURL(s.imageBase, p.Img),
		Class:       p.Class,
		Name:        p.Name,
		Show:        p.Show,
		Subheading:  p.Subheading,
		Intro:       p.Intro,
		Price:       p.Price,
		Description: p.Description,
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	if _, err := parsePrice(p.Price); err != nil {
		return nil, ErrInvalidPrice
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, persistence("generate product id", err)
	}
	p.Item = id.String()
	if err := s.products.Create(ctx, &p); err != nil {
		return nil, classify("create product", err)
	}
	return &p, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]dto.ProductView, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, persistence("find products", err)
	}
	out := make([]dto.ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, s.ProductView(p))
	}
	return out, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, item string, p model.Product) (*model.Product, error) {
	if _, err := parsePrice(p.Price); err != nil {
		return nil, ErrInvalidPrice
	}
	res, err := s.products.Update(ctx, item, p)
	return res, classify("update product", err)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, item string) (*model.Product, error) {
	res, err := s.products.Delete(ctx, item)
	return res, classify("delete product", err)
}

func (s *CatalogService) CreateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	if err := s.categories.Create(ctx, &c); err != nil {
		return nil, classify("create category", err)
	}
	return &c, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	res, err := s.categories.FindAll(ctx)
	return res, persistence("find categories", err)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, item string, c model.Category) (*model.Category, error) {
	res, err := s.categories.Update(ctx, item, c)
	return res, classify("update category", err)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, item string) (*model.Category, error) {
	res, err := s.categories.Delete(ctx, item)
	return res, classify("delete category", err)
}

func (s *CatalogService) CreatePayment(ctx context.Context, p model.Payment) (*model.Payment, error) {
	if err := s.payments.Create(ctx, &p); err != nil {
		return nil, classify("create payment", err)
	}
	return &p, nil
}

func (s *CatalogService) ListPayments(ctx context.Context) ([]model.Payment, error) {
	res, err := s.payments.FindAll(ctx)
	return res, persistence("find payments", err)
}

func (s *CatalogService) UpdatePayment(ctx context.Context, item string, p model.Payment) (*model.Payment, error) {
	res, err := s.payments.Update(ctx, item, p)
	return res, classify("update payment", err)
}

func (s *CatalogService) DeletePayment(ctx context.Context, item string) (*model.Payment, error) {
	res, err := s.payments.Delete(ctx, item)
	return res, classify("delete payment", err)
}
