package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"miniattic-api/internal/dto"
	"miniattic-api/internal/model"
)

// Interfaz que debe implementar repository
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByAccount(ctx context.Context, account string) ([]model.Order, error)
	FindByAccountAndItem(ctx context.Context, account, item string) ([]model.Order, error)
	Update(ctx context.Context, item string, patch model.OrderPatch) (*model.Order, error)
	Delete(ctx context.Context, item string) (*model.Order, error)
}

// ProductReader es la única parte del catálogo que usan las órdenes.
type ProductReader interface {
	FindAll(ctx context.Context) ([]model.Product, error)
}

// EventPublisher avisa a otros servicios. Puede ser nil.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o *model.Order) error
}

type PlaceOrderInput struct {
	Products []model.LineItem
	Payment  model.OrderPayment
	Remark   string
}

type OrderService struct {
	orders    OrderRepository
	products  ProductReader
	events    EventPublisher
	logger    *zap.Logger
	imageBase string
	newID     func() (string, error)
}

func NewOrderService(orders OrderRepository, products ProductReader, events EventPublisher, logger *zap.Logger, imageBase string) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		events:    events,
		logger:    logger,
		imageBase: imageBase,
		newID:     newOrderID,
	}
}

// UUIDv7: ordenado por tiempo como el id original, pero sin colisiones.
func newOrderID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// PlaceOrder valida, persiste una vez y publica el evento. Los precios no se copian:
// se resuelven al leer.
func (s *OrderService) PlaceOrder(ctx context.Context, viewer Viewer, in PlaceOrderInput) (*model.Order, error) {
	items, err := ValidateLineItems(in.Products)
	if err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, persistence("generate order id", err)
	}

	o := &model.Order{
		Item:     id,
		Account:  viewer.Account,
		Products: items,
		Payment:  in.Payment,
		Remark:   in.Remark,
		Status:   model.OrderPlaced,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, persistence("create order", err)
	}

	if s.events != nil {
		// La orden ya existe; un fallo acá sólo se registra.
		if err := s.events.PublishOrderPlaced(ctx, o); err != nil {
			s.logger.Warn("publish order_placed failed", zap.String("order", o.Item), zap.Error(err))
		}
	}

	return o, nil
}

// ListOrders: el admin ve todo, el resto sólo lo suyo. El filtro va antes del join.
func (s *OrderService) ListOrders(ctx context.Context, viewer Viewer) ([]dto.OrderView, error) {
	orders, snap, err := s.load(ctx, func(ctx context.Context) ([]model.Order, error) {
		if viewer.IsAdmin() {
			return s.orders.FindAll(ctx)
		}
		return s.orders.FindByAccount(ctx, viewer.Account)
	})
	if err != nil {
		return nil, err
	}

	return s.project(orders, snap, viewer.Role), nil
}

// GetOrder siempre filtra por la cuenta del que pide; una orden ajena da lista vacía.
func (s *OrderService) GetOrder(ctx context.Context, viewer Viewer, item string) ([]dto.OrderView, error) {
	orders, snap, err := s.load(ctx, func(ctx context.Context) ([]model.Order, error) {
		return s.orders.FindByAccountAndItem(ctx, viewer.Account, item)
	})
	if err != nil {
		return nil, err
	}

	return s.project(orders, snap, RoleCustomer), nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, item string, patch model.OrderPatch) (*model.Order, error) {
	o, err := s.orders.Update(ctx, item, patch)
	if err != nil {
		return nil, classify("update order", err)
	}
	return o, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, item string) (*model.Order, error) {
	o, err := s.orders.Delete(ctx, item)
	if err != nil {
		return nil, classify("delete order", err)
	}
	return o, nil
}

// load trae órdenes y catálogo en paralelo; no dependen entre sí.
func (s *OrderService) load(ctx context.Context, find func(context.Context) ([]model.Order, error)) ([]model.Order, CatalogSnapshot, error) {
	var (
		orders   []model.Order
		products []model.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = find(gctx)
		return persistence("find orders", err)
	})
	g.Go(func() error {
		var err error
		products, err = s.products.FindAll(gctx)
		return persistence("find products", err)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return orders, NewCatalogSnapshot(products, s.imageBase, s.logger), nil
}

func (s *OrderService) project(orders []model.Order, snap CatalogSnapshot, role Role) []dto.OrderView {
	out := make([]dto.OrderView, 0, len(orders))
	for _, o := range orders {
		e := Enrich(o, snap)
		if missing := e.MissingProducts(); len(missing) > 0 {
			s.logger.Warn("order references deleted products",
				zap.String("order", o.Item), zap.Strings("products", missing))
		}
		out = append(out, Project(e, role))
	}
	return out
}
