package controller

import (
	"context"
	"sync"

	"miniattic-api/internal/model"
	"miniattic-api/internal/repository"
)

type fakeOrders struct {
	mu     sync.Mutex
	orders []model.Order
}

func (f *fakeOrders) Create(_ context.Context, o *model.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrders) filter(keep func(model.Order) bool) []model.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Order{}
	for _, o := range f.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func (f *fakeOrders) FindAll(context.Context) ([]model.Order, error) {
	return f.filter(func(model.Order) bool { return true }), nil
}

func (f *fakeOrders) FindByAccount(_ context.Context, account string) ([]model.Order, error) {
	return f.filter(func(o model.Order) bool { return o.Account == account }), nil
}

func (f *fakeOrders) FindByAccountAndItem(_ context.Context, account, item string) ([]model.Order, error) {
	return f.filter(func(o model.Order) bool { return o.Account == account && o.Item == item }), nil
}

func (f *fakeOrders) Update(_ context.Context, item string, patch model.OrderPatch) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].Item == item {
			if patch.Status != nil {
				f.orders[i].Status = *patch.Status
			}
			if patch.Remark != nil {
				f.orders[i].Remark = *patch.Remark
			}
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOrders) Delete(_ context.Context, item string) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, o := range f.orders {
		if o.Item == item {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeProducts struct {
	mu       sync.Mutex
	products []model.Product
}

func (f *fakeProducts) Create(_ context.Context, p *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProducts) FindAll(context.Context) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Product{}, f.products...), nil
}

func (f *fakeProducts) Update(_ context.Context, item string, p model.Product) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].Item == item {
			p.Item, p.Img = item, f.products[i].Img
			f.products[i] = p
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProducts) SetImage(_ context.Context, item, img string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].Item == item {
			f.products[i].Img = img
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeProducts) Delete(_ context.Context, item string) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.products {
		if p.Item == item {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeCategories struct{ items []model.Category }

func (f *fakeCategories) Create(_ context.Context, c *model.Category) error {
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeCategories) FindAll(context.Context) ([]model.Category, error) {
	return append([]model.Category{}, f.items...), nil
}

func (f *fakeCategories) Update(context.Context, string, model.Category) (*model.Category, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeCategories) Delete(context.Context, string) (*model.Category, error) {
	return nil, repository.ErrNotFound
}

type fakePayments struct{ items []model.Payment }

func (f *fakePayments) Create(_ context.Context, p *model.Payment) error {
	f.items = append(f.items, *p)
	return nil
}

func (f *fakePayments) FindAll(context.Context) ([]model.Payment, error) {
	return append([]model.Payment{}, f.items...), nil
}

func (f *fakePayments) Update(context.Context, string, model.Payment) (*model.Payment, error) {
	return nil, repository.ErrNotFound
}

func (f *fakePayments) Delete(context.Context, string) (*model.Payment, error) {
	return nil, repository.ErrNotFound
}

type fakePages struct{ pages []model.Page }

func (f *fakePages) FindAll(context.Context) ([]model.Page, error) {
	return append([]model.Page{}, f.pages...), nil
}

func (f *fakePages) FindContaining(context.Context, string) ([]model.Page, error) {
	return []model.Page{}, nil
}

func (f *fakePages) FindByItem(_ context.Context, item string) (*model.Page, error) {
	for _, p := range f.pages {
		if p.Item == item {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePages) Update(context.Context, string, model.Page) (*model.Page, error) {
	return nil, repository.ErrNotFound
}

func (f *fakePages) SetImage(context.Context, string, string) error {
	return repository.ErrNotFound
}

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]model.User
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Account]; ok {
		return repository.ErrDuplicate
	}
	f.users[u.Account] = *u
	return nil
}

func (f *fakeUsers) FindByAccount(_ context.Context, account string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[account]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}
