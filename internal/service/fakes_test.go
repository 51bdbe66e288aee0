package service

import (
	"context"
	"strings"
	"sync"

	"miniattic-api/internal/model"
	"miniattic-api/internal/repository"
)

type memOrders struct {
	mu      sync.Mutex
	orders  []model.Order
	findErr error
	saveErr error
}

func (m *memOrders) Create(_ context.Context, o *model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.orders = append(m.orders, *o)
	return nil
}

func (m *memOrders) FindAll(context.Context) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	return append([]model.Order(nil), m.orders...), nil
}

func (m *memOrders) FindByAccount(_ context.Context, account string) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []model.Order
	for _, o := range m.orders {
		if o.Account == account {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) FindByAccountAndItem(_ context.Context, account, item string) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Order
	for _, o := range m.orders {
		if o.Account == account && o.Item == item {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) Update(_ context.Context, item string, patch model.OrderPatch) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].Item != item {
			continue
		}
		if patch.Status != nil {
			m.orders[i].Status = *patch.Status
		}
		if patch.Remark != nil {
			m.orders[i].Remark = *patch.Remark
		}
		o := m.orders[i]
		return &o, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memOrders) Delete(_ context.Context, item string) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, o := range m.orders {
		if o.Item == item {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memProducts struct {
	mu       sync.Mutex
	products []model.Product
	findErr  error
}

func (m *memProducts) Create(_ context.Context, p *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.products {
		if existing.Item == p.Item {
			return repository.ErrDuplicate
		}
	}
	m.products = append(m.products, *p)
	return nil
}

func (m *memProducts) FindAll(context.Context) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	return append([]model.Product(nil), m.products...), nil
}

func (m *memProducts) Update(_ context.Context, item string, p model.Product) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].Item == item {
			p.Item = item
			p.Img = m.products[i].Img
			m.products[i] = p
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memProducts) SetImage(_ context.Context, item, img string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].Item == item {
			m.products[i].Img = img
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memProducts) Delete(_ context.Context, item string) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.products {
		if p.Item == item {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memPages struct {
	mu        sync.Mutex
	pages     []model.Page
	findCalls int
}

func (m *memPages) FindAll(context.Context) ([]model.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Page(nil), m.pages...), nil
}

func (m *memPages) FindContaining(_ context.Context, text string) ([]model.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Page
	for _, p := range m.pages {
		if strings.Contains(p.Item, text) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPages) FindByItem(_ context.Context, item string) (*model.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findCalls++
	for _, p := range m.pages {
		if p.Item == item {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memPages) Update(_ context.Context, item string, p model.Page) (*model.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.pages {
		if m.pages[i].Item == item {
			p.Item = item
			p.Img = m.pages[i].Img
			m.pages[i] = p
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memPages) SetImage(_ context.Context, item, img string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.pages {
		if m.pages[i].Item == item {
			m.pages[i].Img = img
			return nil
		}
	}
	return repository.ErrNotFound
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]model.User
}

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.users == nil {
		m.users = map[string]model.User{}
	}
	if _, ok := m.users[u.Account]; ok {
		return repository.ErrDuplicate
	}
	m.users[u.Account] = *u
	return nil
}

func (m *memUsers) FindByAccount(_ context.Context, account string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[account]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

type recordingPublisher struct {
	mu        sync.Mutex
	published []string
	err       error
}

func (p *recordingPublisher) PublishOrderPlaced(_ context.Context, o *model.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, o.Item)
	return nil
}
