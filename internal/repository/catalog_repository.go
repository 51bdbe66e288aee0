package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"miniattic-api/internal/model"
)

type MongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database, collection string) *MongoProductRepository {
	return &MongoProductRepository{col: db.Collection(collection)}
}

func (m *MongoProductRepository) Create(ctx context.Context, p *model.Product) error {
	return insert(ctx, m.col, p)
}

func (m *MongoProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return findAll[model.Product](ctx, m.col, bson.M{})
}

// Update no toca img; la imagen sólo cambia por SetImage.
func (m *MongoProductRepository) Update(ctx context.Context, item string, p model.Product) (*model.Product, error) {
	return updateByItem[model.Product](ctx, m.col, item, bson.M{
		"class":       p.Class,
		"name":        p.Name,
		"subheading":  p.Subheading,
		"intro":       p.Intro,
		"price":       p.Price,
		"description": p.Description,
		"show":        p.Show,
	})
}

func (m *MongoProductRepository) SetImage(ctx context.Context, item, img string) error {
	_, err := updateByItem[model.Product](ctx, m.col, item, bson.M{"img": img})
	return err
}

func (m *MongoProductRepository) Delete(ctx context.Context, item string) (*model.Product, error) {
	return deleteByItem[model.Product](ctx, m.col, item)
}

type MongoCategoryRepository struct {
	col *mongo.Collection
}

func NewMongoCategoryRepository(db *mongo.Database, collection string) *MongoCategoryRepository {
	return &MongoCategoryRepository{col: db.Collection(collection)}
}

func (m *MongoCategoryRepository) Create(ctx context.Context, c *model.Category) error {
	return insert(ctx, m.col, c)
}

func (m *MongoCategoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	return findAll[model.Category](ctx, m.col, bson.M{})
}

func (m *MongoCategoryRepository) Update(ctx context.Context, item string, c model.Category) (*model.Category, error) {
	return updateByItem[model.Category](ctx, m.col, item, bson.M{
		"name": c.Name,
		"show": c.Show,
	})
}

func (m *MongoCategoryRepository) Delete(ctx context.Context, item string) (*model.Category, error) {
	return deleteByItem[model.Category](ctx, m.col, item)
}

type MongoPaymentRepository struct {
	col *mongo.Collection
}

func NewMongoPaymentRepository(db *mongo.Database, collection string) *MongoPaymentRepository {
	return &MongoPaymentRepository{col: db.Collection(collection)}
}

func (m *MongoPaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	return insert(ctx, m.col, p)
}

func (m *MongoPaymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	return findAll[model.Payment](ctx, m.col, bson.M{})
}

func (m *MongoPaymentRepository) Update(ctx context.Context, item string, p model.Payment) (*model.Payment, error) {
	return updateByItem[model.Payment](ctx, m.col, item, bson.M{
		"name":        p.Name,
		"price":       p.Price,
		"description": p.Description,
		"show":        p.Show,
	})
}

func (m *MongoPaymentRepository) Delete(ctx context.Context, item string) (*model.Payment, error) {
	return deleteByItem[model.Payment](ctx, m.col, item)
}
