package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"miniattic-api/internal/model"
)

type MongoPageRepository struct {
	col *mongo.Collection
}

func NewMongoPageRepository(db *mongo.Database, collection string) *MongoPageRepository {
	return &MongoPageRepository{col: db.Collection(collection)}
}

func (m *MongoPageRepository) FindAll(ctx context.Context) ([]model.Page, error) {
	return findAll[model.Page](ctx, m.col, bson.M{})
}

// FindContaining busca páginas cuyo item contiene el texto (literal, no regex del cliente).
func (m *MongoPageRepository) FindContaining(ctx context.Context, text string) ([]model.Page, error) {
	filter := bson.M{"item": primitive.Regex{Pattern: regexp.QuoteMeta(text)}}
	return findAll[model.Page](ctx, m.col, filter)
}

func (m *MongoPageRepository) FindByItem(ctx context.Context, item string) (*model.Page, error) {
	return findOne[model.Page](ctx, m.col, bson.M{"item": item})
}

func (m *MongoPageRepository) Update(ctx context.Context, item string, p model.Page) (*model.Page, error) {
	return updateByItem[model.Page](ctx, m.col, item, bson.M{
		"show":         p.Show,
		"description1": p.Description1,
		"description2": p.Description2,
		"description3": p.Description3,
		"link":         p.Link,
	})
}

func (m *MongoPageRepository) SetImage(ctx context.Context, item, img string) error {
	_, err := updateByItem[model.Page](ctx, m.col, item, bson.M{"img": img})
	return err
}
