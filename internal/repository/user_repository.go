package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"miniattic-api/internal/model"
)

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database, collection string) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection(collection)}
}

func (m *MongoUserRepository) Create(ctx context.Context, u *model.User) error {
	return insert(ctx, m.col, u)
}

func (m *MongoUserRepository) FindByAccount(ctx context.Context, account string) (*model.User, error) {
	return findOne[model.User](ctx, m.col, bson.M{"account": account})
}
