package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"miniattic-api/internal/model"
)

// Mongo implementation
type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database, collection string) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection(collection)}
}

func (m *MongoOrderRepository) Create(ctx context.Context, o *model.Order) error {
	return insert(ctx, m.col, o)
}

func (m *MongoOrderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	return findAll[model.Order](ctx, m.col, bson.M{})
}

func (m *MongoOrderRepository) FindByAccount(ctx context.Context, account string) ([]model.Order, error) {
	return findAll[model.Order](ctx, m.col, bson.M{"account": account})
}

// Devuelve slice y no ErrNotFound: una orden ajena se ve igual que una inexistente.
func (m *MongoOrderRepository) FindByAccountAndItem(ctx context.Context, account, item string) ([]model.Order, error) {
	return findAll[model.Order](ctx, m.col, bson.M{"account": account, "item": item})
}

func (m *MongoOrderRepository) Update(ctx context.Context, item string, patch model.OrderPatch) (*model.Order, error) {
	set := bson.M{}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Remark != nil {
		set["remark"] = *patch.Remark
	}
	if len(set) == 0 {
		return findOne[model.Order](ctx, m.col, bson.M{"item": item})
	}
	return updateByItem[model.Order](ctx, m.col, item, set)
}

func (m *MongoOrderRepository) Delete(ctx context.Context, item string) (*model.Order, error) {
	return deleteByItem[model.Order](ctx, m.col, item)
}
