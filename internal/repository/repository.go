package repository

import (
	"context"

	"github.com/go-faster/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"miniattic-api/internal/config"
)

var (
	ErrNotFound  = errors.New("registro no encontrado")
	ErrDuplicate = errors.New("registro duplicado")
)

// findAll decodifica todo el cursor del filtro dado.
func findAll[T any](ctx context.Context, col *mongo.Collection, filter any) ([]T, error) {
	cur, err := col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findOne[T any](ctx context.Context, col *mongo.Collection, filter any) (*T, error) {
	var res T
	err := col.FindOne(ctx, filter).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func insert(ctx context.Context, col *mongo.Collection, doc any) error {
	_, err := col.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// updateByItem hace $set sobre el documento con ese item y devuelve la versión nueva.
func updateByItem[T any](ctx context.Context, col *mongo.Collection, item string, set bson.M) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var res T
	err := col.FindOneAndUpdate(ctx, bson.M{"item": item}, bson.M{"$set": set}, opts).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func deleteByItem[T any](ctx context.Context, col *mongo.Collection, item string) (*T, error) {
	var res T
	err := col.FindOneAndDelete(ctx, bson.M{"item": item}).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// EnsureIndexes crea los índices únicos que antes declaraba el esquema.
func EnsureIndexes(ctx context.Context, db *mongo.Database, c config.Collections) error {
	unique := map[string]string{
		c.Order:    "item",
		c.Product:  "item",
		c.Payment:  "item",
		c.Category: "item",
		c.User:     "account",
	}
	for name, key := range unique {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return errors.Wrapf(err, "index %s.%s", name, key)
		}
	}

	_, err := db.Collection(c.Order).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "account", Value: 1}},
	})
	if err != nil {
		return errors.Wrap(err, "index orders.account")
	}
	return nil
}
