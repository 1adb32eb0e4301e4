package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrStoreUnavailable = errors.New("database not configured")
	ErrNotFound         = errors.New("document not found")
	ErrInvalidID        = errors.New("invalid document id")
)

// collection is the typed access path to one Mongo collection. A zero value
// (no database configured) fails every call with ErrStoreUnavailable.
type collection[T any] struct {
	coll *mongo.Collection
}

func newCollection[T any](db *mongo.Database, name string) collection[T] {
	if db == nil {
		return collection[T]{}
	}
	return collection[T]{coll: db.Collection(name)}
}

func (c collection[T]) insert(ctx context.Context, doc T) (string, error) {
	if c.coll == nil {
		return "", ErrStoreUnavailable
	}

	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", c.coll.Name(), err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected id type %T from %s", res.InsertedID, c.coll.Name())
	}
	return oid.Hex(), nil
}

func (c collection[T]) all(ctx context.Context) ([]T, error) {
	if c.coll == nil {
		return nil, ErrStoreUnavailable
	}

	cursor, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.coll.Name(), err)
	}

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.coll.Name(), err)
	}
	return docs, nil
}

func (c collection[T]) byID(ctx context.Context, id string) (*T, error) {
	if c.coll == nil {
		return nil, ErrStoreUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var doc T
	err = c.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s %s: %w", c.coll.Name(), id, err)
	}
	return &doc, nil
}

func (c collection[T]) count(ctx context.Context) (int64, error) {
	if c.coll == nil {
		return 0, ErrStoreUnavailable
	}

	n, err := c.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", c.coll.Name(), err)
	}
	return n, nil
}
