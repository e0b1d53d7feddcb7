package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// collection pairs a driver collection with the per-operation timeout.
type collection struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func newCollection(db *mongo.Database, name string, timeout time.Duration) collection {
	return collection{coll: db.Collection(name), timeout: timeout}
}

func (c collection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// insertAndReload inserts doc and reads it back by the inserted id.
func insertAndReload[T any](ctx context.Context, c collection, doc *T) (*T, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	var out T
	if err := c.coll.FindOne(ctx, bson.D{{Key: "_id", Value: res.InsertedID}}).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// findAll returns every document matching filter. It never returns a nil slice.
func findAll[T any](ctx context.Context, c collection, filter any) ([]T, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cur, err := c.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// aggregateAll runs pipeline and decodes every result. It never returns a nil slice.
func aggregateAll[T any](ctx context.Context, c collection, pipeline mongo.Pipeline) ([]T, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cur, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// aggregateOne returns the first pipeline result or mongo.ErrNoDocuments.
func aggregateOne[T any](ctx context.Context, c collection, pipeline mongo.Pipeline) (*T, error) {
	items, err := aggregateAll[T](ctx, c, pipeline)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &items[0], nil
}
