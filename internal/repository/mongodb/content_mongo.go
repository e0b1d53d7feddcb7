package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blogapi/internal/database"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// ContentMongo is a MongoDB implementation of repository.ContentRepository.
type ContentMongo struct {
	c collection
}

// NewContentMongo creates a content repository over db.
func NewContentMongo(db *mongo.Database, timeout time.Duration) *ContentMongo {
	return &ContentMongo{c: newCollection(db, database.ContentCollection, timeout)}
}

var _ repository.ContentRepository = (*ContentMongo)(nil)

func (r *ContentMongo) Create(ctx context.Context, c *model.Content) (*model.Content, error) {
	return insertAndReload(ctx, r.c, c)
}

func (r *ContentMongo) List(ctx context.Context) ([]model.Content, error) {
	return findAll[model.Content](ctx, r.c, bson.D{})
}
