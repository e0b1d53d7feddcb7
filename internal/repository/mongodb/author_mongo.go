package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blogapi/internal/database"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// AuthorMongo is a MongoDB implementation of repository.AuthorRepository.
type AuthorMongo struct {
	c collection
}

// NewAuthorMongo creates an author repository over db. Each operation is bounded by timeout
// when it is positive.
func NewAuthorMongo(db *mongo.Database, timeout time.Duration) *AuthorMongo {
	return &AuthorMongo{c: newCollection(db, database.AuthorCollection, timeout)}
}

var _ repository.AuthorRepository = (*AuthorMongo)(nil)

// Create inserts an author and returns the stored document.
func (r *AuthorMongo) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	return insertAndReload(ctx, r.c, a)
}

// List returns all authors, unfiltered and unbounded.
func (r *AuthorMongo) List(ctx context.Context) ([]model.Author, error) {
	return findAll[model.Author](ctx, r.c, bson.D{})
}

func (r *AuthorMongo) FindWithPosts(ctx context.Context, id primitive.ObjectID) (*model.AuthorWithPosts, error) {
	return aggregateOne[model.AuthorWithPosts](ctx, r.c, authorWithPostsPipeline(id, false))
}

func (r *AuthorMongo) FindWithPostContents(ctx context.Context, id primitive.ObjectID) (*model.AuthorWithPostContents, error) {
	return aggregateOne[model.AuthorWithPostContents](ctx, r.c, authorWithPostsPipeline(id, true))
}
