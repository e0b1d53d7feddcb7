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

// PostMongo is a MongoDB implementation of repository.PostRepository.
// Joins are aggregation pipelines rooted at the post collection.
type PostMongo struct {
	c collection
}

// NewPostMongo creates a post repository over db.
func NewPostMongo(db *mongo.Database, timeout time.Duration) *PostMongo {
	return &PostMongo{c: newCollection(db, database.PostCollection, timeout)}
}

var _ repository.PostRepository = (*PostMongo)(nil)

// Create inserts a post and returns the stored document. id_author is not checked.
func (r *PostMongo) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	return insertAndReload(ctx, r.c, p)
}

func (r *PostMongo) List(ctx context.Context) ([]model.Post, error) {
	return findAll[model.Post](ctx, r.c, bson.D{})
}

func (r *PostMongo) ListWithAuthor(ctx context.Context) ([]model.PostWithAuthor, error) {
	return aggregateAll[model.PostWithAuthor](ctx, r.c, postsWithAuthorPipeline())
}

func (r *PostMongo) ListWithContents(ctx context.Context) ([]model.PostWithContent, error) {
	return aggregateAll[model.PostWithContent](ctx, r.c, postsWithContentsPipeline())
}

func (r *PostMongo) FindWithContents(ctx context.Context, id primitive.ObjectID) ([]model.PostWithContent, error) {
	return aggregateAll[model.PostWithContent](ctx, r.c, postWithContentsPipeline(id))
}

func (r *PostMongo) FindDetail(ctx context.Context, id primitive.ObjectID) (*model.PostDetail, error) {
	return aggregateOne[model.PostDetail](ctx, r.c, postDetailPipeline(id))
}
