package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogapi/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., mongodb) inside this directory.
// Singleton lookups that match nothing return mongo.ErrNoDocuments; scans and
// joins that match nothing return an empty slice.

// AuthorRepository defines data access for the author collection.
type AuthorRepository interface {
	// Create inserts the author and returns it as stored.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// List returns every author.
	List(ctx context.Context) ([]model.Author, error)

	// FindWithPosts returns the author with the posts whose id_author is its id.
	FindWithPosts(ctx context.Context, id primitive.ObjectID) (*model.AuthorWithPosts, error)

	// FindWithPostContents is FindWithPosts with each post carrying its contents.
	FindWithPostContents(ctx context.Context, id primitive.ObjectID) (*model.AuthorWithPostContents, error)
}

// PostRepository defines data access for the post collection and its joins.
type PostRepository interface {
	Create(ctx context.Context, p *model.Post) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)

	// ListWithAuthor returns every post with its author embedded.
	ListWithAuthor(ctx context.Context) ([]model.PostWithAuthor, error)

	// ListWithContents returns every post with its contents.
	ListWithContents(ctx context.Context) ([]model.PostWithContent, error)

	// FindWithContents returns the post with the given id and its contents, as a list of zero or one.
	FindWithContents(ctx context.Context, id primitive.ObjectID) ([]model.PostWithContent, error)

	// FindDetail returns the post with the given id, its author and its contents.
	FindDetail(ctx context.Context, id primitive.ObjectID) (*model.PostDetail, error)
}

// ContentRepository defines data access for the content collection.
type ContentRepository interface {
	Create(ctx context.Context, c *model.Content) (*model.Content, error)
	List(ctx context.Context) ([]model.Content, error)
}
