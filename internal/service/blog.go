package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

var (
	ErrInvalidID = model.ErrInvalidID
	ErrNotFound  = errors.New("not found")
)

// BlogService defines the use cases for authors, posts and contents.
// Scans and joins that match nothing return empty slices; lookups of a single
// author or post that match nothing return ErrNotFound.
type BlogService interface {
	CreateAuthor(ctx context.Context, in model.AuthorInput) (*model.Author, error)
	CreatePost(ctx context.Context, in model.PostInput) (*model.Post, error)
	CreateContent(ctx context.Context, in model.ContentInput) (*model.Content, error)

	ListAuthors(ctx context.Context) ([]model.Author, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	ListContents(ctx context.Context) ([]model.Content, error)

	// PostContents returns the post with the given id and its contents as a list of zero or one.
	PostContents(ctx context.Context, postID string) ([]model.PostWithContent, error)
	PostsWithAuthor(ctx context.Context) ([]model.PostWithAuthor, error)
	PostsWithContents(ctx context.Context) ([]model.PostWithContent, error)
	PostDetail(ctx context.Context, postID string) (*model.PostDetail, error)

	AuthorPosts(ctx context.Context, authorID string) (*model.AuthorWithPosts, error)
	AuthorPostContents(ctx context.Context, authorID string) (*model.AuthorWithPostContents, error)
}

type blogService struct {
	authors  repository.AuthorRepository
	posts    repository.PostRepository
	contents repository.ContentRepository
	now      func() time.Time
}

// NewBlogService constructs a new BlogService.
func NewBlogService(authors repository.AuthorRepository, posts repository.PostRepository, contents repository.ContentRepository) BlogService {
	return &blogService{
		authors:  authors,
		posts:    posts,
		contents: contents,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *blogService) CreateAuthor(ctx context.Context, in model.AuthorInput) (*model.Author, error) {
	a, err := in.Entity()
	if err != nil {
		return nil, err
	}
	stored, err := s.authors.Create(ctx, &a)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	return stored, nil
}

// CreatePost stores the post without looking up its author.
func (s *blogService) CreatePost(ctx context.Context, in model.PostInput) (*model.Post, error) {
	p, err := in.Entity(s.now())
	if err != nil {
		return nil, err
	}
	stored, err := s.posts.Create(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return stored, nil
}

func (s *blogService) CreateContent(ctx context.Context, in model.ContentInput) (*model.Content, error) {
	c, err := in.Entity()
	if err != nil {
		return nil, err
	}
	stored, err := s.contents.Create(ctx, &c)
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return stored, nil
}

func (s *blogService) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.authors.List(ctx)
}

func (s *blogService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.posts.List(ctx)
}

func (s *blogService) ListContents(ctx context.Context) ([]model.Content, error) {
	return s.contents.List(ctx)
}

func (s *blogService) PostContents(ctx context.Context, postID string) ([]model.PostWithContent, error) {
	id, err := model.ParseID(postID)
	if err != nil {
		return nil, err
	}
	return s.posts.FindWithContents(ctx, id)
}

func (s *blogService) PostsWithAuthor(ctx context.Context) ([]model.PostWithAuthor, error) {
	return s.posts.ListWithAuthor(ctx)
}

func (s *blogService) PostsWithContents(ctx context.Context) ([]model.PostWithContent, error) {
	return s.posts.ListWithContents(ctx)
}

func (s *blogService) PostDetail(ctx context.Context, postID string) (*model.PostDetail, error) {
	id, err := model.ParseID(postID)
	if err != nil {
		return nil, err
	}
	d, err := s.posts.FindDetail(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

func (s *blogService) AuthorPosts(ctx context.Context, authorID string) (*model.AuthorWithPosts, error) {
	id, err := model.ParseID(authorID)
	if err != nil {
		return nil, err
	}
	a, err := s.authors.FindWithPosts(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (s *blogService) AuthorPostContents(ctx context.Context, authorID string) (*model.AuthorWithPostContents, error) {
	id, err := model.ParseID(authorID)
	if err != nil {
		return nil, err
	}
	a, err := s.authors.FindWithPostContents(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
