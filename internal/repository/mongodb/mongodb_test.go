package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"blogapi/internal/model"
)

const testTimeout = 5 * time.Second

func TestAuthorMongo_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewAuthorMongo(mt.DB, testTimeout)
		author := &model.Author{ID: primitive.NewObjectID(), Name: "Diego"}

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "blog.author", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: author.ID},
				{Key: "name", Value: "Diego"},
			}),
		)

		got, err := repo.Create(context.Background(), author)

		require.NoError(mt, err)
		assert.Equal(mt, author.ID, got.ID)
		assert.Equal(mt, "Diego", got.Name)
	})

	mt.Run("insert error", func(mt *mtest.T) {
		repo := NewAuthorMongo(mt.DB, testTimeout)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		got, err := repo.Create(context.Background(), &model.Author{ID: primitive.NewObjectID(), Name: "Diego"})

		assert.Error(mt, err)
		assert.True(mt, mongo.IsDuplicateKeyError(err))
		assert.Nil(mt, got)
	})

	mt.Run("reload finds nothing", func(mt *mtest.T) {
		repo := NewAuthorMongo(mt.DB, testTimeout)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "blog.author", mtest.FirstBatch),
		)

		got, err := repo.Create(context.Background(), &model.Author{ID: primitive.NewObjectID(), Name: "Diego"})

		assert.ErrorIs(mt, err, mongo.ErrNoDocuments)
		assert.Nil(mt, got)
	})
}

func TestAuthorMongo_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewAuthorMongo(mt.DB, testTimeout)
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.author", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id1}, {Key: "name", Value: "Diego"}},
			bson.D{{Key: "_id", Value: id2}, {Key: "name", Value: "Ana"}},
		))

		got, err := repo.List(context.Background())

		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, id1, got[0].ID)
		assert.Equal(mt, "Ana", got[1].Name)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		repo := NewAuthorMongo(mt.DB, testTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.author", mtest.FirstBatch))

		got, err := repo.List(context.Background())

		require.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Empty(mt, got)
	})

	mt.Run("query error", func(mt *mtest.T) {
		repo := NewAuthorMongo(mt.DB, testTimeout)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		got, err := repo.List(context.Background())

		assert.Error(mt, err)
		assert.Nil(mt, got)
	})
}

func TestAuthorMongo_FindWithPosts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewAuthorMongo(mt.DB, testTimeout)
		authorID, postID := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.author", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: authorID},
			{Key: "name", Value: "Diego"},
			{Key: "posts", Value: bson.A{
				bson.D{{Key: "_id", Value: postID}, {Key: "title", Value: "Creando Post"}, {Key: "id_author", Value: authorID.Hex()}},
			}},
		}))

		got, err := repo.FindWithPosts(context.Background(), authorID)

		require.NoError(mt, err)
		assert.Equal(mt, "Diego", got.Name)
		require.Len(mt, got.Posts, 1)
		assert.Equal(mt, postID, got.Posts[0].ID)
		assert.Equal(mt, authorID.Hex(), got.Posts[0].AuthorID)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewAuthorMongo(mt.DB, testTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.author", mtest.FirstBatch))

		got, err := repo.FindWithPosts(context.Background(), primitive.NewObjectID())

		assert.ErrorIs(mt, err, mongo.ErrNoDocuments)
		assert.Nil(mt, got)
	})
}

func TestAuthorMongo_FindWithPostContents(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewAuthorMongo(mt.DB, testTimeout)
		authorID, postID, contentID := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.author", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: authorID},
			{Key: "name", Value: "Diego"},
			{Key: "posts", Value: bson.A{
				bson.D{
					{Key: "_id", Value: postID},
					{Key: "title", Value: "Creando Post"},
					{Key: "contents", Value: bson.A{
						bson.D{{Key: "_id", Value: contentID}, {Key: "id_post", Value: postID.Hex()}, {Key: "content", Value: "body"}},
					}},
				},
			}},
		}))

		got, err := repo.FindWithPostContents(context.Background(), authorID)

		require.NoError(mt, err)
		require.Len(mt, got.Posts, 1)
		require.Len(mt, got.Posts[0].Contents, 1)
		assert.Equal(mt, contentID, got.Posts[0].Contents[0].ID)
	})
}

func TestPostMongo_ListWithAuthor(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("embedded and missing author", func(mt *mtest.T) {
		repo := NewPostMongo(mt.DB, testTimeout)
		authorID := primitive.NewObjectID()
		withAuthor, orphan := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.post", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: withAuthor},
				{Key: "title", Value: "Creando Post"},
				{Key: "id_author", Value: authorID.Hex()},
				{Key: "author", Value: bson.D{{Key: "_id", Value: authorID}, {Key: "name", Value: "Diego"}}},
			},
			bson.D{
				{Key: "_id", Value: orphan},
				{Key: "title", Value: "Huerfano"},
				{Key: "id_author", Value: primitive.NewObjectID().Hex()},
			},
		))

		got, err := repo.ListWithAuthor(context.Background())

		require.NoError(mt, err)
		require.Len(mt, got, 2)
		require.NotNil(mt, got[0].Author)
		assert.Equal(mt, "Diego", got[0].Author.Name)
		assert.Nil(mt, got[1].Author)
	})
}

func TestPostMongo_ListWithContents(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewPostMongo(mt.DB, testTimeout)
		postID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.post", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: postID}, {Key: "contents", Value: bson.A{}}},
		))

		got, err := repo.ListWithContents(context.Background())

		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.NotNil(mt, got[0].Contents)
		assert.Empty(mt, got[0].Contents)
	})
}

func TestPostMongo_FindWithContents(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no match is an empty list", func(mt *mtest.T) {
		repo := NewPostMongo(mt.DB, testTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.post", mtest.FirstBatch))

		got, err := repo.FindWithContents(context.Background(), primitive.NewObjectID())

		require.NoError(mt, err)
		assert.Empty(mt, got)
	})
}

func TestPostMongo_FindDetail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewPostMongo(mt.DB, testTimeout)
		postID, authorID := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.post", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: postID},
			{Key: "title", Value: "Creando Post"},
			{Key: "id_author", Value: authorID.Hex()},
			{Key: "author", Value: bson.D{{Key: "_id", Value: authorID}, {Key: "name", Value: "Diego"}}},
			{Key: "contents", Value: bson.A{
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "id_post", Value: postID.Hex()}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "id_post", Value: postID.Hex()}},
			}},
		}))

		got, err := repo.FindDetail(context.Background(), postID)

		require.NoError(mt, err)
		assert.Equal(mt, postID, got.ID)
		require.NotNil(mt, got.Author)
		assert.Equal(mt, "Diego", got.Author.Name)
		assert.Len(mt, got.Contents, 2)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewPostMongo(mt.DB, testTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.post", mtest.FirstBatch))

		got, err := repo.FindDetail(context.Background(), primitive.NewObjectID())

		assert.ErrorIs(mt, err, mongo.ErrNoDocuments)
		assert.Nil(mt, got)
	})

	mt.Run("aggregate error", func(mt *mtest.T) {
		repo := NewPostMongo(mt.DB, testTimeout)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    40324,
			Name:    "Location40324",
			Message: "Unrecognized pipeline stage name",
		}))

		got, err := repo.FindDetail(context.Background(), primitive.NewObjectID())

		assert.Error(mt, err)
		assert.NotErrorIs(mt, err, mongo.ErrNoDocuments)
		assert.Nil(mt, got)
	})
}

func TestPostMongo_CreateAndList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create keeps dangling author reference", func(mt *mtest.T) {
		repo := NewPostMongo(mt.DB, testTimeout)
		post := &model.Post{
			ID:         primitive.NewObjectID(),
			Title:      "Creando Post",
			AuthorID:   "no-such-author",
			Images:     []string{"Murmullo.jpg"},
			Date:       time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Categories: []string{"post"},
		}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "blog.post", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: post.ID},
				{Key: "title", Value: post.Title},
				{Key: "id_author", Value: post.AuthorID},
				{Key: "images", Value: bson.A{"Murmullo.jpg"}},
				{Key: "date", Value: primitive.NewDateTimeFromTime(post.Date)},
				{Key: "categories", Value: bson.A{"post"}},
			}),
		)

		got, err := repo.Create(context.Background(), post)

		require.NoError(mt, err)
		assert.Equal(mt, "no-such-author", got.AuthorID)
		assert.Equal(mt, []string{"Murmullo.jpg"}, got.Images)
		assert.True(mt, post.Date.Equal(got.Date))
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewPostMongo(mt.DB, testTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.post", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "a"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "b"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "c"}},
		))

		got, err := repo.List(context.Background())

		require.NoError(mt, err)
		assert.Len(mt, got, 3)
	})
}

func TestContentMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := NewContentMongo(mt.DB, testTimeout)
		content := &model.Content{ID: primitive.NewObjectID(), PostID: "p1", Content: "body", Images: []string{}, Keyword: []string{"crear"}}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "blog.content", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: content.ID},
				{Key: "id_post", Value: "p1"},
				{Key: "content", Value: "body"},
				{Key: "images", Value: bson.A{}},
				{Key: "keyword", Value: bson.A{"crear"}},
			}),
		)

		got, err := repo.Create(context.Background(), content)

		require.NoError(mt, err)
		assert.Equal(mt, content.ID, got.ID)
		assert.Equal(mt, "p1", got.PostID)
		assert.Equal(mt, []string{"crear"}, got.Keyword)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewContentMongo(mt.DB, testTimeout)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.content", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "id_post", Value: "p1"}},
		))

		got, err := repo.List(context.Background())

		require.NoError(mt, err)
		assert.Len(mt, got, 1)
	})
}
