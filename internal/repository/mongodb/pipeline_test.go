package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blogapi/internal/database"
)

func stageNames(p mongo.Pipeline) []string {
	names := make([]string, 0, len(p))
	for _, stage := range p {
		names = append(names, stage[0].Key)
	}
	return names
}

func field(t *testing.T, d bson.D, key string) any {
	t.Helper()
	for _, e := range d {
		if e.Key == key {
			return e.Value
		}
	}
	t.Fatalf("key %q not found in %v", key, d)
	return nil
}

func lookupBody(t *testing.T, stage bson.D) bson.D {
	t.Helper()
	require.Equal(t, "$lookup", stage[0].Key)
	return stage[0].Value.(bson.D)
}

// eqOperands digs the $eq operands out of a {$match: {$expr: {$eq: [...]}}} stage.
func eqOperands(t *testing.T, stage bson.D) bson.A {
	t.Helper()
	expr := field(t, field(t, stage, "$match").(bson.D), "$expr").(bson.D)
	return field(t, expr, "$eq").(bson.A)
}

func TestPostDetailPipeline(t *testing.T) {
	id := primitive.NewObjectID()
	p := postDetailPipeline(id)

	assert.Equal(t, []string{"$match", "$lookup", "$unwind", "$lookup"}, stageNames(p))
	assert.Equal(t, bson.D{{Key: "_id", Value: id}}, p[0][0].Value)

	author := lookupBody(t, p[1])
	assert.Equal(t, database.AuthorCollection, field(t, author, "from"))
	assert.Equal(t, "author", field(t, author, "as"))

	contents := lookupBody(t, p[3])
	assert.Equal(t, database.ContentCollection, field(t, contents, "from"))
	assert.Equal(t, "contents", field(t, contents, "as"))
}

func TestLookupAuthor_ConvertsForeignKey(t *testing.T) {
	stages := lookupAuthor()
	body := lookupBody(t, stages[0])

	let := field(t, body, "let").(bson.D)
	convert := field(t, field(t, let, "authorID").(bson.D), "$convert").(bson.D)
	assert.Equal(t, "$id_author", field(t, convert, "input"))
	assert.Equal(t, "objectId", field(t, convert, "to"))
	assert.Nil(t, field(t, convert, "onError"))

	inner := field(t, body, "pipeline").(bson.A)
	assert.Equal(t, bson.A{"$_id", "$$authorID"}, eqOperands(t, inner[0].(bson.D)))
}

func TestLookupContents_JoinsOnPostID(t *testing.T) {
	body := lookupBody(t, lookupContents())

	let := field(t, body, "let").(bson.D)
	assert.Equal(t, bson.D{{Key: "$toString", Value: "$_id"}}, field(t, let, "postID"))

	inner := field(t, body, "pipeline").(bson.A)
	require.Len(t, inner, 1)
	assert.Equal(t, bson.A{"$id_post", "$$postID"}, eqOperands(t, inner[0].(bson.D)))
}

func TestLookupPosts_JoinsOnAuthorID(t *testing.T) {
	for _, withContents := range []bool{false, true} {
		body := lookupBody(t, lookupPosts(withContents))

		assert.Equal(t, database.PostCollection, field(t, body, "from"))
		assert.Equal(t, "posts", field(t, body, "as"))

		inner := field(t, body, "pipeline").(bson.A)
		assert.Equal(t, bson.A{"$id_author", "$$authorID"}, eqOperands(t, inner[0].(bson.D)))

		if withContents {
			require.Len(t, inner, 2)
			assert.Equal(t, "$lookup", inner[1].(bson.D)[0].Key)
		} else {
			assert.Len(t, inner, 1)
		}
	}
}

func TestPostsWithAuthorPipeline_PreservesOrphans(t *testing.T) {
	p := postsWithAuthorPipeline()

	require.Equal(t, []string{"$lookup", "$unwind"}, stageNames(p))
	unwind := p[1][0].Value.(bson.D)
	assert.Equal(t, true, field(t, unwind, "preserveNullAndEmptyArrays"))
}

func TestAuthorWithPostsPipeline(t *testing.T) {
	id := primitive.NewObjectID()

	assert.Equal(t, []string{"$match", "$lookup"}, stageNames(authorWithPostsPipeline(id, false)))
	assert.Equal(t, []string{"$match", "$lookup"}, stageNames(postWithContentsPipeline(id)))
	assert.Equal(t, []string{"$lookup"}, stageNames(postsWithContentsPipeline()))
}
