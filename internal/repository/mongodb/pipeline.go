package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blogapi/internal/database"
)

// Identifiers are stored as ObjectIDs while foreign keys (id_author, id_post) are
// free-form strings, so every join converts one side before comparing.

func matchID(id primitive.ObjectID) bson.D {
	return bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}}
}

// lookupAuthor embeds the author whose _id equals the post's id_author.
// An id_author that is not a valid hex id converts to null and matches nothing;
// posts without a match keep no author field.
func lookupAuthor() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.AuthorCollection},
			{Key: "let", Value: bson.D{{Key: "authorID", Value: bson.D{{Key: "$convert", Value: bson.D{
				{Key: "input", Value: "$id_author"},
				{Key: "to", Value: "objectId"},
				{Key: "onError", Value: nil},
				{Key: "onNull", Value: nil},
			}}}}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{"$_id", "$$authorID"}},
				}}}}},
				bson.D{{Key: "$limit", Value: 1}},
			}},
			{Key: "as", Value: "author"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$author"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// lookupContents attaches every content whose id_post equals the post's id.
func lookupContents() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: database.ContentCollection},
		{Key: "let", Value: bson.D{{Key: "postID", Value: bson.D{{Key: "$toString", Value: "$_id"}}}}},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
				{Key: "$eq", Value: bson.A{"$id_post", "$$postID"}},
			}}}}},
		}},
		{Key: "as", Value: "contents"},
	}}}
}

// lookupPosts attaches every post whose id_author equals the author's id,
// optionally with each post's contents.
func lookupPosts(withContents bool) bson.D {
	inner := bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
			{Key: "$eq", Value: bson.A{"$id_author", "$$authorID"}},
		}}}}},
	}
	if withContents {
		inner = append(inner, lookupContents())
	}
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: database.PostCollection},
		{Key: "let", Value: bson.D{{Key: "authorID", Value: bson.D{{Key: "$toString", Value: "$_id"}}}}},
		{Key: "pipeline", Value: inner},
		{Key: "as", Value: "posts"},
	}}}
}

func pipeline(stages ...bson.D) mongo.Pipeline {
	return mongo.Pipeline(stages)
}

func postsWithAuthorPipeline() mongo.Pipeline {
	return pipeline(lookupAuthor()...)
}

func postsWithContentsPipeline() mongo.Pipeline {
	return pipeline(lookupContents())
}

func postWithContentsPipeline(id primitive.ObjectID) mongo.Pipeline {
	return pipeline(matchID(id), lookupContents())
}

func postDetailPipeline(id primitive.ObjectID) mongo.Pipeline {
	stages := []bson.D{matchID(id)}
	stages = append(stages, lookupAuthor()...)
	stages = append(stages, lookupContents())
	return pipeline(stages...)
}

func authorWithPostsPipeline(id primitive.ObjectID, withContents bool) mongo.Pipeline {
	return pipeline(matchID(id), lookupPosts(withContents))
}
