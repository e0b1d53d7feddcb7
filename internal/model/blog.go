package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author writes posts. Name is not unique.
type Author struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id" swaggertype:"string" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Name string             `json:"name" bson:"name" example:"Diego"`
}

// Post belongs to an author through AuthorID. The reference is never checked on write,
// so a post may point at an author that does not exist.
type Post struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id" swaggertype:"string" example:"65a1f0c2e4b0a1b2c3d4e5f7"`
	Title      string             `json:"title" bson:"title" example:"Creando Post"`
	AuthorID   string             `json:"id_author" bson:"id_author" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Images     []string           `json:"images" bson:"images" example:"Murmullo.jpg"`
	Date       time.Time          `json:"date" bson:"date"`
	Categories []string           `json:"categories" bson:"categories" example:"explicacion,post"`
}

// Content is a body section of a post. A post has zero or more of them.
type Content struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id" swaggertype:"string" example:"65a1f0c2e4b0a1b2c3d4e5f8"`
	PostID  string             `json:"id_post" bson:"id_post" example:"65a1f0c2e4b0a1b2c3d4e5f7"`
	Content string             `json:"content" bson:"content"`
	Images  []string           `json:"images" bson:"images" example:"Hola.jpg,Buenas.jpg"`
	Keyword []string           `json:"keyword" bson:"keyword" example:"crear,post"`
}

// PostWithContent is a post with every content record whose id_post equals the post id.
type PostWithContent struct {
	Post     `bson:",inline"`
	Contents []Content `json:"contents" bson:"contents"`
}

// PostWithAuthor is a post with its author embedded. Author is nil when id_author
// matches no stored author.
type PostWithAuthor struct {
	Post   `bson:",inline"`
	Author *Author `json:"author,omitempty" bson:"author,omitempty"`
}

// PostDetail combines a post, its author and its contents.
type PostDetail struct {
	Post     `bson:",inline"`
	Author   *Author   `json:"author,omitempty" bson:"author,omitempty"`
	Contents []Content `json:"contents" bson:"contents"`
}

// AuthorWithPosts is an author with the posts that reference it.
type AuthorWithPosts struct {
	Author `bson:",inline"`
	Posts  []Post `json:"posts" bson:"posts"`
}

// AuthorWithPostContents is an author with its posts, each carrying its contents.
type AuthorWithPostContents struct {
	Author `bson:",inline"`
	Posts  []PostWithContent `json:"posts" bson:"posts"`
}
