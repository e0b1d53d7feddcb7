package database

// Collection names shared by the repositories and the index bootstrap.
const (
	AuthorCollection  = "author"
	PostCollection    = "post"
	ContentCollection = "content"
)
