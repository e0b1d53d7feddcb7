package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/service"
)

// RegisterRoutes attaches the blog, image and health routes to app.
// Image routes are only mounted when images is non-nil.
func RegisterRoutes(app *fiber.App, db Pinger, blog service.BlogService, images service.ImageService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	create := app.Group("/create")
	create.Post("/author", CreateAuthor(blog))
	create.Post("/post", CreatePost(blog))
	create.Post("/content", CreateContent(blog))

	retrive := app.Group("/retrive")
	retrive.Get("/authors", ListAuthors(blog))
	retrive.Get("/posts", ListPosts(blog))
	retrive.Get("/contents", ListContents(blog))
	retrive.Get("/post_content", PostContents(blog))
	retrive.Get("/all_posts_and_their_author", PostsWithAuthor(blog))
	retrive.Get("/posts_and_their_contents", PostsWithContents(blog))
	retrive.Get("/get_auth_post/:title/:id_post", PostDetail(blog))
	retrive.Get("/author_posts", AuthorPosts(blog))
	retrive.Get("/obtener_post_con_autho", AuthorPostContents(blog))

	if images != nil {
		app.Post("/upload/image", UploadImage(images))
		app.Get("/images/:filename", ImageURL(images))
	}
}
