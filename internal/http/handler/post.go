package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/model"
	"blogapi/internal/service"
)

// CreatePost godoc
// @Summary     Create a post
// @Description The author id is stored as given; it is not checked against existing authors.
// @Tags        posts
// @Accept      json
// @Produce     json
// @Param       post body     model.PostInput true "Post"
// @Success     200  {object} dataResponse[model.Post]
// @Failure     400  {object} errorPayload
// @Failure     422  {object} errorPayload
// @Failure     500  {object} errorPayload
// @Router      /create/post [post]
func CreatePost(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.PostInput
		if ok, err := bind(c, &in); !ok {
			return err
		}
		p, err := svc.CreatePost(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err, "post")
		}
		return c.JSON(dataResponse[*model.Post]{Data: p})
	}
}

// ListPosts godoc
// @Summary  List all posts
// @Tags     posts
// @Produce  json
// @Success  200 {array}  model.Post
// @Failure  500 {object} errorPayload
// @Router   /retrive/posts [get]
func ListPosts(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := svc.ListPosts(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(posts)
	}
}

// PostContents godoc
// @Summary     Get a post with its contents
// @Description Returns a list holding the post, or an empty list when no post has the id.
// @Tags        posts
// @Produce     json
// @Param       id  query    string true "Post id"
// @Success     200 {array}  model.PostWithContent
// @Failure     400 {object} errorPayload
// @Failure     500 {object} errorPayload
// @Router      /retrive/post_content [get]
func PostContents(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := svc.PostContents(c.UserContext(), c.Query("id"))
		if err != nil {
			return serviceError(c, err, "post")
		}
		return c.JSON(posts)
	}
}

// PostsWithAuthor godoc
// @Summary  List all posts with their author
// @Tags     posts
// @Produce  json
// @Success  200 {array}  model.PostWithAuthor
// @Failure  500 {object} errorPayload
// @Router   /retrive/all_posts_and_their_author [get]
func PostsWithAuthor(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := svc.PostsWithAuthor(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(posts)
	}
}

// PostsWithContents godoc
// @Summary  List all posts with their contents
// @Tags     posts
// @Produce  json
// @Success  200 {array}  model.PostWithContent
// @Failure  500 {object} errorPayload
// @Router   /retrive/posts_and_their_contents [get]
func PostsWithContents(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := svc.PostsWithContents(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(posts)
	}
}

// PostDetail godoc
// @Summary     Get a post with its author and contents
// @Description The title segment is accepted for readable URLs and ignored.
// @Tags        posts
// @Produce     json
// @Param       title   path     string true "Post title"
// @Param       id_post path     string true "Post id"
// @Success     200     {object} model.PostDetail
// @Failure     400     {object} errorPayload
// @Failure     404     {object} errorPayload
// @Failure     500     {object} errorPayload
// @Router      /retrive/get_auth_post/{title}/{id_post} [get]
func PostDetail(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.PostDetail(c.UserContext(), c.Params("id_post"))
		if err != nil {
			return serviceError(c, err, "post")
		}
		return c.JSON(d)
	}
}
