package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/model"
	"blogapi/internal/service"
)

// CreateAuthor godoc
// @Summary  Create an author
// @Tags     authors
// @Accept   json
// @Produce  json
// @Param    author body     model.AuthorInput true "Author"
// @Success  200    {object} dataResponse[model.Author]
// @Failure  400    {object} errorPayload
// @Failure  422    {object} errorPayload
// @Failure  500    {object} errorPayload
// @Router   /create/author [post]
func CreateAuthor(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.AuthorInput
		if ok, err := bind(c, &in); !ok {
			return err
		}
		a, err := svc.CreateAuthor(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err, "author")
		}
		return c.JSON(dataResponse[*model.Author]{Data: a})
	}
}

// ListAuthors godoc
// @Summary  List all authors
// @Tags     authors
// @Produce  json
// @Success  200 {array}  model.Author
// @Failure  500 {object} errorPayload
// @Router   /retrive/authors [get]
func ListAuthors(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authors, err := svc.ListAuthors(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(authors)
	}
}

// AuthorPosts godoc
// @Summary  Get an author with all of their posts
// @Tags     authors
// @Produce  json
// @Param    id  query    string true "Author id"
// @Success  200 {object} model.AuthorWithPosts
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /retrive/author_posts [get]
func AuthorPosts(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.AuthorPosts(c.UserContext(), c.Query("id"))
		if err != nil {
			return serviceError(c, err, "author")
		}
		return c.JSON(a)
	}
}

// AuthorPostContents godoc
// @Summary  Get an author with their posts and each post's contents
// @Tags     authors
// @Produce  json
// @Param    id  query    string true "Author id"
// @Success  200 {object} model.AuthorWithPostContents
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /retrive/obtener_post_con_autho [get]
func AuthorPostContents(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.AuthorPostContents(c.UserContext(), c.Query("id"))
		if err != nil {
			return serviceError(c, err, "author")
		}
		return c.JSON(a)
	}
}
