package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/model"
	"blogapi/internal/service"
)

// CreateContent godoc
// @Summary  Create a content block for a post
// @Tags     contents
// @Accept   json
// @Produce  json
// @Param    content body     model.ContentInput true "Content"
// @Success  200     {object} dataResponse[model.Content]
// @Failure  400     {object} errorPayload
// @Failure  422     {object} errorPayload
// @Failure  500     {object} errorPayload
// @Router   /create/content [post]
func CreateContent(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ContentInput
		if ok, err := bind(c, &in); !ok {
			return err
		}
		ct, err := svc.CreateContent(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err, "content")
		}
		return c.JSON(dataResponse[*model.Content]{Data: ct})
	}
}

// ListContents godoc
// @Summary  List all contents
// @Tags     contents
// @Produce  json
// @Success  200 {array}  model.Content
// @Failure  500 {object} errorPayload
// @Router   /retrive/contents [get]
func ListContents(svc service.BlogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contents, err := svc.ListContents(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(contents)
	}
}
