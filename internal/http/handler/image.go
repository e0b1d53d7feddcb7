package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/model"
	"blogapi/internal/service"
)

// UploadImage godoc
// @Summary     Upload an image
// @Description Stores the file under a generated name; posts and contents reference it by that name.
// @Tags        images
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Image file"
// @Success     201  {object} dataResponse[model.Image]
// @Failure     400  {object} errorPayload
// @Failure     500  {object} errorPayload
// @Router      /upload/image [post]
func UploadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		img, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return internalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dataResponse[*model.Image]{Data: img})
	}
}

// ImageURL godoc
// @Summary Redirect to a short-lived download URL for an image
// @Tags    images
// @Param   filename path string true "Stored image filename"
// @Success 307
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router  /images/{filename} [get]
func ImageURL(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.URL(c.UserContext(), c.Params("filename"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFilenameRequired):
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILENAME", "invalid filename")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "image not found")
			default:
				return internalError(c, err)
			}
		}
		return c.Redirect(u, fiber.StatusTemporaryRedirect)
	}
}
