package render

import (
	"errors"

	"floorplan/core/logger"
	"floorplan/core/utils"
	"floorplan/feature/floor/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for floor renders.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the render routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/floors")
	group.Get("/:id/render.svg", h.HandleRender(FormatSVG))
	group.Get("/:id/render.png", h.HandleRender(FormatPNG))
	group.Get("/:id/renders", h.HandlePublished)
	group.Post("/:id/renders", h.HandlePublish)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrUnsupportedFormat):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// HandleRender returns a handler rendering a floor in format.
// @Summary Render Floor
// @Description Render a floor with its walls, tables and points of interest.
// @Tags render
// @Produce image/svg+xml
// @Produce image/png
// @Param id path string true "Floor ID"
// @Param width query int false "Canvas width in pixels"
// @Param height query int false "Canvas height in pixels"
// @Success 200 {file} file "Image"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /floors/{id}/render.svg [get]
// @Router /floors/{id}/render.png [get]
func (h *Handler) HandleRender(format Format) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		data, err := h.service.Render(c.Context(), id, format, utils.ToInt(c.Query("width")), utils.ToInt(c.Query("height")))
		if err != nil {
			if errorStatus(err) == fiber.StatusInternalServerError {
				logger.WithRayID(h.service.logger, c).Error("Render failed", zap.String("floor_id", id), zap.Error(err))
			}
			return c.Status(errorStatus(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		c.Set(fiber.HeaderContentType, format.ContentType())
		return c.Send(data)
	}
}

// HandlePublish uploads a render to object storage.
// @Summary Publish Render
// @Tags render
// @Produce json
// @Param id path string true "Floor ID"
// @Param format query string false "svg or png (default png)"
// @Param width query int false "Canvas width in pixels"
// @Param height query int false "Canvas height in pixels"
// @Success 201 {object} map[string]string "Object key"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /floors/{id}/renders [post]
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	id := c.Params("id")
	format := Format(c.Query("format", string(FormatPNG)))

	key, err := h.service.Publish(c.Context(), id, format, utils.ToInt(c.Query("width")), utils.ToInt(c.Query("height")))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Publish failed", zap.String("floor_id", id), zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"key": key})
}

// HandlePublished lists published renders.
// @Summary List Published Renders
// @Tags render
// @Produce json
// @Param id path string true "Floor ID"
// @Success 200 {array} string "Object keys"
// @Router /floors/{id}/renders [get]
func (h *Handler) HandlePublished(c *fiber.Ctx) error {
	keys, err := h.service.Published(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if keys == nil {
		keys = []string{}
	}
	return c.JSON(keys)
}
