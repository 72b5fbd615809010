package floor

import (
	"errors"

	"floorplan/core/logger"
	"floorplan/feature/floor/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for floors.
type Handler struct {
	service   *Service
	allowEdit bool
}

// NewHandler creates a new HTTP handler. Without allowEdit only reads and
// table status changes are accepted.
func NewHandler(service *Service, allowEdit bool) *Handler {
	return &Handler{service: service, allowEdit: allowEdit}
}

// RegisterRoutes registers the floor routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/floors")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Get("/:id/background", h.HandleGetBackground)
	group.Patch("/:id/tables/:elementId", h.HandleUpdateTable)

	group.Post("/", h.requireEdit, h.HandleCreate)
	group.Patch("/:id", h.requireEdit, h.HandleRename)
	group.Delete("/:id", h.requireEdit, h.HandleDelete)
	group.Post("/:id/tables", h.requireEdit, h.HandleAddTable)
	group.Delete("/:id/tables/:elementId", h.requireEdit, h.HandleDeleteElement(models.KindTable))
	group.Post("/:id/pois", h.requireEdit, h.HandleAddPOI)
	group.Patch("/:id/pois/:elementId", h.requireEdit, h.HandleUpdatePOI)
	group.Delete("/:id/pois/:elementId", h.requireEdit, h.HandleDeleteElement(models.KindPOI))
	group.Post("/:id/walls", h.requireEdit, h.HandleAddWalls)
	group.Post("/:id/walls/undo", h.requireEdit, h.HandleUndoWall)
	group.Delete("/:id/walls/:elementId", h.requireEdit, h.HandleDeleteElement(models.KindWall))
	group.Put("/:id/background", h.requireEdit, h.HandleUploadBackground)
}

func (h *Handler) requireEdit(c *fiber.Ctx) error {
	if !h.allowEdit {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "editing is disabled",
		})
	}
	return c.Next()
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrDuplicateID):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrInvalid):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.String("floor_id", c.Params("id")), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

// HandleList lists floors.
// @Summary List Floors
// @Description List all floors with element counts.
// @Tags floors
// @Produce json
// @Success 200 {array} models.FloorSummary "Floors"
// @Router /floors [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	floors, err := h.service.ListFloors(c.Context())
	if err != nil {
		return h.fail(c, "Failed to list floors", err)
	}
	return c.JSON(floors)
}

// HandleGet returns a floor.
// @Summary Get Floor
// @Description Get a floor with its tables, points of interest and walls.
// @Tags floors
// @Produce json
// @Param id path string true "Floor ID"
// @Success 200 {object} models.Floor "Floor"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /floors/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	f, err := h.service.GetFloor(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Failed to load floor", err)
	}
	return c.JSON(f)
}

// HandleCreate creates a floor.
// @Summary Create Floor
// @Description Create a floor, optionally with elements.
// @Tags floors
// @Accept json
// @Produce json
// @Param request body models.CreateFloorRequest true "Floor"
// @Success 201 {object} models.Floor "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Duplicate element id"
// @Router /floors [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateFloorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid floor body")
	}
	f, err := h.service.CreateFloor(c.Context(), req)
	if err != nil {
		return h.fail(c, "Failed to create floor", err)
	}
	return c.Status(fiber.StatusCreated).JSON(f)
}

// HandleRename renames a floor.
// @Summary Rename Floor
// @Tags floors
// @Accept json
// @Param id path string true "Floor ID"
// @Param request body models.UpdateFloorRequest true "New name"
// @Success 204 "Renamed"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /floors/{id} [patch]
func (h *Handler) HandleRename(c *fiber.Ctx) error {
	var req models.UpdateFloorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid floor body")
	}
	if err := h.service.RenameFloor(c.Context(), c.Params("id"), req.Name); err != nil {
		return h.fail(c, "Failed to rename floor", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDelete deletes a floor.
// @Summary Delete Floor
// @Tags floors
// @Param id path string true "Floor ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /floors/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteFloor(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, "Failed to delete floor", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAddTable adds a table.
// @Summary Add Table
// @Description Add a table; size defaults from the table type and position to (10,10)%.
// @Tags floors
// @Accept json
// @Produce json
// @Param id path string true "Floor ID"
// @Param request body models.AddTableRequest true "Table"
// @Success 201 {object} models.Table "Created"
// @Failure 409 {object} map[string]string "Duplicate element id"
// @Router /floors/{id}/tables [post]
func (h *Handler) HandleAddTable(c *fiber.Ctx) error {
	var req models.AddTableRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid table body")
	}
	t, err := h.service.AddTable(c.Context(), c.Params("id"), req)
	if err != nil {
		return h.fail(c, "Failed to add table", err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// HandleUpdateTable patches a table. Booking mode may only change the status.
// @Summary Update Table
// @Tags floors
// @Accept json
// @Produce json
// @Param id path string true "Floor ID"
// @Param elementId path string true "Table ID"
// @Param request body models.TablePatch true "Changed fields"
// @Success 200 {object} models.Table "Updated"
// @Failure 403 {object} map[string]string "Editing disabled"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /floors/{id}/tables/{elementId} [patch]
func (h *Handler) HandleUpdateTable(c *fiber.Ctx) error {
	var patch models.TablePatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "invalid table body")
	}
	if !h.allowEdit && !patch.StatusOnly() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "only the table status can be changed",
		})
	}
	t, err := h.service.UpdateTable(c.Context(), c.Params("id"), c.Params("elementId"), patch)
	if err != nil {
		return h.fail(c, "Failed to update table", err)
	}
	return c.JSON(t)
}

// HandleAddPOI adds a point of interest.
// @Summary Add Point Of Interest
// @Description Add a point of interest; size defaults from the category.
// @Tags floors
// @Accept json
// @Produce json
// @Param id path string true "Floor ID"
// @Param request body models.AddPOIRequest true "Point of interest"
// @Success 201 {object} models.PointOfInterest "Created"
// @Failure 409 {object} map[string]string "Duplicate element id"
// @Router /floors/{id}/pois [post]
func (h *Handler) HandleAddPOI(c *fiber.Ctx) error {
	var req models.AddPOIRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid point of interest body")
	}
	p, err := h.service.AddPOI(c.Context(), c.Params("id"), req)
	if err != nil {
		return h.fail(c, "Failed to add point of interest", err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// HandleUpdatePOI patches a point of interest.
// @Summary Update Point Of Interest
// @Tags floors
// @Accept json
// @Produce json
// @Param id path string true "Floor ID"
// @Param elementId path string true "Point of interest ID"
// @Param request body models.POIPatch true "Changed fields"
// @Success 200 {object} models.PointOfInterest "Updated"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /floors/{id}/pois/{elementId} [patch]
func (h *Handler) HandleUpdatePOI(c *fiber.Ctx) error {
	var patch models.POIPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "invalid point of interest body")
	}
	p, err := h.service.UpdatePOI(c.Context(), c.Params("id"), c.Params("elementId"), patch)
	if err != nil {
		return h.fail(c, "Failed to update point of interest", err)
	}
	return c.JSON(p)
}

// HandleDeleteElement returns a handler deleting one element of kind.
// @Summary Delete Element
// @Tags floors
// @Param id path string true "Floor ID"
// @Param elementId path string true "Element ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /floors/{id}/tables/{elementId} [delete]
// @Router /floors/{id}/pois/{elementId} [delete]
// @Router /floors/{id}/walls/{elementId} [delete]
func (h *Handler) HandleDeleteElement(kind models.ElementKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.service.DeleteElement(c.Context(), c.Params("id"), kind, c.Params("elementId")); err != nil {
			return h.fail(c, "Failed to delete element", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// HandleAddWalls stores wall segments.
// @Summary Add Walls
// @Description Append boundary wall segments in drawing order.
// @Tags floors
// @Accept json
// @Param id path string true "Floor ID"
// @Param request body []models.Wall true "Walls"
// @Success 201 {array} models.Wall "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /floors/{id}/walls [post]
func (h *Handler) HandleAddWalls(c *fiber.Ctx) error {
	var walls []models.Wall
	if err := c.BodyParser(&walls); err != nil {
		return badRequest(c, "body must be a JSON array of walls")
	}
	if err := h.service.AddWalls(c.Context(), c.Params("id"), walls); err != nil {
		return h.fail(c, "Failed to add walls", err)
	}
	return c.Status(fiber.StatusCreated).JSON(walls)
}

// HandleUndoWall removes the newest wall.
// @Summary Undo Wall
// @Tags floors
// @Produce json
// @Param id path string true "Floor ID"
// @Success 200 {object} models.Wall "Removed wall"
// @Failure 404 {object} map[string]string "No walls"
// @Router /floors/{id}/walls/undo [post]
func (h *Handler) HandleUndoWall(c *fiber.Ctx) error {
	w, err := h.service.UndoWall(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Failed to undo wall", err)
	}
	return c.JSON(w)
}

// HandleUploadBackground stores a background image.
// @Summary Upload Background
// @Tags floors
// @Accept mpfd
// @Produce json
// @Param id path string true "Floor ID"
// @Param image formData file true "Image"
// @Success 200 {object} map[string]string "Object key"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /floors/{id}/background [put]
func (h *Handler) HandleUploadBackground(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "multipart field 'image' is required")
	}
	r, err := file.Open()
	if err != nil {
		return badRequest(c, "unreadable upload")
	}
	defer r.Close()

	key, err := h.service.UploadBackground(c.Context(), c.Params("id"), file.Filename, file.Header.Get("Content-Type"), r, file.Size)
	if err != nil {
		return h.fail(c, "Failed to upload background", err)
	}
	return c.JSON(fiber.Map{"key": key})
}

// HandleGetBackground streams the background image.
// @Summary Get Background
// @Tags floors
// @Produce octet-stream
// @Param id path string true "Floor ID"
// @Success 200 {file} file "Image"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /floors/{id}/background [get]
func (h *Handler) HandleGetBackground(c *fiber.Ctx) error {
	obj, contentType, err := h.service.Background(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Failed to load background", err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	// fiber closes the stream once it is sent.
	return c.SendStream(obj)
}
