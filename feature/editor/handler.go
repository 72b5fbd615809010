package editor

import (
	"errors"

	"floorplan/core/logger"
	"floorplan/core/reconcile"
	"floorplan/core/utils"
	"floorplan/feature/floor/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for editing sessions.
type Handler struct {
	service   *Service
	allowEdit bool
}

// NewHandler creates a new HTTP handler. allowEdit is applied to every
// session it opens.
func NewHandler(service *Service, allowEdit bool) *Handler {
	return &Handler{service: service, allowEdit: allowEdit}
}

// OpenSessionRequest is the body of a session creation.
type OpenSessionRequest struct {
	FloorID string `json:"floorId"`
}

// RegisterRoutes registers the editor routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/editor/sessions")
	group.Post("/", h.HandleOpen)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleClose)
	group.Post("/:id/events", h.HandleEvents)
	group.Get("/:id/reconcile", h.HandleReconcile)
	group.Post("/:id/reconcile", h.HandleReconcile)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrUnknownEvent):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// HandleOpen starts an editing session.
// @Summary Open Editing Session
// @Description Start an interactive editing session on a floor.
// @Tags editor
// @Accept json
// @Produce json
// @Param request body OpenSessionRequest true "Floor to edit"
// @Success 201 {object} Snapshot "Session"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Floor Not Found"
// @Router /editor/sessions [post]
func (h *Handler) HandleOpen(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req OpenSessionRequest
	if err := c.BodyParser(&req); err != nil || req.FloorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "floorId is required",
		})
	}

	snap, err := h.service.Open(c.Context(), req.FloorID, h.allowEdit)
	if err != nil {
		l.Error("Failed to open editing session", zap.String("floor_id", req.FloorID), zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(snap)
}

// HandleGet returns the state of an editing session.
// @Summary Get Editing Session
// @Description Get the interaction state and working floor of a session.
// @Tags editor
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Snapshot "Session"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /editor/sessions/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	snap, err := h.service.Get(c.Params("id"))
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(snap)
}

// HandleClose ends an editing session.
// @Summary Close Editing Session
// @Description End a session, committing any gesture in progress.
// @Tags editor
// @Param id path string true "Session ID"
// @Success 204 "Closed"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /editor/sessions/{id} [delete]
func (h *Handler) HandleClose(c *fiber.Ctx) error {
	if err := h.service.Close(c.Params("id")); err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleEvents feeds a batch of input events to a session.
// @Summary Dispatch Events
// @Description Run pointer, keyboard and toolbar events through the session in order.
// @Tags editor
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param events body []EventEnvelope true "Events"
// @Success 200 {object} DispatchResult "Intents, state and notices"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /editor/sessions/{id}/events [post]
func (h *Handler) HandleEvents(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	var envs []EventEnvelope
	if err := c.BodyParser(&envs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "body must be a JSON array of events",
		})
	}

	events, err := DecodeEvents(envs)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := h.service.Dispatch(c.Context(), id, events)
	if err != nil {
		l.Warn("Event dispatch failed", zap.String("session_id", id), zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleReconcile compares a session with the stored floor.
// @Summary Reconcile Session
// @Description Report drift between the working copy and the stored floor, optionally repairing it.
// @Tags editor
// @Produce json
// @Param id path string true "Session ID"
// @Param strategy query string false "persist or revert; empty only reports"
// @Param dry_run query bool false "Plan without applying"
// @Success 200 {object} map[string]interface{} "Plan"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /editor/sessions/{id}/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	strategy := reconcile.Strategy(c.Query("strategy"))
	if !strategy.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "strategy must be persist or revert",
		})
	}
	if strategy != reconcile.StrategyReport && c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "repairs require POST",
		})
	}
	if strategy != reconcile.StrategyReport && !h.allowEdit {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "editing is disabled",
		})
	}
	dryRun := utils.ToBool(c.Query("dry_run"))

	plan, executed, err := h.service.Reconcile(c.Context(), id, strategy, dryRun)
	if err != nil {
		l.Error("Session reconcile failed", zap.String("session_id", id), zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"plan":     plan,
		"executed": executed,
		"dry_run":  dryRun,
	})
}
