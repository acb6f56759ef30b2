package history

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ddrconf/core/logger"
)

// Handler exposes recorded runs over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a handler for the history service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the history endpoints.
func (h *Handler) RegisterRoutes(router fiber.Router) {
	group := router.Group("/history")
	group.Get("/", h.Recent)
	group.Get("/:run", h.ByRun)
}

// Recent returns the latest recorded comparisons.
// @Summary List recent comparison runs
// @Description Returns the most recently recorded table comparisons, newest first.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of rows" default(50)
// @Success 200 {array} history.Run
// @Failure 500 {object} map[string]interface{}
// @Router /history [get]
func (h *Handler) Recent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	runs, err := h.service.Recent(c.Context(), limit)
	if err != nil {
		l.Error("failed to query history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to query history",
		})
	}
	return c.JSON(runs)
}

// ByRun returns every row of one comparison run.
// @Summary Fetch one comparison run
// @Description Returns all recorded table rows of a single run.
// @Tags history
// @Produce json
// @Param run path string true "Run id"
// @Success 200 {array} history.Run
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /history/{run} [get]
func (h *Handler) ByRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runID := c.Params("run")
	runs, err := h.service.ByRun(c.Context(), runID)
	if err != nil {
		l.Error("failed to query run", zap.String("run_id", runID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to query history",
		})
	}
	if len(runs) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown run: " + runID,
		})
	}
	return c.JSON(runs)
}
