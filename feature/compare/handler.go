package compare

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"ddrconf/core/logger"
	"ddrconf/core/storage"
)

// Handler exposes the comparison service over HTTP.
type Handler struct {
	service *Service
	cache   *timingCache

	client storage.Client
	bucket string

	// defaults used when the request carries no left/right query params
	defaultLeft  string
	defaultRight string
}

// NewHandler creates a handler serving comparisons of dumps from the
// given bucket.
func NewHandler(service *Service, cache *timingCache, client storage.Client, bucket, left, right string) *Handler {
	return &Handler{
		service:      service,
		cache:        cache,
		client:       client,
		bucket:       bucket,
		defaultLeft:  left,
		defaultRight: right,
	}
}

// RegisterRoutes registers the comparison endpoints.
func (h *Handler) RegisterRoutes(router fiber.Router) {
	group := router.Group("/compare")
	group.Get("/", h.Compare)
	group.Get("/:section", h.Section)
	router.Get("/dumps", h.Dumps)
}

// names resolves the dump object names for a request.
func (h *Handler) names(c *fiber.Ctx) (string, string) {
	left := c.Query("left", h.defaultLeft)
	right := c.Query("right", h.defaultRight)
	return left, right
}

func (h *Handler) report(c *fiber.Ctx) (*Report, error) {
	left, right := h.names(c)
	l := logger.WithRayID(h.service.logger, c)

	lt, lw, err := h.cache.get(c.Context(), left)
	if err != nil {
		l.Error("failed to load left dump", zap.String("name", left), zap.Error(err))
		return nil, err
	}
	rt, rw, err := h.cache.get(c.Context(), right)
	if err != nil {
		l.Error("failed to load right dump", zap.String("name", right), zap.Error(err))
		return nil, err
	}

	rep := h.service.Compare(lt, rt)
	rep.LeftName = left
	rep.RightName = right
	rep.LeftWarnings = lw
	rep.RightWarnings = rw
	return rep, nil
}

// Compare returns the full comparison report.
// @Summary Compare two timing dumps
// @Description Compares the left and right dump files and returns the full report, section by section.
// @Tags compare
// @Produce json
// @Param left query string false "Left dump object name"
// @Param right query string false "Right dump object name"
// @Success 200 {object} compare.Report
// @Failure 502 {object} map[string]interface{}
// @Router /compare [get]
func (h *Handler) Compare(c *fiber.Ctx) error {
	rep, err := h.report(c)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to load dumps",
		})
	}
	return c.JSON(rep)
}

// Section returns one top-level section of the comparison report.
// @Summary Compare one configuration section
// @Description Returns the comparison of a single top-level section, e.g. ddrc_cfg or fsp_msg.
// @Tags compare
// @Produce json
// @Param section path string true "Section name"
// @Param left query string false "Left dump object name"
// @Param right query string false "Right dump object name"
// @Success 200 {object} compare.Section
// @Failure 404 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /compare/{section} [get]
func (h *Handler) Section(c *fiber.Ctx) error {
	name := c.Params("section")
	rep, err := h.report(c)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to load dumps",
		})
	}
	sec := rep.Section(name)
	if sec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown section: " + name,
		})
	}
	return c.JSON(sec)
}

// Dumps lists the dump files available in the bucket.
// @Summary List available dumps
// @Description Lists the dump objects in the configured bucket.
// @Tags compare
// @Produce json
// @Success 200 {array} string
// @Failure 502 {object} map[string]interface{}
// @Router /dumps [get]
func (h *Handler) Dumps(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names := []string{}
	for obj := range h.client.ListObjects(c.Context(), h.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			l.Error("failed to list dumps", zap.Error(obj.Err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Failed to list dumps",
			})
		}
		names = append(names, obj.Key)
	}
	return c.JSON(names)
}
