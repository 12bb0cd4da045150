package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"building-service/internal/models"
	"building-service/internal/services"
)

const healthCheckTimeout = 2 * time.Second

// BuildingHandler serves the building directory over HTTP.
type BuildingHandler struct {
	Service *services.BuildingService
	Exports *services.ExportService
	logger  *zap.Logger
}

// NewBuildingHandler creates a new BuildingHandler.
func NewBuildingHandler(service *services.BuildingService, exports *services.ExportService, logger *zap.Logger) *BuildingHandler {
	return &BuildingHandler{Service: service, Exports: exports, logger: logger}
}

// Register mounts the directory routes on router. Any verb other than
// GET, POST, PUT and DELETE on the collection answers 405.
func (h *BuildingHandler) Register(router fiber.Router) {
	router.Get("/buildings/export", h.ExportBuildings)
	router.Post("/buildings/snapshots", h.CreateSnapshot)

	router.Get("/buildings", h.ListBuildings)
	router.Post("/buildings", h.CreateOrListBuildings)
	router.Put("/buildings", h.UpdateBuilding)
	router.Delete("/buildings", h.DeleteBuilding)
	router.All("/buildings", h.MethodNotAllowed)
}

// ListBuildings handles GET /buildings in the DataTables server-side format.
// @Summary List buildings (DataTables)
// @Description Search and page the building directory using DataTables query parameters
// @Tags buildings
// @Produce json
// @Param draw query int false "DataTables draw counter" default(1)
// @Param start query int false "Zero-based offset" default(0)
// @Param length query int false "Page length, -1 for all" default(10)
// @Param search[value] query string false "Search term"
// @Success 200 {object} models.DataTablesResponse
// @Router /buildings [get]
func (h *BuildingHandler) ListBuildings(c *fiber.Ctx) error {
	query := models.DataTablesQuery{
		Draw:   c.QueryInt("draw", 1),
		Start:  c.QueryInt("start", 0),
		Length: c.QueryInt("length", models.DefaultPageLength),
		Search: c.Query("search[value]"),
	}

	result := h.Service.List(models.OffsetPage(query.Start, query.Length, query.Search))
	return c.JSON(models.DataTablesResponse{
		Draw:            query.Draw,
		RecordsTotal:    result.Total,
		RecordsFiltered: result.TotalFiltered,
		Data:            result.Page,
	})
}

// CreateOrListBuildings handles POST /buildings. A body carrying non-zero page
// and pageSize is a list request; anything else creates a building.
// @Summary Create a building, or list buildings by page
// @Description With {page, pageSize, search} returns a page of buildings; otherwise creates a building
// @Tags buildings
// @Accept json
// @Produce json
// @Param body body models.CreateBuildingRequest true "Building data, or models.ListBuildingsRequest"
// @Success 200 {object} models.Building "Created building, or models.PageResponse in list mode"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Router /buildings [post]
func (h *BuildingHandler) CreateOrListBuildings(c *fiber.Ctx) error {
	var listReq models.ListBuildingsRequest
	if err := h.decodeBody(c, &listReq); err != nil {
		return h.respondError(c, "list", err)
	}
	if listReq.IsListRequest() {
		result := h.Service.List(models.NumberedPage(int(listReq.Page), int(listReq.PageSize), listReq.Search))
		return c.JSON(models.PageResponse{
			RecordsTotal:    result.Total,
			RecordsFiltered: result.TotalFiltered,
			Data:            result.Page,
		})
	}

	var req models.CreateBuildingRequest
	if err := h.decodeBody(c, &req); err != nil {
		return h.respondError(c, "create", err)
	}
	building, err := h.Service.Create(c.UserContext(), req)
	if err != nil {
		return h.respondError(c, "create", err)
	}
	h.logger.Info("Created building", zap.Int64("id", int64(building.ID)), zap.String("name", building.Name))
	return c.JSON(building)
}

// UpdateBuilding handles PUT /buildings.
// @Summary Update a building
// @Description Replace every field of the building identified by the body id
// @Tags buildings
// @Accept json
// @Produce json
// @Param body body models.UpdateBuildingRequest true "Full building data including id"
// @Success 200 {object} models.Building
// @Failure 400 {object} map[string]interface{} "ID is required"
// @Failure 404 {object} map[string]interface{} "Building not found"
// @Router /buildings [put]
func (h *BuildingHandler) UpdateBuilding(c *fiber.Ctx) error {
	var req models.UpdateBuildingRequest
	if err := h.decodeBody(c, &req); err != nil {
		return h.respondError(c, "update", err)
	}
	building, err := h.Service.Update(c.UserContext(), req)
	if err != nil {
		return h.respondError(c, "update", err)
	}
	h.logger.Info("Updated building", zap.Int64("id", int64(building.ID)))
	return c.JSON(building)
}

// DeleteBuilding handles DELETE /buildings?id=
// @Summary Delete a building
// @Tags buildings
// @Produce json
// @Param id query string true "Building ID"
// @Success 200 {object} models.DeleteBuildingResponse
// @Failure 400 {object} map[string]interface{} "ID is required"
// @Failure 404 {object} map[string]interface{} "Building not found"
// @Router /buildings [delete]
func (h *BuildingHandler) DeleteBuilding(c *fiber.Ctx) error {
	building, err := h.Service.Delete(c.UserContext(), c.Query("id"))
	if err != nil {
		return h.respondError(c, "delete", err)
	}
	h.logger.Info("Deleted building", zap.Int64("id", int64(building.ID)))
	return c.JSON(models.DeleteBuildingResponse{Success: true, Deleted: building})
}

// MethodNotAllowed answers every other verb on /buildings.
func (h *BuildingHandler) MethodNotAllowed(c *fiber.Ctx) error {
	return h.respondError(c, "dispatch", &services.MethodNotAllowedError{Method: c.Method()})
}

// ExportBuildings handles GET /buildings/export
// @Summary Export buildings as XLSX
// @Tags buildings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param search query string false "Search term"
// @Success 200 {file} binary "XLSX workbook"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /buildings/export [get]
func (h *BuildingHandler) ExportBuildings(c *fiber.Ctx) error {
	data, rows, err := h.Exports.ExportXLSX(c.Query("search"))
	if err != nil {
		return h.respondError(c, "export", err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="buildings.xlsx"`)
	c.Set("X-Export-Rows", strconv.Itoa(rows))
	return c.Status(fiber.StatusOK).Send(data)
}

// CreateSnapshot handles POST /buildings/snapshots
// @Summary Upload a directory snapshot
// @Description Uploads every building as gzip compressed JSON to object storage
// @Tags buildings
// @Produce json
// @Success 201 {object} models.SnapshotInfo
// @Failure 503 {object} map[string]interface{} "Snapshots disabled"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /buildings/snapshots [post]
func (h *BuildingHandler) CreateSnapshot(c *fiber.Ctx) error {
	info, err := h.Exports.Snapshot(c.UserContext())
	if err != nil {
		return h.respondError(c, "snapshot", err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// Health handles GET /health. A configured change feed that cannot be
// reached answers 503.
func (h *BuildingHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	feed, err := h.Service.ChangeFeedStatus(ctx)
	if err != nil {
		h.logger.Warn("Change feed health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded", "records": h.Service.Count(), "changeFeed": feed,
		})
	}
	return c.JSON(fiber.Map{"status": "ok", "records": h.Service.Count(), "changeFeed": feed})
}

// decodeBody parses a JSON body regardless of Content-Type; an empty body
// decodes as an empty object.
func (h *BuildingHandler) decodeBody(c *fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return &services.ValidationError{Message: "Invalid request format"}
	}
	return nil
}

// statusFor maps the service error taxonomy to HTTP status codes.
func statusFor(err error) int {
	switch {
	case services.IsValidation(err):
		return fiber.StatusBadRequest
	case services.IsNotFound(err):
		return fiber.StatusNotFound
	case services.IsMethodNotAllowed(err):
		return fiber.StatusMethodNotAllowed
	case errors.Is(err, services.ErrSnapshotsDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *BuildingHandler) respondError(c *fiber.Ctx, operation string, err error) error {
	status := statusFor(err)
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Error(err),
	}
	if id, ok := c.Locals(requestIDKey).(string); ok {
		fields = append(fields, zap.String("request_id", id))
	}
	if status >= fiber.StatusInternalServerError && status != fiber.StatusServiceUnavailable {
		h.logger.Error("Building request failed", fields...)
	} else {
		h.logger.Warn("Building request rejected", fields...)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": true, "message": err.Error(),
	})
}
