package resource

import (
	"errors"
	"net/http"
	"strconv"

	"arena/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrResourceNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, ErrPartNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Part not found"})
	case errors.Is(err, ErrInvalidParent), errors.Is(err, ErrNestingTooDeep):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrPartHasChildren):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Remove child parts first"})
	case errors.Is(err, ErrPartInUse):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Part is referenced by bookings"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}

func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

// @Summary      Create a resource
// @Description  Admin-only: create a bookable facility
// @Tags         admin,resources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body resource.CreateResourceRequest true "Resource payload"
// @Success      201 {object} resource.Resource
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/resources [post]
func (h *Handler) CreateResource(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.service.CreateResource(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to create resource")
		return
	}

	c.JSON(http.StatusCreated, res)
}

// @Summary      List resources
// @Tags         resources
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} resource.Resource
// @Failure      500 {object} api.ErrorResponse
// @Router       /resources [get]
func (h *Handler) ListResources(c *gin.Context) {
	resources, err := h.service.GetAllResources(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to fetch resources")
		return
	}

	c.JSON(http.StatusOK, resources)
}

// @Summary      Get a resource with its parts
// @Tags         resources
// @Produce      json
// @Security     BearerAuth
// @Param        resourceID path int true "Resource ID"
// @Success      200 {object} resource.ResourceWithParts
// @Failure      404 {object} api.ErrorResponse
// @Router       /resources/{resourceID} [get]
func (h *Handler) GetResource(c *gin.Context) {
	id, ok := paramID(c, "resourceID")
	if !ok {
		return
	}

	res, err := h.service.GetResourceByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to fetch resource")
		return
	}

	c.JSON(http.StatusOK, res)
}

// @Summary      Update booking rules
// @Description  Admin-only: toggle whole/part blocking, approval and price
// @Tags         admin,resources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        resourceID path int true "Resource ID"
// @Param        request body resource.UpdateRulesRequest true "Rules"
// @Success      200 {object} resource.Resource
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/resources/{resourceID}/rules [patch]
func (h *Handler) UpdateRules(c *gin.Context) {
	id, ok := paramID(c, "resourceID")
	if !ok {
		return
	}

	var req UpdateRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.service.UpdateRules(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err, "Failed to update resource")
		return
	}

	c.JSON(http.StatusOK, res)
}

// @Summary      Add a part
// @Description  Admin-only: add a subdivision, optionally below another part
// @Tags         admin,resources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        resourceID path int true "Resource ID"
// @Param        request body resource.CreatePartRequest true "Part payload"
// @Success      201 {object} resource.Part
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/resources/{resourceID}/parts [post]
func (h *Handler) CreatePart(c *gin.Context) {
	id, ok := paramID(c, "resourceID")
	if !ok {
		return
	}

	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	part, err := h.service.CreatePart(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err, "Failed to create part")
		return
	}

	c.JSON(http.StatusCreated, part)
}

// @Summary      List parts of a resource
// @Tags         resources
// @Produce      json
// @Security     BearerAuth
// @Param        resourceID path int true "Resource ID"
// @Success      200 {array} resource.Part
// @Failure      404 {object} api.ErrorResponse
// @Router       /resources/{resourceID}/parts [get]
func (h *Handler) ListParts(c *gin.Context) {
	id, ok := paramID(c, "resourceID")
	if !ok {
		return
	}

	parts, err := h.service.GetParts(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to fetch parts")
		return
	}

	c.JSON(http.StatusOK, parts)
}

// @Summary      Delete a part
// @Tags         admin,resources
// @Security     BearerAuth
// @Param        resourceID path int true "Resource ID"
// @Param        partID path int true "Part ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/resources/{resourceID}/parts/{partID} [delete]
func (h *Handler) DeletePart(c *gin.Context) {
	resourceID, ok := paramID(c, "resourceID")
	if !ok {
		return
	}
	partID, ok := paramID(c, "partID")
	if !ok {
		return
	}

	if err := h.service.DeletePart(c.Request.Context(), resourceID, partID); err != nil {
		h.respondError(c, err, "Failed to delete part")
		return
	}

	c.Status(http.StatusNoContent)
}
