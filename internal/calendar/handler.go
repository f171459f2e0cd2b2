package calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"arena/internal/api"
	"arena/internal/resource"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	loc     *time.Location
}

func NewHandler(service Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{service: service, loc: loc}
}

func resourceID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("resourceID"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid resource ID"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resource.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, ErrPartNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrInvalidWindow), errors.Is(err, ErrWindowTooLong):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to build calendar"})
	}
}

// Day godoc
// @Summary      Day calendar of a resource
// @Description  One row for the whole resource and one per part, with bookings, blocked slots and their timeline layout.
// @Tags         calendar
// @Security     BearerAuth
// @Produce      json
// @Param        resourceID  path   int     true   "Resource ID"
// @Param        date        query  string  false  "YYYY-MM-DD, defaults to today"
// @Success      200  {object}  calendar.DayView
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /resources/{resourceID}/calendar [get]
func (h *Handler) Day(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	day := time.Now().In(h.loc)
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, v, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	view, err := h.service.Day(c.Request.Context(), id, day)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Blocked godoc
// @Summary      Blocked slots of a resource
// @Tags         calendar
// @Security     BearerAuth
// @Produce      json
// @Param        resourceID  path   int     true  "Resource ID"
// @Param        from        query  string  true  "RFC3339 window start"
// @Param        to          query  string  true  "RFC3339 window end"
// @Success      200  {object}  calendar.BlockedView
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /resources/{resourceID}/blocked [get]
func (h *Handler) Blocked(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid from, expected RFC3339"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid to, expected RFC3339"})
		return
	}

	view, err := h.service.Blocked(c.Request.Context(), id, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Availability godoc
// @Summary      Check availability
// @Description  Advisory check; the booking itself re-checks under a lock.
// @Tags         calendar
// @Security     BearerAuth
// @Produce      json
// @Param        resourceID  path   int     true   "Resource ID"
// @Param        part_id     query  int     false  "Part ID, omit for the whole resource"
// @Param        start       query  string  true   "RFC3339 start"
// @Param        end         query  string  true   "RFC3339 end"
// @Success      200  {object}  calendar.AvailabilityResult
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /resources/{resourceID}/availability [get]
func (h *Handler) Availability(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}

	var q AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		if details := api.FromBindError(err); len(details) > 0 {
			api.RespondWithValidationErrors(c, details)
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.Availability(c.Request.Context(), id, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
