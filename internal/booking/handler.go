package booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"arena/internal/api"
	"arena/internal/auth"
	"arena/internal/availability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func bookingID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error, fallback string) {
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":       ErrConflict.Error(),
			"start_time":  conflict.Start,
			"booking_ids": conflict.BookingIDs,
		})
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrForbidden):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
	case errors.Is(err, ErrResourceNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrInvalidInterval),
		errors.Is(err, ErrBookingInPast),
		errors.Is(err, ErrWholeBookingDisabled),
		errors.Is(err, ErrPartNotInResource),
		errors.Is(err, ErrInvalidRecurrence),
		errors.Is(err, ErrTooManyOccurrences),
		errors.Is(err, availability.ErrUnknownCadence):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}

// bindTransition accepts an empty body as the zero request.
func bindTransition(c *gin.Context) (TransitionRequest, bool) {
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		if details := api.FromBindError(err); len(details) > 0 {
			api.RespondWithValidationErrors(c, details)
			return req, false
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return req, false
	}
	return req, true
}

// Create godoc
// @Summary      Book a resource
// @Description  Books the whole resource or one part, optionally repeating weekly, biweekly or monthly.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      booking.CreateBookingRequest  true  "Booking"
// @Success      201      {object}  booking.CreateBookingResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req CreateBookingRequest
	if !api.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListMine godoc
// @Summary      List my bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  booking.BookingWithDetails
// @Router       /bookings [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	bookings, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// Get godoc
// @Summary      Get a booking
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path  int  true  "Booking ID"
// @Success      200  {object}  booking.Booking
// @Failure      404  {object}  api.ErrorResponse
// @Router       /bookings/{bookingID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	b, err := h.service.Get(c.Request.Context(), id, userID, auth.IsAdmin(c))
	if err != nil {
		respondError(c, err, "Failed to fetch booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

// Cancel godoc
// @Summary      Cancel a booking
// @Description  Owners and admins can cancel. apply_to_all cancels the remaining occurrences of a series.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path  int  true  "Booking ID"
// @Param        request    body  booking.TransitionRequest  false  "Options"
// @Success      200  {object}  booking.TransitionResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	req, ok := bindTransition(c)
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	updated, err := h.service.Cancel(c.Request.Context(), id, userID, auth.IsAdmin(c), req)
	if err != nil {
		respondError(c, err, "Failed to cancel booking")
		return
	}

	c.JSON(http.StatusOK, TransitionResponse{Updated: updated})
}

// Approve godoc
// @Summary      Approve a pending booking
// @Tags         admin,bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path  int  true  "Booking ID"
// @Param        request    body  booking.TransitionRequest  false  "Options"
// @Success      200  {object}  booking.TransitionResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	req, ok := bindTransition(c)
	if !ok {
		return
	}

	updated, err := h.service.Approve(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to approve booking")
		return
	}

	c.JSON(http.StatusOK, TransitionResponse{Updated: updated})
}

// Reject godoc
// @Summary      Reject a pending booking
// @Tags         admin,bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path  int  true  "Booking ID"
// @Param        request    body  booking.TransitionRequest  false  "Reason and options"
// @Success      200  {object}  booking.TransitionResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	req, ok := bindTransition(c)
	if !ok {
		return
	}

	updated, err := h.service.Reject(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to reject booking")
		return
	}

	c.JSON(http.StatusOK, TransitionResponse{Updated: updated})
}

// List godoc
// @Summary      List bookings
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Param        resource_id  query  int     false  "Resource ID"
// @Param        user_id      query  int     false  "User ID"
// @Param        status       query  string  false  "Status"
// @Param        from         query  string  false  "RFC3339 window start"
// @Param        to           query  string  false  "RFC3339 window end"
// @Success      200  {object}  api.ListResponse[booking.BookingWithDetails]
// @Failure      400  {object}  api.ErrorResponse
// @Router       /admin/bookings [get]
func (h *Handler) List(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		if details := api.FromBindError(err); len(details) > 0 {
			api.RespondWithValidationErrors(c, details)
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	bookings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, api.ListResponse[BookingWithDetails]{Items: bookings, Total: len(bookings)})
}

// Stats godoc
// @Summary      Booking statistics
// @Description  Counts per day and booked hours per resource. Defaults to the last 30 days.
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Param        from  query  string  false  "RFC3339 window start"
// @Param        to    query  string  false  "RFC3339 window end"
// @Success      200  {object}  booking.Stats
// @Failure      400  {object}  api.ErrorResponse
// @Router       /admin/bookings/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	var err error
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse(time.RFC3339, v); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid from, expected RFC3339"})
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse(time.RFC3339, v); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid to, expected RFC3339"})
			return
		}
	}

	stats, err := h.service.Stats(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}
