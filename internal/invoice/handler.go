package invoice

import (
	"errors"
	"net/http"
	"strconv"

	"arena/internal/api"
	"arena/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func invoiceID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("invoiceID"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid invoice ID"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvoiceNotFound), errors.Is(err, ErrForbidden):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Invoice not found"})
	case errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to process invoice"})
	}
}

// ListMine godoc
// @Summary      List my invoices
// @Tags         invoices
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  invoice.Invoice
// @Router       /invoices [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	invoices, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// Get godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Security     BearerAuth
// @Produce      json
// @Param        invoiceID  path  int  true  "Invoice ID"
// @Success      200  {object}  invoice.Invoice
// @Failure      404  {object}  api.ErrorResponse
// @Router       /invoices/{invoiceID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	inv, err := h.service.Get(c.Request.Context(), id, userID, auth.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, inv)
}

// List godoc
// @Summary      List all invoices
// @Tags         admin,invoices
// @Security     BearerAuth
// @Produce      json
// @Param        status  query  string  false  "unpaid, paid or cancelled"
// @Success      200  {array}  invoice.Invoice
// @Router       /admin/invoices [get]
func (h *Handler) List(c *gin.Context) {
	status := c.Query("status")
	switch status {
	case "", StatusUnpaid, StatusPaid, StatusCancelled:
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid status"})
		return
	}

	invoices, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// UpdateStatus godoc
// @Summary      Mark an invoice paid or cancelled
// @Tags         admin,invoices
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        invoiceID  path  int                  true  "Invoice ID"
// @Param        request    body  UpdateStatusRequest  true  "New status"
// @Success      200  {object}  invoice.Invoice
// @Failure      409  {object}  api.ErrorResponse
// @Router       /admin/invoices/{invoiceID} [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !api.BindJSON(c, &req) {
		return
	}

	inv, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, inv)
}
