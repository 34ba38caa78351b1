package api

import (
	"errors"
	"net/http"

	reqdto "sejour/internal/handler/dto/request"
	resdto "sejour/internal/handler/dto/response"
	"sejour/internal/handler/middleware"
	"sejour/internal/usecase/commands"
	"sejour/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(
	paymentCommands commands.PaymentCommands,
	paymentQueries queries.PaymentQueries,
) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary Pay reservation
// @Description Record a payment for one of the caller's reservations
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PayReservationRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) PayReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PayReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cmd := commands.PayReservationCommand{
		ReservationID: req.ReservationID,
		Mode:          req.Mode,
		Amount:        req.Amount,
		Reference:     req.GetReference(),
	}

	view, err := h.paymentCommands.PayReservation(c.Request.Context(), cmd, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrReservationNotPayable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cancelled reservation cannot be paid",
			})
		case errors.Is(err, commands.ErrDuplicatePayment):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is already paid",
			})
		case errors.Is(err, commands.ErrAmountMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Amount does not match reservation total",
			})
		case errors.Is(err, commands.ErrInvalidPaymentMode):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment mode",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}

// @Summary Get payment
// @Description Get one of the caller's payments by ID
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID format",
		})
		return
	}

	view, err := h.paymentQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.renderQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Get payment by reservation
// @Description Get the payment attached to one of the caller's reservations
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param reservationId path int true "Reservation ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/reservation/{reservationId} [get]
func (h *PaymentHandler) GetPaymentByReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservationID, err := parseIDParam(c, "reservationId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.paymentQueries.GetByReservationID(c.Request.Context(), userID, reservationID)
	if err != nil {
		h.renderQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Get user payments
// @Description List the current user's payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Failure 401 {object} map[string]string
// @Router /payments [get]
func (h *PaymentHandler) GetUserPayments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.paymentQueries.ListByUser(c.Request.Context(), userID, parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PaymentResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromPaymentView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Verify payment
// @Description Gateway webhook: update a payment's status by reference
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyPaymentRequest true "Verification payload"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/verify [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req reqdto.VerifyPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.paymentCommands.VerifyPayment(c.Request.Context(), req.Reference, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		case errors.Is(err, commands.ErrInvalidVerifyStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Verification status must be settled or failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Refund payment
// @Description Refund a settled payment on a cancelled reservation
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments/{id}/refund [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID format",
		})
		return
	}

	result, err := h.paymentCommands.RefundPayment(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		case errors.Is(err, commands.ErrReservationNotCancelled):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Reservation must be cancelled before refund",
			})
		case errors.Is(err, commands.ErrNotRefundable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment is not in a refundable state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRefundResult(result))
}

func (h *PaymentHandler) renderQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Payment not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
