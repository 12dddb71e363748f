package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/models"
	ucBooking "github.com/BruksfildServices01/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create     *ucBooking.CreateBooking
	transition *ucBooking.Transition
	checkout   *ucBooking.Checkout
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	transition *ucBooking.Transition,
	checkout *ucBooking.Checkout,
) *BookingHandler {
	return &BookingHandler{
		create:     create,
		transition: transition,
		checkout:   checkout,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID      string `json:"service_id" binding:"required"`
	AvailabilityID string `json:"availability_id"`
	Notes          string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:         middleware.UserID(c),
		ServiceID:      req.ServiceID,
		AvailabilityID: req.AvailabilityID,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.FromError(c, "booking", err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transitionTo(c, h.transition.Confirm)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transitionTo(c, h.transition.Cancel)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transitionTo(c, h.transition.Complete)
}

type transitionFunc func(ctx context.Context, actor ucBooking.Actor, id string) (*models.Booking, error)

func (h *BookingHandler) transitionTo(c *gin.Context, apply transitionFunc) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	b, err := apply(c.Request.Context(), actor(c), id)
	if err != nil {
		httperr.FromError(c, "booking", err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// CHECKOUT
// ======================================================

func (h *BookingHandler) Checkout(c *gin.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	pref, err := h.checkout.Execute(c.Request.Context(), actor(c), id)
	if err != nil {
		httperr.FromError(c, "booking", err)
		return
	}

	httpresp.OK(c, pref)
}
