package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/models"
	ucResource "github.com/BruksfildServices01/booking-api/internal/usecase/resource"
)

// ProfileHandler exposes the caller's own user record.
type ProfileHandler struct {
	users *ucResource.Service[models.User]
	audit *audit.Dispatcher
}

func NewProfileHandler(
	users *ucResource.Service[models.User],
	audit *audit.Dispatcher,
) *ProfileHandler {
	return &ProfileHandler{users: users, audit: audit}
}

func (h *ProfileHandler) GetMe(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, "user", err)
		return
	}
	if user == nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	httpresp.OK(c, user)
}

// UpdateMe changes name, phone, address or profile_image; other keys are ignored.
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := middleware.UserID(c)

	user, err := h.users.Update(c.Request.Context(), userID, patch)
	if err != nil {
		httperr.FromError(c, "user", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "profile_updated",
		Entity:   "user",
		EntityID: userID,
		Metadata: patch,
	})

	httpresp.OK(c, user)
}
