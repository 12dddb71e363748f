package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	domain "github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/imaging"
	"github.com/BruksfildServices01/booking-api/internal/models"
	ucResource "github.com/BruksfildServices01/booking-api/internal/usecase/resource"
)

const maxUploadBytes = 10 << 20

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, prefix, ext, contentType string, data []byte) (string, error)
}

type ServiceImageHandler struct {
	services *ucResource.Service[models.Service]
	images   domain.Store[models.Image]
	uploader Uploader
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

// NewServiceImageHandler accepts a nil uploader; uploads then answer 503.
func NewServiceImageHandler(
	services *ucResource.Service[models.Service],
	images domain.Store[models.Image],
	uploader Uploader,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *ServiceImageHandler {
	return &ServiceImageHandler{
		services: services,
		images:   images,
		uploader: uploader,
		audit:    audit,
		log:      log,
	}
}

// Upload converts the multipart "file" to WebP, stores it and attaches it
// to the service.
func (h *ServiceImageHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Unavailable(c, "storage_disabled", "Image storage is not configured.")
		return
	}

	serviceID, ok := pathID(c, "service")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	service, err := h.services.GetByID(ctx, serviceID)
	if err != nil {
		httperr.FromError(c, "service", err)
		return
	}
	if service == nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "A multipart field named file is required.")
		return
	}

	f, err := header.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "The uploaded file could not be read.")
		return
	}
	defer f.Close()

	data, err := imaging.ToWebP(f, imaging.Options{})
	if errors.Is(err, imaging.ErrUnsupportedImage) {
		httperr.BadRequest(c, "unsupported_image", "Only JPEG, PNG and WebP images are accepted.")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("service_id", serviceID).Msg("webp encoding failed")
		httperr.Internal(c, "image_processing_failed", "Internal server error.")
		return
	}

	url, err := h.uploader.Upload(ctx, "services/"+serviceID, ".webp", imaging.ContentType, data)
	if err != nil {
		h.log.Error().Err(err).Str("service_id", serviceID).Msg("image upload failed")
		httperr.Internal(c, "image_upload_failed", "Internal server error.")
		return
	}

	img, err := h.images.Create(ctx, &models.Image{
		ServiceID: serviceID,
		FilePath:  url,
	})
	if err != nil {
		httperr.FromError(c, "image", err)
		return
	}

	h.services.Invalidate(ctx, serviceID)

	h.audit.Dispatch(audit.Event{
		UserID:   callerID(c),
		Action:   "service_image_uploaded",
		Entity:   "service",
		EntityID: serviceID,
		Metadata: map[string]string{"image_id": img.ID, "url": url},
	})

	httpresp.Created(c, img)
}
