package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// FromError writes the response matching err. entity prefixes generated
// codes, e.g. "service" -> "service_not_found".
func FromError(c *gin.Context, entity string, err error) {
	var (
		ve *resource.ValidationError
		ce *resource.ConstraintError
		be BusinessError
	)

	switch {
	case errors.As(err, &ve):
		BadRequest(c, "validation_error", ve.Error())

	case errors.Is(err, resource.ErrNotFound):
		NotFound(c, entity+"_not_found", "Resource not found.")

	case errors.As(err, &ce):
		switch ce.Kind {
		case resource.ConstraintUnique:
			Conflict(c, entity+"_already_exists", "A record with the same unique value already exists.")
		case resource.ConstraintForeignKey:
			BadRequest(c, entity+"_invalid_reference", "A referenced record does not exist or is still in use.")
		default:
			BadRequest(c, entity+"_invalid", "One or more values do not meet the required conditions.")
		}

	case errors.As(err, &be):
		switch {
		case be.Code == "forbidden":
			Forbidden(c, be.Code, "Not allowed for this user.")
		case be.Code == "payments_disabled":
			Unavailable(c, be.Code, "Payments are not configured.")
		case strings.HasSuffix(be.Code, "_not_found"):
			NotFound(c, be.Code, be.Code)
		default:
			Write(c, http.StatusUnprocessableEntity, be.Code, be.Code)
		}

	default:
		Internal(c, "internal_error", "Internal server error.")
	}
}
