package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/query"
	ucBooking "github.com/BruksfildServices01/booking-api/internal/usecase/booking"
)

// pathID reads the :id parameter and answers 400 when it is not a UUID.
func pathID(c *gin.Context, entity string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		httperr.BadRequest(c, "invalid_"+entity+"_id", "The id must be a valid UUID.")
		return "", false
	}
	return id, true
}

func paginationOptions(c *gin.Context) query.PaginationOptions {
	return query.PaginationOptions{
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}

// queryFilters keeps the first value of every query parameter. Unknown keys
// are dropped later by the resource schema.
func queryFilters(c *gin.Context) query.Filters {
	values := c.Request.URL.Query()

	out := make(query.Filters, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// callerID is nil for anonymous requests.
func callerID(c *gin.Context) *string {
	id := middleware.UserID(c)
	if id == "" {
		return nil
	}
	return &id
}

func actor(c *gin.Context) ucBooking.Actor {
	return ucBooking.Actor{
		UserID:  middleware.UserID(c),
		IsAdmin: middleware.IsAdmin(c),
	}
}
