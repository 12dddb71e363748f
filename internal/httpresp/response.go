package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// List writes the {meta, data} envelope.
func List[T any](c *gin.Context, res *resource.ListResult[T]) {
	c.JSON(http.StatusOK, res)
}
