package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	domain "github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/models"
	ucResource "github.com/BruksfildServices01/booking-api/internal/usecase/resource"
)

// validatable rows run their own checks after binding.
type validatable interface {
	Validate() error
}

// ======================================================
// HANDLER
// ======================================================

// ResourceHandler serves the list/get/create/update/delete/bulk-delete
// endpoints of one resource.
type ResourceHandler[T domain.Entity] struct {
	svc   *ucResource.Service[T]
	audit *audit.Dispatcher
	name  string

	// ownerFilter, when set, confines non-admin callers to their own rows.
	ownerFilter string
}

func NewResourceHandler[T domain.Entity](
	svc *ucResource.Service[T],
	audit *audit.Dispatcher,
) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		svc:   svc,
		audit: audit,
		name:  svc.Definition().Name,
	}
}

// ScopedTo confines non-admin callers to rows whose filter equals their id.
func (h *ResourceHandler[T]) ScopedTo(filter string) *ResourceHandler[T] {
	h.ownerFilter = filter
	return h
}

// ======================================================
// READ
// ======================================================

func (h *ResourceHandler[T]) List(c *gin.Context) {
	filters := queryFilters(c)
	if h.scoped(c) {
		filters[h.ownerFilter] = middleware.UserID(c)
	}

	res, err := h.svc.List(c.Request.Context(), paginationOptions(c), filters)
	if err != nil {
		httperr.FromError(c, h.name, err)
		return
	}

	httpresp.List(c, res)
}

func (h *ResourceHandler[T]) Get(c *gin.Context) {
	id, ok := pathID(c, h.name)
	if !ok {
		return
	}

	row, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, h.name, err)
		return
	}
	if row == nil || !h.visible(c, row) {
		httperr.NotFound(c, h.name+"_not_found", "Resource not found.")
		return
	}

	httpresp.OK(c, row)
}

// ======================================================
// WRITE
// ======================================================

func (h *ResourceHandler[T]) Create(c *gin.Context) {
	row := new(T)
	if err := c.ShouldBindJSON(row); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if v, ok := any(row).(validatable); ok {
		if err := v.Validate(); err != nil {
			httperr.FromError(c, h.name, err)
			return
		}
	}

	if owned, ok := any(row).(models.Owned); ok {
		owned.SetOwner(middleware.UserID(c))
	}

	created, err := h.svc.Create(c.Request.Context(), row)
	if err != nil {
		httperr.FromError(c, h.name, err)
		return
	}

	h.record(c, "created", (*created).PrimaryKey(), nil)
	httpresp.Created(c, created)
}

func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id, ok := pathID(c, h.name)
	if !ok || !h.authorize(c, id) {
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	row, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		httperr.FromError(c, h.name, err)
		return
	}

	h.record(c, "updated", id, patch)
	httpresp.OK(c, row)
}

func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	id, ok := pathID(c, h.name)
	if !ok || !h.authorize(c, id) {
		return
	}

	row, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, h.name, err)
		return
	}

	h.record(c, "deleted", id, nil)
	httpresp.OK(c, row)
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// BulkDelete always answers 200; per-id outcomes are in the body.
func (h *ResourceHandler[T]) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ids, foreign := h.partitionOwned(c, req.IDs)

	res := h.svc.DeleteMany(c.Request.Context(), ids)
	res.NotFound = append(res.NotFound, foreign...)

	deleted := make([]string, 0, len(res.Deleted))
	for _, row := range res.Deleted {
		deleted = append(deleted, row.PrimaryKey())
	}
	h.record(c, "bulk_deleted", "", map[string]any{
		"deleted":   deleted,
		"not_found": res.NotFound,
		"failed":    res.Failed,
	})

	httpresp.OK(c, res)
}

// ======================================================
// OWNERSHIP
// ======================================================

func (h *ResourceHandler[T]) scoped(c *gin.Context) bool {
	return h.ownerFilter != "" && !middleware.IsAdmin(c)
}

func (h *ResourceHandler[T]) visible(c *gin.Context, row *T) bool {
	if !h.scoped(c) {
		return true
	}
	owned, ok := any(row).(models.Owned)
	return !ok || owned.OwnerID() == middleware.UserID(c)
}

// authorize answers 404 for rows the caller may not touch, so their
// existence is not revealed.
func (h *ResourceHandler[T]) authorize(c *gin.Context, id string) bool {
	if !h.scoped(c) {
		return true
	}

	row, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, h.name, err)
		return false
	}
	if row == nil || !h.visible(c, row) {
		httperr.NotFound(c, h.name+"_not_found", "Resource not found.")
		return false
	}
	return true
}

// partitionOwned splits ids into those the caller may delete and those
// reported as not found.
func (h *ResourceHandler[T]) partitionOwned(c *gin.Context, ids []string) ([]string, []string) {
	if !h.scoped(c) {
		return ids, nil
	}

	var allowed, foreign []string
	for _, id := range ids {
		row, err := h.svc.GetByID(c.Request.Context(), id)
		if err == nil && row != nil && !h.visible(c, row) {
			foreign = append(foreign, id)
			continue
		}
		allowed = append(allowed, id)
	}
	return allowed, foreign
}

func (h *ResourceHandler[T]) record(c *gin.Context, verb, id string, meta any) {
	h.audit.Dispatch(audit.Event{
		UserID:   callerID(c),
		Action:   h.name + "_" + verb,
		Entity:   h.name,
		EntityID: id,
		Metadata: meta,
	})
}
