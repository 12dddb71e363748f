package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/dto"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/models"
	"github.com/BruksfildServices01/booking-api/internal/query"
)

// AuditLogReader is implemented by repository.AuditLogGormRepository.
type AuditLogReader interface {
	List(ctx context.Context, c resource.Criteria) ([]models.AuditLog, int64, error)
}

var auditLogFilters = []query.Field{
	query.Eq("action", "action", query.KindString),
	query.Eq("entity", "entity", query.KindString),
	query.Eq("entity_id", "entity_id", query.KindString),
	query.Eq("user_id", "user_id", query.KindUUID),
	query.Gte("from", "created_at", query.KindDate),
	query.Lte("to", "created_at", query.KindDate),
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs      AuditLogReader
	paginator query.Paginator
}

func NewAuditLogsHandler(logs AuditLogReader, paginator query.Paginator) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, paginator: paginator}
}

// List is newest first unless sort_order=asc. "to" is inclusive of the whole day.
func (h *AuditLogsHandler) List(c *gin.Context) {
	filters := queryFilters(c)

	if to, ok := filters["to"]; ok {
		if day, err := time.Parse(time.DateOnly, to); err == nil {
			filters["to"] = day.AddDate(0, 0, 1).Format(time.DateOnly)
		}
	}

	where, err := query.BuildPredicate(filters, nil, auditLogFilters)
	if err != nil {
		httperr.FromError(c, "audit_log", err)
		return
	}

	p := h.paginator.Calculate(paginationOptions(c))

	logs, total, err := h.logs.List(c.Request.Context(), resource.Criteria{
		Where: where,
		Skip:  p.Skip,
		Limit: p.Limit,
		Desc:  p.Desc(),
	})
	if err != nil {
		httperr.FromError(c, "audit_log", err)
		return
	}

	httpresp.List(c, &resource.ListResult[dto.AuditLogDTO]{
		Meta: resource.Meta{Total: total, Page: p.Page, Limit: p.Limit},
		Data: dto.NewAuditLogDTOs(logs),
	})
}
