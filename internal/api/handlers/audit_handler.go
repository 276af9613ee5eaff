package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/application"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/repository"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary Query the admin audit trail
// @Description Audit entries for status changes and deletions, filterable by actor, resource type, action and time range.
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param actorId query uint false "Actor user ID"
// @Param resourceType query string false "Resource type, e.g. contact"
// @Param action query string false "Action, e.g. status_change"
// @Param startTime query string false "Start of range, RFC3339"
// @Param endTime query string false "End of range, RFC3339"
// @Param limit query int false "Max records (default 100, max 1000)"
// @Param offset query int false "Pagination offset"
// @Success 200 {array} audit.AuditLog
// @Failure 400 {object} response.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if raw := c.Query("actorId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid actorId"})
			return
		}
		actor := uint(id)
		params.ActorID = &actor
	}

	if rt := c.Query("resourceType"); rt != "" {
		params.ResourceType = &rt
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	if start := c.Query("startTime"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid startTime"})
			return
		}
		params.StartTime = &t
	}
	if end := c.Query("endTime"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid endTime"})
			return
		}
		params.EndTime = &t
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit > 1000 {
		limit = 1000
	}
	params.Limit = limit
	params.Offset = offset

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to query audit logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
