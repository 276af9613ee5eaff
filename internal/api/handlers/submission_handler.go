package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/api/middleware"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/application"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/submission"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

// SubmissionHandler serves every form entity; each route closure is
// bound to one schema descriptor.
type SubmissionHandler struct {
	svc *application.SubmissionService
}

func NewSubmissionHandler(svc *application.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

func (h *SubmissionHandler) recordID(c *gin.Context, s submission.Schema) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: fmt.Sprintf("Invalid %s ID format", strings.ToLower(s.Label))})
		return 0, false
	}
	return uint(id), true
}

func (h *SubmissionHandler) actor(c *gin.Context) application.Actor {
	a := application.Actor{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if claims, ok := middleware.ClaimsFrom(c); ok {
		a.UserID = claims.UserID
	}
	return a
}

// submitPayload extracts the raw form payload: JSON body for plain
// submissions, form values plus files for multipart ones.
func submitPayload(c *gin.Context) (map[string]any, map[string]*multipart.FileHeader, error) {
	contentType := c.ContentType()
	if !strings.HasPrefix(contentType, "multipart/") {
		payload := map[string]any{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			return nil, nil, err
		}
		return payload, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}
	payload := make(map[string]any, len(form.Value))
	for key, vals := range form.Value {
		if len(vals) == 1 {
			payload[key] = vals[0]
		} else if len(vals) > 1 {
			payload[key] = vals
		}
	}
	files := make(map[string]*multipart.FileHeader, len(form.File))
	for key, fhs := range form.File {
		if len(fhs) > 0 {
			files[key] = fhs[0]
		}
	}
	return payload, files, nil
}

// Submit handles the public form endpoint of an entity.
func (h *SubmissionHandler) Submit(s submission.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, files, err := submitPayload(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request body"})
			return
		}

		rec, err := h.svc.Submit(c.Request.Context(), s, payload, files, c.ClientIP(), c.Request.UserAgent())
		if err != nil {
			var verr *submission.ValidationError
			switch {
			case errors.As(err, &verr):
				c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: verr.Message})
			case errors.Is(err, application.ErrFileTooLarge),
				errors.Is(err, application.ErrBadFileType):
				c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: fmt.Sprintf("Failed to submit %s", strings.ToLower(s.Label))})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": fmt.Sprintf("%s submitted successfully", s.Label),
			s.IDKey:   rec.ID,
		})
	}
}

// listQuery parses the admin listing parameters for an entity.
func listQuery(c *gin.Context, s submission.Schema) submission.ListQuery {
	q := submission.ListQuery{
		Search:  strings.TrimSpace(c.Query("search")),
		Filters: map[string]string{},
	}

	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	for _, f := range s.Filters {
		v := strings.TrimSpace(c.Query(f.Param))
		if submission.IsAllSentinel(v) {
			continue
		}
		q.Filters[f.Param] = v
	}

	if v := c.Query("startDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q.StartDate = &t
		}
	}
	if v := c.Query("endDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			// inclusive through the end of the day
			end := t.Add(24*time.Hour - time.Nanosecond)
			q.EndDate = &end
		}
	}

	q.Normalize()
	return q
}

// List handles the admin listing endpoint of an entity.
func (h *SubmissionHandler) List(s submission.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := listQuery(c, s)

		items, total, err := h.svc.List(s, q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: fmt.Sprintf("Failed to fetch %ss", strings.ToLower(s.Label))})
			return
		}

		views := make([]map[string]any, len(items))
		for i, item := range items {
			views[i] = item.View()
		}

		c.JSON(http.StatusOK, response.ListResponse{
			Data:       views,
			Page:       q.Page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: q.TotalPages(total),
		})
	}
}

// Get handles the admin single-record endpoint of an entity.
func (h *SubmissionHandler) Get(s submission.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.recordID(c, s)
		if !ok {
			return
		}

		rec, err := h.svc.Get(s, id)
		if err != nil {
			if errors.Is(err, application.ErrNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("%s not found", s.Label)})
			} else {
				c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: fmt.Sprintf("Failed to fetch %s", strings.ToLower(s.Label))})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": rec.View()})
	}
}

// UpdateStatus handles the admin status endpoint of an entity.
func (h *SubmissionHandler) UpdateStatus(s submission.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.recordID(c, s)
		if !ok {
			return
		}

		var body struct {
			Status string `json:"status" binding:"required"`
			IsSpam *bool  `json:"isSpam"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "status is required"})
			return
		}

		rec, err := h.svc.UpdateStatus(s, id, body.Status, body.IsSpam, h.actor(c))
		if err != nil {
			switch {
			case errors.Is(err, application.ErrBadStatus):
				c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(s.Statuses, ", "))})
			case errors.Is(err, application.ErrNotFound):
				c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("%s not found", s.Label)})
			default:
				c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to update status"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Status updated successfully",
			"data":    rec.View(),
		})
	}
}

// Delete handles the admin delete endpoint of an entity.
func (h *SubmissionHandler) Delete(s submission.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.recordID(c, s)
		if !ok {
			return
		}

		err := h.svc.Delete(c.Request.Context(), s, id, h.actor(c))
		if err != nil {
			if errors.Is(err, application.ErrNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("%s not found", s.Label)})
			} else {
				c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: fmt.Sprintf("Failed to delete %s", strings.ToLower(s.Label))})
			}
			return
		}

		c.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("%s deleted successfully", s.Label)})
	}
}

// ExportCSV streams the filtered record set of an entity as CSV.
func (h *SubmissionHandler) ExportCSV(s submission.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := listQuery(c, s)

		filename := fmt.Sprintf("%s-export-%s.csv", s.Slug, time.Now().Format("2006-01-02"))
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := h.svc.Export(s, q, c.Writer); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	}
}

// Stats serves the dashboard counters of an entity.
func (h *SubmissionHandler) Stats(s submission.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := h.svc.Stats(s)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": stats})
	}
}

// Filters exposes the selectable filter values of an entity so the
// dashboard can build its dropdowns without hardcoding them.
func (h *SubmissionHandler) Filters(s submission.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": s.FilterOptions()})
	}
}

// Download streams one stored attachment of a record.
func (h *SubmissionHandler) Download(s submission.Schema, att submission.Attachment) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.recordID(c, s)
		if !ok {
			return
		}

		ref, rc, size, err := h.svc.OpenAttachment(c.Request.Context(), s, id, att)
		if err != nil {
			switch {
			case errors.Is(err, application.ErrNotFound):
				c.JSON(http.StatusNotFound, response.ErrorResponse{Error: fmt.Sprintf("%s not found", s.Label)})
			case errors.Is(err, application.ErrAttachmentMissing):
				c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "File not found"})
			default:
				c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch file"})
			}
			return
		}
		defer rc.Close()

		c.DataFromReader(http.StatusOK, size, application.DownloadContentType(ref), rc, map[string]string{
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", application.DownloadName(ref)),
		})
	}
}
