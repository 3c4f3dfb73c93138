package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/specularhq/specular/pkg/events"
)

// auditEventsHandler handles GET /api/v1/audits/:id/events.
//
// Serves the durable side of the event feed for reconnect catchup: a
// consumer that lost its NOTIFY subscription replays rows with id >
// since_id, then resubscribes. Progress ticks are never persisted, so the
// feed carries status transitions and dashboard_ready only. Unknown audits
// yield an empty feed rather than a 404; the audit surface belongs to the
// serving app.
func (s *Server) auditEventsHandler(c *gin.Context) {
	auditID := c.Param("id")

	sinceID, err := strconv.Atoi(c.DefaultQuery("since_id", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "since_id must be an integer"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	rows, err := s.events.GetEventsSince(c.Request.Context(), events.AuditChannel(auditID), sinceID, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := &AuditEventsResponse{
		AuditID: auditID,
		Events:  make([]AuditEventRow, 0, len(rows)),
		LastID:  sinceID,
	}
	for _, row := range rows {
		resp.Events = append(resp.Events, AuditEventRow{
			ID:        row.ID,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt.Format(time.RFC3339Nano),
		})
		resp.LastID = row.ID
	}

	c.JSON(http.StatusOK, resp)
}
