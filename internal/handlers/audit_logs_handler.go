package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amalynlocs/salon-api/internal/httperr"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store kv.Store
}

func NewAuditLogsHandler(store kv.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	raws, err := h.store.GetByPrefix(c.Request.Context(), models.AuditPrefix)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_audit_logs", "Failed to fetch audit logs.")
		return
	}

	logs := make([]models.AuditLog, 0, len(raws))
	for _, raw := range raws {
		var entry models.AuditLog
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		if action != "" && entry.Action != action {
			continue
		}
		if entity != "" && entry.Entity != entity {
			continue
		}
		logs = append(logs, entry)
	}

	// newest first; ids are timestamp-prefixed so CreatedAt ties stay stable
	sort.Slice(logs, func(i, j int) bool {
		if logs[i].CreatedAt != logs[j].CreatedAt {
			return logs[i].CreatedAt > logs[j].CreatedAt
		}
		return logs[i].ID > logs[j].ID
	})

	if len(logs) > limit {
		logs = logs[:limit]
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "total": len(logs)})
}
