package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amalynlocs/salon-api/internal/httperr"
	ucAnalytics "github.com/amalynlocs/salon-api/internal/usecase/analytics"
)

type AnalyticsHandler struct {
	summaryUC *ucAnalytics.Summary
}

func NewAnalyticsHandler(summaryUC *ucAnalytics.Summary) *AnalyticsHandler {
	return &AnalyticsHandler{summaryUC: summaryUC}
}

func (h *AnalyticsHandler) Get(c *gin.Context) {
	analytics, err := h.summaryUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_analytics", "Failed to fetch analytics.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"analytics": analytics})
}
