package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
)

// inboxHandler exposes the support mailbox to admins.
type inboxHandler struct {
	inboxService portssvc.InboxSvcFacade
}

// registerAdminInboxRoutes registers the support mailbox routes.
func registerAdminInboxRoutes(rg *gin.RouterGroup, inboxService portssvc.InboxSvcFacade) {
	h := &inboxHandler{inboxService: inboxService}
	rg.GET("/inbox", h.listInbox)
}

// listInbox godoc
// @Summary List support inbox
// @Description Returns recent messages from the support mailbox plus the mailbox total.
// @Tags inbox
// @Produce json
// @Param limit query int false "Number of messages" default(20)
// @Param unreadOnly query bool false "Only unseen messages"
// @Param since query string false "Only messages on or after this date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListInboxResponse
// @Failure 502 {object} ErrorResponse "Mailbox unreachable"
// @Security BearerAuth
// @Router /admin/inbox [get]
func (h *inboxHandler) listInbox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInboxParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var since time.Time
	if params.Since != "" {
		since, _ = time.Parse("2006-01-02", params.Since)
	}

	msgs, total, err := h.inboxService.ListInbox(c.Request.Context(), params.Limit, params.UnreadOnly, since)
	if err != nil {
		respondError(c, logger, err, "Failed to read support mailbox")
		return
	}

	out := make([]dto.InboxMessageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = dto.InboxMessageResponse{UID: m.UID, From: m.From, Subject: m.Subject, Date: m.Date, Seen: m.Seen}
	}
	c.JSON(http.StatusOK, dto.ListInboxResponse{Messages: out, Total: total})
}
