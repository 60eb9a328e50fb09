package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
)

// notificationHandler handles HTTP requests related to admin notifications.
type notificationHandler struct {
	notifService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notifService: ns}
}

// registerAdminNotificationRoutes registers the admin notification routes.
func registerAdminNotificationRoutes(rg *gin.RouterGroup, notifService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notifService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/stats", h.notificationStats)
		notifications.POST("", h.createNotification)
		notifications.POST("/:id/read", h.markRead)
		notifications.POST("/read-all", h.markAllRead)
		notifications.POST("/sweep", h.sweep)
		notifications.DELETE("/:id", h.deleteNotification)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Description Retrieves the admin's notifications plus the unread counter.
// @Tags notifications
// @Produce json
// @Param unreadOnly query bool false "Only unread notifications"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListNotificationsResponse
// @Security BearerAuth
// @Router /admin/notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	notifications, unread, err := h.notifService.ListNotifications(c.Request.Context(), adminID, params.UnreadOnly, params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications, unread))
}

// notificationStats godoc
// @Summary Notification statistics
// @Description Summarizes the admin's unread notifications per priority.
// @Tags notifications
// @Produce json
// @Success 200 {object} domain.NotificationStats
// @Security BearerAuth
// @Router /admin/notifications/stats [get]
func (h *notificationHandler) notificationStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	stats, err := h.notifService.NotificationStats(c.Request.Context(), adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to summarize notifications")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// createNotification godoc
// @Summary Create a manual notification
// @Description Addresses a manual notification to an admin. An empty adminID addresses the caller.
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body dto.CreateNotificationRequest true "Notification details"
// @Success 201 {object} dto.NotificationResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/notifications [post]
func (h *notificationHandler) createNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callerID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	adminID := req.AdminID
	if adminID == "" {
		adminID = callerID
	}

	notification, err := h.notifService.CreateNotification(c.Request.Context(), adminID,
		domain.NotificationKind(req.Kind), req.Title, req.Body, domain.NotificationPriority(req.Priority), callerID)
	if err != nil {
		respondError(c, logger, err, "Failed to create notification")
		return
	}
	c.JSON(http.StatusCreated, dto.ToNotificationResponse(notification))
}

// deleteNotification godoc
// @Summary Delete a notification
// @Description Removes one of the admin's notifications.
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204 "Notification deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/notifications/{id} [delete]
func (h *notificationHandler) deleteNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	if err := h.notifService.DeleteNotification(c.Request.Context(), adminID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete notification")
		return
	}
	c.Status(http.StatusNoContent)
}

// markRead godoc
// @Summary Mark a notification read
// @Description Marks one of the admin's notifications read.
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204 "Marked read"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/notifications/{id}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	if err := h.notifService.MarkRead(c.Request.Context(), adminID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to mark notification read")
		return
	}
	c.Status(http.StatusNoContent)
}

// markAllRead godoc
// @Summary Mark all notifications read
// @Description Marks all of the admin's notifications read.
// @Tags notifications
// @Success 204 "Marked read"
// @Security BearerAuth
// @Router /admin/notifications/read-all [post]
func (h *notificationHandler) markAllRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	if err := h.notifService.MarkAllRead(c.Request.Context(), adminID); err != nil {
		respondError(c, logger, err, "Failed to mark notifications read")
		return
	}
	c.Status(http.StatusNoContent)
}

// sweep godoc
// @Summary Run the notification sweep
// @Description Scans pending requests, upcoming visits, pending companies and stale quotes and fans matching alerts out to every admin.
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.SweepResponse
// @Security BearerAuth
// @Router /admin/notifications/sweep [post]
func (h *notificationHandler) sweep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	created, err := h.notifService.Sweep(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Notification sweep failed")
		return
	}

	logger.Info("Notification sweep run", slog.Int("created", created))
	c.JSON(http.StatusOK, dto.SweepResponse{Created: created})
}
