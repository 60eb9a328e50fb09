package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
)

// visitHandler handles HTTP requests related to site visits.
type visitHandler struct {
	visitService portssvc.VisitSvcFacade
}

func newVisitHandler(vs portssvc.VisitSvcFacade) *visitHandler {
	return &visitHandler{visitService: vs}
}

// registerVisitRoutes registers the client-facing visit routes.
func registerVisitRoutes(rg *gin.RouterGroup, visitService portssvc.VisitSvcFacade) {
	h := newVisitHandler(visitService)

	visits := rg.Group("/visits")
	{
		visits.GET("/mine", h.listMyVisits)
		visits.POST("/:id/accept", h.acceptVisit)
		visits.POST("/:id/reject", h.rejectVisit)
		visits.POST("/:id/reprogram", h.reprogramVisit)
	}
}

// registerAdminVisitRoutes registers the visit management routes.
func registerAdminVisitRoutes(rg *gin.RouterGroup, visitService portssvc.VisitSvcFacade) {
	h := newVisitHandler(visitService)

	visits := rg.Group("/visits")
	{
		visits.POST("", h.scheduleVisit)
		visits.GET("", h.listVisits)
		visits.GET("/:id", h.getVisitByID)
		visits.PUT("/:id", h.updateVisit)
		visits.DELETE("/:id", h.deleteVisit)
	}
}

// scheduleVisit godoc
// @Summary Schedule a site visit
// @Description Books a visit slot. When the slot is taken the occupying visit is returned with existing set to true.
// @Tags visits
// @Accept json
// @Produce json
// @Param visit body dto.CreateVisitRequest true "Visit details"
// @Success 201 {object} dto.CreateVisitResponse
// @Success 200 {object} dto.CreateVisitResponse "Slot already taken"
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/visits [post]
func (h *visitHandler) scheduleVisit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	visit, existing, err := h.visitService.ScheduleVisit(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to schedule visit")
		return
	}

	status := http.StatusCreated
	if existing {
		status = http.StatusOK
	}
	c.JSON(status, dto.CreateVisitResponse{Visit: dto.ToVisitResponse(visit), Existing: existing})
}

// listVisits godoc
// @Summary List visits
// @Description Retrieves visits with pagination and filters. Admin only.
// @Tags visits
// @Produce json
// @Param status query string false "Status filter" Enums(pending, accepted, reprogram, rejected)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListVisitsResponse
// @Security BearerAuth
// @Router /admin/visits [get]
func (h *visitHandler) listVisits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListVisitsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var from, to time.Time
	if params.From != "" {
		from, _ = time.Parse("2006-01-02", params.From)
	}
	if params.To != "" {
		to, _ = time.Parse("2006-01-02", params.To)
	}

	visits, err := h.visitService.ListVisits(c.Request.Context(), domain.VisitStatus(params.Status), from, to, params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list visits")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVisitsResponse(visits))
}

// listMyVisits godoc
// @Summary List own visits
// @Description Retrieves the visits scheduled for the authenticated user.
// @Tags visits
// @Produce json
// @Success 200 {object} dto.ListVisitsResponse
// @Security BearerAuth
// @Router /visits/mine [get]
func (h *visitHandler) listMyVisits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	visits, err := h.visitService.ListVisitsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list visits")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVisitsResponse(visits))
}

// getVisitByID godoc
// @Summary Get a visit
// @Description Retrieves a visit by ID. Admin only.
// @Tags visits
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} dto.VisitResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/visits/{id} [get]
func (h *visitHandler) getVisitByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	visit, err := h.visitService.GetVisitByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve visit")
		return
	}
	c.JSON(http.StatusOK, dto.ToVisitResponse(visit))
}

// acceptVisit godoc
// @Summary Accept a visit
// @Description Confirms a pending visit. Only the visited user may accept.
// @Tags visits
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} dto.VisitResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Visit already resolved"
// @Security BearerAuth
// @Router /visits/{id}/accept [post]
func (h *visitHandler) acceptVisit(c *gin.Context) {
	h.transition(c, h.visitService.AcceptVisit)
}

// rejectVisit godoc
// @Summary Reject a visit
// @Description Declines a pending visit. Only the visited user may reject.
// @Tags visits
// @Produce json
// @Param id path string true "Visit ID"
// @Success 200 {object} dto.VisitResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Visit already resolved"
// @Security BearerAuth
// @Router /visits/{id}/reject [post]
func (h *visitHandler) rejectVisit(c *gin.Context) {
	h.transition(c, h.visitService.RejectVisit)
}

func (h *visitHandler) transition(c *gin.Context, fn func(ctx context.Context, visitID, userID string) (*domain.Visit, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	visit, err := fn(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update visit")
		return
	}

	logger.Info("Visit updated", slog.String("visit_id", visit.VisitID), slog.String("status", string(visit.Status)))
	c.JSON(http.StatusOK, dto.ToVisitResponse(visit))
}

// reprogramVisit godoc
// @Summary Request a new visit slot
// @Description Asks to move a pending or accepted visit to a new slot. Only the visited user may reprogram.
// @Tags visits
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param slot body dto.ReprogramVisitRequest true "New slot"
// @Success 200 {object} dto.VisitResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slot taken or visit resolved"
// @Security BearerAuth
// @Router /visits/{id}/reprogram [post]
func (h *visitHandler) reprogramVisit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ReprogramVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	visit, err := h.visitService.ReprogramVisit(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to reprogram visit")
		return
	}

	logger.Info("Visit reprogram requested", slog.String("visit_id", visit.VisitID))
	c.JSON(http.StatusOK, dto.ToVisitResponse(visit))
}

// updateVisit godoc
// @Summary Update a visit
// @Description Applies the provided fields to a visit. A slot change collides with other visits only. Admin only.
// @Tags visits
// @Accept json
// @Produce json
// @Param id path string true "Visit ID"
// @Param visit body dto.UpdateVisitRequest true "Fields to update"
// @Success 200 {object} dto.VisitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slot already taken"
// @Security BearerAuth
// @Router /admin/visits/{id} [put]
func (h *visitHandler) updateVisit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(c)
	visit, err := h.visitService.UpdateVisit(c.Request.Context(), c.Param("id"), req, adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to update visit")
		return
	}

	logger.Info("Visit updated", slog.String("visit_id", visit.VisitID))
	c.JSON(http.StatusOK, dto.ToVisitResponse(visit))
}

// deleteVisit godoc
// @Summary Delete a visit
// @Description Removes a visit. Admin only.
// @Tags visits
// @Param id path string true "Visit ID"
// @Success 204 "Visit deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/visits/{id} [delete]
func (h *visitHandler) deleteVisit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.visitService.DeleteVisit(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete visit")
		return
	}
	c.Status(http.StatusNoContent)
}
