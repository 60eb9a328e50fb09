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

// quoteRequestHandler handles HTTP requests related to intake requests.
type quoteRequestHandler struct {
	requestService portssvc.QuoteRequestSvcFacade
}

func newQuoteRequestHandler(rs portssvc.QuoteRequestSvcFacade) *quoteRequestHandler {
	return &quoteRequestHandler{requestService: rs}
}

// registerQuoteRequestIntakeRoute registers the public intake endpoint.
func registerQuoteRequestIntakeRoute(rg *gin.Engine, requestService portssvc.QuoteRequestSvcFacade, rateLimit gin.HandlerFunc) {
	h := newQuoteRequestHandler(requestService)
	rg.POST("/api/v1/solicitudes", rateLimit, h.createRequest)
	rg.GET("/api/v1/solicitudes/:number", rateLimit, h.trackRequest)
}

// registerAdminQuoteRequestRoutes registers the admin review routes.
func registerAdminQuoteRequestRoutes(rg *gin.RouterGroup, requestService portssvc.QuoteRequestSvcFacade) {
	h := newQuoteRequestHandler(requestService)

	requests := rg.Group("/solicitudes")
	{
		requests.GET("", h.listRequests)
		requests.GET("/stats", h.requestStats)
		requests.GET("/:id", h.getRequestByID)
		requests.POST("/:id/status", h.updateRequestStatus)
		requests.POST("/:id/promote", h.promoteRequest)
		requests.DELETE("/:id", h.deleteRequest)
	}
}

// createRequest godoc
// @Summary Submit a quote request
// @Description Public intake form. Registers the request, emails an acknowledgement and alerts admins.
// @Tags solicitudes
// @Accept json
// @Produce json
// @Param request body dto.CreateQuoteRequestRequest true "Request details"
// @Success 201 {object} dto.QuoteRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Router /solicitudes [post]
func (h *quoteRequestHandler) createRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuoteRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	request, err := h.requestService.CreateRequest(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to register request")
		return
	}
	c.JSON(http.StatusCreated, dto.ToQuoteRequestResponse(request))
}

// trackRequest godoc
// @Summary Track a quote request
// @Description Public tracking by SOL- number. Returns only progress data.
// @Tags solicitudes
// @Produce json
// @Param number path string true "Request number"
// @Success 200 {object} dto.RequestTrackingResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Router /solicitudes/{number} [get]
func (h *quoteRequestHandler) trackRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	request, err := h.requestService.TrackRequest(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, logger, err, "Failed to track request")
		return
	}
	c.JSON(http.StatusOK, dto.ToRequestTrackingResponse(request))
}

// requestStats godoc
// @Summary Quote request statistics
// @Description Aggregated request counts by status, kind and urgency. Admin only.
// @Tags solicitudes
// @Produce json
// @Success 200 {object} domain.RequestStats
// @Security BearerAuth
// @Router /admin/solicitudes/stats [get]
func (h *quoteRequestHandler) requestStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.requestService.RequestStats(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to aggregate requests")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// listRequests godoc
// @Summary List quote requests
// @Description Retrieves intake requests with pagination and filters. Admin only.
// @Tags solicitudes
// @Produce json
// @Param status query string false "Status filter" Enums(pending, in_review, quoted, rejected, completed)
// @Param urgency query string false "Urgency filter" Enums(low, medium, high)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListQuoteRequestsResponse
// @Security BearerAuth
// @Router /admin/solicitudes [get]
func (h *quoteRequestHandler) listRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListQuoteRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	requests, err := h.requestService.ListRequests(c.Request.Context(),
		domain.RequestStatus(params.Status), domain.RequestUrgency(params.Urgency), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list requests")
		return
	}
	c.JSON(http.StatusOK, dto.ToListQuoteRequestsResponse(requests))
}

// getRequestByID godoc
// @Summary Get a quote request
// @Description Retrieves an intake request by ID. Admin only.
// @Tags solicitudes
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.QuoteRequestResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/solicitudes/{id} [get]
func (h *quoteRequestHandler) getRequestByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	request, err := h.requestService.GetRequestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve request")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteRequestResponse(request))
}

// updateRequestStatus godoc
// @Summary Update request status
// @Description Moves an intake request to a new status. Admin only.
// @Tags solicitudes
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param status body dto.UpdateRequestStatusRequest true "New status"
// @Success 200 {object} dto.QuoteRequestResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/solicitudes/{id}/status [post]
func (h *quoteRequestHandler) updateRequestStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	request, err := h.requestService.UpdateRequestStatus(c.Request.Context(), c.Param("id"), req, adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to update request status")
		return
	}

	logger.Info("Request status updated", slog.String("request_id", request.RequestID), slog.String("status", string(request.Status)))
	c.JSON(http.StatusOK, dto.ToQuoteRequestResponse(request))
}

// promoteRequest godoc
// @Summary Promote a quote request
// @Description Creates the user (and company, for company requests) behind an intake request when missing and links them. Admin only.
// @Tags solicitudes
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} domain.PromotionResult
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/solicitudes/{id}/promote [post]
func (h *quoteRequestHandler) promoteRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.requestService.PromoteRequest(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to promote request")
		return
	}

	logger.Info("Request promoted", slog.String("request_id", c.Param("id")), slog.Bool("user_created", result.UserCreated))
	c.JSON(http.StatusOK, result)
}

// deleteRequest godoc
// @Summary Delete a quote request
// @Description Removes an intake request. Quoted requests cannot be deleted. Admin only.
// @Tags solicitudes
// @Param id path string true "Request ID"
// @Success 204 "Request deleted"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already quoted"
// @Security BearerAuth
// @Router /admin/solicitudes/{id} [delete]
func (h *quoteRequestHandler) deleteRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.requestService.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete request")
		return
	}
	c.Status(http.StatusNoContent)
}
