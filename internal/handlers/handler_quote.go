package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
)

// quoteHandler handles HTTP requests related to quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

// registerQuoteRoutes registers the client-facing quote routes.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.GET("/mine", h.listMyQuotes)
		quotes.GET("/:id", h.getQuoteByID)
		quotes.GET("/:id/pdf", h.downloadQuotePDF)
		quotes.POST("/:id/status", h.updateQuoteStatus)
	}
}

// registerAdminQuoteRoutes registers the quote management routes.
func registerAdminQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("", h.listQuotes)
		quotes.GET("/numero/:number", h.getQuoteByNumber)
		quotes.POST("/:id/send", h.sendQuoteEmail)
		quotes.DELETE("/:id", h.deleteQuote)
	}
}

// createQuote godoc
// @Summary Issue a quote
// @Description Prices the requested lines at the current UF value, allocates the next quote number and persists the quote. Optionally emails the PDF to the recipient.
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.CreateQuoteRequest true "Quote details"
// @Success 201 {object} dto.CreateQuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Recipient not found"
// @Security BearerAuth
// @Router /admin/quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	quote, emailSent, err := h.quoteService.CreateQuote(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to create quote")
		return
	}

	logger.Info("Quote issued", slog.String("quote_id", quote.QuoteID), slog.String("number", quote.Number), slog.Bool("email_sent", emailSent))
	c.JSON(http.StatusCreated, dto.CreateQuoteResponse{Quote: dto.ToQuoteResponse(quote), EmailSent: emailSent})
}

// listQuotes godoc
// @Summary List quotes
// @Description Retrieves quotes with pagination, optionally by status. Admin only.
// @Tags quotes
// @Produce json
// @Param status query string false "Status filter" Enums(pending, accepted, rejected)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListQuotesResponse
// @Security BearerAuth
// @Router /admin/quotes [get]
func (h *quoteHandler) listQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListQuotesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), domain.QuoteStatus(params.Status), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list quotes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListQuotesResponse(quotes))
}

// getQuoteByNumber godoc
// @Summary Get a quote by number
// @Description Retrieves a quote by its COT- number. Admin only.
// @Tags quotes
// @Produce json
// @Param number path string true "Quote number"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/quotes/numero/{number} [get]
func (h *quoteHandler) getQuoteByNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quote, err := h.quoteService.GetQuoteByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// listMyQuotes godoc
// @Summary List own quotes
// @Description Retrieves the quotes issued to the authenticated user.
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.ListQuotesResponse
// @Security BearerAuth
// @Router /quotes/mine [get]
func (h *quoteHandler) listMyQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	quotes, err := h.quoteService.ListQuotesByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list quotes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListQuotesResponse(quotes))
}

// getQuoteByID godoc
// @Summary Get a quote
// @Description Retrieves a quote with its lines. Clients may only read their own quotes.
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id} [get]
func (h *quoteHandler) getQuoteByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quote, err := h.quoteService.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve quote")
		return
	}
	if !h.canRead(c, quote) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// downloadQuotePDF godoc
// @Summary Download the quote PDF
// @Description Renders and returns the printable quote document.
// @Tags quotes
// @Produce application/pdf
// @Param id path string true "Quote ID"
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{id}/pdf [get]
func (h *quoteHandler) downloadQuotePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quote, content, err := h.quoteService.QuotePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to render quote document")
		return
	}
	if !h.canRead(c, quote) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, quote.Number))
	c.Data(http.StatusOK, "application/pdf", content)
}

// updateQuoteStatus godoc
// @Summary Accept or reject a quote
// @Description Moves a pending quote to accepted or rejected. Clients may only act on their own quotes.
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param status body dto.UpdateQuoteStatusRequest true "New status"
// @Success 200 {object} dto.QuoteResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Quote already resolved"
// @Security BearerAuth
// @Router /quotes/{id}/status [post]
func (h *quoteHandler) updateQuoteStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	quote, err := h.quoteService.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve quote")
		return
	}
	if !h.canRead(c, quote) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	updated, err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), quote.QuoteID, domain.QuoteStatus(req.Status), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update quote status")
		return
	}

	logger.Info("Quote status updated", slog.String("quote_id", updated.QuoteID), slog.String("status", string(updated.Status)))
	c.JSON(http.StatusOK, dto.ToQuoteResponse(updated))
}

// sendQuoteEmail godoc
// @Summary Resend the quote email
// @Description Renders and emails the quote document again. Admin only.
// @Tags quotes
// @Param id path string true "Quote ID"
// @Success 204 "Email sent"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/quotes/{id}/send [post]
func (h *quoteHandler) sendQuoteEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.quoteService.SendQuoteEmail(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to send quote email")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteQuote godoc
// @Summary Delete a quote
// @Description Removes a quote and its lines. Admin only.
// @Tags quotes
// @Param id path string true "Quote ID"
// @Success 204 "Quote deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/quotes/{id} [delete]
func (h *quoteHandler) deleteQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.quoteService.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete quote")
		return
	}
	c.Status(http.StatusNoContent)
}

// canRead reports whether the caller may read the quote: admins always,
// clients only when the quote is addressed to them.
func (h *quoteHandler) canRead(c *gin.Context, quote *domain.Quote) bool {
	if role, ok := middleware.GetRoleFromContext(c); ok && role == string(domain.RoleAdmin) {
		return true
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return false
	}
	return quote.UserID != nil && *quote.UserID == userID
}
