package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
)

// contactHandler handles the public contact form.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

// registerContactRoute registers the public contact endpoint.
func registerContactRoute(rg *gin.Engine, contactService portssvc.ContactSvcFacade, rateLimit gin.HandlerFunc) {
	h := &contactHandler{contactService: contactService}
	rg.POST("/api/v1/contacto", rateLimit, h.submitContact)
}

// submitContact godoc
// @Summary Submit the contact form
// @Description Forwards a contact form message to the configured recipients.
// @Tags contacto
// @Accept json
// @Produce json
// @Param message body dto.ContactRequest true "Contact message"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Router /contacto [post]
func (h *contactHandler) submitContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.contactService.SubmitContact(c.Request.Context(), req.Name, req.Email, req.Phone, req.Subject, req.Message); err != nil {
		respondError(c, logger, err, "Failed to deliver contact message")
		return
	}
	c.JSON(http.StatusOK, dto.ContactResponse{Sent: true})
}
