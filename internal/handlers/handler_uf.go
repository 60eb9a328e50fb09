package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
)

// ufHandler exposes the current UF value.
type ufHandler struct {
	ufService portssvc.UFSvcFacade
}

// registerUFRoute registers the public UF value endpoint.
func registerUFRoute(rg *gin.Engine, ufService portssvc.UFSvcFacade) {
	h := &ufHandler{ufService: ufService}
	rg.GET("/api/v1/uf", h.currentUF)
}

// currentUF godoc
// @Summary Current UF value
// @Description Returns the UF value used for pricing. Serves the configured fallback when the external indicator service is unreachable.
// @Tags uf
// @Produce json
// @Success 200 {object} dto.UFValueResponse
// @Router /uf [get]
func (h *ufHandler) currentUF(c *gin.Context) {
	uf := h.ufService.CurrentUF(c.Request.Context())
	c.JSON(http.StatusOK, dto.UFValueResponse{
		Value:     uf.Value,
		Date:      uf.Date,
		Fallback:  uf.Fallback,
		FetchedAt: uf.FetchedAt,
	})
}
