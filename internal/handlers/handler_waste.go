package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
)

// wasteHandler handles HTTP requests related to the waste catalog.
type wasteHandler struct {
	wasteService portssvc.WasteSvcFacade
}

func newWasteHandler(ws portssvc.WasteSvcFacade) *wasteHandler {
	return &wasteHandler{wasteService: ws}
}

// registerWasteRoutes registers the read-only catalog routes.
func registerWasteRoutes(rg *gin.RouterGroup, wasteService portssvc.WasteSvcFacade) {
	h := newWasteHandler(wasteService)

	wastes := rg.Group("/wastes")
	{
		wastes.GET("", h.listWasteItems)
		wastes.GET("/:id", h.getWasteItemByID)
	}
}

// registerAdminWasteRoutes registers the catalog management routes.
func registerAdminWasteRoutes(rg *gin.RouterGroup, wasteService portssvc.WasteSvcFacade) {
	h := newWasteHandler(wasteService)

	wastes := rg.Group("/wastes")
	{
		wastes.POST("", h.createWasteItem)
		wastes.PUT("/:id", h.updateWasteItem)
		wastes.DELETE("/:id", h.deleteWasteItem)
	}
}

// listWasteItems godoc
// @Summary List the waste catalog
// @Description Retrieves every catalog entry with its current price.
// @Tags wastes
// @Produce json
// @Success 200 {object} dto.ListWasteItemsResponse
// @Security BearerAuth
// @Router /wastes [get]
func (h *wasteHandler) listWasteItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	wastes, err := h.wasteService.ListWasteItems(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list waste catalog")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWasteItemsResponse(wastes))
}

// getWasteItemByID godoc
// @Summary Get a catalog entry
// @Description Retrieves a waste catalog entry by ID.
// @Tags wastes
// @Produce json
// @Param id path string true "Waste ID"
// @Success 200 {object} dto.WasteItemResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /wastes/{id} [get]
func (h *wasteHandler) getWasteItemByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	waste, err := h.wasteService.GetWasteItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve catalog entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToWasteItemResponse(waste))
}

// createWasteItem godoc
// @Summary Create a catalog entry
// @Description Adds a new waste catalog entry. Admin only.
// @Tags wastes
// @Accept json
// @Produce json
// @Param waste body dto.CreateWasteItemRequest true "Catalog entry"
// @Success 201 {object} dto.WasteItemResponse
// @Failure 400 {object} ErrorResponse "Unknown unit or currency"
// @Security BearerAuth
// @Router /admin/wastes [post]
func (h *wasteHandler) createWasteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateWasteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	waste, err := h.wasteService.CreateWasteItem(c.Request.Context(), req, adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to create catalog entry")
		return
	}

	logger.Info("Catalog entry created", slog.String("waste_id", waste.WasteID))
	c.JSON(http.StatusCreated, dto.ToWasteItemResponse(waste))
}

// updateWasteItem godoc
// @Summary Update a catalog entry
// @Description Applies the provided fields to a catalog entry. Admin only.
// @Tags wastes
// @Accept json
// @Produce json
// @Param id path string true "Waste ID"
// @Param waste body dto.UpdateWasteItemRequest true "Fields to update"
// @Success 200 {object} dto.WasteItemResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/wastes/{id} [put]
func (h *wasteHandler) updateWasteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateWasteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	waste, err := h.wasteService.UpdateWasteItem(c.Request.Context(), c.Param("id"), req, adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to update catalog entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToWasteItemResponse(waste))
}

// deleteWasteItem godoc
// @Summary Delete a catalog entry
// @Description Removes a waste catalog entry. Admin only.
// @Tags wastes
// @Param id path string true "Waste ID"
// @Success 204 "Entry deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/wastes/{id} [delete]
func (h *wasteHandler) deleteWasteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.wasteService.DeleteWasteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete catalog entry")
		return
	}
	c.Status(http.StatusNoContent)
}
