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

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers the authenticated company routes.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("/mine", h.listMyCompanies)
		companies.GET("/:id", h.getCompanyByID)
	}
}

// registerAdminCompanyRoutes registers the admin-only company routes.
func registerAdminCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.GET("", h.listCompanies)
		companies.PUT("/:id", h.updateCompany)
		companies.POST("/:id/approve", h.approveCompany)
		companies.POST("/:id/reject", h.rejectCompany)
		companies.GET("/:id/users", h.listCompanyUsers)
		companies.POST("/:id/users", h.assignUser)
		companies.DELETE("/:id/users/:userID", h.removeUser)
		companies.DELETE("/:id", h.deleteCompany)
	}
}

// createCompany godoc
// @Summary Register a company
// @Description Registers a new company in the pending approval state.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Tax ID already registered"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	role, _ := middleware.GetRoleFromContext(c)
	company, err := h.companyService.CreateCompany(c.Request.Context(), req, userID, domain.UserRole(role))
	if err != nil {
		respondError(c, logger, err, "Failed to register company")
		return
	}

	logger.Info("Company registered", slog.String("company_id", company.CompanyID), slog.String("tax_id", company.TaxID))
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// listMyCompanies godoc
// @Summary List own companies
// @Description Retrieves the companies the authenticated user belongs to.
// @Tags companies
// @Produce json
// @Success 200 {object} dto.ListCompaniesResponse
// @Security BearerAuth
// @Router /companies/mine [get]
func (h *companyHandler) listMyCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	companies, err := h.companyService.ListUserCompanies(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list companies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// getCompanyByID godoc
// @Summary Get a company
// @Description Retrieves a company by ID.
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *companyHandler) getCompanyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	company, err := h.companyService.GetCompanyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List companies
// @Description Retrieves companies, optionally filtered by approval state. Admin only.
// @Tags companies
// @Produce json
// @Param approval query string false "Approval filter" Enums(pending, approved, rejected)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListCompaniesResponse
// @Security BearerAuth
// @Router /admin/companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params struct {
		Approval string `form:"approval" binding:"omitempty,oneof=pending approved rejected"`
		Limit    int    `form:"limit,default=20"`
		Offset   int    `form:"offset,default=0"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), domain.CompanyApproval(params.Approval), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list companies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// updateCompany godoc
// @Summary Update a company
// @Description Applies the provided fields to a company. Admin only.
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/companies/{id} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), c.Param("id"), req, adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to update company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// approveCompany godoc
// @Summary Approve a company
// @Description Moves a pending company to approved. Admin only.
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Company already reviewed"
// @Security BearerAuth
// @Router /admin/companies/{id}/approve [post]
func (h *companyHandler) approveCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	company, err := h.companyService.ApproveCompany(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to approve company")
		return
	}

	logger.Info("Company approved", slog.String("company_id", company.CompanyID))
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// rejectCompany godoc
// @Summary Reject a company
// @Description Moves a pending company to rejected. Admin only.
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Company already reviewed"
// @Security BearerAuth
// @Router /admin/companies/{id}/reject [post]
func (h *companyHandler) rejectCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	company, err := h.companyService.RejectCompany(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to reject company")
		return
	}

	logger.Info("Company rejected", slog.String("company_id", company.CompanyID))
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// listCompanyUsers godoc
// @Summary List company users
// @Description Retrieves the active user links of a company. Admin only.
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {array} domain.CompanyUser
// @Security BearerAuth
// @Router /admin/companies/{id}/users [get]
func (h *companyHandler) listCompanyUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	links, err := h.companyService.ListCompanyUsers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list company users")
		return
	}
	c.JSON(http.StatusOK, links)
}

// assignUser godoc
// @Summary Assign a user to a company
// @Description Links a user to a company. Admin only.
// @Tags companies
// @Accept json
// @Param id path string true "Company ID"
// @Param assignment body dto.AssignUserRequest true "User to assign"
// @Success 204 "User assigned"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/companies/{id}/users [post]
func (h *companyHandler) assignUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	var req dto.AssignUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.companyService.AssignUser(c.Request.Context(), c.Param("id"), req.UserID, adminID); err != nil {
		respondError(c, logger, err, "Failed to assign user")
		return
	}
	c.Status(http.StatusNoContent)
}

// removeUser godoc
// @Summary Remove a user from a company
// @Description Deactivates a user link. Admin only.
// @Tags companies
// @Param id path string true "Company ID"
// @Param userID path string true "User ID"
// @Success 204 "User removed"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/companies/{id}/users/{userID} [delete]
func (h *companyHandler) removeUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.companyService.RemoveUser(c.Request.Context(), c.Param("id"), c.Param("userID")); err != nil {
		respondError(c, logger, err, "Failed to remove user")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteCompany godoc
// @Summary Delete a company
// @Description Removes a company and its user links. Admin only.
// @Tags companies
// @Param id path string true "Company ID"
// @Success 204 "Company deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/companies/{id} [delete]
func (h *companyHandler) deleteCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.companyService.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete company")
		return
	}
	c.Status(http.StatusNoContent)
}
