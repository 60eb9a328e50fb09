package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
)

// maxCertificateSize caps uploaded certificate files at 10 MiB.
const maxCertificateSize = 10 << 20

// certificateHandler handles HTTP requests related to disposal certificates.
type certificateHandler struct {
	certService portssvc.CertificateSvcFacade
}

func newCertificateHandler(cs portssvc.CertificateSvcFacade) *certificateHandler {
	return &certificateHandler{certService: cs}
}

// registerCertificateRoutes registers the client-facing certificate routes.
func registerCertificateRoutes(rg *gin.RouterGroup, certService portssvc.CertificateSvcFacade) {
	h := newCertificateHandler(certService)

	certs := rg.Group("/certificates")
	{
		certs.GET("/mine", h.listMyCertificates)
		certs.GET("/:id/download", h.downloadCertificate)
	}
}

// registerAdminCertificateRoutes registers the certificate management routes.
func registerAdminCertificateRoutes(rg *gin.RouterGroup, certService portssvc.CertificateSvcFacade) {
	h := newCertificateHandler(certService)

	certs := rg.Group("/certificates")
	{
		certs.POST("", h.uploadCertificate)
		certs.GET("", h.listCertificates)
		certs.POST("/:id/resend", h.resendCertificate)
		certs.DELETE("/:id", h.deleteCertificate)
	}
}

// uploadCertificate godoc
// @Summary Upload a certificate
// @Description Stores a disposal certificate file for a user and optionally emails it. Admin only.
// @Tags certificates
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Certificate file"
// @Param userID formData string true "User ID"
// @Param companyID formData string false "Company ID"
// @Param visitID formData string false "Visit ID"
// @Param description formData string false "Description"
// @Param sendEmail formData bool false "Email the certificate to the user"
// @Success 201 {object} dto.CertificateResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/certificates [post]
func (h *certificateHandler) uploadCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	var form dto.UploadCertificateForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid form data: " + err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Certificate file is required"})
		return
	}
	if fileHeader.Size > maxCertificateSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Certificate file is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	cert, emailSent, err := h.certService.UploadCertificate(c.Request.Context(), form, fileHeader.Filename, contentType, content, adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to store certificate")
		return
	}

	logger.Info("Certificate uploaded", slog.String("certificate_id", cert.CertificateID), slog.Bool("email_sent", emailSent))
	c.JSON(http.StatusCreated, dto.ToCertificateResponse(cert))
}

// listCertificates godoc
// @Summary List certificates
// @Description Retrieves certificates with pagination. Admin only.
// @Tags certificates
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListCertificatesResponse
// @Security BearerAuth
// @Router /admin/certificates [get]
func (h *certificateHandler) listCertificates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params struct {
		Limit  int `form:"limit,default=20"`
		Offset int `form:"offset,default=0"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	certs, err := h.certService.ListCertificates(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list certificates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCertificatesResponse(certs))
}

// listMyCertificates godoc
// @Summary List own certificates
// @Description Retrieves the certificates issued to the authenticated user.
// @Tags certificates
// @Produce json
// @Success 200 {object} dto.ListCertificatesResponse
// @Security BearerAuth
// @Router /certificates/mine [get]
func (h *certificateHandler) listMyCertificates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	certs, err := h.certService.ListCertificatesByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list certificates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCertificatesResponse(certs))
}

// downloadCertificate godoc
// @Summary Download a certificate
// @Description Returns the stored certificate file. Clients may only download their own certificates.
// @Tags certificates
// @Produce application/octet-stream
// @Param id path string true "Certificate ID"
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /certificates/{id}/download [get]
func (h *certificateHandler) downloadCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cert, content, err := h.certService.CertificateFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve certificate")
		return
	}

	if role, ok := middleware.GetRoleFromContext(c); !ok || role != string(domain.RoleAdmin) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok || cert.UserID != userID {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
			return
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, cert.FileName))
	c.Data(http.StatusOK, cert.ContentType, content)
}

// resendCertificate godoc
// @Summary Resend a certificate
// @Description Emails the certificate file to its user again. Admin only.
// @Tags certificates
// @Param id path string true "Certificate ID"
// @Success 204 "Email sent"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/certificates/{id}/resend [post]
func (h *certificateHandler) resendCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	if err := h.certService.ResendCertificate(c.Request.Context(), c.Param("id"), adminID); err != nil {
		respondError(c, logger, err, "Failed to resend certificate")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteCertificate godoc
// @Summary Delete a certificate
// @Description Removes the certificate record and its stored file. Admin only.
// @Tags certificates
// @Param id path string true "Certificate ID"
// @Success 204 "Certificate deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/certificates/{id} [delete]
func (h *certificateHandler) deleteCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.certService.DeleteCertificate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete certificate")
		return
	}
	c.Status(http.StatusNoContent)
}
