package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
	"github.com/andrenany/api-felmart/internal/platform/mailer"
	"github.com/andrenany/api-felmart/internal/utils"
)

type QuoteRequestService struct {
	requestRepo portsrepo.QuoteRequestRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
	sender      portssvc.EmailSender
	notifier    portssvc.NotificationWriterSvc
}

var _ portssvc.QuoteRequestSvcFacade = (*QuoteRequestService)(nil)

func NewQuoteRequestService(
	requestRepo portsrepo.QuoteRequestRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	sender portssvc.EmailSender,
	notifier portssvc.NotificationWriterSvc,
) *QuoteRequestService {
	return &QuoteRequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		sender:      sender,
		notifier:    notifier,
	}
}

// CreateRequest registers a public intake request, acknowledges it by email
// and notifies admins. Email and notification failures never fail the
// create.
func (s *QuoteRequestService) CreateRequest(ctx context.Context, req dto.CreateQuoteRequestRequest) (*domain.QuoteRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if domain.QuoteKind(req.Kind) == domain.QuoteForCompany {
		if req.CompanyName == nil || req.CompanyTaxID == nil {
			return nil, apperrors.NewValidationError("company name and tax id are required for company requests")
		}
	}

	urgency := domain.RequestUrgency(req.Urgency)
	if urgency == "" {
		urgency = domain.UrgencyMedium
	}

	now := time.Now().UTC()
	request := domain.QuoteRequest{
		RequestID:        uuid.NewString(),
		Kind:             domain.QuoteKind(req.Kind),
		RequesterName:    req.RequesterName,
		Email:            req.Email,
		Phone:            req.Phone,
		CompanyName:      req.CompanyName,
		CompanyTaxID:     req.CompanyTaxID,
		BusinessLine:     req.BusinessLine,
		Address:          req.Address,
		Region:           req.Region,
		Commune:          req.Commune,
		WasteDescription: req.WasteDescription,
		EstimatedAmount:  req.EstimatedAmount,
		PickupFrequency:  req.PickupFrequency,
		FrequencyDetail:  req.FrequencyDetail,
		Observations:     req.Observations,
		Urgency:          urgency,
		Status:           domain.RequestPending,
		RequestedAt:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "public",
			LastUpdatedAt: now,
			LastUpdatedBy: "public",
		},
	}

	if err := s.requestRepo.CreateRequest(ctx, &request); err != nil {
		return nil, err
	}
	logger.Info("Quote request received", "request_id", request.RequestID, "number", request.Number)

	if err := s.sender.Send(ctx, portssvc.Email{
		To:       []string{request.Email},
		Subject:  fmt.Sprintf("Solicitud %s recibida - FELMART", request.Number),
		HTMLBody: mailer.RequestReceivedEmailBody(request.RequesterName, request.Number),
	}); err != nil {
		logger.Warn("Request acknowledgement email failed", "request_id", request.RequestID, "error", err.Error())
	}

	if err := s.notifier.NotifyAdmins(ctx,
		domain.NotifyPendingRequest,
		"Nueva solicitud de cotización",
		fmt.Sprintf("Solicitud %s de %s", request.Number, request.RequesterName),
		domain.PriorityMedium,
		map[string]string{"requestID": request.RequestID, "number": request.Number},
	); err != nil {
		logger.Warn("Admin notification failed", "request_id", request.RequestID, "error", err.Error())
	}

	return &request, nil
}

// GetRequestByID retrieves an intake request by its ID.
func (s *QuoteRequestService) GetRequestByID(ctx context.Context, requestID string) (*domain.QuoteRequest, error) {
	return s.requestRepo.FindRequestByID(ctx, requestID)
}

// ListRequests retrieves intake requests with pagination and filters.
func (s *QuoteRequestService) ListRequests(ctx context.Context, status domain.RequestStatus, urgency domain.RequestUrgency, limit, offset int) ([]domain.QuoteRequest, error) {
	requests, err := s.requestRepo.ListRequests(ctx, status, urgency, limit, offset)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []domain.QuoteRequest{}
	}
	return requests, nil
}

// TrackRequest retrieves an intake request by its SOL- number.
func (s *QuoteRequestService) TrackRequest(ctx context.Context, number string) (*domain.QuoteRequest, error) {
	return s.requestRepo.FindRequestByNumber(ctx, number)
}

// RequestStats aggregates request counts by status, kind and urgency.
func (s *QuoteRequestService) RequestStats(ctx context.Context) (*domain.RequestStats, error) {
	return s.requestRepo.CountRequests(ctx)
}

// UpdateRequestStatus moves an intake request to a new status.
func (s *QuoteRequestService) UpdateRequestStatus(ctx context.Context, requestID string, req dto.UpdateRequestStatusRequest, adminID string) (*domain.QuoteRequest, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newStatus := domain.RequestStatus(req.Status)

	if newStatus == domain.RequestInReview && request.ReviewedAt == nil {
		request.ReviewedAt = &now
	}
	if newStatus == domain.RequestRejected {
		request.RejectReason = req.RejectReason
	}

	request.Status = newStatus
	request.AdminID = &adminID
	request.LastUpdatedAt = now
	request.LastUpdatedBy = adminID

	if err := s.requestRepo.UpdateRequest(ctx, *request); err != nil {
		return nil, err
	}
	return request, nil
}

// PromoteRequest turns an intake request into an account. The user is looked
// up by email and created with a temporary password when missing; for company
// requests the company is looked up by tax id and created pre-approved when
// missing. Linking problems are reported as notes, not errors.
func (s *QuoteRequestService) PromoteRequest(ctx context.Context, requestID, adminID string) (*domain.PromotionResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status == domain.RequestQuoted {
		return nil, apperrors.NewConflictError("request has already been quoted")
	}

	result := &domain.PromotionResult{}
	now := time.Now().UTC()

	user, err := s.userRepo.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		result.User = *user
	case errors.Is(err, apperrors.ErrNotFound):
		created, tempPassword, err := s.createPromotedUser(ctx, request, adminID)
		if err != nil {
			return nil, err
		}
		user = created
		result.User = *created
		result.UserCreated = true
		result.TempPassword = tempPassword
	default:
		return nil, fmt.Errorf("failed to look up user for promotion: %w", err)
	}

	if request.Kind == domain.QuoteForCompany {
		company, err := s.promoteCompany(ctx, request, user, adminID, result)
		if err != nil {
			return nil, err
		}
		result.Company = company
	}

	// Promotion counts as review.
	if request.Status == domain.RequestPending {
		request.Status = domain.RequestInReview
		request.ReviewedAt = &now
		request.AdminID = &adminID
		request.LastUpdatedAt = now
		request.LastUpdatedBy = adminID
		if err := s.requestRepo.UpdateRequest(ctx, *request); err != nil {
			logger.Warn("Failed to mark promoted request in review", "request_id", requestID, "error", err.Error())
			result.Notes = append(result.Notes, "request status was not updated")
		}
	}

	return result, nil
}

func (s *QuoteRequestService) createPromotedUser(ctx context.Context, request *domain.QuoteRequest, adminID string) (*domain.User, string, error) {
	tempPassword, err := utils.GenerateTempPassword()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate temp password: %w", err)
	}
	hash, err := utils.HashPassword(tempPassword)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash temp password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         request.RequesterName,
		Email:        request.Email,
		PasswordHash: hash,
		Address:      request.Address,
		Phone:        request.Phone,
		Region:       request.Region,
		Commune:      request.Commune,
		Role:         domain.RoleUser,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create promoted user: %w", err)
	}

	if err := s.sender.Send(ctx, portssvc.Email{
		To:       []string{user.Email},
		Subject:  "Su cuenta FELMART ha sido creada",
		HTMLBody: mailer.WelcomeEmailBody(user.Name, user.Email, tempPassword),
	}); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Welcome email failed", "user_id", user.UserID, "error", err.Error())
	}

	return &user, tempPassword, nil
}

func (s *QuoteRequestService) promoteCompany(ctx context.Context, request *domain.QuoteRequest, user *domain.User, adminID string, result *domain.PromotionResult) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByTaxID(ctx, *request.CompanyTaxID)
	if errors.Is(err, apperrors.ErrNotFound) {
		now := time.Now().UTC()
		created := domain.Company{
			CompanyID: uuid.NewString(),
			TaxID:     *request.CompanyTaxID,
			Name:      *request.CompanyName,
			Address:   request.Address,
			Region:    request.Region,
			Commune:   request.Commune,
			Approval:  domain.CompanyApproved,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     adminID,
				LastUpdatedAt: now,
				LastUpdatedBy: adminID,
			},
		}
		if request.BusinessLine != nil {
			created.BusinessLine = *request.BusinessLine
		}
		if err := s.companyRepo.SaveCompany(ctx, created); err != nil {
			return nil, fmt.Errorf("failed to create promoted company: %w", err)
		}
		company = &created
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up company for promotion: %w", err)
	}

	link := domain.CompanyUser{
		CompanyID:  company.CompanyID,
		UserID:     user.UserID,
		Active:     true,
		AssignedAt: time.Now().UTC(),
	}
	if err := s.companyRepo.AssignUser(ctx, link); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to link promoted user to company",
			"user_id", user.UserID, "company_id", company.CompanyID, "error", err.Error())
		result.Notes = append(result.Notes, "user could not be linked to the company")
	}

	return company, nil
}

// DeleteRequest removes an intake request. Requests already quoted cannot be
// deleted.
func (s *QuoteRequestService) DeleteRequest(ctx context.Context, requestID string) error {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status == domain.RequestQuoted {
		return apperrors.NewConflictError("quoted requests cannot be deleted")
	}
	return s.requestRepo.DeleteRequest(ctx, requestID)
}
