package inquiries

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	pkgerrors "github.com/chronos-atelier/chronos-backend/pkg/errors"
	"github.com/chronos-atelier/chronos-backend/pkg/logger"
	"github.com/chronos-atelier/chronos-backend/pkg/mailer"
)

// SubmitRequest carries one contact-form submission.
type SubmitRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Service defines the inquiry behavior needed by the controllers.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*models.Inquiry, error)
	List(ctx context.Context) ([]models.Inquiry, error)
}

type inquiryRepository interface {
	Insert(ctx context.Context, inquiry *models.Inquiry) error
	ListAll(ctx context.Context) ([]models.Inquiry, error)
}

// relayer mirrors a stored inquiry to an external inbox. The mailer satisfies
// it in production; a nil relayer disables mirroring entirely.
type relayer interface {
	SendInquiry(ctx context.Context, inquiry mailer.InquiryEmail) error
}

type service struct {
	repo  inquiryRepository
	relay relayer
	logg  *logger.Logger
}

// ServiceParams bundles the dependencies required to build an inquiries service.
type ServiceParams struct {
	Repo   inquiryRepository
	Relay  relayer
	Logger *logger.Logger
}

// NewService constructs an inquiries service. Relay is optional.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("inquiry repository is required")
	}
	return &service{
		repo:  params.Repo,
		relay: params.Relay,
		logg:  params.Logger,
	}, nil
}

// Submit stores the inquiry, then mirrors it to the configured inbox on a
// best-effort basis. A relay failure never fails the submission.
func (s *service) Submit(ctx context.Context, req SubmitRequest) (*models.Inquiry, error) {
	inquiry := models.Inquiry{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(strings.ToLower(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	if err := s.repo.Insert(ctx, &inquiry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store inquiry")
	}

	if s.relay != nil {
		err := s.relay.SendInquiry(ctx, mailer.InquiryEmail{
			Name:    inquiry.Name,
			Email:   inquiry.Email,
			Subject: inquiry.Subject,
			Message: inquiry.Message,
		})
		if err != nil && s.logg != nil {
			s.logg.Error(ctx, "relaying inquiry email", err)
		}
	}

	return &inquiry, nil
}

func (s *service) List(ctx context.Context) ([]models.Inquiry, error) {
	inquiries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list inquiries")
	}
	return inquiries, nil
}
