package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studio-api/internal/events"
	"studio-api/internal/model"
	"studio-api/internal/repository"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
)

type QuoteInput struct {
	Name        string
	Email       string
	Phone       *string
	ProjectType string
	Budget      *string
	Description string
	PackageID   *int64
}

type ConsultationInput struct {
	FirstName string
	LastName  string
	Phone     string
	Telegram  *string
	Message   *string
}

type ApplicationService interface {
	CreateQuote(ctx context.Context, input QuoteInput) (*model.QuoteApplication, error)
	ListQuotes(ctx context.Context, filter repository.ApplicationFilter) ([]model.QuoteApplication, int64, error)
	GetQuote(ctx context.Context, id int64) (*model.QuoteApplication, error)
	UpdateQuoteStatus(ctx context.Context, id int64, status string, responseText *string) (*model.QuoteApplication, error)
	DeleteQuote(ctx context.Context, id int64) error
	CreateConsultation(ctx context.Context, input ConsultationInput) (*model.ConsultationApplication, error)
	ListConsultations(ctx context.Context, filter repository.ApplicationFilter) ([]model.ConsultationApplication, int64, error)
	GetConsultation(ctx context.Context, id int64) (*model.ConsultationApplication, error)
	UpdateConsultationStatus(ctx context.Context, id int64, status string, scheduledAt *time.Time, notes *string) (*model.ConsultationApplication, error)
	DeleteConsultation(ctx context.Context, id int64) error
}

type applicationService struct {
	quoteRepo        repository.QuoteRepository
	consultationRepo repository.ConsultationRepository
	packageRepo      repository.PackageRepository
	publisher        events.EventPublisher
}

func NewApplicationService(
	quoteRepo repository.QuoteRepository,
	consultationRepo repository.ConsultationRepository,
	packageRepo repository.PackageRepository,
	publisher events.EventPublisher,
) ApplicationService {
	return &applicationService{
		quoteRepo:        quoteRepo,
		consultationRepo: consultationRepo,
		packageRepo:      packageRepo,
		publisher:        publisher,
	}
}

// CreateQuote stores a public quote application. A package reference that
// does not resolve to an active package is dropped, never an error: the
// lead matters more than the link.
func (s *applicationService) CreateQuote(ctx context.Context, input QuoteInput) (*model.QuoteApplication, error) {
	if input.PackageID != nil {
		pkg, err := s.packageRepo.FindByID(ctx, *input.PackageID)
		if err != nil || !pkg.IsActive {
			slog.WarnContext(ctx, "Dropping unresolvable package reference on quote", "package_id", *input.PackageID)
			input.PackageID = nil
		}
	}

	app := &model.QuoteApplication{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		ProjectType: input.ProjectType,
		Budget:      input.Budget,
		Description: input.Description,
		PackageID:   input.PackageID,
	}

	newID, err := s.quoteRepo.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	created, err := s.quoteRepo.FindByID(ctx, newID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishQuoteSubmitted(created); err != nil {
			slog.WarnContext(ctx, "Failed to publish quote.submitted", "quote_id", created.ID, "error", err)
		}
	}

	return created, nil
}

func (s *applicationService) ListQuotes(ctx context.Context, filter repository.ApplicationFilter) ([]model.QuoteApplication, int64, error) {
	return s.quoteRepo.List(ctx, filter)
}

func (s *applicationService) GetQuote(ctx context.Context, id int64) (*model.QuoteApplication, error) {
	app, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

func (s *applicationService) UpdateQuoteStatus(ctx context.Context, id int64, status string, responseText *string) (*model.QuoteApplication, error) {
	if !model.IsValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	existing, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrApplicationNotFound
	}

	var processedAt *time.Time
	if existing.Status != status {
		now := time.Now()
		processedAt = &now
	}

	if err := s.quoteRepo.UpdateStatus(ctx, id, status, processedAt, responseText); err != nil {
		return nil, err
	}

	return s.quoteRepo.FindByID(ctx, id)
}

func (s *applicationService) DeleteQuote(ctx context.Context, id int64) error {
	if _, err := s.quoteRepo.FindByID(ctx, id); err != nil {
		return ErrApplicationNotFound
	}
	return s.quoteRepo.Delete(ctx, id)
}

func (s *applicationService) CreateConsultation(ctx context.Context, input ConsultationInput) (*model.ConsultationApplication, error) {
	app := &model.ConsultationApplication{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Telegram:  input.Telegram,
		Message:   input.Message,
	}

	newID, err := s.consultationRepo.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	created, err := s.consultationRepo.FindByID(ctx, newID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishConsultationSubmitted(created); err != nil {
			slog.WarnContext(ctx, "Failed to publish consultation.submitted", "consultation_id", created.ID, "error", err)
		}
	}

	return created, nil
}

func (s *applicationService) ListConsultations(ctx context.Context, filter repository.ApplicationFilter) ([]model.ConsultationApplication, int64, error) {
	return s.consultationRepo.List(ctx, filter)
}

func (s *applicationService) GetConsultation(ctx context.Context, id int64) (*model.ConsultationApplication, error) {
	app, err := s.consultationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

func (s *applicationService) UpdateConsultationStatus(ctx context.Context, id int64, status string, scheduledAt *time.Time, notes *string) (*model.ConsultationApplication, error) {
	if !model.IsValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	if _, err := s.consultationRepo.FindByID(ctx, id); err != nil {
		return nil, ErrApplicationNotFound
	}

	if err := s.consultationRepo.UpdateStatus(ctx, id, status, scheduledAt, notes); err != nil {
		return nil, err
	}

	return s.consultationRepo.FindByID(ctx, id)
}

func (s *applicationService) DeleteConsultation(ctx context.Context, id int64) error {
	if _, err := s.consultationRepo.FindByID(ctx, id); err != nil {
		return ErrApplicationNotFound
	}
	return s.consultationRepo.Delete(ctx, id)
}
