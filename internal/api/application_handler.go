package api

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studio-api/internal/repository"
	"studio-api/internal/service"
)

type ApplicationHandler struct {
	applicationService service.ApplicationService
	validate           *validator.Validate
}

func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		validate:           validator.New(),
	}
}

func applicationFilterFromQuery(c *fiber.Ctx) repository.ApplicationFilter {
	skip, limit := parsePagination(c, 20)

	filter := repository.ApplicationFilter{Skip: skip, Limit: limit}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}

	return filter
}

type QuoteRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone" validate:"omitempty,min=7,max=20"`
	ProjectType string  `json:"project_type" validate:"required,min=2,max=50"`
	Budget      *string `json:"budget" validate:"omitempty,max=50"`
	Description string  `json:"description" validate:"required,min=10,max=5000"`
	PackageID   *int64  `json:"package_id"`
}

func (h *ApplicationHandler) CreateQuote(c *fiber.Ctx) error {
	var request QuoteRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	quote, err := h.applicationService.CreateQuote(c.Context(), service.QuoteInput{
		Name:        request.Name,
		Email:       request.Email,
		Phone:       request.Phone,
		ProjectType: request.ProjectType,
		Budget:      request.Budget,
		Description: request.Description,
		PackageID:   request.PackageID,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Application received, we will contact you soon",
		"application": quote,
	})
}

func (h *ApplicationHandler) ListQuotes(c *fiber.Ctx) error {
	quotes, total, err := h.applicationService.ListQuotes(c.Context(), applicationFilterFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items": quotes,
		"total": total,
	})
}

func (h *ApplicationHandler) GetQuote(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	quote, err := h.applicationService.GetQuote(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	return c.Status(fiber.StatusOK).JSON(quote)
}

type QuoteStatusRequest struct {
	Status       string  `json:"status" validate:"required"`
	ResponseText *string `json:"response_text" validate:"omitempty,max=5000"`
}

func (h *ApplicationHandler) UpdateQuoteStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	var request QuoteStatusRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	quote, err := h.applicationService.UpdateQuoteStatus(c.Context(), id, request.Status, request.ResponseText)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application status"})
		case errors.Is(err, service.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(quote)
}

func (h *ApplicationHandler) DeleteQuote(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	if err := h.applicationService.DeleteQuote(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Application deleted"})
}

type ConsultationRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string  `json:"last_name" validate:"required,min=2,max=50"`
	Phone     string  `json:"phone" validate:"required,min=7,max=20"`
	Telegram  *string `json:"telegram" validate:"omitempty,max=100"`
	Message   *string `json:"message" validate:"omitempty,max=2000"`
}

func (h *ApplicationHandler) CreateConsultation(c *fiber.Ctx) error {
	var request ConsultationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	consultation, err := h.applicationService.CreateConsultation(c.Context(), service.ConsultationInput{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		Telegram:  request.Telegram,
		Message:   request.Message,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Consultation request received",
		"application": consultation,
	})
}

func (h *ApplicationHandler) ListConsultations(c *fiber.Ctx) error {
	consultations, total, err := h.applicationService.ListConsultations(c.Context(), applicationFilterFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items": consultations,
		"total": total,
	})
}

func (h *ApplicationHandler) GetConsultation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	consultation, err := h.applicationService.GetConsultation(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	return c.Status(fiber.StatusOK).JSON(consultation)
}

type ConsultationStatusRequest struct {
	Status      string     `json:"status" validate:"required"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Notes       *string    `json:"notes" validate:"omitempty,max=2000"`
}

func (h *ApplicationHandler) UpdateConsultationStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	var request ConsultationStatusRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	consultation, err := h.applicationService.UpdateConsultationStatus(c.Context(), id, request.Status, request.ScheduledAt, request.Notes)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application status"})
		case errors.Is(err, service.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(consultation)
}

func (h *ApplicationHandler) DeleteConsultation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid application id"})
	}

	if err := h.applicationService.DeleteConsultation(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Application deleted"})
}
