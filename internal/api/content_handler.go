package api

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studio-api/internal/model"
	"studio-api/internal/service"
)

type ContentHandler struct {
	contentService service.ContentService
	validate       *validator.Validate
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		validate:       validator.New(),
	}
}

func (h *ContentHandler) ListBlocks(c *fiber.Ctx) error {
	blocks, err := h.contentService.ListBlocks(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(blocks)
}

func (h *ContentHandler) GetBlock(c *fiber.Ctx) error {
	block, err := h.contentService.GetBlock(c.Context(), c.Params("key"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Content block not found"})
	}

	return c.Status(fiber.StatusOK).JSON(block)
}

type ContentBlockRequest struct {
	Key         string  `json:"key" validate:"required,min=2,max=100"`
	ContentUK   string  `json:"content_uk" validate:"required"`
	ContentEN   string  `json:"content_en" validate:"required"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
}

func (h *ContentHandler) CreateBlock(c *fiber.Ctx) error {
	var request ContentBlockRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	block, err := h.contentService.CreateBlock(c.Context(), &model.ContentBlock{
		Key:         request.Key,
		ContentUK:   request.ContentUK,
		ContentEN:   request.ContentEN,
		Description: request.Description,
		IsActive:    request.IsActive,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(block)
}

func (h *ContentHandler) UpdateBlock(c *fiber.Ctx) error {
	var request ContentBlockRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	request.Key = c.Params("key")

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	block, err := h.contentService.UpdateBlock(c.Context(), &model.ContentBlock{
		Key:         request.Key,
		ContentUK:   request.ContentUK,
		ContentEN:   request.ContentEN,
		Description: request.Description,
		IsActive:    request.IsActive,
	})

	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Content block not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(block)
}

func (h *ContentHandler) DeleteBlock(c *fiber.Ctx) error {
	if err := h.contentService.DeleteBlock(c.Context(), c.Params("key")); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Content block not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Content block deleted"})
}

func (h *ContentHandler) GetContactInfo(c *fiber.Ctx) error {
	info, err := h.contentService.GetContactInfo(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(info)
}

func (h *ContentHandler) UpdateContactInfo(c *fiber.Ctx) error {
	var info model.ContactInfo
	if err := c.BodyParser(&info); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	updated, err := h.contentService.UpdateContactInfo(c.Context(), &info)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ContentHandler) ListPolicies(c *fiber.Ctx) error {
	activeOnly := c.Query("active", "true") != "false"

	policies, err := h.contentService.ListPolicies(c.Context(), activeOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(policies)
}

func (h *ContentHandler) GetPolicy(c *fiber.Ctx) error {
	policyType := c.Params("type")
	if policyType != model.PolicyTypePrivacy && policyType != model.PolicyTypeTerms {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown policy type"})
	}

	policy, err := h.contentService.GetPolicy(c.Context(), policyType)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Policy not found"})
	}

	return c.Status(fiber.StatusOK).JSON(policy)
}

type PolicyRequest struct {
	Type      string `json:"type" validate:"required,oneof=privacy_policy terms_of_use"`
	TitleUK   string `json:"title_uk" validate:"required"`
	TitleEN   string `json:"title_en" validate:"required"`
	ContentUK string `json:"content_uk" validate:"required"`
	ContentEN string `json:"content_en" validate:"required"`
	IsActive  bool   `json:"is_active"`
}

func (h *ContentHandler) CreatePolicy(c *fiber.Ctx) error {
	var request PolicyRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	policy, err := h.contentService.CreatePolicy(c.Context(), &model.Policy{
		Type:      request.Type,
		TitleUK:   request.TitleUK,
		TitleEN:   request.TitleEN,
		ContentUK: request.ContentUK,
		ContentEN: request.ContentEN,
		IsActive:  request.IsActive,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(policy)
}

func (h *ContentHandler) UpdatePolicy(c *fiber.Ctx) error {
	var request PolicyRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	request.Type = c.Params("type")

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	policy, err := h.contentService.UpdatePolicy(c.Context(), &model.Policy{
		Type:      request.Type,
		TitleUK:   request.TitleUK,
		TitleEN:   request.TitleEN,
		ContentUK: request.ContentUK,
		ContentEN: request.ContentEN,
		IsActive:  request.IsActive,
	})

	if err != nil {
		if errors.Is(err, service.ErrPolicyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Policy not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(policy)
}

func (h *ContentHandler) GetPublicConfig(c *fiber.Ctx) error {
	appName := os.Getenv("APP_NAME")
	if appName == "" {
		appName = "studio-api"
	}

	cfg, err := h.contentService.GetPublicConfig(c.Context(), appName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(cfg)
}
