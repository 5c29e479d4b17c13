package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studio-api/internal/model"
	"studio-api/internal/service"
)

type FAQHandler struct {
	faqService service.FAQService
	validate   *validator.Validate
}

func NewFAQHandler(faqService service.FAQService) *FAQHandler {
	return &FAQHandler{
		faqService: faqService,
		validate:   validator.New(),
	}
}

func (h *FAQHandler) ListFAQ(c *fiber.Ctx) error {
	activeOnly := c.Query("active", "true") != "false"

	items, err := h.faqService.ListFAQ(c.Context(), activeOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

type FAQRequest struct {
	QuestionUK string `json:"question_uk" validate:"required,min=5"`
	QuestionEN string `json:"question_en" validate:"required,min=5"`
	AnswerUK   string `json:"answer_uk" validate:"required,min=5"`
	AnswerEN   string `json:"answer_en" validate:"required,min=5"`
	IsActive   bool   `json:"is_active"`
	SortOrder  int    `json:"sort_order"`
}

func (h *FAQHandler) CreateFAQ(c *fiber.Ctx) error {
	var request FAQRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	item, err := h.faqService.CreateFAQ(c.Context(), &model.FAQItem{
		QuestionUK: request.QuestionUK,
		QuestionEN: request.QuestionEN,
		AnswerUK:   request.AnswerUK,
		AnswerEN:   request.AnswerEN,
		IsActive:   request.IsActive,
		SortOrder:  request.SortOrder,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *FAQHandler) UpdateFAQ(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid faq id"})
	}

	var request FAQRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	item, err := h.faqService.UpdateFAQ(c.Context(), &model.FAQItem{
		ID:         id,
		QuestionUK: request.QuestionUK,
		QuestionEN: request.QuestionEN,
		AnswerUK:   request.AnswerUK,
		AnswerEN:   request.AnswerEN,
		IsActive:   request.IsActive,
		SortOrder:  request.SortOrder,
	})

	if err != nil {
		if errors.Is(err, service.ErrFAQNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "FAQ item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *FAQHandler) DeleteFAQ(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid faq id"})
	}

	if err := h.faqService.DeleteFAQ(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrFAQNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "FAQ item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "FAQ item deleted"})
}
