package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studio-api/internal/model"
	"studio-api/internal/repository"
	"studio-api/internal/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	validate      *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

func (h *ReviewHandler) ListPublicReviews(c *fiber.Ctx) error {
	skip, limit := parsePagination(c, 20)

	reviews, total, err := h.reviewService.ListPublicReviews(c.Context(), skip, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items": reviews,
		"total": total,
		"skip":  skip,
		"limit": limit,
	})
}

func (h *ReviewHandler) ListAllReviews(c *fiber.Ctx) error {
	skip, limit := parsePagination(c, 20)

	filter := repository.ReviewFilter{
		PendingOnly:  c.QueryBool("pending", false),
		FeaturedOnly: c.QueryBool("featured", false),
		Skip:         skip,
		Limit:        limit,
	}

	reviews, total, err := h.reviewService.ListReviews(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items": reviews,
		"total": total,
		"skip":  skip,
		"limit": limit,
	})
}

type AuthoredReviewRequest struct {
	TextUK  string  `json:"text_uk" validate:"required,min=10,max=2000"`
	TextEN  string  `json:"text_en" validate:"required,min=10,max=2000"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Company *string `json:"company" validate:"omitempty,max=100"`
}

func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var request AuthoredReviewRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	review, err := h.reviewService.CreateAuthoredReview(c.Context(), service.AuthoredReviewInput{
		UserID:  userID,
		TextUK:  request.TextUK,
		TextEN:  request.TextEN,
		Rating:  request.Rating,
		Company: request.Company,
	})

	if err != nil {
		if errors.Is(err, service.ErrReviewAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already left a review"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

type AnonymousReviewRequest struct {
	AuthorName  string  `json:"author_name" validate:"required,min=2,max=100"`
	AuthorEmail string  `json:"author_email" validate:"required,email"`
	TextUK      string  `json:"text_uk" validate:"required,min=10,max=2000"`
	TextEN      string  `json:"text_en" validate:"required,min=10,max=2000"`
	Rating      int     `json:"rating" validate:"required,min=1,max=5"`
	Company     *string `json:"company" validate:"omitempty,max=100"`
}

func (h *ReviewHandler) CreateAnonymousReview(c *fiber.Ctx) error {
	var request AnonymousReviewRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	review, err := h.reviewService.CreateAnonymousReview(c.Context(), service.AnonymousReviewInput{
		AuthorName:  request.AuthorName,
		AuthorEmail: request.AuthorEmail,
		TextUK:      request.TextUK,
		TextEN:      request.TextEN,
		Rating:      request.Rating,
		Company:     request.Company,
	})

	if err != nil {
		if errors.Is(err, service.ErrReviewAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A review from this email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review submitted and awaiting moderation",
		"review":  review,
	})
}

func (h *ReviewHandler) ApproveReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	adminID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := h.reviewService.ApproveReview(c.Context(), id, adminID)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(review)
}

func (h *ReviewHandler) RejectReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	if err := h.reviewService.RejectReview(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Review rejected"})
}

type UpdateReviewRequest struct {
	TextUK     string  `json:"text_uk" validate:"required,min=10,max=2000"`
	TextEN     string  `json:"text_en" validate:"required,min=10,max=2000"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	Company    *string `json:"company" validate:"omitempty,max=100"`
	IsFeatured bool    `json:"is_featured"`
	SortOrder  int     `json:"sort_order"`
}

func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var request UpdateReviewRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	review, err := h.reviewService.UpdateReview(c.Context(), &model.Review{
		ID:         id,
		TextUK:     request.TextUK,
		TextEN:     request.TextEN,
		Rating:     request.Rating,
		Company:    request.Company,
		IsFeatured: request.IsFeatured,
		SortOrder:  request.SortOrder,
	})

	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(review)
}

func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	if err := h.reviewService.DeleteReview(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Review deleted"})
}
