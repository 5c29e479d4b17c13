package api

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studio-api/internal/model"
	"studio-api/internal/repository"
	"studio-api/internal/service"
)

type DesignHandler struct {
	designService service.DesignService
	validate      *validator.Validate
}

func NewDesignHandler(designService service.DesignService) *DesignHandler {
	return &DesignHandler{
		designService: designService,
		validate:      validator.New(),
	}
}

const maxPageSize = 100

func parsePagination(c *fiber.Ctx, defaultLimit int) (skip, limit int) {
	skip = c.QueryInt("skip", 0)
	limit = c.QueryInt("limit", defaultLimit)
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return skip, limit
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// ListDesigns serves the public portfolio; admins can pass published=false
// to see drafts.
func (h *DesignHandler) ListDesigns(c *fiber.Ctx) error {
	skip, limit := parsePagination(c, 20)

	filter := repository.DesignFilter{
		PublishedOnly: c.Query("published", "true") != "false",
		FeaturedOnly:  c.QueryBool("featured", false),
		Skip:          skip,
		Limit:         limit,
	}
	if category := c.Query("category"); category != "" {
		filter.CategoryID = &category
	}
	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}

	designs, total, err := h.designService.ListDesigns(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items": designs,
		"total": total,
		"skip":  skip,
		"limit": limit,
	})
}

func (h *DesignHandler) GetDesign(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid design id"})
	}

	design, err := h.designService.GetDesign(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Design not found"})
	}

	return c.Status(fiber.StatusOK).JSON(design)
}

func (h *DesignHandler) GetDesignBySlug(c *fiber.Ctx) error {
	design, err := h.designService.GetDesignBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Design not found"})
	}

	return c.Status(fiber.StatusOK).JSON(design)
}

type DesignRequest struct {
	Title         string  `json:"title" validate:"required,min=2,max=200"`
	TitleUK       string  `json:"title_uk" validate:"required"`
	TitleEN       string  `json:"title_en" validate:"required"`
	DescriptionUK *string `json:"description_uk"`
	DescriptionEN *string `json:"description_en"`
	MetricsUK     *string `json:"metrics_uk"`
	MetricsEN     *string `json:"metrics_en"`
	CategoryID    string  `json:"category_id" validate:"required"`
	Technology    *string `json:"technology"`
	ImageURL      *string `json:"image_url"`
	FigmaURL      *string `json:"figma_url" validate:"omitempty,url"`
	LiveURL       *string `json:"live_url" validate:"omitempty,url"`
	ShowLiveDemo  bool    `json:"show_live_demo"`
	IsPublished   bool    `json:"is_published"`
	IsFeatured    bool    `json:"is_featured"`
	SortOrder     int     `json:"sort_order"`
}

func designInputFromRequest(request DesignRequest) service.DesignInput {
	return service.DesignInput{
		Title:         request.Title,
		TitleUK:       request.TitleUK,
		TitleEN:       request.TitleEN,
		DescriptionUK: request.DescriptionUK,
		DescriptionEN: request.DescriptionEN,
		MetricsUK:     request.MetricsUK,
		MetricsEN:     request.MetricsEN,
		CategoryID:    request.CategoryID,
		Technology:    request.Technology,
		ImageURL:      request.ImageURL,
		FigmaURL:      request.FigmaURL,
		LiveURL:       request.LiveURL,
		ShowLiveDemo:  request.ShowLiveDemo,
		IsPublished:   request.IsPublished,
		IsFeatured:    request.IsFeatured,
		SortOrder:     request.SortOrder,
	}
}

func (h *DesignHandler) CreateDesign(c *fiber.Ctx) error {
	var request DesignRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	design, err := h.designService.CreateDesign(c.Context(), designInputFromRequest(request))

	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(design)
}

func (h *DesignHandler) UpdateDesign(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid design id"})
	}

	var request DesignRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	design, err := h.designService.UpdateDesign(c.Context(), id, designInputFromRequest(request))

	if err != nil {
		switch {
		case errors.Is(err, service.ErrDesignNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Design not found"})
		case errors.Is(err, service.ErrCategoryNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(design)
}

func (h *DesignHandler) DeleteDesign(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid design id"})
	}

	if err := h.designService.DeleteDesign(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrDesignNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Design not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Design deleted"})
}

func (h *DesignHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.designService.ListCategories(c.Context(), c.QueryBool("include_inactive", false))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(categories)
}

type CategoryRequest struct {
	ID            string  `json:"id" validate:"required,min=2,max=50"`
	Slug          string  `json:"slug"`
	TitleUK       string  `json:"title_uk" validate:"required"`
	TitleEN       string  `json:"title_en" validate:"required"`
	DescriptionUK *string `json:"description_uk"`
	DescriptionEN *string `json:"description_en"`
	IsActive      bool    `json:"is_active"`
	SortOrder     int     `json:"sort_order"`
}

func (h *DesignHandler) CreateCategory(c *fiber.Ctx) error {
	var request CategoryRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	category := &model.DesignCategory{
		ID:            request.ID,
		Slug:          request.Slug,
		TitleUK:       request.TitleUK,
		TitleEN:       request.TitleEN,
		DescriptionUK: request.DescriptionUK,
		DescriptionEN: request.DescriptionEN,
		IsActive:      request.IsActive,
		SortOrder:     request.SortOrder,
	}

	if err := h.designService.CreateCategory(c.Context(), category); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *DesignHandler) UpdateCategory(c *fiber.Ctx) error {
	var request CategoryRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	request.ID = c.Params("id")

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	category := &model.DesignCategory{
		ID:            request.ID,
		Slug:          request.Slug,
		TitleUK:       request.TitleUK,
		TitleEN:       request.TitleEN,
		DescriptionUK: request.DescriptionUK,
		DescriptionEN: request.DescriptionEN,
		IsActive:      request.IsActive,
		SortOrder:     request.SortOrder,
	}

	if err := h.designService.UpdateCategory(c.Context(), category); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(category)
}

func (h *DesignHandler) DeleteCategory(c *fiber.Ctx) error {
	err := h.designService.DeleteCategory(c.Context(), c.Params("id"))

	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		case errors.Is(err, service.ErrCategoryInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Category still has designs attached"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Category deleted"})
}
