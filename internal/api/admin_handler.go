package api

import (
	"github.com/gofiber/fiber/v2"

	"studio-api/internal/service"
)

type AdminHandler struct {
	statsService  service.StatsService
	searchService service.SearchService
}

func NewAdminHandler(statsService service.StatsService, searchService service.SearchService) *AdminHandler {
	return &AdminHandler{
		statsService:  statsService,
		searchService: searchService,
	}
}

func (h *AdminHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.statsService.GetDashboardStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *AdminHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if len(query) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query must be at least 2 characters"})
	}

	var categoryID *string
	if category := c.Query("category"); category != "" {
		categoryID = &category
	}

	response, err := h.searchService.Search(c.Context(), query, categoryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
