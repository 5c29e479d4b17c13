package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studio-api/internal/model"
	"studio-api/internal/service"
)

type PackageHandler struct {
	packageService service.PackageService
	validate       *validator.Validate
}

func NewPackageHandler(packageService service.PackageService) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
		validate:       validator.New(),
	}
}

func (h *PackageHandler) ListPackages(c *fiber.Ctx) error {
	activeOnly := c.Query("active", "true") != "false"

	packages, err := h.packageService.ListPackages(c.Context(), activeOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(packages)
}

func (h *PackageHandler) ListHomepagePackages(c *fiber.Ctx) error {
	packages, err := h.packageService.ListHomepagePackages(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(packages)
}

func (h *PackageHandler) GetPackage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid package id"})
	}

	pkg, err := h.packageService.GetPackage(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}

	return c.Status(fiber.StatusOK).JSON(pkg)
}

func (h *PackageHandler) GetPackageBySlug(c *fiber.Ctx) error {
	pkg, err := h.packageService.GetPackageBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}

	return c.Status(fiber.StatusOK).JSON(pkg)
}

type PackageRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	PriceUK      string   `json:"price_uk" validate:"required"`
	PriceEN      string   `json:"price_en" validate:"required"`
	DurationUK   *string  `json:"duration_uk"`
	DurationEN   *string  `json:"duration_en"`
	FeaturesUK   []string `json:"features_uk"`
	FeaturesEN   []string `json:"features_en"`
	AdvantagesUK []string `json:"advantages_uk"`
	AdvantagesEN []string `json:"advantages_en"`
	ProcessUK    []string `json:"process_uk"`
	ProcessEN    []string `json:"process_en"`
	SupportUK    *string  `json:"support_uk"`
	SupportEN    *string  `json:"support_en"`
	IsPopular    bool     `json:"is_popular"`
	IsActive     bool     `json:"is_active"`
	SortOrder    int      `json:"sort_order"`
}

func packageFromRequest(request PackageRequest) *model.Package {
	return &model.Package{
		Name:         request.Name,
		PriceUK:      request.PriceUK,
		PriceEN:      request.PriceEN,
		DurationUK:   request.DurationUK,
		DurationEN:   request.DurationEN,
		FeaturesUK:   model.StringList(request.FeaturesUK),
		FeaturesEN:   model.StringList(request.FeaturesEN),
		AdvantagesUK: model.StringList(request.AdvantagesUK),
		AdvantagesEN: model.StringList(request.AdvantagesEN),
		ProcessUK:    model.StringList(request.ProcessUK),
		ProcessEN:    model.StringList(request.ProcessEN),
		SupportUK:    request.SupportUK,
		SupportEN:    request.SupportEN,
		IsPopular:    request.IsPopular,
		IsActive:     request.IsActive,
		SortOrder:    request.SortOrder,
	}
}

func (h *PackageHandler) CreatePackage(c *fiber.Ctx) error {
	var request PackageRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	pkg, err := h.packageService.CreatePackage(c.Context(), packageFromRequest(request))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(pkg)
}

func (h *PackageHandler) UpdatePackage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid package id"})
	}

	var request PackageRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	pkg := packageFromRequest(request)
	pkg.ID = id

	updated, err := h.packageService.UpdatePackage(c.Context(), pkg)
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// DeletePackage reports whether the package was deactivated instead of
// removed, which happens when quote applications still reference it.
func (h *PackageHandler) DeletePackage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid package id"})
	}

	deactivated, err := h.packageService.DeletePackage(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	message := "Package deleted"
	if deactivated {
		message = "Package deactivated, applications still reference it"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     message,
		"deactivated": deactivated,
	})
}
