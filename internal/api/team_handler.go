package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studio-api/internal/model"
	"studio-api/internal/service"
)

type TeamHandler struct {
	teamService service.TeamService
	validate    *validator.Validate
}

func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		validate:    validator.New(),
	}
}

func (h *TeamHandler) GetAboutPage(c *fiber.Ctx) error {
	page, err := h.teamService.GetAboutPage(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(page)
}

func (h *TeamHandler) UpdateAbout(c *fiber.Ctx) error {
	var about model.AboutContent
	if err := c.BodyParser(&about); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	updated, err := h.teamService.UpdateAbout(c.Context(), &about)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *TeamHandler) ListMembers(c *fiber.Ctx) error {
	members, err := h.teamService.ListMembers(c.Context(), c.QueryBool("include_inactive", false))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(members)
}

type TeamMemberRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	RoleUK     string  `json:"role_uk" validate:"required"`
	RoleEN     string  `json:"role_en" validate:"required"`
	Skills     *string `json:"skills"`
	Avatar     *string `json:"avatar"`
	Initials   *string `json:"initials" validate:"omitempty,max=5"`
	OrderIndex int     `json:"order_index" validate:"min=0"`
	IsActive   bool    `json:"is_active"`
}

func memberFromRequest(request TeamMemberRequest) *model.TeamMember {
	return &model.TeamMember{
		Name:       request.Name,
		RoleUK:     request.RoleUK,
		RoleEN:     request.RoleEN,
		Skills:     request.Skills,
		Avatar:     request.Avatar,
		Initials:   request.Initials,
		OrderIndex: request.OrderIndex,
		IsActive:   request.IsActive,
	}
}

func (h *TeamHandler) CreateMember(c *fiber.Ctx) error {
	var request TeamMemberRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	member, err := h.teamService.CreateMember(c.Context(), memberFromRequest(request))

	if err != nil {
		if errors.Is(err, service.ErrTeamNameTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "An active team member with this name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

func (h *TeamHandler) UpdateMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid member id"})
	}

	var request TeamMemberRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	member := memberFromRequest(request)
	member.ID = id

	updated, err := h.teamService.UpdateMember(c.Context(), member)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamMemberNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team member not found"})
		case errors.Is(err, service.ErrTeamNameTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "An active team member with this name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *TeamHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid member id"})
	}

	if err := h.teamService.DeleteMember(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team member not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Team member deleted"})
}

func (h *TeamHandler) ToggleMemberActive(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid member id"})
	}

	member, err := h.teamService.ToggleMemberActive(c.Context(), id)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamMemberNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team member not found"})
		case errors.Is(err, service.ErrTeamNameTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "An active team member with this name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(member)
}

type ReorderRequest struct {
	OrderedIDs []int64 `json:"ordered_ids" validate:"required,min=1"`
}

func (h *TeamHandler) ReorderMembers(c *fiber.Ctx) error {
	var request ReorderRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	if err := h.teamService.ReorderMembers(c.Context(), request.OrderedIDs); err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team member not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Team order updated"})
}
