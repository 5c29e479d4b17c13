package service

import (
	"context"
	"database/sql"
	"errors"

	"studio-api/internal/model"
	"studio-api/internal/repository"
)

var (
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrTeamNameTaken      = errors.New("an active team member with this name already exists")
)

type AboutPage struct {
	About *model.AboutContent `json:"about"`
	Team  []model.TeamMember  `json:"team"`
}

type TeamService interface {
	GetAboutPage(ctx context.Context) (*AboutPage, error)
	UpdateAbout(ctx context.Context, about *model.AboutContent) (*model.AboutContent, error)
	ListMembers(ctx context.Context, includeInactive bool) ([]model.TeamMember, error)
	CreateMember(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error)
	UpdateMember(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error)
	DeleteMember(ctx context.Context, id int64) error
	ToggleMemberActive(ctx context.Context, id int64) (*model.TeamMember, error)
	ReorderMembers(ctx context.Context, orderedIDs []int64) error
}

type teamService struct {
	teamRepo    repository.TeamRepository
	contentRepo repository.ContentRepository
}

func NewTeamService(teamRepo repository.TeamRepository, contentRepo repository.ContentRepository) TeamService {
	return &teamService{
		teamRepo:    teamRepo,
		contentRepo: contentRepo,
	}
}

// GetAboutPage returns the about singleton with active members. The
// singleton row is created empty on first read.
func (s *teamService) GetAboutPage(ctx context.Context) (*AboutPage, error) {
	about, err := s.contentRepo.GetAbout(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		about, err = s.contentRepo.CreateEmptyAbout(ctx)
	}
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	return &AboutPage{About: about, Team: team}, nil
}

func (s *teamService) UpdateAbout(ctx context.Context, about *model.AboutContent) (*model.AboutContent, error) {
	existing, err := s.contentRepo.GetAbout(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		existing, err = s.contentRepo.CreateEmptyAbout(ctx)
	}
	if err != nil {
		return nil, err
	}

	about.ID = existing.ID
	if err := s.contentRepo.UpdateAbout(ctx, about); err != nil {
		return nil, err
	}

	return s.contentRepo.GetAbout(ctx)
}

func (s *teamService) ListMembers(ctx context.Context, includeInactive bool) ([]model.TeamMember, error) {
	return s.teamRepo.List(ctx, includeInactive)
}

func (s *teamService) CreateMember(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error) {
	if member.IsActive {
		taken, err := s.teamRepo.ActiveNameExists(ctx, member.Name, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrTeamNameTaken
		}
	}

	// order 0 means append at the end
	if member.OrderIndex == 0 {
		max, err := s.teamRepo.MaxOrderIndex(ctx)
		if err != nil {
			return nil, err
		}
		member.OrderIndex = max + 1
	}

	newID, err := s.teamRepo.Create(ctx, member)
	if err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, newID)
}

func (s *teamService) UpdateMember(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error) {
	if _, err := s.teamRepo.FindByID(ctx, member.ID); err != nil {
		return nil, ErrTeamMemberNotFound
	}

	if member.IsActive {
		taken, err := s.teamRepo.ActiveNameExists(ctx, member.Name, member.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrTeamNameTaken
		}
	}

	if err := s.teamRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, member.ID)
}

func (s *teamService) DeleteMember(ctx context.Context, id int64) error {
	if _, err := s.teamRepo.FindByID(ctx, id); err != nil {
		return ErrTeamMemberNotFound
	}
	return s.teamRepo.Delete(ctx, id)
}

func (s *teamService) ToggleMemberActive(ctx context.Context, id int64) (*model.TeamMember, error) {
	member, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrTeamMemberNotFound
	}

	if !member.IsActive {
		taken, err := s.teamRepo.ActiveNameExists(ctx, member.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrTeamNameTaken
		}
	}

	if err := s.teamRepo.SetActive(ctx, id, !member.IsActive); err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, id)
}

// ReorderMembers assigns order_index by position in the given id list.
func (s *teamService) ReorderMembers(ctx context.Context, orderedIDs []int64) error {
	for position, id := range orderedIDs {
		if _, err := s.teamRepo.FindByID(ctx, id); err != nil {
			return ErrTeamMemberNotFound
		}
		if err := s.teamRepo.SetOrder(ctx, id, position); err != nil {
			return err
		}
	}
	return nil
}
