package service

import (
	"context"
	"errors"

	"studio-api/internal/model"
	"studio-api/internal/repository"
	"studio-api/internal/slug"
)

var (
	ErrDesignNotFound   = errors.New("design not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category still has designs attached")
)

type DesignInput struct {
	Title         string
	TitleUK       string
	TitleEN       string
	DescriptionUK *string
	DescriptionEN *string
	MetricsUK     *string
	MetricsEN     *string
	CategoryID    string
	Technology    *string
	ImageURL      *string
	FigmaURL      *string
	LiveURL       *string
	ShowLiveDemo  bool
	IsPublished   bool
	IsFeatured    bool
	SortOrder     int
}

type DesignService interface {
	ListDesigns(ctx context.Context, filter repository.DesignFilter) ([]model.Design, int64, error)
	GetDesign(ctx context.Context, id int64) (*model.Design, error)
	GetDesignBySlug(ctx context.Context, slugValue string) (*model.Design, error)
	CreateDesign(ctx context.Context, input DesignInput) (*model.Design, error)
	UpdateDesign(ctx context.Context, id int64, input DesignInput) (*model.Design, error)
	DeleteDesign(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, includeInactive bool) ([]model.DesignCategory, error)
	CreateCategory(ctx context.Context, category *model.DesignCategory) error
	UpdateCategory(ctx context.Context, category *model.DesignCategory) error
	DeleteCategory(ctx context.Context, id string) error
}

type designService struct {
	designRepo   repository.DesignRepository
	categoryRepo repository.CategoryRepository
}

func NewDesignService(designRepo repository.DesignRepository, categoryRepo repository.CategoryRepository) DesignService {
	return &designService{
		designRepo:   designRepo,
		categoryRepo: categoryRepo,
	}
}

// ListDesigns returns a page of designs and bumps views_count on every
// returned row. The bump is best-effort and never fails the read.
func (s *designService) ListDesigns(ctx context.Context, filter repository.DesignFilter) ([]model.Design, int64, error) {
	designs, total, err := s.designRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int64, 0, len(designs))
	for i := range designs {
		ids = append(ids, designs[i].ID)
		designs[i].ViewsCount++
	}
	_ = s.designRepo.BumpViews(ctx, ids)

	return designs, total, nil
}

func (s *designService) GetDesign(ctx context.Context, id int64) (*model.Design, error) {
	design, err := s.designRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrDesignNotFound
	}

	design.ViewsCount++
	_ = s.designRepo.BumpViews(ctx, []int64{design.ID})

	return design, nil
}

func (s *designService) GetDesignBySlug(ctx context.Context, slugValue string) (*model.Design, error) {
	design, err := s.designRepo.FindBySlug(ctx, slugValue, true)
	if err != nil {
		return nil, ErrDesignNotFound
	}

	design.ViewsCount++
	_ = s.designRepo.BumpViews(ctx, []int64{design.ID})

	return design, nil
}

func (s *designService) CreateDesign(ctx context.Context, input DesignInput) (*model.Design, error) {
	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, ErrCategoryNotFound
	}

	slugValue, err := slug.Unique(ctx, slug.Make(input.Title), func(ctx context.Context, candidate string) (bool, error) {
		return s.designRepo.SlugExists(ctx, candidate, 0)
	})
	if err != nil {
		return nil, err
	}

	design := designFromInput(input)
	design.Slug = slugValue

	newID, err := s.designRepo.Create(ctx, design)
	if err != nil {
		return nil, err
	}

	return s.designRepo.FindByID(ctx, newID)
}

func (s *designService) UpdateDesign(ctx context.Context, id int64, input DesignInput) (*model.Design, error) {
	existing, err := s.designRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrDesignNotFound
	}

	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, ErrCategoryNotFound
	}

	design := designFromInput(input)
	design.ID = id
	design.Slug = existing.Slug

	// the slug follows the title, excluding our own row from the
	// uniqueness check
	if input.Title != existing.Title {
		design.Slug, err = slug.Unique(ctx, slug.Make(input.Title), func(ctx context.Context, candidate string) (bool, error) {
			return s.designRepo.SlugExists(ctx, candidate, id)
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.designRepo.Update(ctx, design); err != nil {
		return nil, err
	}

	return s.designRepo.FindByID(ctx, id)
}

func (s *designService) DeleteDesign(ctx context.Context, id int64) error {
	if _, err := s.designRepo.FindByID(ctx, id); err != nil {
		return ErrDesignNotFound
	}
	return s.designRepo.Delete(ctx, id)
}

func (s *designService) ListCategories(ctx context.Context, includeInactive bool) ([]model.DesignCategory, error) {
	return s.categoryRepo.List(ctx, includeInactive)
}

func (s *designService) CreateCategory(ctx context.Context, category *model.DesignCategory) error {
	if category.Slug == "" {
		category.Slug = slug.Make(category.TitleEN)
	}
	return s.categoryRepo.Create(ctx, category)
}

func (s *designService) UpdateCategory(ctx context.Context, category *model.DesignCategory) error {
	if _, err := s.categoryRepo.FindByID(ctx, category.ID); err != nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Update(ctx, category)
}

// DeleteCategory refuses while designs still reference the category.
func (s *designService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return ErrCategoryNotFound
	}

	count, err := s.categoryRepo.CountDesigns(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.categoryRepo.Delete(ctx, id)
}

func designFromInput(input DesignInput) *model.Design {
	return &model.Design{
		Title:         input.Title,
		TitleUK:       input.TitleUK,
		TitleEN:       input.TitleEN,
		DescriptionUK: input.DescriptionUK,
		DescriptionEN: input.DescriptionEN,
		MetricsUK:     input.MetricsUK,
		MetricsEN:     input.MetricsEN,
		CategoryID:    input.CategoryID,
		Technology:    input.Technology,
		ImageURL:      input.ImageURL,
		FigmaURL:      input.FigmaURL,
		LiveURL:       input.LiveURL,
		ShowLiveDemo:  input.ShowLiveDemo,
		IsPublished:   input.IsPublished,
		IsFeatured:    input.IsFeatured,
		SortOrder:     input.SortOrder,
	}
}
