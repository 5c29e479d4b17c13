package service

import (
	"context"
	"errors"

	"studio-api/internal/model"
	"studio-api/internal/repository"
	"studio-api/internal/slug"
)

var ErrPackageNotFound = errors.New("package not found")

type PackageService interface {
	ListPackages(ctx context.Context, activeOnly bool) ([]model.Package, error)
	ListHomepagePackages(ctx context.Context, limit int) ([]model.Package, error)
	GetPackage(ctx context.Context, id int64) (*model.Package, error)
	GetPackageBySlug(ctx context.Context, slugValue string) (*model.Package, error)
	CreatePackage(ctx context.Context, pkg *model.Package) (*model.Package, error)
	UpdatePackage(ctx context.Context, pkg *model.Package) (*model.Package, error)
	// DeletePackage removes the package, or deactivates it when quote
	// applications still reference it. Returns true when deactivated.
	DeletePackage(ctx context.Context, id int64) (bool, error)
}

type packageService struct {
	packageRepo repository.PackageRepository
}

func NewPackageService(packageRepo repository.PackageRepository) PackageService {
	return &packageService{packageRepo: packageRepo}
}

func (s *packageService) ListPackages(ctx context.Context, activeOnly bool) ([]model.Package, error) {
	return s.packageRepo.List(ctx, activeOnly)
}

func (s *packageService) ListHomepagePackages(ctx context.Context, limit int) ([]model.Package, error) {
	if limit <= 0 {
		limit = 2
	}
	return s.packageRepo.ListHomepage(ctx, limit)
}

func (s *packageService) GetPackage(ctx context.Context, id int64) (*model.Package, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

func (s *packageService) GetPackageBySlug(ctx context.Context, slugValue string) (*model.Package, error) {
	pkg, err := s.packageRepo.FindBySlug(ctx, slugValue)
	if err != nil {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

func (s *packageService) CreatePackage(ctx context.Context, pkg *model.Package) (*model.Package, error) {
	slugValue, err := slug.Unique(ctx, slug.Make(pkg.Name), func(ctx context.Context, candidate string) (bool, error) {
		return s.packageRepo.SlugExists(ctx, candidate, 0)
	})
	if err != nil {
		return nil, err
	}
	pkg.Slug = slugValue

	newID, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		return nil, err
	}

	return s.packageRepo.FindByID(ctx, newID)
}

func (s *packageService) UpdatePackage(ctx context.Context, pkg *model.Package) (*model.Package, error) {
	existing, err := s.packageRepo.FindByID(ctx, pkg.ID)
	if err != nil {
		return nil, ErrPackageNotFound
	}

	pkg.Slug = existing.Slug
	if pkg.Name != existing.Name {
		pkg.Slug, err = slug.Unique(ctx, slug.Make(pkg.Name), func(ctx context.Context, candidate string) (bool, error) {
			return s.packageRepo.SlugExists(ctx, candidate, pkg.ID)
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	return s.packageRepo.FindByID(ctx, pkg.ID)
}

func (s *packageService) DeletePackage(ctx context.Context, id int64) (bool, error) {
	if _, err := s.packageRepo.FindByID(ctx, id); err != nil {
		return false, ErrPackageNotFound
	}

	refs, err := s.packageRepo.CountApplications(ctx, id)
	if err != nil {
		return false, err
	}

	if refs > 0 {
		return true, s.packageRepo.Deactivate(ctx, id)
	}

	return false, s.packageRepo.Delete(ctx, id)
}
