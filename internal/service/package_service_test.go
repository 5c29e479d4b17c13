package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-api/internal/model"
	"studio-api/internal/service"
)

func TestPackageService_CreatePackage_GeneratesSlug(t *testing.T) {
	repo := newFakePackageRepo()
	svc := service.NewPackageService(repo)

	pkg, err := svc.CreatePackage(context.Background(), &model.Package{Name: "Інтернет-магазин", IsActive: true})

	require.NoError(t, err)
	assert.Equal(t, "internet-mahazyn", pkg.Slug)

	second, err := svc.CreatePackage(context.Background(), &model.Package{Name: "Інтернет-магазин", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "internet-mahazyn-2", second.Slug)
}

func TestPackageService_UpdatePackage_SlugFollowsRename(t *testing.T) {
	repo := newFakePackageRepo()
	svc := service.NewPackageService(repo)

	created, err := svc.CreatePackage(context.Background(), &model.Package{Name: "Лендінг", IsActive: true})
	require.NoError(t, err)
	originalSlug := created.Slug

	t.Run("SameNameKeepsSlug", func(t *testing.T) {
		updated, err := svc.UpdatePackage(context.Background(), &model.Package{ID: created.ID, Name: "Лендінг", IsActive: true})
		require.NoError(t, err)
		assert.Equal(t, originalSlug, updated.Slug)
	})

	t.Run("RenameRegeneratesSlug", func(t *testing.T) {
		updated, err := svc.UpdatePackage(context.Background(), &model.Package{ID: created.ID, Name: "Преміум лендінг", IsActive: true})
		require.NoError(t, err)
		assert.NotEqual(t, originalSlug, updated.Slug)
		assert.Equal(t, "premium-lendinh", updated.Slug)
	})
}

func TestPackageService_DeletePackage(t *testing.T) {
	t.Run("UnreferencedIsRemoved", func(t *testing.T) {
		repo := newFakePackageRepo()
		svc := service.NewPackageService(repo)
		created, err := svc.CreatePackage(context.Background(), &model.Package{Name: "Лендінг", IsActive: true})
		require.NoError(t, err)

		deactivated, err := svc.DeletePackage(context.Background(), created.ID)

		require.NoError(t, err)
		assert.False(t, deactivated)
		assert.NotContains(t, repo.packages, created.ID)
	})

	t.Run("ReferencedIsDeactivated", func(t *testing.T) {
		repo := newFakePackageRepo()
		svc := service.NewPackageService(repo)
		created, err := svc.CreatePackage(context.Background(), &model.Package{Name: "Лендінг", IsActive: true})
		require.NoError(t, err)
		repo.appRefs[created.ID] = 3

		deactivated, err := svc.DeletePackage(context.Background(), created.ID)

		require.NoError(t, err)
		assert.True(t, deactivated)
		require.Contains(t, repo.packages, created.ID)
		assert.False(t, repo.packages[created.ID].IsActive)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := service.NewPackageService(newFakePackageRepo())

		_, err := svc.DeletePackage(context.Background(), 404)

		assert.ErrorIs(t, err, service.ErrPackageNotFound)
	})
}

func TestPackageService_ListHomepagePackages_DefaultLimit(t *testing.T) {
	repo := newFakePackageRepo()
	svc := service.NewPackageService(repo)
	for _, name := range []string{"Базовий", "Стандарт", "Преміум"} {
		_, err := svc.CreatePackage(context.Background(), &model.Package{Name: name, IsActive: true})
		require.NoError(t, err)
	}

	packages, err := svc.ListHomepagePackages(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, packages, 2)
}
