package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-api/internal/model"
	"studio-api/internal/service"
)

func newApplicationService() (service.ApplicationService, *fakeQuoteRepo, *fakeConsultationRepo, *fakePackageRepo, *fakePublisher) {
	quotes := newFakeQuoteRepo()
	consultations := newFakeConsultationRepo()
	packages := newFakePackageRepo()
	publisher := &fakePublisher{}
	svc := service.NewApplicationService(quotes, consultations, packages, publisher)
	return svc, quotes, consultations, packages, publisher
}

func TestApplicationService_CreateQuote(t *testing.T) {
	t.Run("KeepsActivePackageReference", func(t *testing.T) {
		svc, _, _, packages, publisher := newApplicationService()
		pkgID, err := packages.Create(context.Background(), &model.Package{Name: "Лендінг", Slug: "landing", IsActive: true})
		require.NoError(t, err)

		quote, err := svc.CreateQuote(context.Background(), service.QuoteInput{
			Name:        "Марія",
			Email:       "maria@example.com",
			ProjectType: "landing",
			Description: "Потрібен лендінг",
			PackageID:   &pkgID,
		})

		require.NoError(t, err)
		require.NotNil(t, quote.PackageID)
		assert.Equal(t, pkgID, *quote.PackageID)
		assert.Equal(t, model.ApplicationStatusNew, quote.Status)
		require.Len(t, publisher.quotes, 1)
	})

	t.Run("DropsUnknownPackageReference", func(t *testing.T) {
		svc, _, _, _, _ := newApplicationService()
		ghost := int64(999)

		quote, err := svc.CreateQuote(context.Background(), service.QuoteInput{
			Name:        "Марія",
			Email:       "maria@example.com",
			ProjectType: "landing",
			Description: "Потрібен лендінг",
			PackageID:   &ghost,
		})

		require.NoError(t, err, "a bad package reference must not lose the lead")
		assert.Nil(t, quote.PackageID)
	})

	t.Run("DropsInactivePackageReference", func(t *testing.T) {
		svc, _, _, packages, _ := newApplicationService()
		pkgID, err := packages.Create(context.Background(), &model.Package{Name: "Старий", Slug: "old", IsActive: false})
		require.NoError(t, err)

		quote, err := svc.CreateQuote(context.Background(), service.QuoteInput{
			Name:        "Марія",
			Email:       "maria@example.com",
			ProjectType: "landing",
			Description: "Опис",
			PackageID:   &pkgID,
		})

		require.NoError(t, err)
		assert.Nil(t, quote.PackageID)
	})
}

func TestApplicationService_UpdateQuoteStatus(t *testing.T) {
	t.Run("SetsProcessedAtOnTransition", func(t *testing.T) {
		svc, _, _, _, _ := newApplicationService()
		created, err := svc.CreateQuote(context.Background(), service.QuoteInput{
			Name: "Марія", Email: "maria@example.com", ProjectType: "shop", Description: "Опис",
		})
		require.NoError(t, err)

		updated, err := svc.UpdateQuoteStatus(context.Background(), created.ID, model.ApplicationStatusInProgress, nil)

		require.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusInProgress, updated.Status)
		assert.NotNil(t, updated.ProcessedAt)
	})

	t.Run("SameStatusKeepsProcessedAt", func(t *testing.T) {
		svc, _, _, _, _ := newApplicationService()
		created, err := svc.CreateQuote(context.Background(), service.QuoteInput{
			Name: "Марія", Email: "maria@example.com", ProjectType: "shop", Description: "Опис",
		})
		require.NoError(t, err)

		updated, err := svc.UpdateQuoteStatus(context.Background(), created.ID, model.ApplicationStatusNew, nil)

		require.NoError(t, err)
		assert.Nil(t, updated.ProcessedAt)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		svc, _, _, _, _ := newApplicationService()

		_, err := svc.UpdateQuoteStatus(context.Background(), 1, "archived", nil)

		assert.ErrorIs(t, err, service.ErrInvalidStatus)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, _, _, _, _ := newApplicationService()

		_, err := svc.UpdateQuoteStatus(context.Background(), 999, model.ApplicationStatusCompleted, nil)

		assert.ErrorIs(t, err, service.ErrApplicationNotFound)
	})
}

func TestApplicationService_CreateConsultation(t *testing.T) {
	svc, _, _, _, publisher := newApplicationService()
	telegram := "@nadia_dev"

	created, err := svc.CreateConsultation(context.Background(), service.ConsultationInput{
		FirstName: "Надія",
		LastName:  "Шевченко",
		Phone:     "+380501234567",
		Telegram:  &telegram,
	})

	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusNew, created.Status)
	require.Len(t, publisher.consultations, 1)
	assert.Equal(t, created.ID, publisher.consultations[0].ID)
}

func TestApplicationService_UpdateConsultationStatus(t *testing.T) {
	svc, _, _, _, _ := newApplicationService()
	created, err := svc.CreateConsultation(context.Background(), service.ConsultationInput{
		FirstName: "Надія", LastName: "Шевченко", Phone: "+380501234567",
	})
	require.NoError(t, err)

	scheduled := time.Now().Add(48 * time.Hour)
	notes := "zoom call"
	updated, err := svc.UpdateConsultationStatus(context.Background(), created.ID, model.ApplicationStatusInProgress, &scheduled, &notes)

	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusInProgress, updated.Status)
	require.NotNil(t, updated.ConsultationScheduledAt)
	assert.WithinDuration(t, scheduled, *updated.ConsultationScheduledAt, time.Second)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "zoom call", *updated.Notes)
}

func TestApplicationService_DeleteQuote_NotFound(t *testing.T) {
	svc, _, _, _, _ := newApplicationService()

	err := svc.DeleteQuote(context.Background(), 404)

	assert.ErrorIs(t, err, service.ErrApplicationNotFound)
}
