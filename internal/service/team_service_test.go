package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-api/internal/model"
	"studio-api/internal/service"
)

func newTeamService() (service.TeamService, *fakeTeamRepo, *fakeContentRepo) {
	teamRepo := newFakeTeamRepo()
	contentRepo := newFakeContentRepo()
	return service.NewTeamService(teamRepo, contentRepo), teamRepo, contentRepo
}

func TestTeamService_GetAboutPage_CreatesSingleton(t *testing.T) {
	svc, _, contentRepo := newTeamService()

	page, err := svc.GetAboutPage(context.Background())

	require.NoError(t, err)
	require.NotNil(t, page.About)
	assert.NotNil(t, contentRepo.about, "first read creates the about row")
	assert.Empty(t, page.Team)

	again, err := svc.GetAboutPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, page.About.ID, again.About.ID)
}

func TestTeamService_GetAboutPage_ActiveMembersOnly(t *testing.T) {
	svc, teamRepo, _ := newTeamService()
	_, err := teamRepo.Create(context.Background(), &model.TeamMember{Name: "Оля", IsActive: true, OrderIndex: 1})
	require.NoError(t, err)
	_, err = teamRepo.Create(context.Background(), &model.TeamMember{Name: "Колишній", IsActive: false, OrderIndex: 2})
	require.NoError(t, err)

	page, err := svc.GetAboutPage(context.Background())

	require.NoError(t, err)
	require.Len(t, page.Team, 1)
	assert.Equal(t, "Оля", page.Team[0].Name)
}

func TestTeamService_CreateMember(t *testing.T) {
	t.Run("AppendsAtEndWhenOrderUnset", func(t *testing.T) {
		svc, teamRepo, _ := newTeamService()
		_, err := teamRepo.Create(context.Background(), &model.TeamMember{Name: "Оля", IsActive: true, OrderIndex: 5})
		require.NoError(t, err)

		member, err := svc.CreateMember(context.Background(), &model.TeamMember{Name: "Юрій", IsActive: true})

		require.NoError(t, err)
		assert.Equal(t, 6, member.OrderIndex)
	})

	t.Run("RejectsDuplicateActiveName", func(t *testing.T) {
		svc, teamRepo, _ := newTeamService()
		_, err := teamRepo.Create(context.Background(), &model.TeamMember{Name: "Оля", IsActive: true, OrderIndex: 1})
		require.NoError(t, err)

		_, err = svc.CreateMember(context.Background(), &model.TeamMember{Name: "Оля", IsActive: true})

		assert.ErrorIs(t, err, service.ErrTeamNameTaken)
	})

	t.Run("AllowsNameSharedWithInactiveMember", func(t *testing.T) {
		svc, teamRepo, _ := newTeamService()
		_, err := teamRepo.Create(context.Background(), &model.TeamMember{Name: "Оля", IsActive: false, OrderIndex: 1})
		require.NoError(t, err)

		_, err = svc.CreateMember(context.Background(), &model.TeamMember{Name: "Оля", IsActive: true})

		require.NoError(t, err)
	})
}

func TestTeamService_ToggleMemberActive(t *testing.T) {
	t.Run("Deactivate", func(t *testing.T) {
		svc, teamRepo, _ := newTeamService()
		id, err := teamRepo.Create(context.Background(), &model.TeamMember{Name: "Оля", IsActive: true, OrderIndex: 1})
		require.NoError(t, err)

		member, err := svc.ToggleMemberActive(context.Background(), id)

		require.NoError(t, err)
		assert.False(t, member.IsActive)
	})

	t.Run("ReactivateBlockedByNameClash", func(t *testing.T) {
		svc, teamRepo, _ := newTeamService()
		dormantID, err := teamRepo.Create(context.Background(), &model.TeamMember{Name: "Оля", IsActive: false, OrderIndex: 1})
		require.NoError(t, err)
		_, err = teamRepo.Create(context.Background(), &model.TeamMember{Name: "Оля", IsActive: true, OrderIndex: 2})
		require.NoError(t, err)

		_, err = svc.ToggleMemberActive(context.Background(), dormantID)

		assert.ErrorIs(t, err, service.ErrTeamNameTaken)
	})
}

func TestTeamService_ReorderMembers(t *testing.T) {
	svc, teamRepo, _ := newTeamService()
	firstID, err := teamRepo.Create(context.Background(), &model.TeamMember{Name: "Оля", IsActive: true, OrderIndex: 1})
	require.NoError(t, err)
	secondID, err := teamRepo.Create(context.Background(), &model.TeamMember{Name: "Юрій", IsActive: true, OrderIndex: 2})
	require.NoError(t, err)

	require.NoError(t, svc.ReorderMembers(context.Background(), []int64{secondID, firstID}))

	assert.Equal(t, 0, teamRepo.members[secondID].OrderIndex)
	assert.Equal(t, 1, teamRepo.members[firstID].OrderIndex)
}

func TestTeamService_ReorderMembers_UnknownID(t *testing.T) {
	svc, _, _ := newTeamService()

	err := svc.ReorderMembers(context.Background(), []int64{404})

	assert.ErrorIs(t, err, service.ErrTeamMemberNotFound)
}

func TestTeamService_UpdateAbout(t *testing.T) {
	svc, _, contentRepo := newTeamService()
	mission := "Робимо сайти, які продають"

	updated, err := svc.UpdateAbout(context.Background(), &model.AboutContent{MissionUK: &mission})

	require.NoError(t, err)
	require.NotNil(t, updated.MissionUK)
	assert.Equal(t, mission, *updated.MissionUK)
	assert.NotNil(t, contentRepo.about)
}
