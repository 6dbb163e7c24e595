package commands

import (
	"bytes"
	"context"
	"testing"

	"market/internal/domain/entity"
	mockusecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestWeekCommand(t *testing.T) {
	out, err := execute(t, "week", "--date", "2025-06-10")
	require.NoError(t, err)

	assert.Contains(t, out, "Current week:    24")
	assert.Contains(t, out, "Submission week: 26")
	assert.Contains(t, out, "Sunday     2025-06-22")
	assert.Contains(t, out, "Saturday   2025-06-28")
}

func TestWeekDatesCommand(t *testing.T) {
	t.Run("lists the week", func(t *testing.T) {
		out, err := execute(t, "week", "dates", "2025", "25")
		require.NoError(t, err)

		assert.Contains(t, out, "DAY        DATE")
		assert.Contains(t, out, "Sunday     2025-06-15")
		assert.Contains(t, out, "Wednesday  2025-06-18")
	})

	t.Run("rejects out of range weeks", func(t *testing.T) {
		_, err := execute(t, "week", "dates", "2025", "56")
		assert.ErrorContains(t, err, `invalid week "56"`)
	})

	t.Run("rejects bad dates", func(t *testing.T) {
		_, err := execute(t, "week", "--date", "10/06/2025")
		assert.ErrorContains(t, err, "invalid --date")
	})
}

func TestCheckUser(t *testing.T) {
	ctx := context.Background()

	t.Run("producer", func(t *testing.T) {
		alerts := mockusecase.NewMockAlertUsecase(t)
		profiles := mockusecase.NewMockProfileUsecase(t)
		user := &entity.User{ID: "p1", Role: entity.RoleProducer}

		profiles.EXPECT().GetUserProfile(ctx, "p1").Return(user, nil)
		alerts.EXPECT().CheckCertificateExpiration(ctx, user).Return(2, nil)

		summary, err := checkUser(ctx, alerts, profiles, "p1")
		require.NoError(t, err)
		assert.Equal(t, &usecase.CheckSummary{Producers: 1, Created: 2}, summary)
	})

	t.Run("missing user", func(t *testing.T) {
		alerts := mockusecase.NewMockAlertUsecase(t)
		profiles := mockusecase.NewMockProfileUsecase(t)

		profiles.EXPECT().GetUserProfile(ctx, "ghost").Return(nil, nil)

		summary, err := checkUser(ctx, alerts, profiles, "ghost")
		assert.Nil(t, summary)
		assert.ErrorContains(t, err, "user ghost")
	})

	t.Run("check failure keeps the summary", func(t *testing.T) {
		alerts := mockusecase.NewMockAlertUsecase(t)
		profiles := mockusecase.NewMockProfileUsecase(t)
		user := &entity.User{ID: "s1", Role: entity.RoleSupermarket}

		profiles.EXPECT().GetUserProfile(ctx, "s1").Return(user, nil)
		alerts.EXPECT().CheckCertificateExpiration(ctx, mock.Anything).Return(0, assert.AnError)

		summary, err := checkUser(ctx, alerts, profiles, "s1")
		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 0, summary.Producers)
	})
}
