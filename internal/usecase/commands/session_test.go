//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/Jes6241/parquimetros-api/internal/domain/session"
	"github.com/Jes6241/parquimetros-api/internal/infra"
	"github.com/Jes6241/parquimetros-api/internal/pkg/clock"
	"github.com/Jes6241/parquimetros-api/internal/pkg/errs"
	"github.com/Jes6241/parquimetros-api/internal/usecase/commands"
	"github.com/Jes6241/parquimetros-api/tests/common/builder"
	commandsmock "github.com/Jes6241/parquimetros-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newCommandsUnderTest(t *testing.T) (commands.SessionCommands, *commandsmock.MockSessionRepository, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockSessionRepository(ctrl)
	clk := clock.NewMockClock(baseTime)
	return commands.NewSessionCommands(repo, clk), repo, clk
}

func notFoundErr() error {
	return infra.WrapRepoErr("session not found", errs.New("no rows in result set"), infra.KindNotFound)
}

func TestPay(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a session and returns the stored view", func(t *testing.T) {
		sut, repo, _ := newCommandsUnderTest(t)

		stored := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.StartTime = baseTime
		}).BuildStored()

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *session.Session) (*session.Session, error) {
				assert.Equal(t, "ABC123", s.Plate().String())
				assert.Equal(t, baseTime, s.StartTime())
				assert.Equal(t, baseTime.Add(60*time.Minute), s.EndTime())
				return stored, nil
			}).Times(1)

		view, err := sut.Pay(ctx, commands.PayInput{
			Plate:         " abc123 ",
			Zone:          "Centro",
			Minutes:       60,
			Amount:        15.0,
			PaymentMethod: "efectivo",
		})
		require.NoError(t, err)
		assert.Equal(t, "ABC123", view.Plate)
		assert.Equal(t, stored.ID(), view.ID)
		assert.Equal(t, "active", view.Status)
	})

	t.Run("validation short-circuits before the repository", func(t *testing.T) {
		cases := []struct {
			name  string
			input commands.PayInput
			errIs error
		}{
			{
				name:  "empty plate",
				input: commands.PayInput{Plate: "  ", Minutes: 60},
				errIs: commands.ErrInvalidPlate,
			},
			{
				name:  "zero minutes",
				input: commands.PayInput{Plate: "ABC123", Minutes: 0},
				errIs: commands.ErrInvalidMinutes,
			},
			{
				name:  "negative amount",
				input: commands.PayInput{Plate: "ABC123", Minutes: 60, Amount: -5},
				errIs: commands.ErrInvalidAmount,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				sut, _, _ := newCommandsUnderTest(t)
				_, err := sut.Pay(ctx, tc.input)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("repository failure is marked as database error", func(t *testing.T) {
		sut, repo, _ := newCommandsUnderTest(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert failed", errs.New("connection reset"))).Times(1)

		_, err := sut.Pay(ctx, commands.PayInput{Plate: "ABC123", Minutes: 60})
		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown plate reports not found without error", func(t *testing.T) {
		sut, repo, _ := newCommandsUnderTest(t)
		repo.EXPECT().FindLatestByPlate(gomock.Any(), "XYZ789").
			Return(nil, notFoundErr()).Times(1)

		result, err := sut.Verify(ctx, "xyz789")
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Equal(t, "XYZ789", result.Plate)
		assert.Nil(t, result.Session)
	})

	t.Run("valid while the window is open", func(t *testing.T) {
		sut, repo, clk := newCommandsUnderTest(t)
		stored := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.StartTime = baseTime
		}).BuildStored()
		clk.Set(baseTime.Add(20 * time.Minute))

		repo.EXPECT().FindLatestByPlate(gomock.Any(), "ABC123").Return(stored, nil).Times(1)

		result, err := sut.Verify(ctx, "ABC123")
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.True(t, result.Valid)
		assert.Equal(t, 40, result.RemainingMinutes)
		require.NotNil(t, result.Session)
		assert.Equal(t, "active", result.Session.Status)
	})

	t.Run("elapsed active window is flagged expired and written back", func(t *testing.T) {
		sut, repo, clk := newCommandsUnderTest(t)
		stored := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.StartTime = baseTime
		}).BuildStored()
		clk.Set(baseTime.Add(90 * time.Minute))

		repo.EXPECT().FindLatestByPlate(gomock.Any(), "ABC123").Return(stored, nil).Times(1)
		repo.EXPECT().SetExpired(gomock.Any(), stored.ID(), clk.Now()).Return(nil).Times(1)

		result, err := sut.Verify(ctx, "ABC123")
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.False(t, result.Valid)
		assert.Equal(t, 30, result.ExpiredMinutes)
	})

	t.Run("fined session is never moved back to expired", func(t *testing.T) {
		sut, repo, clk := newCommandsUnderTest(t)
		stored := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.StartTime = baseTime
			b.Status = session.StatusFined
		}).BuildStored()
		clk.Set(baseTime.Add(90 * time.Minute))

		repo.EXPECT().FindLatestByPlate(gomock.Any(), "ABC123").Return(stored, nil).Times(1)
		// No SetExpired expectation: the write must not happen.

		result, err := sut.Verify(ctx, "ABC123")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, "fined", result.Session.Status)
	})

	t.Run("failed expiry write does not fail the verification", func(t *testing.T) {
		sut, repo, clk := newCommandsUnderTest(t)
		stored := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.StartTime = baseTime
		}).BuildStored()
		clk.Set(baseTime.Add(90 * time.Minute))

		repo.EXPECT().FindLatestByPlate(gomock.Any(), "ABC123").Return(stored, nil).Times(1)
		repo.EXPECT().SetExpired(gomock.Any(), stored.ID(), clk.Now()).
			Return(infra.WrapRepoErr("update failed", errs.New("connection reset"))).Times(1)

		result, err := sut.Verify(ctx, "ABC123")
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("exactly elapsed window is invalid", func(t *testing.T) {
		sut, repo, clk := newCommandsUnderTest(t)
		stored := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.StartTime = baseTime
		}).BuildStored()
		clk.Set(stored.EndTime())

		repo.EXPECT().FindLatestByPlate(gomock.Any(), "ABC123").Return(stored, nil).Times(1)
		repo.EXPECT().SetExpired(gomock.Any(), stored.ID(), clk.Now()).Return(nil).Times(1)

		result, err := sut.Verify(ctx, "ABC123")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, 0, result.ExpiredMinutes)
	})
}

func TestExtend(t *testing.T) {
	ctx := context.Background()

	t.Run("adds time to the latest active session", func(t *testing.T) {
		sut, repo, clk := newCommandsUnderTest(t)
		stored := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.StartTime = baseTime
		}).BuildStored()
		originalEnd := stored.EndTime()
		clk.Set(baseTime.Add(30 * time.Minute))

		repo.EXPECT().FindLatestActiveByPlate(gomock.Any(), "ABC123").Return(stored, nil).Times(1)
		repo.EXPECT().Update(gomock.Any(), stored).Return(nil).Times(1)

		view, err := sut.Extend(ctx, commands.ExtendInput{Plate: "abc123", ExtraMinutes: 30, ExtraAmount: 7.5})
		require.NoError(t, err)
		assert.Equal(t, originalEnd.Add(30*time.Minute), view.EndTime)
		assert.Equal(t, int32(90), view.PaidMinutes)
		assert.Equal(t, 22.5, view.Amount)
	})

	t.Run("no active session", func(t *testing.T) {
		sut, repo, _ := newCommandsUnderTest(t)
		repo.EXPECT().FindLatestActiveByPlate(gomock.Any(), "ABC123").
			Return(nil, notFoundErr()).Times(1)

		_, err := sut.Extend(ctx, commands.ExtendInput{Plate: "ABC123", ExtraMinutes: 30})
		require.ErrorIs(t, err, commands.ErrActiveSessionNotFound)
	})

	t.Run("validation short-circuits before the repository", func(t *testing.T) {
		sut, _, _ := newCommandsUnderTest(t)

		_, err := sut.Extend(ctx, commands.ExtendInput{Plate: "", ExtraMinutes: 30})
		require.ErrorIs(t, err, commands.ErrInvalidPlate)

		_, err = sut.Extend(ctx, commands.ExtendInput{Plate: "ABC123", ExtraMinutes: 0})
		require.ErrorIs(t, err, commands.ErrInvalidMinutes)

		_, err = sut.Extend(ctx, commands.ExtendInput{Plate: "ABC123", ExtraMinutes: 30, ExtraAmount: -1})
		require.ErrorIs(t, err, commands.ErrInvalidAmount)
	})
}

func TestMarkFined(t *testing.T) {
	ctx := context.Background()
	ref := "FOLIO-001"

	t.Run("returns the fined view", func(t *testing.T) {
		sut, repo, clk := newCommandsUnderTest(t)
		id := uuid.New()
		stored := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.ID = id
			b.Status = session.StatusFined
			b.FineReference = &ref
		}).BuildStored()

		repo.EXPECT().SetFined(gomock.Any(), id, &ref, clk.Now()).Return(stored, nil).Times(1)

		view, err := sut.MarkFined(ctx, id, &ref)
		require.NoError(t, err)
		assert.Equal(t, "fined", view.Status)
		require.NotNil(t, view.FineReference)
		assert.Equal(t, ref, *view.FineReference)
	})

	t.Run("unknown id", func(t *testing.T) {
		sut, repo, _ := newCommandsUnderTest(t)
		id := uuid.New()
		repo.EXPECT().SetFined(gomock.Any(), id, gomock.Nil(), gomock.Any()).
			Return(nil, notFoundErr()).Times(1)

		_, err := sut.MarkFined(ctx, id, nil)
		require.ErrorIs(t, err, commands.ErrSessionNotFound)
	})
}
