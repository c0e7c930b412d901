//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Jes6241/parquimetros-api/internal/pkg/clock"
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"
	"github.com/Jes6241/parquimetros-api/tests/common/builder"
	queriesmock "github.com/Jes6241/parquimetros-api/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newQueriesUnderTest(t *testing.T) (queries.SessionQueries, *queriesmock.MockSessionReadStore, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockSessionReadStore(ctrl)
	clk := clock.NewMockClock(baseTime)
	return queries.NewSessionQueries(store, clk), store, clk
}

func TestListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("computes remaining minutes per row", func(t *testing.T) {
		sut, store, clk := newQueriesUnderTest(t)
		clk.Set(baseTime.Add(15 * time.Minute))

		shortView := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.StartTime = baseTime
			b.Minutes = 30
		}).BuildView()
		longView := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.StartTime = baseTime
			b.Minutes = 120
		}).BuildView()

		store.EXPECT().FindActive(gomock.Any(), clk.Now()).
			Return([]*queries.SessionView{shortView, longView}, nil).Times(1)

		items, err := sut.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)

		expected := []*queries.ActiveSessionItem{
			{SessionView: *shortView, RemainingMinutes: 15},
			{SessionView: *longView, RemainingMinutes: 105},
		}
		assert.Empty(t, cmp.Diff(expected, items))
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		sut, store, clk := newQueriesUnderTest(t)
		store.EXPECT().FindActive(gomock.Any(), clk.Now()).Return(nil, nil).Times(1)

		items, err := sut.ListActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestListExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("reports minutes since the window closed", func(t *testing.T) {
		sut, store, clk := newQueriesUnderTest(t)
		clk.Set(baseTime.Add(2 * time.Hour))

		view := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.StartTime = baseTime
			b.Minutes = 30
		}).BuildView()

		store.EXPECT().FindExpired(gomock.Any(), clk.Now(), int32(50)).
			Return([]*queries.SessionView{view}, nil).Times(1)

		items, err := sut.ListExpired(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 90, items[0].ExpiredMinutes)
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the plate before querying", func(t *testing.T) {
		sut, store, _ := newQueriesUnderTest(t)
		view := builder.NewSessionBuilder().BuildView()

		store.EXPECT().FindByPlate(gomock.Any(), "ABC123", int32(20)).
			Return([]*queries.SessionView{view}, nil).Times(1)

		plate, views, err := sut.History(ctx, "  abc123 ")
		require.NoError(t, err)
		assert.Equal(t, "ABC123", plate)
		require.Len(t, views, 1)
		assert.Empty(t, cmp.Diff(view, views[0]))
	})

	t.Run("empty plate rejected", func(t *testing.T) {
		sut, _, _ := newQueriesUnderTest(t)
		_, _, err := sut.History(ctx, "   ")
		require.ErrorIs(t, err, queries.ErrInvalidPlate)
	})
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates four independent figures from local midnight", func(t *testing.T) {
		sut, store, clk := newQueriesUnderTest(t)
		loc := time.FixedZone("CST", -6*3600)
		now := time.Date(2025, 6, 15, 14, 30, 0, 0, loc)
		dayStart := time.Date(2025, 6, 15, 0, 0, 0, 0, loc)
		clk.Set(now)

		store.EXPECT().CountCreatedSince(gomock.Any(), dayStart).Return(int64(12), nil).Times(1)
		store.EXPECT().CountActiveAt(gomock.Any(), now).Return(int64(4), nil).Times(1)
		store.EXPECT().CountExpiredCreatedSince(gomock.Any(), dayStart).Return(int64(3), nil).Times(1)
		store.EXPECT().SumAmountCreatedSince(gomock.Any(), dayStart).Return(187.5, nil).Times(1)

		stats, err := sut.Statistics(ctx)
		require.NoError(t, err)

		expected := &queries.DailyStatistics{
			Date:          "2025-06-15",
			PaymentsToday: 12,
			ActiveNow:     4,
			ExpiredToday:  3,
			RevenueToday:  187.5,
		}
		assert.Empty(t, cmp.Diff(expected, stats))
	})
}
