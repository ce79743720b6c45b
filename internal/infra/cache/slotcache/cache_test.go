package slotcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UniSport-ReservationService/internal/domain"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewWithClient(client, time.Minute), mr
}

func TestCache_DayTemplates(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		cache, _ := newTestCache(t)

		templates, err := cache.GetDayTemplates(ctx, "F1", 1)
		require.NoError(t, err)
		assert.Nil(t, templates)
	})

	t.Run("set then get round-trips templates", func(t *testing.T) {
		cache, _ := newTestCache(t)

		stored := []*domain.SlotTemplate{
			{ID: "S1", FacilityID: "F1", DayOfWeek: 1, StartHour: "09:00", EndHour: "10:00", IsAvailable: true, IsVisible: true},
			{ID: "S2", FacilityID: "F1", DayOfWeek: 1, StartHour: "10:00", EndHour: "11:00", IsAvailable: true, IsVisible: false},
		}
		require.NoError(t, cache.SetDayTemplates(ctx, "F1", 1, stored))

		got, err := cache.GetDayTemplates(ctx, "F1", 1)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("keys are scoped per facility and day", func(t *testing.T) {
		cache, _ := newTestCache(t)

		require.NoError(t, cache.SetDayTemplates(ctx, "F1", 1, []*domain.SlotTemplate{{ID: "S1"}}))

		otherDay, err := cache.GetDayTemplates(ctx, "F1", 2)
		require.NoError(t, err)
		assert.Nil(t, otherDay)

		otherFacility, err := cache.GetDayTemplates(ctx, "F2", 1)
		require.NoError(t, err)
		assert.Nil(t, otherFacility)
	})
}

func TestCache_InvalidateFacility(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	for day := domain.MinDayOfWeek; day <= domain.MaxDayOfWeek; day++ {
		require.NoError(t, cache.SetDayTemplates(ctx, "F1", day, []*domain.SlotTemplate{{ID: "S1", DayOfWeek: day}}))
	}
	require.NoError(t, cache.SetDayTemplates(ctx, "F2", 1, []*domain.SlotTemplate{{ID: "S9"}}))

	require.NoError(t, cache.InvalidateFacility(ctx, "F1"))

	for day := domain.MinDayOfWeek; day <= domain.MaxDayOfWeek; day++ {
		templates, err := cache.GetDayTemplates(ctx, "F1", day)
		require.NoError(t, err)
		assert.Nil(t, templates, "day %d must be invalidated", day)
	}

	// Другой объект не затронут
	templates, err := cache.GetDayTemplates(ctx, "F2", 1)
	require.NoError(t, err)
	assert.Len(t, templates, 1)
}
