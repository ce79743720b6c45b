package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, s := range []string{"", "9:30", "25:00", "09:61", "0930", "ab:cd"} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", s)
		}
	})
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		ts, err := TimeString("09:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("past midnight", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(60)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})

	t.Run("negative below zero", func(t *testing.T) {
		_, err := TimeString("00:10").AddMinutes(-20)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("09:15").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 3, 9, 15, 0, 0, time.UTC), got)

	_, err = TimeString("bad").OnDate(date)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
