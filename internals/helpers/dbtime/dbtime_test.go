// file: internals/helpers/dbtime/dbtime_test.go
package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBounds(t *testing.T) {
	loc := AppLocation()
	at := time.Date(2025, 3, 10, 15, 30, 45, 0, loc)

	start, end := DayBounds(at)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, loc), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestDayBounds_Boundary(t *testing.T) {
	loc := AppLocation()

	lastSecond := time.Date(2025, 3, 10, 23, 59, 59, 0, loc)
	start, end := DayBounds(lastSecond)
	assert.True(t, lastSecond.After(start) && lastSecond.Before(end))

	// tepat tengah malam masuk bucket hari berikutnya
	midnight := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)
	nextStart, _ := DayBounds(midnight)
	assert.Equal(t, end, nextStart)
}

func TestDayOf_SameDaySameBucket(t *testing.T) {
	loc := AppLocation()
	morning := time.Date(2025, 3, 10, 1, 0, 0, 0, loc)
	evening := time.Date(2025, 3, 10, 23, 0, 0, 0, loc)

	assert.Equal(t, DayOf(morning), DayOf(evening))
	assert.NotEqual(t, DayOf(morning), DayOf(evening.Add(2*time.Hour)))
}

func TestParseYMD(t *testing.T) {
	got, err := ParseYMD("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 10, got.Day())
	assert.Equal(t, AppLocation(), got.Location())

	_, err = ParseYMD("10-03-2025")
	assert.Error(t, err)
	_, err = ParseYMD("")
	assert.Error(t, err)
}
