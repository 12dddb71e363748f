package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallback(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())

	def := Location(DefaultTimezone)
	assert.Equal(t, def.String(), Location("").String())
	assert.Equal(t, def.String(), Location("Mars/Olympus_Mons").String())
}

func TestSlotTime(t *testing.T) {
	got, err := SlotTime("2030-01-15", "09:30", "UTC")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2030, 1, 15, 9, 30, 0, 0, time.UTC)))

	_, err = SlotTime("2030-01-15", "9h", "UTC")
	assert.Error(t, err)
}
