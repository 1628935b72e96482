package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterCollectsNotifications(t *testing.T) {
	center := NewCenter(time.Minute)
	center.Success("Item added to cart!")
	center.Error("Error adding item to cart")

	active := center.Active()
	require.Len(t, active, 2)
	assert.Equal(t, KindSuccess, active[0].Kind)
	assert.Equal(t, "Item added to cart!", active[0].Message)
	assert.Equal(t, KindError, active[1].Kind)
	assert.NotEmpty(t, active[0].ID)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestCenterPrunesExpired(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	center := NewCenter(3 * time.Second)
	center.now = func() time.Time { return now }

	center.Success("first")
	now = now.Add(2 * time.Second)
	center.Error("second")

	now = now.Add(2 * time.Second)
	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Message)

	now = now.Add(5 * time.Second)
	assert.Empty(t, center.Active())
}

func TestCenterDefaultTTL(t *testing.T) {
	center := NewCenter(0)
	assert.Equal(t, 3*time.Second, center.ttl)
}
