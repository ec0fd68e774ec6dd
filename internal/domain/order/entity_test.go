// internal/domain/order/entity_test.go
package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, s)

	// Labels are matched case-insensitively against one canonical spelling.
	s, err = ParseStatus("CANCELLED")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, s)

	_, err = ParseStatus("CANCEL")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransitionMap(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusViewed))
	assert.True(t, StatusPending.CanTransitionTo(StatusShipped))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusPending.CanTransitionTo(StatusDelivered))

	assert.True(t, StatusViewed.CanTransitionTo(StatusShipped))
	assert.True(t, StatusViewed.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusViewed.CanTransitionTo(StatusPending))

	assert.True(t, StatusShipped.CanTransitionTo(StatusDelivered))
	assert.False(t, StatusShipped.CanTransitionTo(StatusCancelled))

	for _, terminal := range []Status{StatusDelivered, StatusCancelled, StatusExpired} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range []Status{StatusPending, StatusViewed, StatusShipped, StatusDelivered, StatusCancelled} {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
}

func TestCanBeCancelled(t *testing.T) {
	cases := map[Status]bool{
		StatusPending:   true,
		StatusViewed:    true,
		StatusShipped:   false,
		StatusDelivered: false,
		StatusCancelled: false,
		StatusExpired:   false,
	}
	for status, want := range cases {
		o := &Order{Status: status}
		assert.Equal(t, want, o.CanBeCancelled(), "status %s", status)
	}
}

func TestIsPendingExpired(t *testing.T) {
	now := time.Now().UTC()
	expiry := 7 * 24 * time.Hour

	fresh := &Order{Status: StatusPending, OrderDate: now.Add(-time.Hour)}
	assert.False(t, fresh.IsPendingExpired(now, expiry))

	stale := &Order{Status: StatusPending, OrderDate: now.Add(-8 * 24 * time.Hour)}
	assert.True(t, stale.IsPendingExpired(now, expiry))

	// Only pending orders expire.
	shipped := &Order{Status: StatusShipped, OrderDate: now.Add(-30 * 24 * time.Hour)}
	assert.False(t, shipped.IsPendingExpired(now, expiry))
}

func TestGenerateOrderNumber(t *testing.T) {
	o := &Order{ID: 42, OrderDate: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	assert.Equal(t, "ORD-20240315-00042", o.GenerateOrderNumber())
}
