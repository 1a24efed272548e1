package courier_test

import (
	"testing"
	"time"

	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewDocID("courier"), "Szabó Péter", "+36-30-111-2233")
	require.NoError(t, err)
	return c
}

func TestNewCourier(t *testing.T) {
	c := newCourier(t)
	assert.Equal(t, courier.Available, c.Status())
	assert.Equal(t, "Szabó Péter", c.Name())

	t.Run("missing name is rejected", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewDocID("courier"), "", "+36-30-1")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing phone is rejected", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewDocID("courier"), "Szabó", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCourier_StatusTransitions(t *testing.T) {
	c := newCourier(t)

	require.NoError(t, c.MarkBusy())
	assert.Equal(t, courier.Busy, c.Status())

	c.MarkAvailable()
	assert.Equal(t, courier.Available, c.Status())

	c.MarkOffline()
	assert.Equal(t, courier.Offline, c.Status())

	t.Run("offline courier cannot be assigned", func(t *testing.T) {
		assert.ErrorIs(t, c.MarkBusy(), errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []courier.Status{courier.Available, courier.Busy, courier.Offline} {
		assert.NoError(t, s.Validate(), s)
	}

	// Legacy vocabularies from older documents are not accepted.
	for _, s := range []courier.Status{"active", "inactive", "free", "status-free"} {
		assert.ErrorIs(t, s.Validate(), errs.ErrValueIsInvalid, s)
	}
}

func TestRestoreCourier_InvalidStatus(t *testing.T) {
	_, err := courier.RestoreCourier(kernel.NewDocID("courier"), "1-a",
		"Szabó", "+36-30-1", "", "", "active", time.Time{}, time.Time{})
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
