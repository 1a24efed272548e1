package order_test

import (
	"testing"

	"restopos/internal/core/domain/model/order"
	"restopos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{
		order.Temporary, order.New, order.InProgress, order.Ready,
		order.Completed, order.Active, order.Archived,
	} {
		assert.NoError(t, s.Validate(), s)
	}

	assert.ErrorIs(t, order.Status("cancelled").Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, order.Status("").Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_IsOpen(t *testing.T) {
	open := []order.Status{order.New, order.InProgress, order.Ready, order.Active}
	for _, s := range open {
		assert.True(t, s.IsOpen(), s)
	}

	closed := []order.Status{order.Temporary, order.Completed, order.Archived}
	for _, s := range closed {
		assert.False(t, s.IsOpen(), s)
	}
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("temporary confirms to new", func(t *testing.T) {
		got, err := order.Temporary.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.New, got)
	})

	t.Run("anything else is rejected", func(t *testing.T) {
		for _, s := range []order.Status{order.New, order.Ready, order.Completed, order.Archived} {
			_, err := s.Confirm()
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	got, err := order.Ready.Complete()
	require.NoError(t, err)
	assert.Equal(t, order.Completed, got)

	for _, s := range []order.Status{order.Temporary, order.New, order.InProgress, order.Completed} {
		_, err := s.Complete()
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
	}
}

func TestStatus_Archive(t *testing.T) {
	for _, s := range []order.Status{
		order.Temporary, order.New, order.InProgress, order.Ready,
		order.Completed, order.Active,
	} {
		got, err := s.Archive()
		require.NoError(t, err, s)
		assert.Equal(t, order.Archived, got)
	}

	_, err := order.Archived.Archive()
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Restore(t *testing.T) {
	got, err := order.Archived.Restore()
	require.NoError(t, err)
	assert.Equal(t, order.Active, got)

	_, err = order.Ready.Restore()
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
