package kernel_test

import (
	"testing"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	t.Run("valid window", func(t *testing.T) {
		w, err := kernel.NewTimeWindow(start, end)

		require.NoError(t, err)
		assert.NoError(t, w.Validate())
		assert.Equal(t, start, w.Start())
		assert.Equal(t, end, w.End())
	})

	t.Run("zero bounds are rejected", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(time.Time{}, end)
		require.Error(t, err)

		_, err = kernel.NewTimeWindow(start, time.Time{})
		require.Error(t, err)
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(end, start)
		require.Error(t, err)

		_, err = kernel.NewTimeWindow(start, start)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var w kernel.TimeWindow

		err := w.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrTimeWindowIsNotConstructed, err)
	})
}
