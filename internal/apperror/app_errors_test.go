package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError(t *testing.T) {
	t.Run("Positive constraint", func(t *testing.T) {
		// Given: a config error for a non-positive row count
		err := &ConfigError{Field: "rows", Value: -2}

		// Then: it names the field and the value
		assert.Equal(t, "invalid game config: rows must be positive, got: -2", err.Error())
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Limit constraint", func(t *testing.T) {
		// Given: a config error for a win length above the smaller dimension
		err := &ConfigError{Field: "win length", Value: 5, Limit: 3}

		// Then: it names both the value and the limit
		assert.Contains(t, err.Error(), "win length (5)")
		assert.Contains(t, err.Error(), "= 3")
	})

	t.Run("Survives wrapping", func(t *testing.T) {
		// Given: a wrapped config error
		err := fmt.Errorf("could not build game: %w", &ConfigError{Field: "columns", Value: 0})

		// Then: both the sentinel and the typed error are reachable
		require.ErrorIs(t, err, ErrInvalidConfig)

		var configErr *ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "columns", configErr.Field)
	})
}

func TestMoveError(t *testing.T) {
	cases := []struct {
		name     string
		cause    MoveCause
		sentinel error
		others   []error
	}{
		{"Game over", GameOver, ErrGameFinished, []error{ErrOutOfBounds, ErrCellOccupied}},
		{"Out of bounds", OutOfBounds, ErrOutOfBounds, []error{ErrGameFinished, ErrCellOccupied}},
		{"Occupied", Occupied, ErrCellOccupied, []error{ErrGameFinished, ErrOutOfBounds}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a move error with a cause
			err := &MoveError{Cause: tc.cause, Row: 1, Col: 2, Rows: 3, Columns: 3}

			// Then: it matches the generic and cause sentinels only
			assert.ErrorIs(t, err, ErrInvalidMove)
			assert.ErrorIs(t, err, tc.sentinel)
			for _, other := range tc.others {
				assert.False(t, errors.Is(err, other))
			}
			assert.False(t, errors.Is(err, ErrInvalidConfig))
		})
	}

	t.Run("Messages", func(t *testing.T) {
		assert.Equal(t, "game is over, no more moves allowed", (&MoveError{Cause: GameOver}).Error())
		assert.Equal(t, "position (4, -1) is out of bounds for board size 3x3",
			(&MoveError{Cause: OutOfBounds, Row: 4, Col: -1, Rows: 3, Columns: 3}).Error())
		assert.Equal(t, "position (0, 0) is already occupied", (&MoveError{Cause: Occupied}).Error())
	})

	t.Run("Cause names", func(t *testing.T) {
		assert.Equal(t, "game over", GameOver.String())
		assert.Equal(t, "out of bounds", OutOfBounds.String())
		assert.Equal(t, "occupied", Occupied.String())
		assert.Equal(t, "unknown", MoveCause(0).String())
	})
}
