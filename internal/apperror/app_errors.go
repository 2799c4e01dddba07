package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid game config")

	ErrInvalidMove  = errors.New("invalid move")
	ErrGameFinished = errors.New("game is already finished")
	ErrOutOfBounds  = errors.New("position is out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
)

// ConfigError - reports which board constraint failed and with what values.
type ConfigError struct {
	Field string
	Value int
	// Limit is the bound the value was checked against, zero when the field must only be positive.
	Limit int
}

func (that *ConfigError) Error() string {
	if that.Limit > 0 {
		return fmt.Sprintf("%s: %s (%d) cannot exceed min(rows, columns) = %d",
			ErrInvalidConfig, that.Field, that.Value, that.Limit)
	}

	return fmt.Sprintf("%s: %s must be positive, got: %d", ErrInvalidConfig, that.Field, that.Value)
}

func (that *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

type MoveCause int

const (
	GameOver MoveCause = iota + 1
	OutOfBounds
	Occupied
)

func (that MoveCause) String() string {
	switch that {
	case GameOver:
		return "game over"
	case OutOfBounds:
		return "out of bounds"
	case Occupied:
		return "occupied"
	default:
		return "unknown"
	}
}

func (that MoveCause) sentinel() error {
	switch that {
	case GameOver:
		return ErrGameFinished
	case OutOfBounds:
		return ErrOutOfBounds
	case Occupied:
		return ErrCellOccupied
	default:
		return nil
	}
}

// MoveError - a rejected move. It matches ErrInvalidMove and the sentinel of its cause.
type MoveError struct {
	Cause   MoveCause
	Row     int
	Col     int
	Rows    int
	Columns int
}

func (that *MoveError) Error() string {
	switch that.Cause {
	case GameOver:
		return "game is over, no more moves allowed"
	case OutOfBounds:
		return fmt.Sprintf("position (%d, %d) is out of bounds for board size %dx%d",
			that.Row, that.Col, that.Rows, that.Columns)
	case Occupied:
		return fmt.Sprintf("position (%d, %d) is already occupied", that.Row, that.Col)
	default:
		return fmt.Sprintf("%s at (%d, %d)", ErrInvalidMove, that.Row, that.Col)
	}
}

func (that *MoveError) Is(target error) bool {
	if target == ErrInvalidMove {
		return true
	}

	sentinel := that.Cause.sentinel()

	return sentinel != nil && target == sentinel
}
