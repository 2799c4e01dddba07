package builder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rocketscienceinc/connectn-backend/internal/entity"
)

const (
	DefaultRows      = 3
	DefaultColumns   = 3
	DefaultWinLength = 3
)

var ErrUnknownPreset = errors.New("unknown preset")

// Builder - accumulates board dimensions and win length; entity.NewGame does all validation.
type Builder struct {
	rows      int
	columns   int
	winLength int
}

// New - returns a builder for a 3x3 board won by three in a row.
func New() *Builder {
	return &Builder{
		rows:      DefaultRows,
		columns:   DefaultColumns,
		winLength: DefaultWinLength,
	}
}

func (that *Builder) Rows(rows int) *Builder {
	that.rows = rows
	return that
}

func (that *Builder) Columns(columns int) *Builder {
	that.columns = columns
	return that
}

func (that *Builder) WinLength(winLength int) *Builder {
	that.winLength = winLength
	return that
}

// BoardSize - sets both dimensions at once.
func (that *Builder) BoardSize(rows, columns int) *Builder {
	that.rows = rows
	that.columns = columns

	return that
}

func (that *Builder) SquareBoard(size int) *Builder {
	return that.BoardSize(size, size)
}

// Build - creates a new game from the accumulated values.
func (that *Builder) Build() (*entity.Game, error) {
	game, err := entity.NewGame(that.rows, that.columns, that.winLength)
	if err != nil {
		return nil, fmt.Errorf("could not build game: %w", err)
	}

	return game, nil
}

type preset struct {
	rows      int
	columns   int
	winLength int
}

const (
	PresetTicTacToe   = "tic-tac-toe"
	PresetConnectFour = "connect-four"
	PresetGomoku      = "gomoku"
	PresetSmall       = "small"
	PresetLarge       = "large"
)

var presets = map[string]preset{
	PresetTicTacToe:   {3, 3, 3},
	PresetConnectFour: {6, 7, 4},
	PresetGomoku:      {15, 15, 5},
	PresetSmall:       {5, 5, 4},
	PresetLarge:       {10, 10, 5},
}

// FromPreset - returns a builder preloaded with a named variant.
func FromPreset(name string) (*Builder, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return New().BoardSize(p.rows, p.columns).WinLength(p.winLength), nil
}

// Presets - names accepted by FromPreset, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func mustPreset(name string) *entity.Game {
	b, err := FromPreset(name)
	if err != nil {
		panic(err)
	}

	game, err := b.Build()
	if err != nil {
		panic(err)
	}

	return game
}

// TicTacToe - 3x3, three in a row.
func TicTacToe() *entity.Game {
	return mustPreset(PresetTicTacToe)
}

// ConnectFour - 6 rows by 7 columns, four in a row.
func ConnectFour() *entity.Game {
	return mustPreset(PresetConnectFour)
}

// Gomoku - 15x15, five in a row.
func Gomoku() *entity.Game {
	return mustPreset(PresetGomoku)
}

func SmallGame() *entity.Game {
	return mustPreset(PresetSmall)
}

func LargeGame() *entity.Game {
	return mustPreset(PresetLarge)
}

// CustomSquare - a size x size board won by winLength in a row.
func CustomSquare(size, winLength int) (*entity.Game, error) {
	return New().SquareBoard(size).WinLength(winLength).Build()
}
