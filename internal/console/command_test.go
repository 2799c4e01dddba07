package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		line     string
		expected Command
	}{
		{"0 0", Command{Type: CommandMove, Move: Move{Row: 0, Col: 0}}},
		{"  2,1 ", Command{Type: CommandMove, Move: Move{Row: 2, Col: 1}}},
		{"3, 4", Command{Type: CommandMove, Move: Move{Row: 3, Col: 4}}},
		{"-1 5", Command{Type: CommandMove, Move: Move{Row: -1, Col: 5}}},
		{"reset", Command{Type: CommandReset}},
		{"BOARD", Command{Type: CommandBoard}},
		{"quit", Command{Type: CommandQuit}},
		{"exit", Command{Type: CommandQuit}},
		{"   ", Command{Type: CommandNone}},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			cmd, err := ParseCommand(tc.line)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, cmd)
		})
	}

	t.Run("Unknown word", func(t *testing.T) {
		_, err := ParseCommand("undo")

		require.ErrorIs(t, err, ErrUnknownCommand)
	})

	t.Run("Malformed moves", func(t *testing.T) {
		for _, line := range []string{"1", "1 2 3", "a 2", "1 b"} {
			_, err := ParseCommand(line)

			require.ErrorIs(t, err, ErrInvalidMove, line)
		}
	})
}

func TestParseMoves(t *testing.T) {
	t.Run("Script", func(t *testing.T) {
		moves, err := ParseMoves("0,0; 1,0;0 1 ;; 1,1")

		require.NoError(t, err)
		assert.Equal(t, []Move{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, moves)
	})

	t.Run("Empty script", func(t *testing.T) {
		moves, err := ParseMoves("")

		require.NoError(t, err)
		assert.Empty(t, moves)
	})

	t.Run("Bad entry names its position", func(t *testing.T) {
		_, err := ParseMoves("0,0;x,1")

		require.ErrorIs(t, err, ErrInvalidMove)
		assert.Contains(t, err.Error(), "move 2")
	})
}
