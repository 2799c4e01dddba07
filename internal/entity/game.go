package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectn-backend/internal/apperror"
)

// directions - the four axes a run can lie on: horizontal, vertical, diagonal and anti-diagonal.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Game - a Connect-N match. A Game is not safe for concurrent use.
type Game struct {
	board     Board
	rows      int
	columns   int
	winLength int

	currentPlayer Player
	status        GameStatus
	moves         int
}

// NewGame - creates a game on a rows x columns board won by winLength marks in a row.
func NewGame(rows, columns, winLength int) (*Game, error) {
	if err := validateConfig(rows, columns, winLength); err != nil {
		return nil, err
	}

	game := &Game{
		rows:      rows,
		columns:   columns,
		winLength: winLength,
	}
	game.Reset()

	return game, nil
}

func validateConfig(rows, columns, winLength int) error {
	if rows <= 0 {
		return &apperror.ConfigError{Field: "rows", Value: rows}
	}

	if columns <= 0 {
		return &apperror.ConfigError{Field: "columns", Value: columns}
	}

	if winLength <= 0 {
		return &apperror.ConfigError{Field: "win length", Value: winLength}
	}

	if limit := min(rows, columns); winLength > limit {
		return &apperror.ConfigError{Field: "win length", Value: winLength, Limit: limit}
	}

	return nil
}

// Reset - clears the board and returns the game to its initial state, keeping its dimensions.
func (that *Game) Reset() {
	that.board = newBoard(that.rows, that.columns)
	that.currentPlayer = PlayerOne
	that.status = StatusInProgress
	that.moves = 0
}

func (that *Game) Rows() int {
	return that.rows
}

func (that *Game) Columns() int {
	return that.columns
}

func (that *Game) WinLength() int {
	return that.winLength
}

func (that *Game) CurrentPlayer() Player {
	return that.currentPlayer
}

func (that *Game) Status() GameStatus {
	return that.status
}

// MoveCount - number of marks placed since the last reset.
func (that *Game) MoveCount() int {
	return that.moves
}

func (that *Game) IsGameOver() bool {
	return that.status.IsTerminal()
}

// Winner - returns the winning player, false while nobody has won.
func (that *Game) Winner() (Player, bool) {
	return that.status.Winner()
}

// Board - returns a copy of the board; changing it does not affect the game.
func (that *Game) Board() Board {
	return that.board.Copy()
}

func (that *Game) IsValidMove(row, col int) bool {
	return that.checkMove(row, col) == nil
}

// MakeMove - places the current player's mark at (row, col), updates the status and passes the turn.
func (that *Game) MakeMove(row, col int) error {
	if err := that.checkMove(row, col); err != nil {
		return err
	}

	mover := that.currentPlayer
	that.board[row][col] = mover.Mark()
	that.moves++

	that.status = nextStatus(that.hasRun(row, col), that.isFull(), mover)
	if !that.status.IsTerminal() {
		that.currentPlayer = mover.Opponent()
	}

	return nil
}

func (that *Game) checkMove(row, col int) error {
	if that.IsGameOver() {
		return &apperror.MoveError{Cause: apperror.GameOver, Row: row, Col: col, Rows: that.rows, Columns: that.columns}
	}

	if !that.board.inBounds(row, col) {
		return &apperror.MoveError{Cause: apperror.OutOfBounds, Row: row, Col: col, Rows: that.rows, Columns: that.columns}
	}

	if that.board[row][col] != EmptyCell {
		return &apperror.MoveError{Cause: apperror.Occupied, Row: row, Col: col, Rows: that.rows, Columns: that.columns}
	}

	return nil
}

// hasRun - checks only the lines through the last placed cell.
func (that *Game) hasRun(row, col int) bool {
	mark := that.board[row][col]

	for _, d := range directions {
		run := 1 +
			that.board.countInDirection(row, col, d[0], d[1], mark) +
			that.board.countInDirection(row, col, -d[0], -d[1], mark)
		if run >= that.winLength {
			return true
		}
	}

	return false
}

func (that *Game) isFull() bool {
	return that.moves == that.rows*that.columns
}

// String - renders the status and the board with row and column indices.
func (that *Game) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Connect-%d (%dx%d)\n", that.winLength, that.rows, that.columns)
	fmt.Fprintf(&sb, "Status: %s\n", that.status)
	fmt.Fprintf(&sb, "Current Player: %s\n\n", that.currentPlayer)

	indices := make([]string, that.columns)
	for i := range indices {
		indices[i] = strconv.Itoa(i)
	}
	border := " +" + strings.Repeat("-", that.columns*2-1) + "+"

	sb.WriteString("  " + strings.Join(indices, " ") + "\n")
	sb.WriteString(border + "\n")

	cells := make([]string, that.columns)
	for i, row := range that.board {
		for j, cell := range row {
			cells[j] = cell.String()
		}
		fmt.Fprintf(&sb, "%d|%s|\n", i, strings.Join(cells, "|"))
	}

	sb.WriteString(border)

	return sb.String()
}
