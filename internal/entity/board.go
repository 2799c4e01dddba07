package entity

type Cell uint8

const (
	EmptyCell Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// Board - a rows x columns grid, indexed as board[row][col].
type Board [][]Cell

func newBoard(rows, columns int) Board {
	board := make(Board, rows)
	for i := range board {
		board[i] = make([]Cell, columns)
	}

	return board
}

// Copy - returns a deep copy of the board.
func (that Board) Copy() Board {
	board := make(Board, len(that))
	for i := range that {
		board[i] = make([]Cell, len(that[i]))
		copy(board[i], that[i])
	}

	return board
}

func (that Board) Rows() int {
	return len(that)
}

func (that Board) Columns() int {
	if len(that) == 0 {
		return 0
	}

	return len(that[0])
}

// Cell - returns the cell at the position, EmptyCell outside the board.
func (that Board) Cell(row, col int) Cell {
	if !that.inBounds(row, col) {
		return EmptyCell
	}

	return that[row][col]
}

// Count - number of cells holding the given value.
func (that Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}

	return count
}

func (that Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.Rows() && col >= 0 && col < that.Columns()
}

// countInDirection - counts cells holding mark, walking from (row, col) by (deltaRow, deltaCol), excluding the start.
func (that Board) countInDirection(row, col, deltaRow, deltaCol int, mark Cell) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for that.inBounds(r, c) && that[r][c] == mark {
		count++
		r += deltaRow
		c += deltaCol
	}

	return count
}
