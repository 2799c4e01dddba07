package entity

// Player - one of the two sides of a match. The zero value is not a player.
type Player int

const (
	PlayerOne Player = iota + 1
	PlayerTwo
)

// Opponent - returns the other player.
func (that Player) Opponent() Player {
	if that == PlayerOne {
		return PlayerTwo
	}

	return PlayerOne
}

// Mark - returns the cell value this player leaves on the board.
func (that Player) Mark() Cell {
	switch that {
	case PlayerOne:
		return MarkX
	case PlayerTwo:
		return MarkO
	default:
		return EmptyCell
	}
}

// Token - returns the printable token of the player.
func (that Player) Token() string {
	return that.Mark().String()
}

func (that Player) String() string {
	switch that {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return "Nobody"
	}
}
