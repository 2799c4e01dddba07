package entity

type GameStatus int

const (
	StatusInProgress GameStatus = iota
	StatusPlayerOneWon
	StatusPlayerTwoWon
	StatusDraw
)

func (that GameStatus) String() string {
	switch that {
	case StatusInProgress:
		return "In Progress"
	case StatusPlayerOneWon:
		return "Player One Won"
	case StatusPlayerTwoWon:
		return "Player Two Won"
	case StatusDraw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// IsTerminal - reports whether no further moves are accepted in this status.
func (that GameStatus) IsTerminal() bool {
	return that != StatusInProgress
}

// Winner - returns the player a won status belongs to.
func (that GameStatus) Winner() (Player, bool) {
	switch that {
	case StatusPlayerOneWon:
		return PlayerOne, true
	case StatusPlayerTwoWon:
		return PlayerTwo, true
	default:
		return 0, false
	}
}

// wonBy - the terminal status for a win of the given player.
func wonBy(player Player) GameStatus {
	if player == PlayerOne {
		return StatusPlayerOneWon
	}

	return StatusPlayerTwoWon
}

// nextStatus - the single status transition run after every placement.
func nextStatus(won, full bool, mover Player) GameStatus {
	switch {
	case won:
		return wonBy(mover)
	case full:
		return StatusDraw
	default:
		return StatusInProgress
	}
}
