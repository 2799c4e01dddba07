package connectn

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/connectn-backend/internal/entity"
)

// State - a point-in-time copy of a match.
type State struct {
	ID            string
	Board         entity.Board
	Rows          int
	Columns       int
	WinLength     int
	Status        entity.GameStatus
	CurrentPlayer entity.Player
	Winner        entity.Player
	MoveCount     int
}

// GameController - serializes every call on one game, so a match can be shared between goroutines.
type GameController struct {
	mu     sync.Mutex
	id     string
	game   *entity.Game
	logger *slog.Logger
}

func NewGameController(logger *slog.Logger, game *entity.Game) *GameController {
	id := uuid.NewString()

	return &GameController{
		id:     id,
		game:   game,
		logger: logger.With("component", "game_controller", "match_id", id),
	}
}

func (that *GameController) ID() string {
	return that.id
}

// MakeMove - plays the current player's mark and returns the resulting state.
func (that *GameController) MakeMove(row, col int) (State, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	mover := that.game.CurrentPlayer()

	if err := that.game.MakeMove(row, col); err != nil {
		that.logger.Info("move rejected", "player", mover.String(), "row", row, "col", col, "error", err)

		return that.snapshot(), fmt.Errorf("could not make move: %w", err)
	}

	that.logger.Debug("move accepted", "player", mover.String(), "row", row, "col", col)

	state := that.snapshot()
	if state.Status.IsTerminal() {
		that.logger.Info("game finished", "status", state.Status.String(), "moves", state.MoveCount)
	}

	return state, nil
}

func (that *GameController) IsValidMove(row, col int) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.IsValidMove(row, col)
}

// Reset - starts the match over on the same board size.
func (that *GameController) Reset() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.game.Reset()
	that.logger.Info("game reset")

	return that.snapshot()
}

func (that *GameController) Snapshot() State {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

// Render - the textual dump of the game.
func (that *GameController) Render() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.String()
}

func (that *GameController) snapshot() State {
	winner, _ := that.game.Winner()

	return State{
		ID:            that.id,
		Board:         that.game.Board(),
		Rows:          that.game.Rows(),
		Columns:       that.game.Columns(),
		WinLength:     that.game.WinLength(),
		Status:        that.game.Status(),
		CurrentPlayer: that.game.CurrentPlayer(),
		Winner:        winner,
		MoveCount:     that.game.MoveCount(),
	}
}
