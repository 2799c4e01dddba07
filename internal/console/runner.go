package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/connectn-backend/internal/apperror"
	"github.com/rocketscienceinc/connectn-backend/internal/connectn"
	"github.com/rocketscienceinc/connectn-backend/internal/entity"
)

type gameController interface {
	MakeMove(row, col int) (connectn.State, error)
	Reset() connectn.State
	Render() string
}

// Runner - drives a match from text commands and prints the board after every change.
type Runner struct {
	logger     *slog.Logger
	controller gameController
	out        io.Writer
}

func NewRunner(logger *slog.Logger, controller gameController, out io.Writer) *Runner {
	return &Runner{
		logger:     logger.With("component", "console"),
		controller: controller,
		out:        out,
	}
}

// Play - applies scripted moves in order, stopping at the first rejected one.
func (that *Runner) Play(moves []Move) error {
	that.print(that.controller.Render())

	for _, move := range moves {
		state, err := that.controller.MakeMove(move.Row, move.Col)
		if err != nil {
			return fmt.Errorf("scripted move (%d, %d): %w", move.Row, move.Col, err)
		}

		that.print(that.controller.Render())
		that.announce(state)
	}

	return nil
}

// Run - reads commands from in until quit, EOF or ctx is canceled.
func (that *Runner) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	that.print(that.controller.Render())
	that.prompt()

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}

				return nil
			}

			if quit := that.handle(line); quit {
				return nil
			}
			that.prompt()
		}
	}
}

func (that *Runner) handle(line string) bool {
	cmd, err := ParseCommand(line)
	if err != nil {
		that.print(fmt.Sprintf("error: %v", err))
		return false
	}

	switch cmd.Type {
	case CommandQuit:
		return true
	case CommandReset:
		that.controller.Reset()
		that.print(that.controller.Render())
	case CommandBoard:
		that.print(that.controller.Render())
	case CommandMove:
		state, err := that.controller.MakeMove(cmd.Move.Row, cmd.Move.Col)
		if err != nil {
			that.printMoveError(err)
			return false
		}
		that.print(that.controller.Render())
		that.announce(state)
	case CommandNone:
	}

	return false
}

func (that *Runner) printMoveError(err error) {
	var moveErr *apperror.MoveError
	if errors.As(err, &moveErr) {
		if moveErr.Cause == apperror.GameOver {
			that.print("error: game is over, type reset to play again")
			return
		}

		that.print(fmt.Sprintf("error: %v", moveErr))
		return
	}

	that.print(fmt.Sprintf("error: %v", err))
}

func (that *Runner) announce(state connectn.State) {
	switch state.Status {
	case entity.StatusPlayerOneWon, entity.StatusPlayerTwoWon:
		that.print(fmt.Sprintf("%s (%s) wins!", state.Winner, state.Winner.Token()))
	case entity.StatusDraw:
		that.print("Draw!")
	case entity.StatusInProgress:
	}
}

func (that *Runner) prompt() {
	fmt.Fprint(that.out, "> ")
}

func (that *Runner) print(s string) {
	fmt.Fprintln(that.out, s)
}
