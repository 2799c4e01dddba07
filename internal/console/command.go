package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidMove    = errors.New("move must be two integers: <row> <col>")
)

type CommandType int

const (
	CommandNone CommandType = iota
	CommandMove
	CommandReset
	CommandBoard
	CommandQuit
)

type Move struct {
	Row int
	Col int
}

type Command struct {
	Type CommandType
	Move Move
}

// ParseCommand - reads one input line: "<row> <col>", "<row>,<col>", reset, board, quit or exit.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(strings.ToLower(line))

	switch line {
	case "":
		return Command{Type: CommandNone}, nil
	case "reset":
		return Command{Type: CommandReset}, nil
	case "board":
		return Command{Type: CommandBoard}, nil
	case "quit", "exit":
		return Command{Type: CommandQuit}, nil
	}

	move, err := parseMove(line)
	if err != nil {
		if errors.Is(err, ErrInvalidMove) && !strings.ContainsAny(line, "0123456789") {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
		}

		return Command{}, err
	}

	return Command{Type: CommandMove, Move: move}, nil
}

// ParseMoves - reads a ";"-separated list of moves such as "0,0; 1,1; 0 1".
func ParseMoves(script string) ([]Move, error) {
	var moves []Move

	for i, part := range strings.Split(script, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		move, err := parseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

func parseMove(s string) (Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("%w, got %q", ErrInvalidMove, s)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Move{}, fmt.Errorf("%w, got %q", ErrInvalidMove, s)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w, got %q", ErrInvalidMove, s)
	}

	return Move{Row: row, Col: col}, nil
}
