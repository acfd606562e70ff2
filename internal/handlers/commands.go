package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/beesweeper-server/internal/beesweeper"
	"github.com/vancomm/beesweeper-server/internal/field"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"r": 2,
	"m": 2,
	"u": 2,
	"f": 0,
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrCommandArgs    = errors.New("invalid command arguments")
)

func parseRowCol(args []string) (field.Coordinate, error) {
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return field.Coordinate{}, fmt.Errorf("%w: row must be an int", ErrCommandArgs)
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return field.Coordinate{}, fmt.Errorf("%w: column must be an int", ErrCommandArgs)
	}
	return field.Of(row, col), nil
}

// executeCommand runs one line of the text protocol against g. Coordinates
// outside the field are not an error; they yield IndexOOB.
func executeCommand(g *beesweeper.Game, line string) (beesweeper.OperationStatus, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return beesweeper.Fail, ErrUnknownCommand
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return beesweeper.Fail, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return beesweeper.Fail, fmt.Errorf(
			"%w: %q takes %d arguments", ErrCommandArgs, parts[0], nargs,
		)
	}

	switch parts[0] {
	case "g":
		return beesweeper.Success, nil
	case "f":
		return g.Forfeit(), nil
	}

	c, err := parseRowCol(parts[1:])
	if err != nil {
		return beesweeper.Fail, err
	}
	switch parts[0] {
	case "r":
		return g.Reveal(c), nil
	case "m":
		return g.Mark(c), nil
	default:
		return g.Unmark(c), nil
	}
}

// executeBatch runs newline separated commands and stops at the first error
// or once the game is over.
func executeBatch(g *beesweeper.Game, text string) ([]beesweeper.OperationStatus, error) {
	var results []beesweeper.OperationStatus
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result, err := executeCommand(g, line)
		if err != nil {
			return results, err
		}
		results = append(results, result)
		if g.Status().Terminal() {
			break
		}
	}
	return results, nil
}
