package beesweeper

import "fmt"

// OperationStatus is the outcome of a single player operation.
type OperationStatus int

const (
	Success OperationStatus = iota
	IndexOOB
	Fail
)

func (s OperationStatus) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case IndexOOB:
		return "INDEX_OOB"
	case Fail:
		return "FAIL"
	default:
		return fmt.Sprintf("OperationStatus(%d)", int(s))
	}
}

// [OperationStatus] implements [encoding.TextMarshaler]
func (s OperationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// GameStatus is the overall state of a game. Won and Lost are terminal.
type GameStatus int

const (
	InProgress GameStatus = iota
	Won
	Lost
)

func (s GameStatus) String() string {
	switch s {
	case InProgress:
		return "IN_PROGRESS"
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	default:
		return fmt.Sprintf("GameStatus(%d)", int(s))
	}
}

func (s GameStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s GameStatus) Terminal() bool {
	return s == Won || s == Lost
}
