package universe

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEngine = errors.New("unknown engine")
)

//ValidationKind tells which rule a row set broke
type ValidationKind int

const (
	NotEnoughRows ValidationKind = iota
	NotEnoughCells
	RaggedRow
	NeighbourOutOfBounds
	CellOutOfPlace
	InvalidCellState
)

//ValidationError is returned by New when the rows can't form a universe
//no universe is created in this case
type ValidationError struct {
	Kind     ValidationKind
	Row      int //offending row index, -1 for NotEnoughRows
	Column   int //offending cell index for CellOutOfPlace and InvalidCellState
	Width    int //width of the offending row
	Expected int //expected width (the width of the first row)
	Height   int //requested height for NotEnoughRows
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case NotEnoughRows:
		return fmt.Sprintf("not enough rows; expected > 0, got %d", e.Height)
	case NotEnoughCells:
		return fmt.Sprintf("not enough cells in row %d; expected > 0, got %d", e.Row, e.Width)
	case RaggedRow:
		return fmt.Sprintf("incorrect amount of cells in row %d; expected %d, got %d", e.Row, e.Expected, e.Width)
	case CellOutOfPlace:
		return fmt.Sprintf("cell at column %d of row %d was created for another position", e.Column, e.Row)
	case InvalidCellState:
		return fmt.Sprintf("cell at column %d of row %d has heat outside [%v, %v] or a negative ignore budget", e.Column, e.Row, MinHeat, MaxHeat)
	case NeighbourOutOfBounds:
		return fmt.Sprintf("row %d has a cell with neighbours outside the %d cells wide universe", e.Row, e.Expected)
	}
	return "invalid rows"
}

//IndexError reports coordinates outside of the universe
type IndexError struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("coordinates (%d, %d) out of bounds for %dx%d universe", e.X, e.Y, e.Width, e.Height)
}
