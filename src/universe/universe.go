package universe

import (
	"math/rand"
	"strings"
)

//default dimensions
const (
	DefWidth  = 40
	DefHeight = 13
)

//Universe is the toroidal field of cells
//it is not safe for concurrent use: one owner drives Tick, SetAlive, Pause and Reset
type Universe struct {
	width      int
	height     int
	rows       [][]Cell
	paused     bool
	generation int
	engine     string
	//nextIteration is installed by the engine and computes the next generation into rows
	nextIteration func()
}

//Option configures the universe on construction
type Option func(u *Universe) error

//WithEngine selects the tick engine by name, see EngineNames
func WithEngine(name string) Option {
	return func(u *Universe) error {
		if _, ok := engines[name]; !ok {
			return ErrUnknownEngine
		}
		u.engine = name
		return nil
	}
}

//New creates the universe from rows
//rows must be non-empty and rectangular, the cells are copied
//every cell must come from NewCell for its own position and the same width x height
func New(rows [][]Cell, opts ...Option) (*Universe, error) {
	if err := validate(rows); err != nil {
		return nil, err
	}
	u := &Universe{
		width:  len(rows[0]),
		height: len(rows),
		paused: true,
		engine: DefEngine,
	}
	for _, o := range opts {
		if err := o(u); err != nil {
			return nil, err
		}
	}
	u.rows = createGrid(u.width, u.height)
	for y := range rows {
		copy(u.rows[y], rows[y])
	}
	u.nextIteration = engines[u.engine](u)
	return u, nil
}

//FromDimensions creates an all-dead universe
func FromDimensions(width int, height int, opts ...Option) (*Universe, error) {
	if height <= 0 {
		return nil, &ValidationError{Kind: NotEnoughRows, Row: -1, Height: height}
	}
	if width <= 0 {
		return nil, &ValidationError{Kind: NotEnoughCells, Row: 0, Width: width}
	}
	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = make([]Cell, width)
		for x := range rows[y] {
			rows[y][x] = NewCell(width, height, x, y, false)
		}
	}
	return New(rows, opts...)
}

//Default creates the DefWidth x DefHeight universe
func Default() *Universe {
	u, err := FromDimensions(DefWidth, DefHeight)
	if err != nil {
		panic("failed to create universe: " + err.Error())
	}
	return u
}

//validate checks that rows can form a universe
func validate(rows [][]Cell) error {
	if len(rows) == 0 {
		return &ValidationError{Kind: NotEnoughRows, Row: -1}
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) == 0 {
			return &ValidationError{Kind: NotEnoughCells, Row: i, Expected: width}
		}
		if len(row) != width {
			return &ValidationError{Kind: RaggedRow, Row: i, Width: len(row), Expected: width}
		}
	}
	height := len(rows)
	for y, row := range rows {
		for x := range row {
			c := &row[x]
			if c.x != x || c.y != y {
				return &ValidationError{Kind: CellOutOfPlace, Row: y, Column: x, Width: len(row), Expected: width}
			}
			if c.heat < MinHeat || c.heat > MaxHeat || c.ignore < 0 {
				return &ValidationError{Kind: InvalidCellState, Row: y, Column: x, Width: len(row), Expected: width}
			}
			for _, n := range c.neighbours {
				if n.X < 0 || n.Y < 0 || n.X >= width || n.Y >= height {
					return &ValidationError{Kind: NeighbourOutOfBounds, Row: y, Width: len(row), Expected: width}
				}
			}
		}
	}
	return nil
}

func (u *Universe) Width() int { return u.width }

func (u *Universe) Height() int { return u.height }

//Engine returns the name of the tick engine in use
func (u *Universe) Engine() string { return u.engine }

//Paused reports whether ticks skip the life rules
func (u *Universe) Paused() bool { return u.paused }

//Generation returns the number of ticks applied while not paused
func (u *Universe) Generation() int { return u.generation }

//Tick computes the next generation
//every cell is calculated from the same previous generation, when paused only the heat changes
func (u *Universe) Tick() {
	u.nextIteration()
	if !u.paused {
		u.generation++
	}
}

//Pause toggles the pause flag
func (u *Universe) Pause() {
	u.paused = !u.paused
}

//Reset kills all cells and restores their heat, the pause flag is kept
func (u *Universe) Reset() {
	u.walk(func(c *Cell) {
		c.Reset()
	})
	u.generation = 0
}

//SetAlive requests the alive state of the cell at x, y, see Cell.SetAlive
func (u *Universe) SetAlive(x int, y int, alive bool, ignoreBudget int) error {
	c, err := u.cell(x, y)
	if err != nil {
		return err
	}
	c.SetAlive(alive, ignoreBudget)
	return nil
}

//Cell returns a copy of the cell at x, y
func (u *Universe) Cell(x int, y int) (Cell, error) {
	c, err := u.cell(x, y)
	if err != nil {
		return Cell{}, err
	}
	return *c, nil
}

//Alive reports whether the cell at x, y is alive
func (u *Universe) Alive(x int, y int) (bool, error) {
	c, err := u.cell(x, y)
	if err != nil {
		return false, err
	}
	return c.alive, nil
}

//Rows returns a copy of the grid, the universe is not affected by changes to it
func (u *Universe) Rows() [][]Cell {
	return cloneGrid(u.rows)
}

//LiveCells calculates the count of live cells
func (u *Universe) LiveCells() int {
	liveCells := 0
	u.walk(func(c *Cell) {
		if c.alive {
			liveCells++
		}
	})
	return liveCells
}

//Summarize renders the grid as text: '*' for alive, '.' for dead, one line per row
func (u *Universe) Summarize() string {
	var b strings.Builder
	b.Grow((u.width + 1) * u.height)
	for _, row := range u.rows {
		for _, c := range row {
			if c.alive {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

//Settle makes the cells at the given coordinates alive
//coordinates outside the universe are skipped
func (u *Universe) Settle(vc []Coords) {
	for _, v := range vc {
		if c, err := u.cell(v.X, v.Y); err == nil {
			c.SetAlive(true, 0)
		}
	}
}

//SettleRandom makes width*height randomly chosen cells alive (positions may repeat)
func (u *Universe) SettleRandom(r *rand.Rand) {
	for i := 0; i < u.width*u.height; i++ {
		u.rows[r.Intn(u.height)][r.Intn(u.width)].SetAlive(true, 0)
	}
}

func (u *Universe) cell(x int, y int) (*Cell, error) {
	if x < 0 || y < 0 || x >= u.width || y >= u.height {
		return nil, &IndexError{X: x, Y: y, Width: u.width, Height: u.height}
	}
	return &u.rows[y][x], nil
}

//walk calls cb for each cell of the grid
func (u *Universe) walk(cb func(c *Cell)) {
	for y := range u.rows {
		for x := range u.rows[y] {
			cb(&u.rows[y][x])
		}
	}
}

//createGrid allocates the grid as one slab sliced into rows
func createGrid(width int, height int) [][]Cell {
	grid := make([][]Cell, height)
	b := make([]Cell, width*height)
	for i := range grid {
		start := width * i
		grid[i] = b[start : start+width : start+width]
	}
	return grid
}

func cloneGrid(src [][]Cell) [][]Cell {
	dst := createGrid(len(src[0]), len(src))
	for y := range src {
		copy(dst[y], src[y])
	}
	return dst
}
