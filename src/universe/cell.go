package universe

//heat limits and steps
const (
	MinHeat  = 1.0
	MaxHeat  = 1000.0
	HeatGain = 2.0
	HeatLoss = 0.5
)

//Cell is one position of the universe
//neighbours are fixed when the cell is created and never recomputed
type Cell struct {
	x          int
	y          int
	alive      bool
	heat       float64
	ignore     int
	neighbours [8]Coords
}

//NewCell creates the cell at x, y for a width x height universe
func NewCell(width int, height int, x int, y int, alive bool) Cell {
	return Cell{
		x:          x,
		y:          y,
		alive:      alive,
		heat:       MinHeat,
		neighbours: neighbourCoords(width, height, x, y),
	}
}

//X returns the column of the cell
func (c *Cell) X() int { return c.x }

//Y returns the row of the cell
func (c *Cell) Y() int { return c.y }

//Coords returns the position of the cell
func (c *Cell) Coords() Coords { return Coords{c.x, c.y} }

//Alive reports whether the cell is live
func (c *Cell) Alive() bool { return c.alive }

//Heat returns the current heat, always within [MinHeat, MaxHeat]
func (c *Cell) Heat() float64 { return c.heat }

//Ignore returns the number of death requests the cell will still swallow
func (c *Cell) Ignore() int { return c.ignore }

//Neighbours returns the precomputed neighbour positions
func (c *Cell) Neighbours() [8]Coords { return c.neighbours }

//SetAlive requests the alive state
//a death request for a live cell with a remaining ignore budget only spends one unit of that budget,
//any other request is applied and replaces the budget with ignoreBudget
func (c *Cell) SetAlive(alive bool, ignoreBudget int) {
	if !alive && c.alive && c.ignore > 0 {
		c.ignore--
		return
	}
	if ignoreBudget < 0 {
		ignoreBudget = 0
	}
	c.alive = alive
	c.ignore = ignoreBudget
}

//IncreaseHeat adds HeatGain, capped at MaxHeat
func (c *Cell) IncreaseHeat() {
	c.heat += HeatGain
	if c.heat > MaxHeat {
		c.heat = MaxHeat
	}
}

//DecreaseHeat subtracts HeatLoss, floored at MinHeat
func (c *Cell) DecreaseHeat() {
	c.heat -= HeatLoss
	if c.heat < MinHeat {
		c.heat = MinHeat
	}
}

//Reset returns the cell to the baseline state, position and neighbours are kept
func (c *Cell) Reset() {
	c.alive = false
	c.heat = MinHeat
	c.ignore = 0
}
