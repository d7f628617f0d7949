package universe

import "sort"

//DefEngine is the engine used when WithEngine is not given
const DefEngine = "double"

//engines maps the engine name to its constructor
//the constructor allocates whatever buffers the engine needs and returns the iteration func
var engines = map[string]func(u *Universe) func(){
	"snapshot": newSnapshotEngine,
	"double":   newDoubleBuffEngine,
	"rolling":  newRollingEngine,
}

//EngineNames returns the names accepted by WithEngine
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//nextCell calculates the next state of the cell from the previous generation
//liveNeighbours must be counted on that same generation
func nextCell(c Cell, liveNeighbours int, paused bool) Cell {
	wasAlive := c.alive
	if !paused {
		if c.alive && (liveNeighbours < 2 || liveNeighbours > 3) {
			c.SetAlive(false, 0)
		} else if !c.alive && liveNeighbours == 3 {
			c.SetAlive(true, 0)
		}
	}
	if !wasAlive && c.alive {
		c.IncreaseHeat()
	} else {
		c.DecreaseHeat()
	}
	return c
}

//liveNeighbours counts the live neighbours of c on grid
func liveNeighbours(grid [][]Cell, c *Cell) (n int) {
	for _, p := range c.neighbours {
		if grid[p.Y][p.X].alive {
			n++
		}
	}
	return
}

//newSnapshotEngine is the simplest implementation: clones the entire grid on each call
//and calculates every cell from the clone
func newSnapshotEngine(u *Universe) func() {
	return func() {
		prev := cloneGrid(u.rows)
		for y := range prev {
			for x := range prev[y] {
				c := &prev[y][x]
				u.rows[y][x] = nextCell(*c, liveNeighbours(prev, c), u.paused)
			}
		}
	}
}
