package simulation

import (
	"errors"
	"time"

	"heatlife/src/universe"
)

var (
	ErrUnknownTemplate = errors.New("unknown template")
)

//Options represents the Simulation's configurable options
type Options struct {
	Width           int
	Height          int
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	Engine          string
	Paused          bool          //initial pause state of the universe
	ToggleCooldown  time.Duration //minimal time between two toggles of the same cell
	Seed            int64         //random seed, 0 means seeded from the clock
	Advanced        map[string]interface{}
}

//Status represents the status of the Simulation at concrete moment
type Status struct {
	IterationNum  int
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	Paused        bool
	IterationTime time.Duration
}

//Frame is the published read-only picture of one complete generation
type Frame struct {
	Rows    [][]universe.Cell
	Summary string
	Status  Status
}

//Controller is the part of the Simulation handed to the viewers
//intents return immediately and are applied in order by the simulation loop
type Controller interface {
	Frame() Frame
	Status() Status
	Options() Options
	Step()
	Run()
	Stop()
	Pause()
	Reset()
	ToggleCell(x int, y int)
	SettleWithRandomData()
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(c Controller)
	Start()
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string            //template name
	Descr       string            //template descr
	Coordinates []universe.Coords //cells to revive
}

//The simulation running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefMaxSkippedTicks    = 5
	DefToggleCooldown     = time.Second
	DefQueueSize          = 64
)

const (
	RunningStateManual RunningState = iota
	RunningStateStep
	RunningStateRun
	RunningStateFinished
)

func (rs RunningState) String() string {
	switch rs {
	case RunningStateManual:
		return "manual"
	case RunningStateStep:
		return "step"
	case RunningStateRun:
		return "run"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}

var DefaultOptions = Options{
	Width:           universe.DefWidth,
	Height:          universe.DefHeight,
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
	Engine:          universe.DefEngine,
	Paused:          true,
	ToggleCooldown:  DefToggleCooldown,
}
