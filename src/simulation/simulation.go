package simulation

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"heatlife/src/universe"
)

//Simulation drives one Universe
//it is the only writer of the universe: every intent is a closure put into controlCh
//and executed by the mainLoop goroutine, readers get the published Frame
type Simulation struct {
	options  Options
	universe *universe.Universe
	state    struct {
		Status
		sync.Mutex
	}
	frame struct {
		Frame
		sync.RWMutex
	}
	templates struct {
		m map[string]Template
		sync.Mutex
	}
	stateCh   chan Status
	views     []Viewer
	toggled   map[universe.Coords]time.Time //last toggle time per cell, owned by mainLoop
	rnd       *rand.Rand
	now       func() time.Time
	controlCh chan func()
	closeCh   chan struct{}
	closeOnce sync.Once
}

//New creates the Simulation and starts its loop
//stateCh is optional, when given the status is written to it on every running mode switch, pause and reset,
//so the caller must keep reading it
func New(o *Options, stateCh chan Status) (*Simulation, error) {
	opts := DefaultOptions
	if o != nil {
		opts = *o
	}
	var uo []universe.Option
	if opts.Engine != "" {
		uo = append(uo, universe.WithEngine(opts.Engine))
	}
	u, err := universe.FromDimensions(opts.Width, opts.Height, uo...)
	if err != nil {
		return nil, fmt.Errorf("simulation: create %dx%d universe: %w", opts.Width, opts.Height, err)
	}
	if !opts.Paused {
		u.Pause()
	}
	advanced := make(map[string]interface{}, len(opts.Advanced)+1)
	for k, v := range opts.Advanced {
		advanced[k] = v
	}
	advanced["engine"] = u.Engine()
	opts.Advanced = advanced
	opts.Engine = u.Engine()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Simulation{
		options:   opts,
		universe:  u,
		stateCh:   stateCh,
		toggled:   map[universe.Coords]time.Time{},
		rnd:       rand.New(rand.NewSource(seed)),
		now:       time.Now,
		controlCh: make(chan func(), DefQueueSize),
		closeCh:   make(chan struct{}),
	}
	s.templates.m = map[string]Template{}
	for _, t := range BuiltinTemplates {
		s.AddTemplate(t)
	}
	s.state.Paused = u.Paused()
	s.publish()
	go s.mainLoop()
	return s, nil
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (s *Simulation) AddTemplate(tmpl Template) {
	s.templates.Lock()
	s.templates.m[tmpl.Name] = tmpl
	s.templates.Unlock()
}

//Templates returns the known templates sorted by name
func (s *Simulation) Templates() []Template {
	s.templates.Lock()
	defer s.templates.Unlock()
	tt := make([]Template, 0, len(s.templates.m))
	for _, t := range s.templates.m {
		tt = append(tt, t)
	}
	sort.Slice(tt, func(i, j int) bool { return tt[i].Name < tt[j].Name })
	return tt
}

//SettleTemplate populates the universe with the seeding template, returns immediately
func (s *Simulation) SettleTemplate(name string) error {
	s.templates.Lock()
	tmpl, ok := s.templates.m[name]
	s.templates.Unlock()
	if !ok {
		return fmt.Errorf("simulation: %q: %w", name, ErrUnknownTemplate)
	}
	s.Settle(tmpl.Coordinates)
	return nil
}

//Settle revives the cells at the coordinates, returns immediately
func (s *Simulation) Settle(vc []universe.Coords) {
	s.enqueue(func() {
		s.universe.Settle(vc)
		s.changed()
	})
}

//SettleWithRandomData clears the universe and populates it with random data
//ignored while the simulation is running
func (s *Simulation) SettleWithRandomData() {
	s.enqueue(func() {
		mode := s.runningMode()
		if mode != RunningStateManual && mode != RunningStateFinished {
			return
		}
		s.universe.Reset()
		s.universe.SettleRandom(s.rnd)
		s.changed()
	})
}

//SetAlive sets the cell state at point x, y, returns immediately
//coordinates outside the universe are ignored
func (s *Simulation) SetAlive(x int, y int, alive bool) {
	s.enqueue(func() {
		if err := s.universe.SetAlive(x, y, alive, 0); err != nil {
			return
		}
		s.changed()
	})
}

//ToggleCell inverses the cell state at point x, y, returns immediately
//a second toggle of the same cell within ToggleCooldown is ignored
func (s *Simulation) ToggleCell(x int, y int) {
	s.enqueue(func() {
		alive, err := s.universe.Alive(x, y)
		if err != nil {
			return
		}
		p := universe.Coords{X: x, Y: y}
		now := s.now()
		if last, ok := s.toggled[p]; ok && now.Sub(last) < s.options.ToggleCooldown {
			return
		}
		s.toggled[p] = now
		_ = s.universe.SetAlive(x, y, !alive, 0)
		s.changed()
	})
}

//RegisterViewer registers the viewer - the simulation will call the viewer when the state is changed
func (s *Simulation) RegisterViewer(v Viewer) {
	v.Register(s)
	s.enqueue(func() {
		s.views = append(s.views, v)
		v.Refresh()
	})
}

//StateCh returns the channel with the simulation's status updates
func (s *Simulation) StateCh() chan Status {
	return s.stateCh
}

//Status returns current simulation status represented by Status struct
func (s *Simulation) Status() Status {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.Status
}

//Options returns current simulation configuration represented by Options struct
func (s *Simulation) Options() Options {
	return s.options
}

//Frame returns the last published generation
func (s *Simulation) Frame() Frame {
	s.frame.RLock()
	defer s.frame.RUnlock()
	return s.frame.Frame
}

//Run starts the simulation, returns immediately
func (s *Simulation) Run() {
	s.enqueue(s.run)
}

//Stop stops the simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (s *Simulation) Stop() {
	s.enqueue(s.stop)
}

//Step does one tick, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (s *Simulation) Step() {
	s.enqueue(s.step)
}

//Pause toggles the universe pause, returns immediately
//while paused the ticks keep going but only the heat changes
func (s *Simulation) Pause() {
	s.enqueue(func() {
		s.universe.Pause()
		s.state.Lock()
		s.state.Paused = s.universe.Paused()
		s.state.Unlock()
		s.publish()
		s.notify()
		s.refreshView()
	})
}

//Reset kills all cells and resets the counters, returns immediately
//the running mode and the pause are kept, the Status struct will be written to the stateCh
func (s *Simulation) Reset() {
	s.enqueue(s.reset)
}

//Close stops the main loop and the running cycle, returns immediately
func (s *Simulation) Close() {
	s.closeOnce.Do(func() {
		close(s.closeCh)
	})
}

//enqueue puts the command to the control queue
//returns false when the simulation is closed
func (s *Simulation) enqueue(cmd func()) bool {
	select {
	case s.controlCh <- cmd:
		return true
	case <-s.closeCh:
		return false
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (s *Simulation) mainLoop() {
	for {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case <-s.closeCh:
			return
		}
	}
}

func (s *Simulation) runningMode() RunningState {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.RunningMode
}

func (s *Simulation) setRunningMode(to RunningState) {
	s.state.Lock()
	s.state.RunningMode = to
	s.state.Unlock()
}

//notify writes the current status to the stateCh to signal upper control software
func (s *Simulation) notify() {
	if s.stateCh == nil {
		return
	}
	st := s.Status()
	select {
	case s.stateCh <- st:
	case <-s.closeCh:
	}
}

//switchRunningState switch the state of the simulation to RunningState and notifies about it
func (s *Simulation) switchRunningState(to RunningState) {
	s.setRunningMode(to)
	s.notify()
}

//run starts the running cycle
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (s *Simulation) run() {
	if s.runningMode() == RunningStateRun {
		return
	}
	s.switchRunningState(RunningStateRun)
	go s.runLoop()
}

//runLoop enqueues a step every Interval while the simulation is in the run mode
//too many steps in a row taking longer than Interval finish the simulation
func (s *Simulation) runLoop() {
	skipped := 0
	done := make(chan struct{}, 1)
	for s.runningMode() == RunningStateRun {
		start := time.Now()
		if !s.enqueue(func() {
			//Stop may have been queued in front of this step
			if s.runningMode() == RunningStateRun {
				s.step()
			}
			done <- struct{}{}
		}) {
			return
		}
		select {
		case <-done:
		case <-s.closeCh:
			return
		}
		elapsed := time.Since(start)
		if s.options.Interval <= 0 {
			continue
		}
		if elapsed > s.options.Interval {
			skipped++
		} else {
			skipped = 0
		}
		if s.options.MaxSkippedTicks > 0 && skipped > s.options.MaxSkippedTicks {
			log.Printf("simulation: %d steps in a row took longer than the %v interval, finishing", skipped, s.options.Interval)
			s.enqueue(func() {
				if s.runningMode() == RunningStateRun {
					s.switchRunningState(RunningStateFinished)
				}
			})
			return
		}
		select {
		case <-time.After(s.options.Interval - elapsed):
		case <-s.closeCh:
			return
		}
	}
}

//stop stops the running cycle
func (s *Simulation) stop() {
	if s.runningMode() == RunningStateRun {
		s.switchRunningState(RunningStateManual)
	}
}

//step ticks the universe once
func (s *Simulation) step() {
	rm := s.runningMode()
	if rm == RunningStateFinished {
		rm = RunningStateManual
	}
	finished := false
	defer func() {
		if finished {
			s.setRunningMode(RunningStateFinished)
		} else {
			s.setRunningMode(rm)
		}
		s.publish()
		s.notify()
		s.refreshView()
	}()

	if maxIter := s.options.MaxSteps; maxIter != 0 && s.Status().IterationNum >= maxIter {
		finished = true
		return
	}
	s.switchRunningState(RunningStateStep)
	start := time.Now()
	s.universe.Tick()
	elapsed := time.Since(start)

	s.state.Lock()
	s.state.IterationNum++
	s.state.Generation = s.universe.Generation()
	s.state.LiveCells = s.universe.LiveCells()
	s.state.IterationTime = elapsed
	s.state.Unlock()
}

//reset clears the universe data, reset all counters
func (s *Simulation) reset() {
	s.universe.Reset()
	s.toggled = map[universe.Coords]time.Time{}
	s.state.Lock()
	s.state.IterationNum = 0
	s.state.Generation = 0
	s.state.LiveCells = 0
	s.state.IterationTime = 0
	s.state.Unlock()
	s.publish()
	s.notify()
	s.refreshView()
}

//changed publishes the universe after a seeding or a cell change
func (s *Simulation) changed() {
	s.state.Lock()
	s.state.LiveCells = s.universe.LiveCells()
	s.state.Unlock()
	s.publish()
	s.refreshView()
}

//publish stores the frame of the current generation
func (s *Simulation) publish() {
	f := Frame{
		Rows:    s.universe.Rows(),
		Summary: s.universe.Summarize(),
		Status:  s.Status(),
	}
	s.frame.Lock()
	s.frame.Frame = f
	s.frame.Unlock()
}

//refreshView calls Refresh event for all registered views
func (s *Simulation) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}
