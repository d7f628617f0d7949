package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"heatlife/src/simulation"
)

//ConsoleOut is the plain text viewer for the non-interactive mode
type ConsoleOut struct {
	c         simulation.Controller
	w         io.Writer
	startTime time.Time
	reported  int
}

func NewConsoleOut(w io.Writer) *ConsoleOut {
	return &ConsoleOut{w: w, reported: -1}
}

func (c *ConsoleOut) Refresh() {
	f := c.c.Frame()
	st := f.Status
	if st.RunningMode == simulation.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last iteration": st.IterationNum,
			"Generation":     st.Generation,
			"Total time":     totalTime,
			"Live cells":     st.LiveCells,
		}
		fmt.Fprintln(c.w, "\nFinished:")
		c.printHashData(resultData)
		fmt.Fprint(c.w, f.Summary)
	} else if st.RunningMode == simulation.RunningStateRun {
		//the same iteration may be refreshed more than once
		if st.IterationNum%10 == 0 && st.IterationNum != c.reported {
			c.reported = st.IterationNum
			fmt.Fprintf(c.w, "  Iterations done: %v, live cells: %v\n", st.IterationNum, st.LiveCells)
		}
	}
}

func (c *ConsoleOut) Register(ctrl simulation.Controller) {
	c.c = ctrl
	o := c.c.Options()
	fmt.Fprintln(c.w, "Running configuration:")
	fmt.Fprintf(c.w, "  Dimension: %v x %v\n", o.Width, o.Height)
	fmt.Fprintf(c.w, "  Interval: %v\n", o.Interval)
	fmt.Fprintf(c.w, "  Max iterations: %v steps\n", o.MaxSteps)
	c.printHashData(o.Advanced)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
