package view

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"heatlife/src/simulation"
	"heatlife/src/universe"
)

const (
	fieldView = "field"
	infoView  = "info"
	helpView  = "help"
	smallView = "small"

	infoWidth = 30
	minHeight = 14
	liveRune  = "█"
	deadRune  = "░"
)

//binding ties a key to a controller intent, a nil act quits the UI
//bindings without a label share the help entry of the previous one
type binding struct {
	key   interface{}
	label string
	descr string
	view  string
	act   func(c simulation.Controller, v *gocui.View)
}

var bindings = []binding{
	{gocui.KeyCtrlC, "^C", "quit", "", nil},
	{'n', "n", "step", "", func(c simulation.Controller, _ *gocui.View) { c.Step() }},
	{'r', "r", "run", "", func(c simulation.Controller, _ *gocui.View) { c.Run() }},
	{'s', "s", "stop", "", func(c simulation.Controller, _ *gocui.View) { c.Stop() }},
	{gocui.KeySpace, "space/p", "pause", "", func(c simulation.Controller, _ *gocui.View) { c.Pause() }},
	{'p', "", "", "", func(c simulation.Controller, _ *gocui.View) { c.Pause() }},
	{'c', "c", "clear", "", func(c simulation.Controller, _ *gocui.View) { c.Reset() }},
	{'w', "w", "random", "", func(c simulation.Controller, _ *gocui.View) { c.SettleWithRandomData() }},
	{gocui.MouseLeft, "click", "toggle cell", fieldView, func(c simulation.Controller, v *gocui.View) {
		x, y := v.Cursor()
		c.ToggleCell(x, y)
	}},
}

var modeNames = map[simulation.RunningState]aurora.Value{
	simulation.RunningStateManual:   aurora.Blue("waiting"),
	simulation.RunningStateStep:     aurora.Yellow("stepping"),
	simulation.RunningStateRun:      aurora.Cyan("running"),
	simulation.RunningStateFinished: aurora.Red("finished"),
}

//ConsoleUI is the interactive terminal viewer
//it shows the battlefield coloured by heat and turns keys and clicks into simulation intents
type ConsoleUI struct {
	c simulation.Controller
	g *gocui.Gui
}

func NewConsoleUI() *ConsoleUI {
	g, err := gocui.NewGui(gocui.Output256)
	if err != nil {
		log.Panicln(err)
	}
	g.Mouse = true

	t := &ConsoleUI{g: g}
	g.SetManagerFunc(t.layout)
	for _, b := range bindings {
		act := b.act
		h := func(_ *gocui.Gui, v *gocui.View) error {
			if act == nil {
				return gocui.ErrQuit
			}
			act(t.c, v)
			return nil
		}
		if err := g.SetKeybinding(b.view, b.key, gocui.ModNone, h); err != nil {
			log.Panicln(err)
		}
	}
	return t
}

func (t *ConsoleUI) Register(c simulation.Controller) {
	t.c = c
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

//Refresh wakes the gui loop, the views are redrawn by layout
func (t *ConsoleUI) Refresh() {
	t.g.Update(func(*gocui.Gui) error { return nil })
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minHeight || maxX < infoWidth+4 {
		for _, n := range []string{fieldView, infoView, helpView} {
			_ = g.DeleteView(n)
		}
		v, err := g.SetView(smallView, 0, 0, maxX-1, maxY-1)
		if err != nil && err != gocui.ErrUnknownView {
			return err
		}
		v.Clear()
		_, _ = fmt.Fprintf(v, "terminal is too small, need at least %dx%d", infoWidth+4, minHeight)
		return nil
	}
	_ = g.DeleteView(smallView)

	f := t.c.Frame()

	v, err := g.SetView(infoView, 0, 0, infoWidth, maxY-2)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Title = "Heat Life"
	v.Clear()
	_, _ = fmt.Fprint(v, infoText(f.Status, t.c.Options()))

	v, err = g.SetView(fieldView, infoWidth+1, 0, maxX-1, maxY-2)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Title = fmt.Sprintf("Generation %d", f.Status.Generation)
	w, h := v.Size()
	v.Clear()
	_, _ = fmt.Fprint(v, fieldText(f.Rows, w, h))

	v, err = g.SetView(helpView, -1, maxY-2, maxX, maxY)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Frame = false
	v.Clear()
	_, _ = fmt.Fprint(v, helpText())
	return nil
}

func cellText(c *universe.Cell) string {
	if !c.Alive() {
		return aurora.Gray(deadGray, deadRune).String()
	}
	return aurora.Index(HeatColour(c.Heat()), liveRune).String()
}

//fieldText renders at most w x h cells of rows
//a field that doesn't fit loses its last visible line to a warning
func fieldText(rows [][]universe.Cell, w int, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	cropped := len(rows) > h || (len(rows) > 0 && len(rows[0]) > w)
	var b strings.Builder
	for y := range rows {
		if y == h {
			break
		}
		if y > 0 {
			b.WriteByte('\n')
		}
		if cropped && y == h-1 {
			b.WriteString(aurora.Red("field is larger than the view").String())
			break
		}
		for x := range rows[y] {
			if x == w {
				break
			}
			b.WriteString(cellText(&rows[y][x]))
		}
	}
	return b.String()
}

//infoText lists the status, the options and the heat legend
func infoText(s simulation.Status, o simulation.Options) string {
	var b strings.Builder
	line := func(name string, value interface{}) {
		fmt.Fprintf(&b, " %s%s %v\n", aurora.Green(name), strings.Repeat(" ", 11-len(name)), value)
	}
	line("mode", modeNames[s.RunningMode])
	line("step", s.IterationNum)
	line("generation", s.Generation)
	line("live", s.LiveCells)
	line("paused", s.Paused)
	line("step time", s.IterationTime.Round(time.Microsecond))
	b.WriteByte('\n')
	line("size", fmt.Sprintf("%d x %d", o.Width, o.Height))
	line("engine", o.Engine)
	line("interval", o.Interval)
	line("max steps", o.MaxSteps)
	line("cooldown", o.ToggleCooldown)
	b.WriteByte('\n')
	b.WriteString(" cold ")
	for _, c := range heatRamp {
		b.WriteString(aurora.Index(c, liveRune).String())
	}
	b.WriteString(" hot\n")
	return b.String()
}

func helpText() string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if b.label == "" {
			continue
		}
		parts = append(parts, aurora.Green(b.label).String()+" "+b.descr)
	}
	return " " + strings.Join(parts, "  ")
}
