package main

import (
	"log"
	"os"
	"strings"

	"github.com/integrii/flaggy"

	"heatlife/src/simulation"
	"heatlife/src/universe"
	"heatlife/src/view"
)

type EnvOptions struct {
	interactive bool
	randomData  bool
	template    string
}

func main() {
	eo, so := initOptions()

	var stateCh chan simulation.Status

	if !eo.interactive {
		stateCh = make(chan simulation.Status, 10) //the buffered channel to getting the simulation status
		//nobody can press play in the headless mode
		so.Paused = false
	}

	s, err := simulation.New(so, stateCh)
	if err != nil {
		log.Fatalln(err)
	}

	if eo.randomData {
		s.SettleWithRandomData()
	} else if err := s.SettleTemplate(eo.template); err != nil {
		log.Fatalln(err)
	}

	if eo.interactive {
		v := view.NewConsoleUI()
		s.RegisterViewer(v)
		v.Start()
		s.Close()
		return
	}

	v := view.NewConsoleOut(os.Stdout)
	s.RegisterViewer(v)
	v.Start()
	s.Run()
	for st := range stateCh {
		if st.RunningMode == simulation.RunningStateFinished {
			break
		}
	}
	s.Close()
}

func initOptions() (eo *EnvOptions, so *simulation.Options) {

	o := simulation.DefaultOptions
	so = &o
	eo = &EnvOptions{template: simulation.BuiltinTemplates[0].Name}
	templateNames := make([]string, 0, len(simulation.BuiltinTemplates))
	for _, t := range simulation.BuiltinTemplates {
		templateNames = append(templateNames, t.Name)
	}
	flaggy.SetName("heatlife")
	flaggy.SetDescription("Toroidal \"The Life\" simulation with the cell heat")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&so.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&so.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&so.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&so.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 means no limit")
	flaggy.Duration(&so.ToggleCooldown, "c", "cooldown", "Minimal time between two clicks on the same cell")
	flaggy.Int64(&so.Seed, "d", "seed", "Seed for the random data, 0 seeds from the clock")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.String(&so.Engine, "e", "engine", "Engine to use ["+strings.Join(universe.EngineNames(), "|")+"]")
	flaggy.String(&eo.template, "t", "template", "Template to settle with ["+strings.Join(templateNames, "|")+"]")

	flaggy.Parse()

	if !contains(universe.EngineNames(), so.Engine) {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if !eo.randomData && !contains(templateNames, eo.template) {
		flaggy.ShowHelpAndExit("unknown template")
	}
	if so.Width <= 0 || so.Height <= 0 {
		flaggy.ShowHelpAndExit("width and height must be positive")
	}
	if !eo.interactive && so.MaxSteps == 0 {
		flaggy.ShowHelpAndExit("maxSteps is required in the non-interactive mode")
	}

	return
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
