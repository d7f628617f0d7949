package view

import (
	"strings"
	"testing"

	"heatlife/src/simulation"
	"heatlife/src/universe"
)

func testRows(t *testing.T, w int, h int) [][]universe.Cell {
	t.Helper()
	u, err := universe.FromDimensions(w, h)
	if err != nil {
		t.Fatal(err)
	}
	u.Settle([]universe.Coords{{X: 0, Y: 0}, {X: 1, Y: 0}})
	return u.Rows()
}

func cellCount(line string) int {
	return strings.Count(line, liveRune) + strings.Count(line, deadRune)
}

func TestFieldText_Fits(t *testing.T) {
	lines := strings.Split(fieldText(testRows(t, 4, 3), 10, 10), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if n := cellCount(l); n != 4 {
			t.Errorf("Expected 4 cells in line %d, got %d", i, n)
		}
	}
	if n := strings.Count(lines[0], liveRune); n != 2 {
		t.Errorf("Expected 2 live cells in the first line, got %d", n)
	}
}

func TestFieldText_Cropped(t *testing.T) {
	lines := strings.Split(fieldText(testRows(t, 6, 5), 3, 3), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	for i := 0; i < 2; i++ {
		if n := cellCount(lines[i]); n != 3 {
			t.Errorf("Expected 3 cells in line %d, got %d", i, n)
		}
	}
	if !strings.Contains(lines[2], "field is larger than the view") {
		t.Errorf("Expected the crop warning, got %q", lines[2])
	}
	if fieldText(testRows(t, 2, 2), 0, 5) != "" {
		t.Error("Expected nothing for a zero sized view")
	}
}

func TestInfoText(t *testing.T) {
	s := simulation.Status{Generation: 7, LiveCells: 3, RunningMode: simulation.RunningStateRun}
	got := infoText(s, simulation.DefaultOptions)
	for _, want := range []string{"generation", " 7\n", "running", "40 x 13", simulation.DefaultOptions.Engine, "cold", "hot"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in %q", want, got)
		}
	}
	if n := strings.Count(got, liveRune); n != len(heatRamp) {
		t.Errorf("Expected %d legend cells, got %d", len(heatRamp), n)
	}
}

func TestHelpText(t *testing.T) {
	got := helpText()
	for _, b := range bindings {
		if b.label != "" && !strings.Contains(got, b.descr) {
			t.Errorf("Expected %q in the help line", b.descr)
		}
	}
	if strings.Contains(got, "   ") {
		t.Errorf("Expected unlabelled bindings to be skipped, got %q", got)
	}
}
