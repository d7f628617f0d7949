package view

import (
	"testing"

	"heatlife/src/universe"
)

func TestHeatColour_Bounds(t *testing.T) {
	if c := HeatColour(universe.MinHeat); c != heatRamp[0] {
		t.Errorf("Expected %d for the minimal heat, got %d", heatRamp[0], c)
	}
	if c := HeatColour(universe.MaxHeat); c != heatRamp[len(heatRamp)-1] {
		t.Errorf("Expected %d for the maximal heat, got %d", heatRamp[len(heatRamp)-1], c)
	}
	if c := HeatColour(universe.MaxHeat * 2); c != heatRamp[len(heatRamp)-1] {
		t.Errorf("Expected the hottest colour above the maximum, got %d", c)
	}
}

func TestHeatColour_Monotonic(t *testing.T) {
	pos := map[uint8]int{}
	for i, c := range heatRamp {
		pos[c] = i
	}
	prev := 0
	for h := universe.MinHeat; h <= universe.MaxHeat; h += universe.HeatLoss {
		i, ok := pos[HeatColour(h)]
		if !ok {
			t.Fatalf("Heat %v mapped outside of the ramp", h)
		}
		if i < prev {
			t.Fatalf("Heat %v got a colder colour than a lower heat", h)
		}
		prev = i
	}
}

func TestHeatColour_Birth(t *testing.T) {
	if HeatColour(universe.MinHeat+universe.HeatGain) == heatRamp[0] {
		t.Error("Expected a fresh birth to be warmer than the baseline")
	}
}
