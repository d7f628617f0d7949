package view

import (
	"math"

	"heatlife/src/universe"
)

//heatRamp is the 256-colour palette from a cold green to a hot red
var heatRamp = []uint8{22, 28, 34, 40, 46, 82, 118, 154, 190, 226, 220, 214, 208, 202, 196}

//deadGray is the gray level (0-23) of a dead cell
const deadGray = 5

//HeatColour maps the heat of a cell to the 256-colour palette index
//the heat is spread on a log scale, so a few recent births already show
func HeatColour(heat float64) uint8 {
	if heat <= universe.MinHeat {
		return heatRamp[0]
	}
	last := len(heatRamp) - 1
	i := int(math.Log2(heat) * float64(last) / math.Log2(universe.MaxHeat))
	if i > last {
		i = last
	}
	return heatRamp[i]
}
