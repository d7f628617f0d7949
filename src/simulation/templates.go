package simulation

import "heatlife/src/universe"

//Templates added to every new Simulation
var BuiltinTemplates = []Template{
	{
		"testSample1",
		"the test sample with 3 stable patterns",
		[]universe.Coords{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 3}, {X: 5, Y: 3}},
	},
	{
		"block",
		"2x2 still life",
		[]universe.Coords{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
	},
	{
		"blinker",
		"period 2 oscillator",
		[]universe.Coords{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}},
	},
	{
		"glider",
		"the smallest spaceship, travels diagonally across the torus",
		[]universe.Coords{{X: 2, Y: 1}, {X: 3, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}},
	},
}
