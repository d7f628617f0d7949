package universe

//Coords is a cell position: column X, row Y
type Coords struct {
	X int
	Y int
}

//wrap maps a coordinate that stepped one cell outside [0, dim) back onto the opposite edge
func wrap(v int, dim int) int {
	if v < 0 {
		return dim - 1
	}
	if v >= dim {
		return 0
	}
	return v
}

//neighbourCoords computes the 8 toroidally wrapped neighbours of x, y
//on a tiny grid some of the slots point at the same cell (or at the cell itself)
func neighbourCoords(width int, height int, x int, y int) (n [8]Coords) {
	i := 0
	for dy := -1; dy < 2; dy++ {
		for dx := -1; dx < 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n[i] = Coords{wrap(x+dx, width), wrap(y+dy, height)}
			i++
		}
	}
	return
}
