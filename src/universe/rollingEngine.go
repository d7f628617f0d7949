package universe

/*
	Engine with the small rolling buffer
	The buffer holds the rows being calculated now and one row before, the previous row
	is copied back to the grid as calculating moves to the next line.
	Row 0 is overwritten before the last row (its toroidal neighbour) is calculated,
	so row 0 of the previous generation is kept aside and read through the view.
*/
func newRollingEngine(u *Universe) func() {
	tmpBuff := createGrid(u.width, 3)
	first := tmpBuff[2]
	view := make([][]Cell, u.height)
	return func() {
		copy(first, u.rows[0])
		copy(view, u.rows)
		view[0] = first
		last := u.height - 1
		for y := range u.rows {
			for x := range u.rows[y] {
				c := &view[y][x]
				tmpBuff[1][x] = nextCell(*c, liveNeighbours(view, c), u.paused)
			}
			if y-1 >= 0 {
				copy(u.rows[y-1], tmpBuff[0])
			}
			tmpBuff[0], tmpBuff[1] = tmpBuff[1], tmpBuff[0]
		}
		copy(u.rows[last], tmpBuff[0])
	}
}
