package universe

/*
	Engine with two buffers
	The next generation is calculated into the back buffer from the front one, then the buffers are swapped
	No allocations per tick
*/
func newDoubleBuffEngine(u *Universe) func() {
	back := createGrid(u.width, u.height)
	return func() {
		for y := range u.rows {
			for x := range u.rows[y] {
				c := &u.rows[y][x]
				back[y][x] = nextCell(*c, liveNeighbours(u.rows, c), u.paused)
			}
		}
		u.rows, back = back, u.rows
	}
}
