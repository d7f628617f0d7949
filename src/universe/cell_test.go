package universe

import "testing"

func TestNewCell(t *testing.T) {
	c := NewCell(10, 5, 3, 4, false)
	if c.X() != 3 || c.Y() != 4 {
		t.Errorf("Expected coords (3, 4), got %v", c.Coords())
	}
	if c.Alive() {
		t.Error("Expected the cell to be dead")
	}
	if c.Heat() != MinHeat {
		t.Errorf("Expected heat %v, got %v", MinHeat, c.Heat())
	}
	if c.Ignore() != 0 {
		t.Errorf("Expected ignore 0, got %d", c.Ignore())
	}
	if c.Neighbours() != neighbourCoords(10, 5, 3, 4) {
		t.Errorf("Unexpected neighbours %v", c.Neighbours())
	}
}

func TestCell_SetAliveDebounce(t *testing.T) {
	c := NewCell(3, 3, 1, 1, false)
	c.SetAlive(true, 2)

	for want := 1; want >= 0; want-- {
		c.SetAlive(false, 0)
		if !c.Alive() {
			t.Fatalf("Expected the death request to be ignored with budget %d left", want)
		}
		if c.Ignore() != want {
			t.Errorf("Expected ignore %d, got %d", want, c.Ignore())
		}
	}

	c.SetAlive(false, 0)
	if c.Alive() {
		t.Error("Expected the third death request to kill the cell")
	}
}

func TestCell_SetAliveReplacesBudget(t *testing.T) {
	cases := []struct {
		name   string
		alive  bool
		target bool
		budget int
		want   int
	}{
		{"birth", false, true, 3, 3},
		{"stay alive", true, true, 1, 1},
		{"dead stays dead", false, false, 4, 4},
		{"negative budget", false, true, -2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCell(3, 3, 0, 0, tc.alive)
			c.SetAlive(tc.target, tc.budget)
			if c.Alive() != tc.target {
				t.Errorf("Expected alive %v, got %v", tc.target, c.Alive())
			}
			if c.Ignore() != tc.want {
				t.Errorf("Expected ignore %d, got %d", tc.want, c.Ignore())
			}
		})
	}
}

func TestCell_SuppressedDeathKeepsHeat(t *testing.T) {
	c := NewCell(3, 3, 0, 0, false)
	c.SetAlive(true, 1)
	c.IncreaseHeat()
	c.SetAlive(false, 5)
	if c.Heat() != MinHeat+HeatGain || c.Ignore() != 0 || !c.Alive() {
		t.Errorf("Expected only the budget to change, got alive=%v heat=%v ignore=%d", c.Alive(), c.Heat(), c.Ignore())
	}
}

func TestCell_HeatClamp(t *testing.T) {
	c := NewCell(3, 3, 0, 0, false)
	c.DecreaseHeat()
	if c.Heat() != MinHeat {
		t.Errorf("Expected heat to stay at %v, got %v", MinHeat, c.Heat())
	}
	c.IncreaseHeat()
	if c.Heat() != 3.0 {
		t.Errorf("Expected heat 3, got %v", c.Heat())
	}
	c.DecreaseHeat()
	if c.Heat() != 2.5 {
		t.Errorf("Expected heat 2.5, got %v", c.Heat())
	}
	for i := 0; i < 600; i++ {
		c.IncreaseHeat()
	}
	if c.Heat() != MaxHeat {
		t.Errorf("Expected heat %v, got %v", MaxHeat, c.Heat())
	}
}

func TestCell_Reset(t *testing.T) {
	c := NewCell(5, 5, 2, 3, false)
	n := c.Neighbours()
	c.SetAlive(true, 4)
	c.IncreaseHeat()
	c.Reset()
	if c.Alive() || c.Heat() != MinHeat || c.Ignore() != 0 {
		t.Errorf("Expected baseline state, got alive=%v heat=%v ignore=%d", c.Alive(), c.Heat(), c.Ignore())
	}
	if c.Coords() != (Coords{2, 3}) || c.Neighbours() != n {
		t.Error("Expected position and neighbours to be kept")
	}
}
