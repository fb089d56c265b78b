package canvas

// step records which axes moved on a Bresenham step.
type step struct {
	dx, dy int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// bresenham visits every point of the line from (x0, y0) to (x1, y1),
// endpoints included, passing the direction of the step that reached it.
func bresenham(x0, y0, x1, y1 int, plot func(x, y int, s step)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	plot(x0, y0, step{})
	for x0 != x1 || y0 != y1 {
		var s step
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
			s.dx = sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
			s.dy = sy
		}
		plot(x0, y0, s)
	}
}
