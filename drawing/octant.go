// Package drawing provides the line/shape primitives the graphics writers
// and devices build their draw operations on.
package drawing

// Point is a coordinate in 2D integer space.
type Point struct {
	X, Y int
}

// octant classifies the direction of a line segment into one of 8 45-degree
// sectors and transforms points into and out of the canonical "shallow,
// increasing-x, increasing-y" octant Bresenham's algorithm is written for.
type octant struct {
	value uint8
}

func newOctant(start, end Point) octant {
	var value uint8
	dx := end.X - start.X
	dy := end.Y - start.Y

	if dy < 0 {
		dx = -dx
		dy = -dy
		value += 4
	}

	if dx < 0 {
		dx, dy = dy, -dx
		value += 2
	}

	if dx < dy {
		value += 1
	}

	return octant{value: value}
}

func (o octant) to(p Point) Point {
	switch o.value {
	case 0:
		return Point{p.X, p.Y}
	case 1:
		return Point{p.Y, p.X}
	case 2:
		return Point{p.Y, -p.X}
	case 3:
		return Point{-p.X, p.Y}
	case 4:
		return Point{-p.X, -p.Y}
	case 5:
		return Point{-p.Y, -p.X}
	case 6:
		return Point{-p.Y, p.X}
	case 7:
		return Point{p.X, -p.Y}
	}
	panic("unreachable octant value")
}

func (o octant) from(p Point) Point {
	switch o.value {
	case 0:
		return Point{p.X, p.Y}
	case 1:
		return Point{p.Y, p.X}
	case 2:
		return Point{-p.Y, p.X}
	case 3:
		return Point{-p.X, p.Y}
	case 4:
		return Point{-p.X, -p.Y}
	case 5:
		return Point{-p.Y, -p.X}
	case 6:
		return Point{p.Y, -p.X}
	case 7:
		return Point{p.X, -p.Y}
	}
	panic("unreachable octant value")
}
