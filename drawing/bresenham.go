package drawing

// Bresenham walks the integer points of a line segment, octant-rotated so
// the same shallow-slope loop handles all 8 directions.
type Bresenham struct {
	point   Point
	endX    int
	deltaX  int
	deltaY  int
	err     int
	octant  octant
	started bool
}

// NewBresenham returns a Bresenham iterator over the line from start to
// end, inclusive of both endpoints.
func NewBresenham(start, end Point) *Bresenham {
	oct := newOctant(start, end)
	s := oct.to(start)
	e := oct.to(end)
	dx := e.X - s.X
	dy := e.Y - s.Y

	return &Bresenham{
		point:  s,
		endX:   e.X,
		deltaX: dx,
		deltaY: dy,
		err:    dy - dx,
		octant: oct,
	}
}

// Next returns the next point on the line and true, or the zero Point and
// false once the line is exhausted.
func (b *Bresenham) Next() (Point, bool) {
	if b.point.X > b.endX {
		return Point{}, false
	}

	point := b.octant.from(b.point)

	if b.err >= 0 {
		b.point.Y++
		b.err -= b.deltaX
	}
	b.point.X++
	b.err += b.deltaY

	return point, true
}

// Points materializes the entire line as a slice, for callers that don't
// need to stream it point by point.
func (b *Bresenham) Points() []Point {
	var points []Point
	for {
		p, ok := b.Next()
		if !ok {
			return points
		}
		points = append(points, p)
	}
}
