package drawing

// Rectangle is an axis-aligned pixel rectangle. FillRectangle treats
// Right/Bottom as exclusive; DrawRectangle draws its right and bottom edges
// on the Right and Bottom coordinates themselves.
type Rectangle struct {
	Left, Top, Right, Bottom int
}

// DrawLine calls setPixel for every point on the line from start to end.
func DrawLine(start, end Point, setPixel func(x, y int)) {
	b := NewBresenham(start, end)
	for {
		p, ok := b.Next()
		if !ok {
			return
		}
		setPixel(p.X, p.Y)
	}
}

// DrawRectangle calls setPixel for every point on rect's four edges.
func DrawRectangle(rect Rectangle, setPixel func(x, y int)) {
	p1 := Point{rect.Left, rect.Top}
	p2 := Point{rect.Left, rect.Bottom}
	p3 := Point{rect.Right, rect.Bottom}
	p4 := Point{rect.Right, rect.Top}
	DrawLine(p1, p2, setPixel)
	DrawLine(p2, p3, setPixel)
	DrawLine(p3, p4, setPixel)
	DrawLine(p4, p1, setPixel)
}

// FillRectangle calls setPixel for every point inside rect.
func FillRectangle(rect Rectangle, setPixel func(x, y int)) {
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			setPixel(x, y)
		}
	}
}

// DrawTriangle fills the triangle v0-v1-v2 by testing every point in its
// bounding box (clamped to [0, width) x [0, height)) against the triangle's
// three edge functions, calling setPixel for points inside.
func DrawTriangle(v0, v1, v2 Point, width, height int, setPixel func(x, y int)) {
	minX := min3(v0.X, v1.X, v2.X)
	minY := min3(v0.Y, v1.Y, v2.Y)
	maxX := max3(v0.X, v1.X, v2.X)
	maxY := max3(v0.Y, v1.Y, v2.Y)

	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, width-1)
	maxY = min(maxY, height-1)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			p := Point{x, y}
			w0 := orient2d(v1, v2, p)
			w1 := orient2d(v2, v0, p)
			w2 := orient2d(v0, v1, p)
			// A point is inside regardless of whether v0,v1,v2 wind
			// clockwise or counter-clockwise: the three edge functions
			// agree in sign either way, only the sign itself flips.
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				setPixel(x, y)
			}
		}
	}
}

func orient2d(a, b, c Point) int {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func min3(a, b, c int) int { return min(a, min(b, c)) }
func max3(a, b, c int) int { return max(a, max(b, c)) }
