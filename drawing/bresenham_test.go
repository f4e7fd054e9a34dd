package drawing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBresenhamPointCount(t *testing.T) {
	cases := []struct {
		name       string
		start, end Point
	}{
		{"shallow positive", Point{0, 0}, Point{5, 3}},
		{"horizontal", Point{0, 0}, Point{10, 0}},
		{"vertical", Point{0, 0}, Point{0, 10}},
		{"diagonal", Point{0, 0}, Point{8, 8}},
		{"steep negative", Point{0, 0}, Point{3, -9}},
		{"reversed octant", Point{10, 10}, Point{-4, 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require := require.New(t)
			points := NewBresenham(c.start, c.end).Points()

			dx := c.end.X - c.start.X
			dy := c.end.Y - c.start.Y
			want := abs(dx)
			if abs(dy) > want {
				want = abs(dy)
			}
			want++

			require.Len(points, want)
			require.Equal(c.start, points[0])
			require.Equal(c.end, points[len(points)-1])

			for i := 1; i < len(points); i++ {
				ddx := abs(points[i].X - points[i-1].X)
				ddy := abs(points[i].Y - points[i-1].Y)
				require.LessOrEqual(ddx, 1)
				require.LessOrEqual(ddy, 1)
				require.True(ddx == 1 || ddy == 1, "consecutive points must move by 1 in some axis")
			}
		})
	}
}

func TestBresenhamSymmetry(t *testing.T) {
	require := require.New(t)
	start, end := Point{1, 2}, Point{13, 9}

	forward := NewBresenham(start, end).Points()
	backward := NewBresenham(end, start).Points()

	require.Len(backward, len(forward))
	for i := range forward {
		require.Equal(forward[i], backward[len(backward)-1-i])
	}
}

func TestBresenhamSpecExample(t *testing.T) {
	require := require.New(t)
	points := NewBresenham(Point{0, 0}, Point{5, 3}).Points()
	require.Equal([]Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 3}}, points)
}

func TestBresenhamSinglePoint(t *testing.T) {
	require := require.New(t)
	points := NewBresenham(Point{4, 4}, Point{4, 4}).Points()
	require.Equal([]Point{{4, 4}}, points)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
