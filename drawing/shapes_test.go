package drawing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrawRectangleTracesFourEdges(t *testing.T) {
	require := require.New(t)
	rect := Rectangle{Left: 2, Top: 2, Right: 6, Bottom: 5}

	var painted []Point
	DrawRectangle(rect, func(x, y int) { painted = append(painted, Point{x, y}) })

	require.Contains(painted, Point{2, 2})
	require.Contains(painted, Point{6, 5})
	require.Contains(painted, Point{2, 5})
	require.Contains(painted, Point{6, 2})

	for _, p := range painted {
		onVerticalEdge := p.X == rect.Left || p.X == rect.Right
		onHorizontalEdge := p.Y == rect.Top || p.Y == rect.Bottom
		require.True(onVerticalEdge || onHorizontalEdge)
	}
}

func TestFillRectanglePaintsEveryInteriorPoint(t *testing.T) {
	require := require.New(t)
	rect := Rectangle{Left: 0, Top: 0, Right: 4, Bottom: 3}

	painted := make(map[Point]bool)
	FillRectangle(rect, func(x, y int) { painted[Point{x, y}] = true })

	require.Len(painted, (rect.Right-rect.Left)*(rect.Bottom-rect.Top))
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			require.True(painted[Point{x, y}])
		}
	}
}

func TestDrawTriangleFillsOnlyInsidePoints(t *testing.T) {
	require := require.New(t)
	v0, v1, v2 := Point{5, 0}, Point{0, 9}, Point{9, 9}

	painted := make(map[Point]bool)
	DrawTriangle(v0, v1, v2, 10, 10, func(x, y int) { painted[Point{x, y}] = true })

	require.True(painted[Point{5, 8}], "a point near the triangle's base should be filled")
	require.False(painted[Point{0, 0}], "a far corner outside the triangle should not be filled")
	require.True(painted[v0])
}

func TestDrawTriangleClampsToBounds(t *testing.T) {
	require := require.New(t)
	var maxX, maxY int
	DrawTriangle(Point{-5, -5}, Point{20, 2}, Point{2, 20}, 10, 10, func(x, y int) {
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	})
	require.LessOrEqual(maxX, 9)
	require.LessOrEqual(maxY, 9)
}
