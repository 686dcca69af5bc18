package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenPoint is a projected vertex: pixel coordinates plus view depth
// for z-buffer testing
type screenPoint struct {
	X, Y  float64
	Depth float64
}

// fillTriangle rasterizes a flat-colored triangle with depth testing
// using a scanline sweep
func fillTriangle(img *image.RGBA, zbuffer []float64, p1, p2, p3 screenPoint, col color.RGBA) {
	// Sort vertices top to bottom
	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}
	if p2.Y > p3.Y {
		p2, p3 = p3, p2
	}
	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}

	bounds := img.Bounds()
	width := bounds.Max.X

	yStart := int(math.Max(0, math.Ceil(p1.Y)))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), math.Floor(p3.Y)))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// Collect the two span ends from the edges this scanline crosses
		var xs [2]float64
		var zs [2]float64
		n := 0

		edges := [3][2]screenPoint{{p1, p2}, {p2, p3}, {p1, p3}}
		for _, e := range edges {
			a, b := e[0], e[1]
			if a.Y == b.Y || fy < math.Min(a.Y, b.Y) || fy > math.Max(a.Y, b.Y) {
				continue
			}
			t := (fy - a.Y) / (b.Y - a.Y)
			if n < 2 {
				xs[n] = a.X + t*(b.X-a.X)
				zs[n] = a.Depth + t*(b.Depth-a.Depth)
				n++
			}
		}
		if n < 2 {
			continue
		}

		xStart, xEnd := xs[0], xs[1]
		zStart, zEnd := zs[0], zs[1]
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		xStartInt := int(math.Max(0, math.Ceil(xStart)))
		xEndInt := int(math.Min(float64(width-1), math.Floor(xEnd)))

		for x := xStartInt; x <= xEndInt; x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a depth-tested line using Bresenham's algorithm, with
// the view depth interpolated along the run. The segment is clipped to
// the image rectangle first; a vertex projected near the eye can land
// millions of pixels off-screen and must not be stepped through.
func drawLine(img *image.RGBA, zbuffer []float64, p1, p2 screenPoint, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Max.X

	p1, p2, visible := clipSegment(p1, p2, float64(width-1), float64(bounds.Max.Y-1))
	if !visible {
		return
	}

	x1, y1 := int(p1.X), int(p1.Y)
	x2, y2 := int(p2.X), int(p2.Y)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := dx
	if dy > steps {
		steps = dy
	}

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	step := 0
	for {
		if x1 >= 0 && x1 < width && y1 >= 0 && y1 < bounds.Max.Y {
			t := 0.0
			if steps > 0 {
				t = float64(step) / float64(steps)
			}
			z := p1.Depth + t*(p2.Depth-p1.Depth)

			idx := y1*width + x1
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x1, y1, col)
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
		step++
	}
}

// clipSegment clips a segment to the rectangle [0, maxX] x [0, maxY]
// (Liang-Barsky), interpolating the view depth along with the endpoints.
// Returns false when no part of the segment is inside.
func clipSegment(p1, p2 screenPoint, maxX, maxY float64) (screenPoint, screenPoint, bool) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	if !clip(-dx, p1.X) || !clip(dx, maxX-p1.X) ||
		!clip(-dy, p1.Y) || !clip(dy, maxY-p1.Y) {
		return p1, p2, false
	}

	dd := p2.Depth - p1.Depth
	a := screenPoint{X: p1.X + t0*dx, Y: p1.Y + t0*dy, Depth: p1.Depth + t0*dd}
	b := screenPoint{X: p1.X + t1*dx, Y: p1.Y + t1*dy, Depth: p1.Depth + t1*dd}
	return a, b, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
