package scene

// Input mapping constants. The rotation scale converts pixel deltas to
// degrees; the zoom scale converts wheel units (120 per notch) to a
// distance factor.
const (
	rotationScale = 0.4
	zoomScale     = 0.001

	minZoomFactor = 0.1
	maxZoomFactor = 5.0
	minDistance   = 10.0
	maxDistance   = 100000.0

	defaultRotX = 25.0
	defaultRotY = -40.0
)

// CameraState holds the orbit camera parameters and the last pointer
// position used to derive per-event deltas. It is mutated only by the
// UI event handlers and read by the renderer.
type CameraState struct {
	RotX     float64 // rotation about the X axis, degrees
	RotY     float64 // rotation about the Y axis, degrees
	Distance float64

	lastX, lastY int

	defaultDistance float64
}

// NewCameraState creates the camera for a freshly loaded scene
func NewCameraState(bounds Bounds) CameraState {
	return CameraState{
		RotX:            defaultRotX,
		RotY:            defaultRotY,
		Distance:        bounds.Distance,
		defaultDistance: bounds.Distance,
	}
}

// Reset restores the initial view
func (c *CameraState) Reset() {
	c.RotX = defaultRotX
	c.RotY = defaultRotY
	c.Distance = c.defaultDistance
}

// PointerPress records the pointer position; no other state changes
func (c *CameraState) PointerPress(x, y int) {
	c.lastX = x
	c.lastY = y
}

// PointerMove advances the pointer position and, while the primary button
// is held, accumulates rotation from the pixel delta. The position always
// advances so the next drag does not jump. Returns true when a redraw is
// needed.
func (c *CameraState) PointerMove(x, y int, primaryHeld bool) bool {
	dx := x - c.lastX
	dy := y - c.lastY
	c.lastX = x
	c.lastY = y

	if !primaryHeld {
		return false
	}

	c.RotX += float64(dy) * rotationScale
	c.RotY += float64(dx) * rotationScale
	return true
}

// Zoom applies one wheel event. delta is the signed scroll amount in
// wheel units; positive (scroll up/away) zooms in. Returns true when a
// redraw is needed.
func (c *CameraState) Zoom(delta float64) bool {
	factor := 1.0 - delta*zoomScale
	if factor < minZoomFactor {
		factor = minZoomFactor
	}
	if factor > maxZoomFactor {
		factor = maxZoomFactor
	}

	c.Distance *= factor
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
	if c.Distance > maxDistance {
		c.Distance = maxDistance
	}
	return true
}
