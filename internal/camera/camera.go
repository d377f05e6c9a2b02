// Package camera provides a smooth-follow camera over world coordinates.
package camera

// Camera tracks a target with exponential smoothing. Positions are in world
// tile units; the renderer converts to pixels with the tile size.
type Camera struct {
	X, Y float64
	// Smoothing is the follow rate per second. Higher snaps faster.
	Smoothing float64
}

// New creates a camera starting at the given position.
func New(x, y, smoothing float64) *Camera {
	return &Camera{X: x, Y: y, Smoothing: smoothing}
}

// Follow moves the camera toward the target by the smoothing fraction scaled
// with the frame delta. With a fixed target the camera converges without
// overshooting as long as smoothing*dt stays below 1.
func (c *Camera) Follow(targetX, targetY, dt float64) {
	k := c.Smoothing * dt
	if k > 1 {
		k = 1
	}
	c.X += (targetX - c.X) * k
	c.Y += (targetY - c.Y) * k
}

// WorldToScreen converts a world tile coordinate to screen pixels, with the
// camera centered in a viewport of the given pixel dimensions.
func (c *Camera) WorldToScreen(wx, wy float64, tileSize, screenW, screenH int) (float64, float64) {
	sx := (wx-c.X)*float64(tileSize) + float64(screenW)/2
	sy := (wy-c.Y)*float64(tileSize) + float64(screenH)/2
	return sx, sy
}
