// Package sim implements the ambient particle background: a fixed-size
// field of slow-moving points with proximity-based connection lines,
// driven either continuously or as a single static frame when the user
// prefers reduced motion.
package sim

// Surface holds the current drawable bounds of the background canvas.
// It is reconfigured by the resize handler and read by particles during
// boundary checks and by the field during initialization.
//
// Dimensions are host-guaranteed positive; the surface does not defend
// against invalid values itself.
type Surface struct {
	Width  float64
	Height float64
}

// Configure sets the drawable bounds. Callable at any time (startup and
// on every resize event); a call with unchanged dimensions is a no-op.
func (s *Surface) Configure(width, height float64) {
	s.Width = width
	s.Height = height
}
