// errors.go - error kinds for ROM binding, parameter validation, and render state

package sw10

import "errors"

// Sentinel errors returned by the Synth's Set*, bind, and render methods.
// Once a ROM is bound RenderBlock never fails; before that it writes
// silence and returns ErrBadState.
var (
	// ErrBadROM is returned when a ROM image is not exactly RomSize bytes,
	// or its bank directory points outside the image.
	ErrBadROM = errors.New("sw10: ROM image must be exactly 2 MiB and carry a valid bank directory")

	// ErrBadParameter is returned by SetFrequency/SetPolyphony/SetEffect/
	// SetVelocityCurve for an unrecognized parameter value.
	ErrBadParameter = errors.New("sw10: unrecognized parameter value")

	// ErrBadState is returned by RenderBlock when called before a ROM has
	// been bound, and by FillOutputBuffer when the ROM or its output
	// buffer is missing or the buffer cannot hold the addressed block.
	ErrBadState = errors.New("sw10: render called before ROM bound")
)
