// voice_test.go - pitch/amplitude/panpot helper tests

package sw10

import "testing"

// TestSetFreq_ExtremePitchBendDoesNotPanic exercises the reachable
// extreme of an RPN(0,0) pitch-bend-range write combined with a
// full-scale Pitch Bend message (both legal, with no upper clamp on
// PitchBendSense), which pushes the coarse pitch table index well outside
// its 256-entry range if left unclamped.
func TestSetFreq_ExtremePitchBendDoesNotPanic(t *testing.T) {
	ch := &Channel{PitchBendSense: 32766, PitchBend: 8191}
	v := &Voice{}

	setFreq(v, ch, 0, 44100)

	if v.vFreq == 0 {
		t.Fatalf("vFreq = 0 after extreme pitch bend, want a clamped nonzero phase increment")
	}
}

func TestSetFreq_ExtremeNegativePitchBendDoesNotPanic(t *testing.T) {
	ch := &Channel{PitchBendSense: 32766, PitchBend: -8192}
	v := &Voice{}

	setFreq(v, ch, 0, 44100)
}
