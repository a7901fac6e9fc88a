// reverb.go - fixed-coefficient all-pass + comb feedback reverb

package sw10

// reverbBufferSize is the circular reverb buffer's entry count, a power of
// two so the read pointer wraps with a mask.
const reverbBufferSize = 32768
const reverbBufferMask = reverbBufferSize - 1

// Reverb implements the 4-stage all-pass + 2-comb feedback network mixed
// into every output sample when enabled. All state is sample-domain
// fixed-point; there is no millisecond-domain tuning.
type Reverb struct {
	buf     [reverbBufferSize]int32
	index   uint32
	shift   uint32
	Enabled bool
}

// Enable turns the reverb mix on without touching its buffer contents.
func (rv *Reverb) Enable() { rv.Enabled = true }

// Disable turns the reverb off and zeroes its buffer so re-enabling
// never plays back stale tails.
func (rv *Reverb) Disable() {
	rv.Enabled = false
	for i := range rv.buf {
		rv.buf[i] = 0
	}
}

// SetShift selects between the "high" (0) and "standard" (1) reverb SysEx
// presets, attenuating the comb output by an extra bit for the
// standard preset.
func (rv *Reverb) SetShift(shift uint32) { rv.shift = shift }

// reverbAllPassStages pairs each all-pass stage's read offset with its
// write offset, relative to the current read pointer. Each stage's read
// offset trails the previous stage's write offset by one, not the same
// slot.
var reverbAllPassStages = [4][2]uint32{
	{0, 500},
	{501, 826},
	{827, 1038},
	{1039, 1176},
}

// process mixes one frame's dry (left+right) sum through the 4-stage
// all-pass chain followed by the 2-comb feedback network (offsets
// 1179/1339 and 3180/3335, feedback gains 96/256 and 97/256), returning
// the wet left/right signal for the caller to add onto the dry mix and
// advancing the read pointer by one.
func (rv *Reverb) process(left, right int32) (outLeft, outRight int32) {
	at := func(off uint32) int32 { return rv.buf[(rv.index+off)&reverbBufferMask] }
	set := func(off uint32, v int32) { rv.buf[(rv.index+off)&reverbBufferMask] = v }

	value1 := (left + right) >> 3
	for _, stage := range reverbAllPassStages {
		value2 := at(stage[0])
		set(stage[1], value1-(value2>>1))
		value1 = (value1 >> 1) + value2
	}

	value3 := value1 >> 1

	value4 := at(1177) - (96*at(1179))>>8
	set(1178, value4>>3)
	set(3177, value4+value3)

	value4 = at(3178) - (97*at(3180))>>8
	set(3179, value4>>3)
	set(5118, value4+value3)

	outLeft = (at(1179) + at(3335)) >> rv.shift
	outRight = (at(1339) + at(3180)) >> rv.shift

	rv.index = (rv.index + 1) & reverbBufferMask
	return outLeft, outRight
}
