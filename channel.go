// channel.go - per-channel controller and RPN/NRPN state

package sw10

// rpnUnset marks the RPN MSB/LSB selectors as "nothing selected".
const rpnUnset = 0xFF

// Channel holds the MIDI controller state for one of the 16 channels.
// Program/wavetable resolution lives in Program; a Channel only tracks
// what Control Change and Pitch Bend messages touch.
//
// CC98/99 (NRPN LSB/MSB) are recognized by the decoder but left as
// no-ops, so Channel carries only the RPN selector.
type Channel struct {
	Program int // current program number, 0..127

	Modulation      int   // CC1, 0..127
	ChannelPressure int   // 0..127
	Expression      int   // CC11, 0..127, default 127
	Volume          int   // CC7, 0..127, default 100
	PitchBend       int32 // signed 14-bit, centered at 0
	Pan             int32 // signed, -128..127, 0 centered

	flags uint32 // chflagSustain | chflagSostenuto | chflagSoft

	PitchBendSense int32 // 1/256 semitone units, default 512 (2 semitones)
	FineTune       int32 // signed
	CoarseTune     int32 // signed semitones

	rpnMSB uint8
	rpnLSB uint8

	DataEntryMSB uint8
	DataEntryLSB uint8
}

// NewChannels returns the 16 channels in their GM power-on default state.
func NewChannels() [MIDIChannels]Channel {
	var chans [MIDIChannels]Channel
	for i := range chans {
		chans[i].resetFull()
	}
	return chans
}

// Sustain, Sostenuto, Soft report the corresponding pedal's held state.
func (c *Channel) Sustain() bool   { return c.flags&chflagSustain != 0 }
func (c *Channel) Sostenuto() bool { return c.flags&chflagSostenuto != 0 }
func (c *Channel) Soft() bool      { return c.flags&chflagSoft != 0 }

func (c *Channel) setPedal(bit uint32, on bool) {
	if on {
		c.flags |= bit
	} else {
		c.flags &^= bit
	}
}

// resetFull restores every field to its GM power-on-or-reset default,
// including program, volume, pan, and tuning. Used by GM/GS reset SysEx
// and at init. Only the sustain bit of the pedal flags is cleared;
// sostenuto and soft stay as they were.
func (c *Channel) resetFull() {
	savedFlags := c.flags &^ chflagSustain
	*c = Channel{
		Program:        0,
		Expression:     127,
		Volume:         100,
		PitchBendSense: 512,
		flags:          savedFlags,
		rpnMSB:         rpnUnset,
		rpnLSB:         rpnUnset,
	}
}

// resetControllers restores what CC121 (Reset All Controllers) restores:
// modulation, pressure, expression, pitch bend, the RPN selector, and
// data entry, but not program, volume, pan, pitch-bend sensitivity, or
// tuning. As in resetFull, only the sustain bit is cleared.
func (c *Channel) resetControllers() {
	c.Modulation = 0
	c.ChannelPressure = 0
	c.Expression = 127
	c.PitchBend = 0
	c.flags &^= chflagSustain
	c.rpnMSB, c.rpnLSB = rpnUnset, rpnUnset
	c.DataEntryMSB, c.DataEntryLSB = 0, 0
}
