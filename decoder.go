// decoder.go - running-status MIDI byte decoder

package sw10

// sysexMax is the buffered SysEx payload cap; bytes beyond it are
// dropped.
const sysexMax = 256

// decoderState is the running-status parser's mutable state, embedded
// directly in Synth so the whole core lives in one owning struct.
type decoderState struct {
	eventType   byte
	eventData   [sysexMax]byte
	eventLength int
	channel     int32
}

// feedMIDIByte advances the running-status decoder by one byte. Bytes
// above 0xF7 are dropped; 0xF7 terminates a buffered SysEx; any other
// status byte (0x80..0xF6) starts a new event; data bytes accumulate
// until the message's expected length is reached.
func (s *Synth) feedMIDIByte(b byte) {
	d := &s.decoderState

	if b > 0xF7 {
		return
	}

	if b == 0xF7 {
		if d.eventData[0] != 0xF0 {
			return
		}
	} else if b&0x80 != 0 {
		d.eventLength = 0
		d.eventType = b & 0xF0
		d.eventData[0] = b
		d.channel = int32(b & 0x0F)
		return
	} else {
		if d.eventLength >= sysexMax-1 {
			return
		}
		d.eventLength++
		d.eventData[d.eventLength] = b

		if d.eventData[0] == 0xF0 {
			return
		}
		if d.eventType != 0xC0 && d.eventType != 0xD0 && d.eventLength != 2 {
			return
		}
	}

	s.dispatchEvent()
	d.eventLength = 0
}

// dispatchEvent applies the fully-buffered event named by eventType.
func (s *Synth) dispatchEvent() {
	d := &s.decoderState
	ch := d.channel

	switch d.eventType {
	case 0x80: // Note Off
		if s.rom == nil {
			return
		}
		NoteOff(s.pool, &s.channels, s.rom, ch, int32(d.eventData[1]))

	case 0x90: // Note On
		if s.rom == nil {
			return
		}
		if d.eventData[2] != 0 {
			s.noteOn(ch, 0, int32(d.eventData[1]), int32(d.eventData[2]))
			if s.programs[ch][0].field02&0x8000 != 0 {
				s.noteOn(ch, 1, int32(d.eventData[1]), int32(d.eventData[2]))
			}
		} else {
			NoteOff(s.pool, &s.channels, s.rom, ch, int32(d.eventData[1]))
		}

	case 0xB0: // Control Change
		s.controlChange(ch, int32(d.eventData[1]), int32(d.eventData[2]))

	case 0xC0: // Program Change
		s.programChange(ch, int32(d.eventData[1]))

	case 0xD0: // Channel Pressure
		s.channels[ch].ChannelPressure = int(d.eventData[1])

	case 0xE0: // Pitch Bend
		s.channels[ch].PitchBend = int32(d.eventData[1]) + (int32(d.eventData[2])-64)<<7

	case 0xF0: // SysEx
		s.systemExclusive(d.eventData[:d.eventLength+1])
	}
}

// noteOn allocates and starts one voice layer.
func (s *Synth) noteOn(channel, layer, note, velocity int32) {
	NoteOn(s.pool, &s.channels, &s.programs[channel], s.rom, channel, layer, note, velocity, s.outputFrequency, s.velocityCurveIdx)
}

// programChange resolves Program Change against the drum-kit table on the
// drum channel, silently dropping non-matching values; otherwise stores
// the raw program number and reloads both layers from ROM.
func (s *Synth) programChange(channel, programNumber int32) {
	if s.rom == nil {
		return
	}
	ch := &s.channels[channel]

	if channel == DrumChannel {
		kitIndex := -1
		for i, n := range drumKitProgramNumbers {
			if int32(n) == programNumber {
				kitIndex = i
				break
			}
		}
		if kitIndex < 0 {
			return
		}
		ch.Program = kitIndex
		s.rom.ProgramChange(&s.programs[channel], kitIndex, true)
		return
	}

	ch.Program = int(programNumber)
	s.rom.ProgramChange(&s.programs[channel], int(programNumber), false)
}
