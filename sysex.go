// sysex.go - System Exclusive recognition: GM/GS reset and CASIO
// manufacturer-specific parameter changes

package sw10

// gmReset is the canonical GM System On sequence (trailing F7 already
// stripped by the decoder's terminator handling).
var gmReset = []byte{0xF0, 0x7E, 0x7F, 0x09, 0x01}

// gsReset is the Roland GS reset sequence.
var gsReset = []byte{0xF0, 0x41, 0x10, 0x42, 0x12, 0x40, 0x00, 0x7F, 0x00, 0x41}

// casioHeader prefixes every CASIO manufacturer-specific parameter change
// recognized here; byte 4 selects the parameter.
var casioHeader = []byte{0xF0, 0x44, 0x0E, 0x03}

// systemExclusive dispatches a buffered SysEx message (F0-prefixed,
// terminator not included) against the recognized patterns. Unrecognized
// SysEx is silently dropped.
func (s *Synth) systemExclusive(data []byte) {
	if bytesHasPrefix(data, gmReset) || bytesHasPrefix(data, gsReset) {
		s.pool.AllVoicesSoundsOff(&s.channels, s.rom)
		for i := range s.channels {
			s.channels[i].resetFull()
		}
		if s.rom != nil {
			for i := range s.programs {
				s.rom.ProgramChange(&s.programs[i], 0, i == DrumChannel)
			}
		}
		return
	}

	if !bytesHasPrefix(data, casioHeader) || len(data) < 5 {
		return
	}

	switch data[4] {
	case 0x10:
		s.setMaximumPolyphony(24)
	case 0x11:
		s.setMaximumPolyphony(32)
	case 0x12:
		s.setMaximumPolyphony(48)
	case 0x13:
		s.setMaximumPolyphony(64)
	case 0x14:
		s.setMaximumPolyphony(128)

	case 0x20:
		s.reverb.Disable()
	case 0x21:
		s.reverb.Enable()
		s.reverb.SetShift(1)
	case 0x22:
		s.reverb.Enable()
		s.reverb.SetShift(0)

	default:
		if data[4] >= 0x40 && data[4] <= 0x4B {
			s.velocityCurveIdx = int(data[4] - 0x40)
		}
	}
}

func bytesHasPrefix(data, prefix []byte) bool {
	if len(data) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if data[i] != b {
			return false
		}
	}
	return true
}
