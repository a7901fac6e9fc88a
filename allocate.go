// allocate.go - Note On/Off dispatch and voice-start initialization

package sw10

// NoteOff releases both layers of noteNumber on channel. On the drum
// channel only the Orchestra Kit's Applause note honors Note Off; every
// other drum voice plays to completion.
func NoteOff(pool *VoicePool, chans *[MIDIChannels]Channel, r *ROM, channel int32, noteNumber int32) {
	if channel == DrumChannel {
		if chans[DrumChannel].Program != orchestraKitNoteOffProgram {
			return
		}
		if noteNumber != orchestraKitNoteOffNote {
			return
		}
	}

	if v := pool.FindVoice(int16(2*channel), noteNumber); v != nil {
		voiceNoteOff(v, chans, r)
	}
	if v := pool.FindVoice(int16(2*channel+1), noteNumber); v != nil {
		voiceNoteOff(v, chans, r)
	}
}

// NoteOn allocates (stealing if necessary) and starts one voice layer for
// a channel's note. layer is 0 or 1, matching the program's two
// stacked layers.
func NoteOn(pool *VoicePool, chans *[MIDIChannels]Channel, progs *ProgramSet, r *ROM, channel int32, layer int32, noteNumber, velocity int32, outputFrequency int, velocityCurveIdx int) {
	channelTimes2 := layer + 2*channel

	v := pool.FindAvailableVoice()
	if v.NoteNumber != NoteInactive {
		voiceSoundOff(v, chans, r)
	}

	v.ChannelTimes2 = int16(channelTimes2)
	v.NoteNumber = noteNumber
	v.NoteVelocity = int16(velocity)
	startPlayingVoice(v, &chans[channel], &progs[layer], pool, chans, r, outputFrequency, velocityCurveIdx)
}

// startPlayingVoice copies a program's cached fields
// onto the voice, reads its wavetable header out of ROM bank 2, computes
// the initial phase increment from detune/coarse-tune/program pitch,
// computes velocity-mapped amplitude, resets envelope state, handles
// sostenuto/sustain hold inheritance, and resolves panpot — melodic
// voices via ROM bank 17 indexed by clamped channel+program pan, drum
// voices via ROM bank 18 indexed by note with the orchestra-kit exclusion
// scan.
func startPlayingVoice(v *Voice, ch *Channel, prog *Program, pool *VoicePool, chans *[MIDIChannels]Channel, r *ROM, outputFrequency int, velocityCurveIdx int) {
	v.Detune = prog.Detune
	v.pgmF0E = prog.field0E
	v.pgmF10 = prog.field10
	v.Index = prog.Index
	v.pgmF14 = prog.field14

	waveIdx := r.voiceGetIndex(v, chans, int32(prog.field00>>8))
	cur := r.Bank(2, int(int32(prog.field02&0xFFF)+int32(waveIdx)))

	lo := uint32(cur.ReadWord())
	w0 := cur.ReadWord()
	lo |= uint32(w0&0xFF) << 16
	v.wvFPos = lo << 10

	hi := uint32(w0 >> 8)
	w1 := cur.ReadWord()
	hi |= uint32(w1) << 8
	v.wvEnd = hi & 0x3FFFFF

	cur.ReadWord()
	hi2 := uint32(cur.ReadWord())
	w2 := cur.ReadWord()
	hi2 |= uint32(w2&0xFF) << 16
	v.wvUn1Hi = int16(w2 >> 8)
	v.wvUn1Lo = int16(w2 & 0xFF)
	v.wvStart = hi2 & 0x3FFFFF

	v.baseFreq = cur.ReadWordSigned()
	w3 := cur.ReadWord()
	v.wvUn3Lo = int16(w3 & 0xFF)
	v.decoded[3] = 0
	v.decoded[2] = 0
	v.wvPos = ((v.wvFPos &^ 0x400) >> 10) - 2
	v.wvUn3Hi = uint32(w3 >> 8)

	pitch := int32(0)
	pitchFlags := int32(prog.field02) & 0x7000
	if pitchFlags != 0x7000 {
		note := v.NoteNumber
		channel := v.ChannelTimes2 &^ 1
		if channel != 2*DrumChannel {
			c := &chans[channel>>1]
			note += c.CoarseTune
			note += (int32(v.Detune) + 128) >> 8

			if note < 12 {
				note += 12 * ((23 - note) / 12)
			}
			if note > 108 {
				note -= 12 * ((note - 97) / 12)
			}
		}

		pitch = (note - int32(v.wvUn1Hi)) << 8
		for ; pitchFlags != 0; pitchFlags -= 0x1000 {
			pitch >>= 1
		}
	}

	pitch += int32(v.baseFreq)
	pitch += int32(int8(v.Detune))
	v.baseFreq = int16(pitch)
	setFreq(v, ch, pitch, outputFrequency)
	setAmp(v, ch)

	bias := int32(prog.field18)
	mapped := velocityCurves[velocityCurveIdx][v.NoteVelocity]

	var magnitude int32
	if bias >= 0 {
		mapped = 127 - mapped
		magnitude = bias
	} else {
		magnitude = -bias
	}

	level := (127 - ((magnitude * mapped) >> 7)) + int32(prog.field1A)
	if ch.Soft() {
		level >>= 1
	}

	switch {
	case level > 127:
		v.NoteVelocity = 127
	case level <= 0:
		v.NoteVelocity = 0
	default:
		v.NoteVelocity = int16(level)
	}

	v.pitchEnvLevel = 0
	v.ampLowpass = 0
	v.ampRampPos = 0
	v.flags = 0
	v.vVol = 0
	r.setFlags(v, chans)
	r.setFlags2(v, chans)

	if ch.Sostenuto() {
		for i := 0; i < pool.maxPoly; i++ {
			o := &pool.voices[i]
			if o.NoteNumber == NoteInactive || v.NoteNumber != o.NoteNumber || o.ChannelTimes2 != v.ChannelTimes2 {
				continue
			}
			if !o.released() || !o.held() {
				continue
			}
			v.flags |= vflagHeld
			break
		}
	}

	if ch.Sustain() {
		v.flags |= vflagHeld
	}

	if v.ChannelTimes2&^1 == 2*DrumChannel {
		v.vPanpot = r.ReadWordAt(r.Bank(18, 0).Offset() + 4*v.NoteNumber)
		setPanpot(v)

		var pairs []int32
		if chans[DrumChannel].Program+128 != orchestraDrumProgram {
			pairs = drumExclusionMap[:drumExclusionOrchestra]
		} else {
			pairs = drumExclusionMap[drumExclusionOrchestra:]
		}

		for i := 0; i+1 < len(pairs) && pairs[i] != 0; i += 2 {
			if pairs[i] != v.NoteNumber {
				continue
			}
			for j := 0; j < pool.maxPoly; j++ {
				o := &pool.voices[j]
				if o.NoteNumber == pairs[i+1] && o.ChannelTimes2&^1 == 2*DrumChannel {
					o.NoteNumber = NoteInactive
				}
			}
		}
	} else {
		base := r.Bank(17, 0).Offset()
		pan := ch.Pan + int32(prog.Panpot)
		if pan > 127 {
			pan = 127
		} else if pan <= -127 {
			pan = -127
		}

		v.vPanpot = r.ReadWordAt(base + 2*pan + 256)
		setPanpot(v)
	}
}
