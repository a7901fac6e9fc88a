// voice.go - voice pool: allocation, note on/off, panpot, and envelope-flag
// bookkeeping shared between the phase engine and the sample generator.

package sw10

// Voice is one slot of the fixed polyphony pool. Only the first
// maximumPolyphony slots are ever allocated; slots beyond that are kept
// parked at NoteInactive.
type Voice struct {
	wvFPos  uint32 // 10-bit-fraction fixed-point wavetable position
	wvEnd   uint32 // loop-end ROM offset
	wvStart uint32 // loop-start ROM offset

	decoded [4]int32 // last four delta-decoded samples, indexed by sample parity
	wvUn3Hi uint32   // running quantization-shift accumulator
	wvPos   uint32   // ROM offset of the next delta word to decode
	vFreq   uint32   // phase increment added to wvFPos per output sample

	envelopeGain int32 // decoded envelope-curve gain for the current ramp position
	ampLowpass   int32 // one-pole smoothing state carried across render blocks
	panShiftL    int32
	panShiftR    int32
	ampSmoothed  int32 // smoothed amplitude factor used by the mixer

	NoteNumber    int32 // NoteInactive (255) marks the slot free
	NoteVelocity  int16
	ChannelTimes2 int16 // channel*2 + layer index (bit 0)
	baseFreq      int16

	flags uint32 // vflagSegmentMask|vflagRateMask|vflagHeld|vflagReleased

	pitchEnvTarget int16 // current segment's pitch-envelope target
	pitchEnvStep   int16 // per-Step delta applied toward pitchEnvTarget

	pitchEnvLevel int16  // pitch-envelope value mixed into the phase-3/7 update
	vVol          uint16 // packed segment-target byte + boundary byte

	ampRampRate int16 // per-Step delta applied toward the segment target
	ampRampPos  int16 // current envelope ramp position (0x7FFF scale)
	lfoPhase    int16 // vibrato phase accumulator, advanced on phase 0

	Detune int16
	pgmF0E int16
	pgmF10 int16
	Index  uint16
	pgmF14 uint16

	wvUn3Lo int16
	vol     int32 // expression*volume-derived level, feeds ampSmoothed
	wvUn1Lo int16
	wvUn1Hi int16
	vPanpot int16
}

// vflag phase values, named for the bit pattern they occupy in flags's top
// two bits.
const (
	vphaseAttackOrHeld = 0x00
	vphaseReleased     = vflagReleased
)

func (v *Voice) held() bool     { return v.flags&vflagHeld != 0 }
func (v *Voice) released() bool { return v.flags&vflagReleased != 0 }
func (v *Voice) segment() uint32 { return v.flags & vflagSegmentMask }

// VoicePool owns the fixed voice array plus the allocator's round-robin
// cursor.
type VoicePool struct {
	voices    [MaxVoices]Voice
	maxPoly   int
	curPoly   int
	recentIdx int
}

// NewVoicePool returns a pool with every slot parked inactive and full
// polyphony enabled.
func NewVoicePool() *VoicePool {
	p := &VoicePool{maxPoly: MaxVoices}
	for i := range p.voices {
		p.voices[i].NoteNumber = NoteInactive
	}
	return p
}

// voiceSoundOff forces the envelope into its fastest release segment and
// marks it unheld, used by All-Sounds-Off and voice stealing.
func voiceSoundOff(v *Voice, chans *[MIDIChannels]Channel, r *ROM) {
	v.ampRampRate = 0x7FFF
	v.flags &^= vflagHeld
	v.flags |= vflagReleased
	v.flags &= vflagPhaseMask
	r.setFlags2(v, chans)
	r.setFlags(v, chans)
}

// voiceNoteOff begins the release phase unless the voice is being held by
// sustain or sostenuto.
func voiceNoteOff(v *Voice, chans *[MIDIChannels]Channel, r *ROM) {
	v.flags |= vflagReleased
	if !v.held() {
		v.flags &= vflagPhaseMask
		r.setFlags2(v, chans)
		r.setFlags(v, chans)
	}
}

// AllChannelNotesOff releases (not kills) every voice on a channel, driven
// by CC123 (All Notes Off); voices held by sustain/sostenuto stay held.
func (p *VoicePool) AllChannelNotesOff(channel int32, chans *[MIDIChannels]Channel, r *ROM) {
	for i := range p.voices {
		if p.voices[i].ChannelTimes2>>1 == int16(channel) {
			voiceNoteOff(&p.voices[i], chans, r)
		}
	}
}

// AllChannelSoundsOff forces every voice on a channel into release
// immediately, ignoring sustain/sostenuto (CC120, All Sounds Off).
func (p *VoicePool) AllChannelSoundsOff(channel int32, chans *[MIDIChannels]Channel, r *ROM) {
	for i := range p.voices {
		if p.voices[i].ChannelTimes2>>1 == int16(channel) {
			voiceSoundOff(&p.voices[i], chans, r)
		}
	}
}

// AllVoicesSoundsOff is AllChannelSoundsOff over every allocated slot,
// driven by GM/GS reset, PlaybackStart/PlaybackStop, and the MIDI ring
// buffer's staleness flush.
func (p *VoicePool) AllVoicesSoundsOff(chans *[MIDIChannels]Channel, r *ROM) {
	for i := range p.voices {
		if p.voices[i].NoteNumber != NoteInactive {
			voiceSoundOff(&p.voices[i], chans, r)
		}
	}
}

// ControllerSettingsOn marks every currently-sounding, not-yet-released
// voice on a channel as held (sustain/sostenuto pedal press).
func (p *VoicePool) ControllerSettingsOn(channel int32) {
	for i := 0; i < p.maxPoly; i++ {
		v := &p.voices[i]
		if v.ChannelTimes2>>1 != int16(channel) || v.NoteNumber == NoteInactive {
			continue
		}
		if !v.released() {
			v.flags |= vflagHeld
		}
	}
}

// ControllerSettingsOff releases the hold on every voice of a channel
// (pedal release); a voice that already received Note Off while held
// now proceeds into its release segment.
func (p *VoicePool) ControllerSettingsOff(channel int32, chans *[MIDIChannels]Channel, r *ROM) {
	for i := 0; i < p.maxPoly; i++ {
		v := &p.voices[i]
		if v.ChannelTimes2>>1 != int16(channel) || v.NoteNumber == NoteInactive {
			continue
		}
		v.flags &^= vflagHeld
		if v.released() {
			v.flags &= vflagPhaseMask
			r.setFlags2(v, chans)
			r.setFlags(v, chans)
		}
	}
}

// FindAvailableVoice implements the allocator's three-tier voice-stealing
// policy: a free slot first, else the first released voice found scanning
// circularly from just after the round-robin cursor, else the first
// drum-channel voice in that same scan, else an unconditional round-robin
// steal of the slot just after the cursor.
func (p *VoicePool) FindAvailableVoice() *Voice {
	start := p.recentIdx + 1
	if start >= p.maxPoly {
		start = 0
	}

	for i := 0; i < p.maxPoly; i++ {
		if p.voices[i].NoteNumber == NoteInactive {
			p.recentIdx = i
			return &p.voices[i]
		}
	}

	for i := start; ; {
		if p.voices[i].released() {
			p.recentIdx = i
			return &p.voices[i]
		}
		i++
		if i >= p.maxPoly {
			i = 0
		}
		if i == start {
			break
		}
	}

	for i := start; ; {
		if p.voices[i].ChannelTimes2>>1 == DrumChannel {
			p.recentIdx = i
			return &p.voices[i]
		}
		i++
		if i >= p.maxPoly {
			i = 0
		}
		if i == start {
			break
		}
	}

	p.recentIdx = start
	return &p.voices[start]
}

// FindVoice returns the active, not-yet-released voice playing noteNumber
// on channelTimes2, or nil.
func (p *VoicePool) FindVoice(channelTimes2 int16, noteNumber int32) *Voice {
	for i := 0; i < p.maxPoly; i++ {
		v := &p.voices[i]
		if v.NoteNumber != NoteInactive && v.ChannelTimes2 == channelTimes2 &&
			v.NoteNumber == noteNumber && !v.released() {
			return v
		}
	}
	return nil
}

// CountActiveVoices recomputes the cached active-voice count used by the
// adaptive polyphony governor.
func (p *VoicePool) CountActiveVoices() {
	n := 0
	for i := 0; i < p.maxPoly; i++ {
		if p.voices[i].NoteNumber != NoteInactive {
			n++
		}
	}
	p.curPoly = n
}

// ReduceActiveVoices kills released voices first, starting just after the
// round-robin cursor, until the active count is at most maximumVoices;
// if that isn't enough it then kills any remaining voice in cursor order.
// maximumVoices <= 0 kills everything.
func (p *VoicePool) ReduceActiveVoices(maximumVoices int) {
	if maximumVoices >= p.maxPoly {
		return
	}
	if maximumVoices <= 0 {
		for i := 0; i < p.maxPoly; i++ {
			p.voices[i].NoteNumber = NoteInactive
		}
		p.curPoly = 0
		return
	}

	start := p.recentIdx + 1
	if start >= p.maxPoly {
		start = 0
	}

	active := 0
	for i := 0; i < p.maxPoly; i++ {
		if p.voices[i].NoteNumber != NoteInactive {
			active++
		}
	}
	if active <= maximumVoices {
		p.curPoly = active
		return
	}

	for i := start; ; {
		v := &p.voices[i]
		if v.NoteNumber != NoteInactive && v.released() {
			v.NoteNumber = NoteInactive
			active--
			if active <= maximumVoices {
				p.curPoly = active
				return
			}
		}
		i++
		if i >= p.maxPoly {
			i = 0
		}
		if i == p.recentIdx {
			break
		}
	}

	for i := start; ; {
		v := &p.voices[i]
		if v.NoteNumber != NoteInactive {
			v.NoteNumber = NoteInactive
			active--
			if active <= maximumVoices {
				break
			}
		}
		i++
		if i >= p.maxPoly {
			i = 0
		}
		if i == p.recentIdx {
			return
		}
	}
	p.curPoly = active
}

// defragmentVoices compacts active voices toward index 0, keeping the
// sample generator's per-block active-voice scan a contiguous prefix.
func (p *VoicePool) defragmentVoices() {
	j := 0
	for i := 0; i < p.maxPoly; i++ {
		if p.voices[i].NoteNumber != NoteInactive {
			continue
		}
		if j < i {
			j = i
		}
		for p.voices[j].NoteNumber == NoteInactive {
			j++
			if j >= p.maxPoly {
				return
			}
		}
		p.voices[i] = p.voices[j]
		p.voices[j].NoteNumber = NoteInactive
	}
}

// SetMaximumVoices resizes the active polyphony ceiling, stealing voices
// as needed, and parks every slot beyond the new ceiling.
func (p *VoicePool) SetMaximumVoices(maximumVoices int) {
	p.ReduceActiveVoices(maximumVoices)
	p.defragmentVoices()
	p.maxPoly = maximumVoices
	for i := maximumVoices; i < MaxVoices; i++ {
		p.voices[i].NoteNumber = NoteInactive
	}
	p.CountActiveVoices()
	p.recentIdx = 0
}

// setFreq recomputes a voice's phase increment from a pitch value already
// combined with detune/coarse-tune/envelope modulation. pitch is in the
// same 1/256-semitone units as Program.Detune; the fixed 2180 bias centers
// the combined index inside the coarse table's populated range.
func setFreq(v *Voice, ch *Channel, pitch int32, outputFrequency int) {
	value := ((ch.PitchBend * ch.PitchBendSense) >> 13) + pitch + ch.FineTune + 2180

	coarseIdx := 216 + (value >> 8)
	switch {
	case coarseIdx < 0:
		coarseIdx = 0
	case coarseIdx > 255:
		coarseIdx = 255
	}
	product := pitchCoarseTable[coarseIdx] * pitchFineTable[uint32(value)&0xFF]

	switch outputFrequency {
	case 11025:
		v.vFreq = product >> 17
	case 22050:
		v.vFreq = product >> 18
	case 44100:
		v.vFreq = product >> 19
	case 16538:
		v.vFreq = (product / 3) >> 16
	default:
		v.vFreq = uint32((uint64(product>>17) * 11025) / uint64(outputFrequency))
	}
}

// setAmp recomputes the expression/volume-derived level feeding the
// sample generator's one-pole amplitude smoother, then reapplies panpot.
func setAmp(v *Voice, ch *Channel) {
	level := int32(ch.Expression) * int32(ch.Volume)
	level = (level * level) >> 13
	v.vol = (level * int32(v.wvUn3Lo)) >> 7
	setPanpot(v)
}

// setPanpot splits the packed panpot word into independent left/right
// attenuation shift amounts.
func setPanpot(v *Voice) {
	v.panShiftR = panShift(v.vPanpot >> 8)
	v.panShiftL = panShift(v.vPanpot & 0x1F)
}

// panShift returns how many bits a channel must be attenuated by: the
// number of times 16 can be halved before dropping below value.
func panShift(value int16) int32 {
	target := int32(value)
	shift := int32(0)
	threshold := int32(16)
	for {
		if threshold < target {
			break
		}
		shift++
		threshold >>= 1
		if threshold == 0 {
			break
		}
	}
	return shift
}
