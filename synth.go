// synth.go - Synth: the single owning struct bundling ROM, channel/program
// state, voice pool, envelope engine, reverb, and the MIDI byte queue.
// All external interaction goes through its methods; there are no
// package-level statics.

package sw10

import "encoding/binary"

// Integer-path output layout: the buffer bound with SetOutputBuffer is a
// ring of outputBufferSlots blocks addressed by the FillOutputBuffer
// counter's low 4 bits, each block holding outputBlockQuanta envelope
// quanta of interleaved stereo int16 frames.
const (
	outputBufferSlots = 16
	outputBlockQuanta = 4
)

// frequencyParams maps each accepted output sample rate to the frame
// count of one envelope-phase quantum. Only these five rates are
// accepted; anything else is ErrBadParameter.
var frequencyParams = map[int]int{
	11025: 64,
	22050: 128,
	44100: 256,
	16538: 96,
	48000: 384,
}

// Synth is a complete SW-10 core instance. Zero value is not usable; build
// one with New.
type Synth struct {
	decoderState

	rom      *ROM
	channels [MIDIChannels]Channel
	programs [MIDIChannels]ProgramSet
	pool     *VoicePool
	envelope EnvelopeEngine
	reverb   Reverb
	ring     MIDIRingBuffer

	outputFrequency  int
	outputSizePara   int
	velocityCurveIdx int
	outputBuffer     []byte

	maximumPolyphonyNewValue int
	phaseAcc                 int

	// timeSource is the millisecond clock used both to timestamp Write and
	// to measure RenderBlock's own wall-clock cost for the adaptive
	// polyphony governor. A nil source leaves both features inert.
	timeSource func() uint32
}

// New returns a Synth at GM power-on defaults, 44.1 kHz, full polyphony, and
// reverb disabled. Bind a ROM with SetROM before rendering.
func New() *Synth {
	s := &Synth{
		channels:         NewChannels(),
		pool:             NewVoicePool(),
		outputFrequency:  44100,
		outputSizePara:   256,
		velocityCurveIdx: 6,
	}
	s.maximumPolyphonyNewValue = s.pool.maxPoly
	s.phaseAcc = 0
	return s
}

// SetROM binds the wavetable image used by every subsequent Note On,
// Program Change, and render call. A nil or malformed image is rejected and
// the previous binding (if any) is left untouched.
func (s *Synth) SetROM(data []byte) error {
	r, err := NewROM(data)
	if err != nil {
		return err
	}
	s.rom = r
	for i := range s.programs {
		r.ProgramChange(&s.programs[i], 0, i == DrumChannel)
	}
	return nil
}

// SetOutputBuffer binds the byte buffer the integer render path
// (FillOutputBuffer) writes into: a 16-slot ring of interleaved stereo
// int16 little-endian blocks, one slot per call. It must hold
// 4*outputSizePara stereo frames per slot (65536 bytes for the full ring
// at 44100 Hz). An empty buffer is rejected and the previous binding
// kept. RenderBlock ignores it.
func (s *Synth) SetOutputBuffer(buf []byte) error {
	if len(buf) == 0 {
		return ErrBadParameter
	}
	s.outputBuffer = buf
	return nil
}

// SetTimeSource installs the millisecond clock used to timestamp Write
// and to evaluate the MIDI ring buffer's staleness window. Required
// before calling Write; RenderBlock works without one.
func (s *Synth) SetTimeSource(now func() uint32) {
	s.timeSource = now
}

// SetFrequency selects the output sample rate, one of 11025, 16538, 22050,
// 44100, or 48000 Hz. Changing it turns the reverb off and clears its
// buffer, and restarts the envelope-phase accumulator, since both are
// tuned in samples.
func (s *Synth) SetFrequency(hz int) error {
	quantum, ok := frequencyParams[hz]
	if !ok {
		return ErrBadParameter
	}
	s.outputFrequency = hz
	s.outputSizePara = quantum
	s.reverb.Disable()
	s.phaseAcc = 0
	return nil
}

// SetPolyphony sets the voice pool ceiling to one of the five accepted
// values.
func (s *Synth) SetPolyphony(voices int) error {
	switch voices {
	case 24, 32, 48, 64, 128:
	default:
		return ErrBadParameter
	}
	s.setMaximumPolyphony(voices)
	return nil
}

// setMaximumPolyphony resizes the pool immediately and records the new
// ceiling for the adaptive governor to restore after every RenderBlock
// call.
func (s *Synth) setMaximumPolyphony(voices int) {
	s.pool.SetMaximumVoices(voices)
	s.maximumPolyphonyNewValue = voices
}

// SetEffect selects the reverb preset: ParamEffectOff, ParamEffectStandard,
// or ParamEffectHigh.
func (s *Synth) SetEffect(code int) error {
	switch code {
	case ParamEffectOff:
		s.reverb.Disable()
	case ParamEffectStandard:
		s.reverb.Enable()
		s.reverb.SetShift(1)
	case ParamEffectHigh:
		s.reverb.Enable()
		s.reverb.SetShift(0)
	default:
		return ErrBadParameter
	}
	return nil
}

// SetVelocityCurve selects one of the 12 precomputed velocity mapping
// curves.
func (s *Synth) SetVelocityCurve(idx int) error {
	if idx < 0 || idx >= len(velocityCurves) {
		return ErrBadParameter
	}
	s.velocityCurveIdx = idx
	return nil
}

// PlaybackStart resets every channel, silences every voice, and rebinds
// program 0 on every channel, restoring power-on state.
func (s *Synth) PlaybackStart() {
	s.pool.AllVoicesSoundsOff(&s.channels, s.rom)
	for i := range s.channels {
		s.channels[i].resetFull()
	}
	if s.rom != nil {
		for i := range s.programs {
			s.rom.ProgramChange(&s.programs[i], 0, i == DrumChannel)
		}
	}
	s.decoderState = decoderState{}
	s.phaseAcc = 0
}

// PlaybackStop forces every voice into its release segment without
// otherwise disturbing channel state.
func (s *Synth) PlaybackStop() {
	s.pool.AllVoicesSoundsOff(&s.channels, s.rom)
}

// Write enqueues raw MIDI bytes for later decode by RenderBlock, timestamped
// with the installed time source. A time source must be installed
// first: bytes pushed without one are timestamped 0 and fail the ring
// buffer's staleness check on the next drain. Hosts without a clock should
// use SubmitEvent instead.
func (s *Synth) Write(data []byte) {
	var now uint32
	if s.timeSource != nil {
		now = s.timeSource()
	}
	for _, b := range data {
		s.ring.PushEvent(now, b)
	}
}

// SubmitEvent feeds one already-framed MIDI message directly into the
// decoder, bypassing the ring buffer's timestamp queue, for hosts that
// already schedule events against their own sample clock. sampleOffset is
// accepted for interface symmetry with a sequencer's per-block event list;
// the event is always applied immediately.
func (s *Synth) SubmitEvent(msg []byte, sampleOffset int) {
	for _, b := range msg {
		s.feedMIDIByte(b)
	}
}

// allSoundsOff is passed to the ring buffer as its staleness handler.
func (s *Synth) allSoundsOff() {
	s.pool.AllVoicesSoundsOff(&s.channels, s.rom)
}

// RenderBlock fills left and right with nFrames of output, returning the
// current active-voice count. Rendering before a ROM is bound zeroes the
// requested frames of both buffers and returns ErrBadState; once bound,
// rendering never fails.
func (s *Synth) RenderBlock(left, right []float64, nFrames int) (int, error) {
	if s.rom == nil {
		n := min(nFrames, len(left), len(right))
		for i := 0; i < n; i++ {
			left[i], right[i] = 0, 0
		}
		return 0, ErrBadState
	}
	if len(left) < nFrames || len(right) < nFrames {
		nFrames = min(len(left), len(right))
	}

	var now, startTime uint32
	if s.timeSource != nil {
		now = s.timeSource()
		startTime = now
	}

	offset := 0
	quant := s.outputSizePara
	if nFrames < quant {
		quant = nFrames
	}

	for offset < nFrames {
		if quant > nFrames-offset {
			quant = nFrames - offset
		}

		for b := s.ring.nextMidiByte(now, s.allSoundsOff); b != noEvent; b = s.ring.nextMidiByte(now, s.allSoundsOff) {
			s.feedMIDIByte(b)
		}

		// One envelope step per outputSizePara frames, counted across
		// quanta and across blocks so the LFO/envelope rate never depends
		// on the host's block size.
		if s.phaseAcc <= 0 {
			s.pool.defragmentVoices()
			s.envelope.Step(s.pool, &s.channels, s.rom, s.outputFrequency)
			s.phaseAcc += s.outputSizePara
		}
		s.phaseAcc -= quant

		maxActive := -1
		for i := 0; i < s.pool.maxPoly; i++ {
			if s.pool.voices[i].NoteNumber != NoteInactive {
				maxActive = i
			}
		}

		for i := 0; i < quant; i++ {
			l, r := s.renderFrame(maxActive)
			left[offset+i] = float64(l) / 32768.0
			right[offset+i] = float64(r) / 32768.0
		}

		offset += quant
		quant = s.outputSizePara
	}

	s.pool.CountActiveVoices()
	s.pool.maxPoly = s.maximumPolyphonyNewValue
	s.governPolyphony(startTime)

	return s.pool.curPoly, nil
}

// governPolyphony is the adaptive polyphony governor shared by both render
// paths: it pre-emptively shrinks the voice ceiling for the next render
// call when this one's wall-clock cost overran. The ceiling is restored to
// its last requested value before every call, so a reduction from one
// overrun never compounds into the next call's baseline.
func (s *Synth) governPolyphony(startTime uint32) {
	if s.timeSource == nil {
		return
	}
	elapsed := s.timeSource() - startTime
	switch {
	case elapsed > 300:
		s.pool.SetMaximumVoices(2)
	case elapsed >= 20:
		s.pool.SetMaximumVoices((3 * s.pool.curPoly) >> 2)
	case elapsed >= 16:
		s.pool.SetMaximumVoices((7 * s.pool.curPoly) >> 3)
	}
}

// FillOutputBuffer renders one block of outputBlockQuanta envelope quanta
// (4*outputSizePara frames) of clipped, interleaved stereo int16
// little-endian PCM into the bound output buffer's slot counter&0x0F,
// returning the active-voice count. It is the integer-path sibling of
// RenderBlock: same MIDI drain, same one-envelope-step-per-quantum
// cadence, same adaptive polyphony governor. Calling it before both a ROM
// and an output buffer are bound, or with a buffer too small for the
// addressed slot, returns ErrBadState and writes nothing.
func (s *Synth) FillOutputBuffer(counter uint32) (int, error) {
	if s.rom == nil || s.outputBuffer == nil {
		return 0, ErrBadState
	}

	blockBytes := s.outputSizePara << 4
	offset := int(counter&(outputBufferSlots-1)) * blockBytes
	if offset+blockBytes > len(s.outputBuffer) {
		return 0, ErrBadState
	}
	out := s.outputBuffer[offset : offset+blockBytes]

	var now, startTime uint32
	if s.timeSource != nil {
		now = s.timeSource()
		startTime = now
	}

	pos := 0
	for q := 0; q < outputBlockQuanta; q++ {
		for b := s.ring.nextMidiByte(now, s.allSoundsOff); b != noEvent; b = s.ring.nextMidiByte(now, s.allSoundsOff) {
			s.feedMIDIByte(b)
		}

		s.pool.defragmentVoices()
		s.envelope.Step(s.pool, &s.channels, s.rom, s.outputFrequency)

		maxActive := -1
		for i := 0; i < s.pool.maxPoly; i++ {
			if s.pool.voices[i].NoteNumber != NoteInactive {
				maxActive = i
			}
		}

		for i := 0; i < s.outputSizePara; i++ {
			l, r := s.renderFrame(maxActive)
			binary.LittleEndian.PutUint16(out[pos:], uint16(clip16(l)))
			binary.LittleEndian.PutUint16(out[pos+2:], uint16(clip16(r)))
			pos += 4
		}
	}

	s.pool.CountActiveVoices()
	s.pool.maxPoly = s.maximumPolyphonyNewValue
	s.governPolyphony(startTime)

	return s.pool.curPoly, nil
}

// clip16 saturates a mixed sample to the signed 16-bit range. Only the
// integer output path clips; the float path keeps its headroom.
func clip16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v <= -32767 {
		return -32767
	}
	return int16(v)
}

