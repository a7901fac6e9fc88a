// constants.go - fixed sizes, flag bits, and host parameter codes

package sw10

const (
	// MIDIChannels is the number of MIDI channels the decoder tracks.
	MIDIChannels = 16
	// DrumChannel is the zero-based MIDI channel reserved for percussion.
	DrumChannel = 9
	// MaxVoices is the size of the voice pool; polyphony is configurable
	// up to this ceiling.
	MaxVoices = 128
	// RomSize is the required size of the bound ROM image.
	RomSize = 2 * 1024 * 1024
	// RomBankTableOffset is the byte offset of the 24-bank directory.
	RomBankTableOffset = 65588
)

// VoiceFlag bits packed into Voice.flags.
const (
	vflagSegmentMask    = 0x07 // current envelope segment index
	vflagSegmentMaskInv = 0xF8
	vflagRateMask       = 0x38 // cached segment-rate bits
	vflagRateMaskInv    = 0xC7
	vflagHeld           = 0x40 // sustain/sostenuto holding the voice past release
	vflagReleased       = 0x80 // note released (attack/release phase bit)
	vflagPhaseMask      = 0xC0
)

// ChannelFlag bits packed into Channel.flags.
const (
	chflagSostenuto = 0x2000
	chflagSoft      = 0x4000
	chflagSustain   = 0x8000
)

// Host-facing parameter codes.
const (
	ParamFrequency0 = 0 // 11025 Hz
	ParamFrequency1 = 1 // 22050 Hz
	ParamFrequency2 = 2 // 44100 Hz
	ParamFrequency3 = 3 // 16538 Hz (experimental)
	ParamFrequency4 = 4 // 48000 Hz

	ParamPolyphony24  = 0x10
	ParamPolyphony32  = 0x11
	ParamPolyphony48  = 0x12
	ParamPolyphony64  = 0x13
	ParamPolyphony128 = 0x14

	ParamEffectOff      = 0x20
	ParamEffectStandard = 0x21
	ParamEffectHigh     = 0x22

	// ParamVelocityCurveBase + [0,11] selects one of the 12 velocity curves.
	ParamVelocityCurveBase = 0x40
)

// NoteInactive marks a free voice slot.
const NoteInactive = 255

// drumExclusionOrchestra indexes into drumExclusionMap where the
// "orchestra kit" exclusion pairs begin.
const drumExclusionOrchestra = 38

// orchestraDrumProgram is the drum-bank program number (135: kit index 7
// plus ProgramChange's +128 drum-bank offset) that selects the
// orchestra-kit exclusion table instead of the default hi-hat/triangle one.
const orchestraDrumProgram = 135

// orchestraKitNoteOffProgram/Note gate Note Off on the drum channel to the
// single Orchestra Kit / Applause voice.
const (
	orchestraKitNoteOffProgram = 7
	orchestraKitNoteOffNote    = 88
)
