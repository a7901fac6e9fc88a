// program.go - program (instrument) state and Program Change resolution

package sw10

// programCount is the number of program records held live: one per
// channel, times two voice layers.
const programCount = 32

// programLayers is the number of stacked wavetable layers a single
// Program Change resolves.
const programLayers = 2

// Program holds one resolved layer of a program's wavetable parameters,
// copied out of ROM bank 1 by ProgramChange. Nine of the fourteen fields
// are rescaled from their 16-bit ROM representation down to the 8-bit
// range the voice allocator consumes.
type Program struct {
	field00 uint16
	field02 uint16
	Detune  int16
	field06 int16
	field08 int16
	Panpot  int16
	field0C int16
	field0E int16
	field10 int16
	Index   uint16
	field14 uint16
	field16 int16
	field18 int16
	field1A int16
}

// ProgramSet holds the two stacked layers a channel currently plays.
type ProgramSet [programLayers]Program

// ProgramChange resolves programNumber against ROM bank 19 to find the
// bank-1 record index, then copies and rescales both layers. The drum
// channel's programNumber must already be folded to a kit index 0..7 by
// the caller; ProgramChange itself only adds the +128 drum-bank offset
// when isDrum is set.
func (r *ROM) ProgramChange(ps *ProgramSet, programNumber int, isDrum bool) {
	if isDrum {
		programNumber = (programNumber & 7) + 128
	}

	dirCursor := r.Bank(19, 0)
	recordIndex := r.ReadWordAt(dirCursor.Offset() + 2*int32(programNumber))

	rec := r.Bank(1, int(recordIndex))
	for layer := 0; layer < programLayers; layer++ {
		p := &ps[layer]
		p.field00 = rec.ReadWord()
		p.field02 = rec.ReadWord()
		p.Detune = rec.ReadWordSigned()
		p.field06 = rec.ReadWordSigned() >> 8
		p.field08 = rec.ReadWordSigned() >> 8
		p.Panpot = rec.ReadWordSigned() >> 8
		p.field0C = rec.ReadWordSigned() >> 8
		p.field0E = rec.ReadWordSigned() >> 8
		p.field10 = rec.ReadWordSigned() >> 8
		p.Index = rec.ReadWord()
		p.field14 = rec.ReadWord()
		p.field16 = rec.ReadWordSigned() >> 8
		p.field18 = rec.ReadWordSigned() >> 8
		p.field1A = rec.ReadWordSigned() >> 8
	}
}
