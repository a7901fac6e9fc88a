// rom.go - bank-switched reader over the 2 MiB wavetable ROM image

package sw10

import (
	"encoding/binary"
	"log"
)

// ROM wraps a caller-supplied, read-only wavetable image. Once bound it is
// immutable for the synth's lifetime: no method on ROM ever mutates
// data.
type ROM struct {
	data []byte
}

// NewROM validates and wraps a ROM image. The image must be exactly
// RomSize bytes; on a non-nil error the caller keeps its previous ROM
// binding untouched.
func NewROM(data []byte) (*ROM, error) {
	if len(data) != RomSize {
		log.Printf("sw10: rejecting ROM image of %d bytes, want %d", len(data), RomSize)
		return nil, ErrBadROM
	}
	r := &ROM{data: data}
	if _, _, err := r.bankHeader(1); err != nil {
		log.Printf("sw10: rejecting ROM image with invalid bank 1 directory entry")
		return nil, err
	}
	return r, nil
}

func (r *ROM) u16(off int32) uint16 {
	return binary.LittleEndian.Uint16(r.data[off : off+2])
}

func (r *ROM) i16(off int32) int16 {
	return int16(r.u16(off))
}

// bankHeader resolves a bank number to its (recordBase, recordWidth)
// pair. Each bank directory entry is 4 bytes wide; the offset is the
// 24-bit little-endian value in bytes 1..3 of the entry, byte 0 unused.
func (r *ROM) bankHeader(bank int) (base int32, width int16, err error) {
	tableOff := int32(4*bank) + RomBankTableOffset
	if tableOff < 0 || int(tableOff)+4 > len(r.data) {
		return 0, 0, ErrBadROM
	}
	b := r.data[tableOff : tableOff+4]
	header := int32(b[1]) | int32(b[2])<<8 | int32(b[3])<<16
	if header < 0 || int(header)+4 > len(r.data) {
		return 0, 0, ErrBadROM
	}
	return header, r.i16(header + 2), nil
}

// Cursor is an explicit ROM read position: a small value held by the
// caller rather than shared mutable state. Bank resolves a logical
// (bank, index) record to its starting Cursor; ReadWord reads from and
// advances that Cursor's own copy of the offset, so two callers holding
// separate Cursors never interfere with each other.
type Cursor struct {
	rom *ROM
	pos int32
}

// Bank computes the record offset for (bank, index): header + 4 +
// index*recordWidth. The returned Cursor's ReadWord calls begin at
// that offset.
func (r *ROM) Bank(bank, index int) Cursor {
	base, width, err := r.bankHeader(bank)
	if err != nil {
		return Cursor{rom: r, pos: -1}
	}
	return Cursor{rom: r, pos: base + 4 + int32(index)*int32(width)}
}

// Valid reports whether the cursor still addresses bytes inside the ROM.
func (c Cursor) Valid() bool {
	return c.pos >= 0 && int(c.pos)+2 <= len(c.rom.data)
}

// Offset returns the cursor's current byte offset.
func (c Cursor) Offset() int32 { return c.pos }

// ReadWord reads the little-endian u16 at the cursor and advances it two
// bytes.
func (c *Cursor) ReadWord() uint16 {
	if !c.Valid() {
		return 0
	}
	v := c.rom.u16(c.pos)
	c.pos += 2
	return v
}

// ReadWordSigned is ReadWord reinterpreted as a two's-complement int16.
func (c *Cursor) ReadWordSigned() int16 {
	return int16(c.ReadWord())
}

// Seek repositions the cursor to an absolute byte offset, used when a
// record field itself encodes a ROM address (e.g. a waveform pointer).
func (c *Cursor) Seek(offset int32) {
	c.pos = offset
}

// ReadWordAt reads the little-endian i16 at an arbitrary byte offset
// without touching any cursor.
func (r *ROM) ReadWordAt(offset int32) int16 {
	if offset < 0 || int(offset)+2 > len(r.data) {
		return 0
	}
	return r.i16(offset)
}

// ByteAt reads a single byte at an arbitrary offset, used by the delta PCM
// decoder for sub-word control fields.
func (r *ROM) ByteAt(offset int32) byte {
	if offset < 0 || int(offset) >= len(r.data) {
		return 0
	}
	return r.data[offset]
}

// InBounds reports whether offset addresses a valid byte in the image.
func (r *ROM) InBounds(offset int32) bool {
	return offset >= 0 && int(offset) < len(r.data)
}
