// ringbuffer.go - lock-free SPSC MIDI byte queue with per-event timestamps

package sw10

import "sync/atomic"

// midiBufferSize is the fixed byte capacity of the queue; indices
// wrap at this power of two.
const midiBufferSize = 65536

// midiBufferMask masks a raw index down to a valid buffer offset.
const midiBufferMask = midiBufferSize - 1

// noEvent is returned by nextMidiByte when the buffer has no complete
// event to deliver.
const noEvent = 0xFF

// MIDIRingBuffer is a single-producer single-consumer byte queue where
// every payload byte is preceded by a 4-byte little-endian millisecond
// timestamp. The host (producer, possibly a different goroutine)
// calls PushEvent; the decoder (consumer, the render thread) calls
// nextMidiByte once per decode step.
type MIDIRingBuffer struct {
	buf        [midiBufferSize]byte
	writeIndex uint32
	readIndex  uint32
}

// PushEvent appends one timestamped MIDI byte. Safe to call concurrently
// with nextMidiByte from a different goroutine; not safe to call
// concurrently with itself.
func (q *MIDIRingBuffer) PushEvent(timestampMillis uint32, b byte) {
	w := atomic.LoadUint32(&q.writeIndex)
	q.buf[w&midiBufferMask] = byte(timestampMillis)
	w++
	q.buf[w&midiBufferMask] = byte(timestampMillis >> 8)
	w++
	q.buf[w&midiBufferMask] = byte(timestampMillis >> 16)
	w++
	q.buf[w&midiBufferMask] = byte(timestampMillis >> 24)
	w++
	q.buf[w&midiBufferMask] = b
	w++
	atomic.StoreUint32(&q.writeIndex, w)
}

// nextMidiByte pops and returns the next payload byte if a full 5-byte
// event is available and not stale. If the queue is empty or holds only a
// partial event, it returns noEvent and leaves the read index at the
// write index. If the event's timestamp is 600 seconds or more away from
// nowMillis (a timestamp of 0 always counts as stale), the entire queue
// is dropped and allSoundsOff is
// invoked (a clock discontinuity, e.g. host seek or suspend/resume).
func (q *MIDIRingBuffer) nextMidiByte(nowMillis uint32, allSoundsOff func()) byte {
	w := atomic.LoadUint32(&q.writeIndex)
	r := atomic.LoadUint32(&q.readIndex)
	if w == r {
		return noEvent
	}

	var eventTime uint32
	for i := 0; i < 4; i++ {
		eventTime |= uint32(q.buf[r&midiBufferMask]) << (8 * uint(i))
		r++
		if w == r {
			atomic.StoreUint32(&q.readIndex, r)
			return noEvent
		}
	}

	floor := uint32(0)
	if nowMillis >= 600000 {
		floor = nowMillis - 600000
	}
	if nowMillis+600000 <= eventTime || floor >= eventTime {
		allSoundsOff()
		atomic.StoreUint32(&q.readIndex, 0)
		atomic.StoreUint32(&q.writeIndex, 0)
		return noEvent
	}

	result := q.buf[r&midiBufferMask]
	r++
	atomic.StoreUint32(&q.readIndex, r)
	return result
}
