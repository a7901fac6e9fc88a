// ringbuffer_test.go - lock-free SPSC MIDI byte queue tests

package sw10

import "testing"

func TestMIDIRingBuffer_PushAndDrain(t *testing.T) {
	var q MIDIRingBuffer
	q.PushEvent(100, 0x90)
	q.PushEvent(100, 60)
	q.PushEvent(100, 127)

	var got []byte
	for {
		b := q.nextMidiByte(100, func() { t.Fatal("unexpected allSoundsOff") })
		if b == noEvent {
			break
		}
		got = append(got, b)
	}

	want := []byte{0x90, 60, 127}
	if len(got) != len(want) {
		t.Fatalf("drained %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("drained %v, want %v", got, want)
		}
	}
}

func TestMIDIRingBuffer_EmptyReturnsNoEvent(t *testing.T) {
	var q MIDIRingBuffer
	if b := q.nextMidiByte(0, func() {}); b != noEvent {
		t.Fatalf("empty queue returned %#x, want noEvent", b)
	}
}

func TestMIDIRingBuffer_StaleEventTriggersAllSoundsOff(t *testing.T) {
	var q MIDIRingBuffer
	q.PushEvent(1000, 0x90)

	called := false
	b := q.nextMidiByte(1000+600001, func() { called = true })

	if !called {
		t.Fatal("stale event did not trigger allSoundsOff")
	}
	if b != noEvent {
		t.Fatalf("stale drain returned %#x, want noEvent", b)
	}
	if b2 := q.nextMidiByte(1000, func() { t.Fatal("queue should be empty after stale drop") }); b2 != noEvent {
		t.Fatalf("queue not emptied after stale drop, got %#x", b2)
	}
}

func TestMIDIRingBuffer_SingleEventDrainsThenEmpty(t *testing.T) {
	var q MIDIRingBuffer
	// A freshly-pushed single event round-trips its payload byte, after
	// which the queue reports noEvent.
	q.PushEvent(5, 0x80)
	if b := q.nextMidiByte(5, func() {}); b != 0x80 {
		t.Fatalf("got %#x, want 0x80", b)
	}
	if b := q.nextMidiByte(5, func() {}); b != noEvent {
		t.Fatalf("expected noEvent after single event drained, got %#x", b)
	}
}
