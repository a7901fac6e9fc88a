// decoder_test.go - running-status MIDI byte decoder tests

package sw10

import "testing"

func newTestSynth(t *testing.T) *Synth {
	t.Helper()
	s := New()
	if err := s.SetROM(zeroROM()); err != nil {
		t.Fatalf("SetROM: %v", err)
	}
	s.PlaybackStart()
	return s
}

func feed(s *Synth, bytes ...byte) {
	for _, b := range bytes {
		s.feedMIDIByte(b)
	}
}

func TestFeedMIDIByte_NoteOnDispatchesOnThirdByte(t *testing.T) {
	s := newTestSynth(t)
	feed(s, 0x93, 60)
	if s.pool.voices[0].ChannelTimes2 != 0 {
		t.Fatalf("ChannelTimes2 = %d after only two bytes of Note On, want no dispatch yet", s.pool.voices[0].ChannelTimes2)
	}
	feed(s, 100)

	if s.pool.voices[0].ChannelTimes2 != 6 {
		t.Fatalf("ChannelTimes2 = %d after Note On channel 3, want 6", s.pool.voices[0].ChannelTimes2)
	}
}

func TestFeedMIDIByte_RunningStatusReusesEventType(t *testing.T) {
	s := newTestSynth(t)
	feed(s, 0x93, 60, 100)
	// The zero ROM frees the first voice at once, so the second Note On
	// reuses slot 0; clear its channel to see the second dispatch.
	s.pool.voices[0].ChannelTimes2 = 0
	// Running status: no repeated 0x93 status byte.
	feed(s, 62, 100)

	if s.pool.voices[0].ChannelTimes2 != 6 {
		t.Fatal("running-status Note On did not allocate a second voice on channel 3")
	}
}

func TestFeedMIDIByte_ProgramChangeDispatchesOnSecondByte(t *testing.T) {
	s := newTestSynth(t)
	feed(s, 0xC0, 5)

	if s.channels[0].Program != 5 {
		t.Fatalf("Program = %d after Program Change to 5, want 5", s.channels[0].Program)
	}
}

func TestFeedMIDIByte_NoteOnZeroVelocityIsNoteOff(t *testing.T) {
	s := newTestSynth(t)
	feed(s, 0x90, 60, 100)
	feed(s, 60, 0) // running status Note On, velocity 0 == Note Off

	v := s.pool.FindVoice(0, 60)
	if v != nil {
		t.Fatal("Note On with velocity 0 must release the voice, FindVoice should no longer see it as active")
	}
}

func TestFeedMIDIByte_SysExOverflowDropsExcessBytes(t *testing.T) {
	s := newTestSynth(t)
	feed(s, 0xF0)
	for i := 0; i < 400; i++ {
		feed(s, 0x10)
	}
	// Terminator must not panic even though far more than sysexMax data
	// bytes were fed; the decoder caps eventLength at sysexMax-1.
	feed(s, 0xF7)

	if s.decoderState.eventLength >= sysexMax {
		t.Fatalf("eventLength = %d after overflow, want capped below %d", s.decoderState.eventLength, sysexMax)
	}
}

func TestFeedMIDIByte_NoteOnAndProgramChangeBeforeROMBoundDoNotPanic(t *testing.T) {
	s := New() // SubmitEvent/Write may reach the decoder before SetROM.
	feed(s, 0xC0, 5)
	feed(s, 0x90, 60, 100)
	feed(s, 0x80, 60, 0)

	if s.channels[0].Program != 0 {
		t.Fatalf("Program = %d after Program Change with no ROM bound, want unchanged (0)", s.channels[0].Program)
	}
}

func TestFeedMIDIByte_BytesAboveF7AreDropped(t *testing.T) {
	s := newTestSynth(t)
	before := s.decoderState
	feed(s, 0xF8, 0xFA, 0xFF)
	if s.decoderState != before {
		t.Fatal("realtime bytes above 0xF7 must not alter decoder state")
	}
}
