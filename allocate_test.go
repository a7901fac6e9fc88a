// allocate_test.go - voice allocation/stealing and Note On/Off dispatch tests

package sw10

import "testing"

func TestFindAvailableVoice_PrefersFreeSlot(t *testing.T) {
	pool := NewVoicePool()
	v := pool.FindAvailableVoice()
	if v != &pool.voices[0] {
		t.Fatalf("expected first free slot (index 0) on a fresh pool")
	}
}

func TestFindAvailableVoice_StealsReleasedBeforeActive(t *testing.T) {
	pool := NewVoicePool()
	pool.SetMaximumVoices(4)

	for i := 0; i < 4; i++ {
		pool.voices[i].NoteNumber = int32(60 + i)
	}
	pool.voices[2].flags |= vflagReleased

	v := pool.FindAvailableVoice()
	if v != &pool.voices[2] {
		t.Fatalf("expected the released voice (index 2) to be stolen first")
	}
}

func TestFindAvailableVoice_StealsDrumChannelBeforeUnconditional(t *testing.T) {
	pool := NewVoicePool()
	pool.SetMaximumVoices(4)

	for i := 0; i < 4; i++ {
		pool.voices[i].NoteNumber = int32(60 + i)
		pool.voices[i].ChannelTimes2 = 0 // channel 0, not the drum channel
	}
	pool.voices[1].ChannelTimes2 = int16(2 * DrumChannel)

	v := pool.FindAvailableVoice()
	if v != &pool.voices[1] {
		t.Fatalf("expected the drum-channel voice (index 1) to be stolen before an unconditional steal")
	}
}

func TestFindVoice_IgnoresReleasedVoices(t *testing.T) {
	pool := NewVoicePool()
	v := &pool.voices[0]
	v.NoteNumber = 60
	v.ChannelTimes2 = 0
	v.flags |= vflagReleased

	if got := pool.FindVoice(0, 60); got != nil {
		t.Fatalf("FindVoice found a released voice, want nil")
	}
}

func TestNoteOff_DrumChannelRestrictedToOrchestraKit(t *testing.T) {
	pool := NewVoicePool()
	chans := NewChannels()
	rom, err := NewROM(zeroROM())
	if err != nil {
		t.Fatalf("NewROM: %v", err)
	}

	v := &pool.voices[0]
	v.NoteNumber = 88
	v.ChannelTimes2 = int16(2 * DrumChannel)
	chans[DrumChannel].Program = 0 // not orchestraKitNoteOffProgram (7)

	NoteOff(pool, &chans, rom, DrumChannel, 88)

	if v.released() {
		t.Fatal("Note Off on the drum channel must be ignored unless Program == orchestraKitNoteOffProgram")
	}
}

func TestNoteOff_OrchestraKitAllowsApplauseNoteOff(t *testing.T) {
	pool := NewVoicePool()
	chans := NewChannels()
	rom, err := NewROM(zeroROM())
	if err != nil {
		t.Fatalf("NewROM: %v", err)
	}

	v := &pool.voices[0]
	v.NoteNumber = orchestraKitNoteOffNote
	v.ChannelTimes2 = int16(2 * DrumChannel)
	chans[DrumChannel].Program = orchestraKitNoteOffProgram

	NoteOff(pool, &chans, rom, DrumChannel, orchestraKitNoteOffNote)

	if !v.released() {
		t.Fatal("Note Off for the Orchestra Kit's Applause note must release the voice")
	}
}

func TestNoteOff_ReleasesMatchingMelodicVoice(t *testing.T) {
	pool := NewVoicePool()
	chans := NewChannels()
	rom, err := NewROM(zeroROM())
	if err != nil {
		t.Fatalf("NewROM: %v", err)
	}

	v := &pool.voices[0]
	v.NoteNumber = 60
	v.ChannelTimes2 = 0 // channel 0, layer 0

	NoteOff(pool, &chans, rom, 0, 60)

	if !v.released() {
		t.Fatal("Note Off must release the matching active voice on a melodic channel")
	}
}

func TestNoteOn_NullROMAssignsChannelAndLayer(t *testing.T) {
	pool := NewVoicePool()
	chans := NewChannels()
	var progs ProgramSet
	rom, err := NewROM(zeroROM())
	if err != nil {
		t.Fatalf("NewROM: %v", err)
	}

	NoteOn(pool, &chans, &progs, rom, 3, 0, 64, 100, 44100, 6)

	v := &pool.voices[0]
	if v.ChannelTimes2 != 6 {
		t.Fatalf("ChannelTimes2 = %d, want 6 (channel 3, layer 0)", v.ChannelTimes2)
	}
}
