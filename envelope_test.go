// envelope_test.go - envelope ramp/rate advance tests

package sw10

import "testing"

func TestEnvelopeCurveTable_Monotonic(t *testing.T) {
	for i := 1; i < len(envelopeCurveTable); i++ {
		if envelopeCurveTable[i] < envelopeCurveTable[i-1] {
			t.Fatalf("envelopeCurveTable[%d]=%d < envelopeCurveTable[%d]=%d, want non-decreasing",
				i, envelopeCurveTable[i], i-1, envelopeCurveTable[i-1])
		}
	}
	if envelopeCurveTable[0] != 0 {
		t.Errorf("envelopeCurveTable[0] = %d, want 0", envelopeCurveTable[0])
	}
	if envelopeCurveTable[len(envelopeCurveTable)-1] != 32768 {
		t.Errorf("envelopeCurveTable[last] = %d, want 32768", envelopeCurveTable[len(envelopeCurveTable)-1])
	}
}

func TestPanShift_ZeroGainAttenuates(t *testing.T) {
	if got := panShift(0); got == 0 {
		t.Error("panShift(0) must attenuate, got shift 0")
	}
}

func TestPanShift_Monotonic(t *testing.T) {
	prev := panShift(0)
	for v := int16(1); v <= 16; v++ {
		cur := panShift(v)
		if cur > prev {
			t.Fatalf("panShift(%d)=%d > panShift(%d)=%d, want non-increasing as value grows", v, cur, v-1, prev)
		}
		prev = cur
	}
}

func TestAdvanceAmplitudeRamp_SkipsInactiveVoices(t *testing.T) {
	pool := NewVoicePool()
	chans := NewChannels()
	rom, err := NewROM(zeroROM())
	if err != nil {
		t.Fatalf("NewROM: %v", err)
	}

	// Every voice starts NoteInactive; advancing must not touch any of
	// them (no panic dereferencing a zero-value ROM-backed record either).
	advanceAmplitudeRamp(pool, &chans, rom)
	for i := range pool.voices {
		if pool.voices[i].ampRampPos != 0 {
			t.Fatalf("voice %d ampRampPos = %d after advancing an all-inactive pool, want 0", i, pool.voices[i].ampRampPos)
		}
	}
}

func TestAdvanceAmplitudeRamp_StepsTowardTarget(t *testing.T) {
	pool := NewVoicePool()
	chans := NewChannels()
	rom, err := NewROM(zeroROM())
	if err != nil {
		t.Fatalf("NewROM: %v", err)
	}

	v := &pool.voices[0]
	v.NoteNumber = 60
	v.vVol = uint16(int16(8000)) // target packed into the high byte
	v.ampRampPos = 0
	v.ampRampRate = 100 // rate

	advanceAmplitudeRamp(pool, &chans, rom)

	if v.ampRampPos <= 0 {
		t.Fatalf("ampRampPos = %d after one ramp step toward a positive target, want > 0", v.ampRampPos)
	}
}

func TestAdvanceEnvelopeRate_ReachesTargetEventually(t *testing.T) {
	pool := NewVoicePool()
	chans := NewChannels()
	rom, err := NewROM(zeroROM())
	if err != nil {
		t.Fatalf("NewROM: %v", err)
	}

	v := &pool.voices[0]
	v.NoteNumber = 60
	v.pitchEnvTarget = 1000
	v.pitchEnvStep = 1000
	v.pitchEnvLevel = 0

	for i := 0; i < 4; i++ {
		advanceEnvelopeRate(pool, &chans, rom)
	}

	if v.pitchEnvLevel != v.pitchEnvTarget {
		t.Fatalf("pitchEnvLevel = %d after repeated steps, want it to reach pitchEnvTarget %d", v.pitchEnvLevel, v.pitchEnvTarget)
	}
}
