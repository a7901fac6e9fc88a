// channel_test.go - per-channel controller state reset tests

package sw10

import "testing"

func TestNewChannels_GMDefaults(t *testing.T) {
	chans := NewChannels()
	for i, c := range chans {
		if c.Program != 0 {
			t.Errorf("channel %d: Program = %d, want 0", i, c.Program)
		}
		if c.Expression != 127 {
			t.Errorf("channel %d: Expression = %d, want 127", i, c.Expression)
		}
		if c.Volume != 100 {
			t.Errorf("channel %d: Volume = %d, want 100", i, c.Volume)
		}
		if c.PitchBendSense != 512 {
			t.Errorf("channel %d: PitchBendSense = %d, want 512", i, c.PitchBendSense)
		}
		if c.rpnMSB != rpnUnset || c.rpnLSB != rpnUnset {
			t.Errorf("channel %d: RPN selector not unset after reset", i)
		}
	}
}

func TestChannel_PedalFlags(t *testing.T) {
	var c Channel
	if c.Sustain() || c.Sostenuto() || c.Soft() {
		t.Fatal("zero-value Channel must have no pedal held")
	}

	c.setPedal(chflagSustain, true)
	if !c.Sustain() {
		t.Fatal("Sustain() false after setPedal(chflagSustain, true)")
	}
	c.setPedal(chflagSustain, false)
	if c.Sustain() {
		t.Fatal("Sustain() true after setPedal(chflagSustain, false)")
	}
}

func TestChannel_ResetFullPreservesSostenutoAndSoft(t *testing.T) {
	var c Channel
	c.setPedal(chflagSustain, true)
	c.setPedal(chflagSostenuto, true)
	c.setPedal(chflagSoft, true)

	c.resetFull()

	if c.Sustain() {
		t.Error("resetFull must clear sustain")
	}
	if !c.Sostenuto() {
		t.Error("resetFull must preserve sostenuto")
	}
	if !c.Soft() {
		t.Error("resetFull must preserve soft pedal")
	}
}

func TestChannel_ResetControllersLeavesProgramAndVolume(t *testing.T) {
	c := Channel{Program: 42, Volume: 80, Pan: 10, PitchBendSense: 700}
	c.Modulation = 99
	c.ChannelPressure = 50
	c.PitchBend = 1000

	c.resetControllers()

	if c.Program != 42 || c.Volume != 80 || c.Pan != 10 || c.PitchBendSense != 700 {
		t.Fatal("resetControllers must not touch program/volume/pan/pitch-bend sense")
	}
	if c.Modulation != 0 || c.ChannelPressure != 0 || c.PitchBend != 0 {
		t.Fatal("resetControllers must clear modulation/pressure/pitch-bend")
	}
	if c.Expression != 127 {
		t.Errorf("Expression = %d after resetControllers, want 127", c.Expression)
	}
}
