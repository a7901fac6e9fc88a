// sysex_test.go - SysEx pattern recognition tests

package sw10

import "testing"

func TestSystemExclusive_GMResetRestoresDefaults(t *testing.T) {
	s := newTestSynth(t)
	s.channels[0].Volume = 20
	s.channels[0].Program = 9

	msg := append(append([]byte{}, gmReset...))
	s.systemExclusive(msg)

	if s.channels[0].Volume != 100 || s.channels[0].Program != 0 {
		t.Fatalf("channel 0 = %+v after GM reset, want GM defaults", s.channels[0])
	}
}

func TestSystemExclusive_GSResetRestoresDefaults(t *testing.T) {
	s := newTestSynth(t)
	s.channels[2].Volume = 1

	s.systemExclusive(gsReset)

	if s.channels[2].Volume != 100 {
		t.Fatalf("Volume = %d after GS reset, want 100", s.channels[2].Volume)
	}
}

func TestSystemExclusive_CasioPolyphonyParameter(t *testing.T) {
	s := newTestSynth(t)
	msg := append(append([]byte{}, casioHeader...), 0x11) // ParamPolyphony32

	s.systemExclusive(msg)

	if s.maximumPolyphonyNewValue != 32 {
		t.Fatalf("maximumPolyphonyNewValue = %d, want 32", s.maximumPolyphonyNewValue)
	}
}

func TestSystemExclusive_CasioEffectParameter(t *testing.T) {
	s := newTestSynth(t)
	msg := append(append([]byte{}, casioHeader...), 0x21) // ParamEffectStandard

	s.systemExclusive(msg)

	if !s.reverb.Enabled {
		t.Fatal("reverb must be enabled after CASIO effect parameter 0x21")
	}
}

func TestSystemExclusive_CasioVelocityCurveParameter(t *testing.T) {
	s := newTestSynth(t)
	msg := append(append([]byte{}, casioHeader...), 0x45) // curve index 5

	s.systemExclusive(msg)

	if s.velocityCurveIdx != 5 {
		t.Fatalf("velocityCurveIdx = %d, want 5", s.velocityCurveIdx)
	}
}

func TestSystemExclusive_UnrecognizedIsIgnored(t *testing.T) {
	s := newTestSynth(t)
	before := s.channels[0]

	s.systemExclusive([]byte{0xF0, 0x7D, 0x01, 0x02})

	if s.channels[0] != before {
		t.Fatal("unrecognized SysEx must not alter channel state")
	}
}

func TestSystemExclusive_GMResetBeforeROMBoundDoesNotPanic(t *testing.T) {
	s := New()
	s.channels[0].Volume = 20

	s.systemExclusive(append(append([]byte{}, gmReset...)))

	if s.channels[0].Volume != 100 {
		t.Fatalf("Volume = %d after GM reset with no ROM bound, want defaults restored", s.channels[0].Volume)
	}
}

func TestBytesHasPrefix(t *testing.T) {
	if !bytesHasPrefix([]byte{1, 2, 3, 4}, []byte{1, 2, 3}) {
		t.Error("expected prefix match")
	}
	if bytesHasPrefix([]byte{1, 2}, []byte{1, 2, 3}) {
		t.Error("shorter data must not match a longer prefix")
	}
}
