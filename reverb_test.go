// reverb_test.go - all-pass/comb reverb network tests

package sw10

import "testing"

func TestReverb_DisabledByDefault(t *testing.T) {
	var rv Reverb
	if rv.Enabled {
		t.Fatal("zero-value Reverb must start disabled")
	}
}

func TestReverb_DisableZeroesBuffer(t *testing.T) {
	var rv Reverb
	rv.Enable()
	rv.process(1000, -1000)
	rv.process(500, 500)

	rv.Disable()
	for i, v := range rv.buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %d after Disable, want 0", i, v)
		}
	}
}

func TestReverb_SilenceInSilenceOut(t *testing.T) {
	var rv Reverb
	rv.Enable()
	for i := 0; i < 64; i++ {
		l, r := rv.process(0, 0)
		if l != 0 || r != 0 {
			t.Fatalf("process(0,0) at step %d = (%d,%d), want (0,0)", i, l, r)
		}
	}
}

func TestReverb_IndexWrapsWithinBuffer(t *testing.T) {
	var rv Reverb
	rv.Enable()
	for i := 0; i < reverbBufferSize+10; i++ {
		rv.process(1, 1)
	}
	if rv.index >= reverbBufferSize {
		t.Fatalf("reverb index %d not masked to buffer size %d", rv.index, reverbBufferSize)
	}
}
