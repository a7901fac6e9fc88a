// Command sw10play loads a CASIO SW-10-compatible wavetable ROM image,
// plays a short demonstration note sequence through it, and streams the
// result to the default audio device. Press any key to stop early.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"
	"golang.org/x/term"

	"github.com/vlsg-go/sw10core"
)

const sampleRate = 44100

func main() {
	romPath := flag.String("rom", "", "path to a 2 MiB SW-10 wavetable ROM image")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "usage: sw10play -rom <path-to-rom-image>")
		os.Exit(2)
	}

	if err := run(*romPath); err != nil {
		fmt.Fprintln(os.Stderr, "sw10play:", err)
		os.Exit(1)
	}
}

func run(romPath string) error {
	romData, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM image: %w", err)
	}

	synth := sw10.New()
	if err := synth.SetROM(romData); err != nil {
		return fmt.Errorf("binding ROM image: %w", err)
	}
	if err := synth.SetFrequency(sampleRate); err != nil {
		return err
	}
	if err := synth.SetEffect(sw10.ParamEffectStandard); err != nil {
		return err
	}

	start := time.Now()
	synth.SetTimeSource(func() uint32 {
		return uint32(time.Since(start).Milliseconds())
	})
	synth.PlaybackStart()

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	src := &synthSource{synth: synth}
	player := ctx.NewPlayer(src)
	player.Play()
	defer player.Close()

	stop := make(chan struct{})
	go playDemoSequence(synth, stop)
	go waitForKeypress(stop)

	<-stop
	return nil
}

// playDemoSequence sends a C major scale, one note every 400ms, on channel 0
// program 0, then leaves stop untouched — the keypress watcher is what ends
// playback.
func playDemoSequence(synth *sw10.Synth, stop chan struct{}) {
	notes := []byte{60, 62, 64, 65, 67, 69, 71, 72}
	ticker := time.NewTicker(400 * time.Millisecond)
	defer ticker.Stop()

	for _, n := range notes {
		select {
		case <-stop:
			return
		case <-ticker.C:
			synth.SubmitEvent([]byte{0x90, n, 100}, 0)
			time.Sleep(300 * time.Millisecond)
			synth.SubmitEvent([]byte{0x80, n, 0}, 0)
		}
	}
}

// waitForKeypress puts stdin into raw mode and closes stop on the first
// byte read.
func waitForKeypress(stop chan struct{}) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	os.Stdin.Read(buf)
	close(stop)
}

// synthSource adapts Synth.RenderBlock to io.Reader, interleaving stereo
// float32LE samples the way oto expects.
type synthSource struct {
	synth *sw10.Synth
	left  []float64
	right []float64
}

func (s *synthSource) Read(p []byte) (int, error) {
	frames := len(p) / 8 // 2 channels * 4 bytes/float32
	if frames == 0 {
		return 0, nil
	}
	if cap(s.left) < frames {
		s.left = make([]float64, frames)
		s.right = make([]float64, frames)
	}
	left, right := s.left[:frames], s.right[:frames]

	if _, err := s.synth.RenderBlock(left, right, frames); err != nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	for i := 0; i < frames; i++ {
		putFloat32LE(p[i*8:], float32(left[i]))
		putFloat32LE(p[i*8+4:], float32(right[i]))
	}
	return frames * 8, nil
}

func putFloat32LE(b []byte, f float32) {
	bits := math.Float32bits(f)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
