// doc.go - package overview for the SW-10 core synthesizer

// License: GPLv3 or later

/*
Package sw10 implements the core of a software synthesizer that emulates the
CASIO SW-10 General MIDI tone generator: a running-status MIDI decoder, a
polyphonic voice allocator with envelope/LFO modulation, and a wavetable
sample generator with feedback reverb, all driven from a 2 MiB ROM image
supplied by the host.

The package is designed to be embedded in a realtime render thread. It never
allocates during RenderBlock, never blocks, and never touches a filesystem,
an audio device, or a GUI — those are the embedding host's job. See Synth
for the external interface.
*/
package sw10
