// Package processor wires the translation pipeline together for CLI use.
// It loads the vocabulary and clip catalogue, translates single sentences,
// batch files, or transcribed audio, and can run the HTTP service.
package processor
