// Package key provides key event types and raw byte-stream decoding for
// the shell's input system.
//
// This package defines the fundamental types for representing keyboard
// input in a raw-mode terminal:
//
//   - Key: Identifies a keyboard key (special keys or printable runes)
//   - Event: A single decoded key press
//   - Decoder: Turns a raw byte stream, including ANSI CSI escape
//     sequences, into a stream of Events
//
// The decoder is deliberately small: it recognizes exactly the keys the
// line editor acts on. Bytes it does not understand decode to KeyUnknown
// so callers can discard them without guessing.
package key
