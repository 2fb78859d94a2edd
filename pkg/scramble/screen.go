package scramble

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/impass/pkg/keys"
)

const (
	minInvertibleShift = 8
)

var (
	ErrDegenerateShift = errors.New("cipher keys are not invertible")
)

// WithinRange folds x into the inclusive range [min, max] with modulo arithmetic.
// This is part of the keystream derivation, so it must stay 8-bit for compatibility.
func WithinRange(x, min, max uint8) uint8 {
	return x%(max-min+1) + min
}

// Forward is the keyed per-byte transform.
// All arithmetic wraps at 32 bits.
func Forward(b, shift, pepper, constant, mask uint32) uint32 {
	return (((constant + (b << shift)) ^ b) ^ mask) ^ pepper
}

// Inverse reverses Forward for the same parameters, as long as only the low byte is kept and shift is at least 8.
func Inverse(b, shift, pepper, constant, mask uint32) uint32 {
	return Forward(b^pepper, shift, pepper, constant, mask) ^ pepper
}

// EffectiveShift is the shift amount actually used by Forward for the given keys.
func EffectiveShift(k keys.CipherKeys) uint8 {
	return WithinRange(uint8(k.Shift), 1, 31)
}

// Invertible reports whether secrets encoded with k can be decoded again.
func Invertible(k keys.CipherKeys) bool {
	return EffectiveShift(k) >= minInvertibleShift
}

func pepper(idx int) uint32 {
	return uint32(WithinRange(uint8(idx), 1, 8))
}

type screen struct {
	keys  keys.CipherKeys
	shift uint32
	white byte
	cur   int
}

func newScreen(k keys.CipherKeys) (*screen, error) {
	if !Invertible(k) {
		return nil, fmt.Errorf("%w: SHIFT=%d folds to %d, which must be at least %d", ErrDegenerateShift, k.Shift, EffectiveShift(k), minInvertibleShift)
	}
	return &screen{
		keys:  k,
		shift: uint32(EffectiveShift(k)),
		white: WithinRange(uint8(k.Shift), 7, 30),
	}, nil
}

func (s *screen) forward(b byte) byte {
	out := byte(Forward(uint32(b), s.shift, pepper(s.cur), s.keys.Constant, s.keys.Mask)) ^ s.white
	s.cur++
	return out
}

func (s *screen) inverse(b byte) byte {
	out := byte(Inverse(uint32(b^s.white), s.shift, pepper(s.cur), s.keys.Constant, s.keys.Mask))
	s.cur++
	return out
}
