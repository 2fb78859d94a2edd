package passhash

import (
	"errors"
	"fmt"

	"lukechampine.com/uint128"
)

const (
	MaxPasswordLen = 11
)

var (
	ErrPasswordFormat = errors.New("invalid password")
	ErrNonASCII       = fmt.Errorf("%w: password provided contains invalid characters, please use ASCII-only characters", ErrPasswordFormat)
	ErrTooLong        = fmt.Errorf("%w: maximum password length is %d", ErrPasswordFormat, MaxPasswordLen)
)

// Validate checks that password is ASCII-only and no longer than MaxPasswordLen.
func Validate(password string) error {
	for i := 0; i < len(password); i++ {
		if password[i] > 0x7f {
			return ErrNonASCII
		}
	}
	if len(password) > MaxPasswordLen {
		return ErrTooLong
	}
	return nil
}

// Sum validates password and collapses it into a 128-bit Jenkins one-at-a-time hash.
// All additions wrap at 128 bits.
func Sum(password string) (uint128.Uint128, error) {
	if err := Validate(password); err != nil {
		return uint128.Zero, err
	}
	var h uint128.Uint128
	for i := 0; i < len(password); i++ {
		h = h.AddWrap64(uint64(password[i]))
		h = h.AddWrap(h.Lsh(10))
		h = h.Xor(h.Rsh(6))
	}
	h = h.AddWrap(h.Lsh(3))
	h = h.Xor(h.Rsh(11))
	h = h.AddWrap(h.Lsh(15))
	return h, nil
}

// Digest returns the decimal string of Sum, which is what gets passed to a Primitive.
func Digest(password string) (string, error) {
	h, err := Sum(password)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}
