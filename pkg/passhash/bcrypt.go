package passhash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCost = 15
)

// Primitive is an adaptive password hash used to create and check verification tokens.
type Primitive interface {
	// Hash creates a verification token for text.
	Hash(text string) (string, error)
	// Verify reports whether candidate matches token.
	// A mismatch is reported as false with a nil error, while a non-nil error means the token couldn't be checked at all.
	Verify(candidate, token string) (bool, error)
}

var _ Primitive = (*Bcrypt)(nil)

// Bcrypt is a Primitive backed by bcrypt.
type Bcrypt struct {
	cost int
}

type BcryptOpt = func(*Bcrypt) error

// SetCost sets the bcrypt work factor from the default of DefaultCost.
// Lower costs are much faster to brute force, so only lower it for tests.
func SetCost(cost int) BcryptOpt {
	return func(b *Bcrypt) error {
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
		}
		b.cost = cost
		return nil
	}
}

// NewBcrypt creates a new Bcrypt using the options provided as zero or more BcryptOpt.
func NewBcrypt(opts ...BcryptOpt) (*Bcrypt, error) {
	b := &Bcrypt{
		cost: DefaultCost,
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Bcrypt) Cost() int {
	return b.cost
}

func (b *Bcrypt) Hash(text string) (string, error) {
	token, err := bcrypt.GenerateFromPassword([]byte(text), b.cost)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

func (b *Bcrypt) Verify(candidate, token string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(token), []byte(candidate))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
