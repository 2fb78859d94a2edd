package impass

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/saylorsolutions/impass/pkg/container"
	"github.com/saylorsolutions/impass/pkg/passhash"
)

// State is the progress of a Verifier.
type State int

const (
	// Unverified is the state of a Verifier that hasn't seen a payload yet.
	Unverified State = iota
	// NoPasswordRequired means the payload isn't protected.
	NoPasswordRequired
	// AwaitingPassword means the payload is protected and a candidate is being obtained or checked.
	AwaitingPassword
	// Verified means the candidate matched the stored token.
	Verified
	// Rejected means verification failed, and the secret must not be exposed.
	Rejected
)

func (s State) String() string {
	switch s {
	case Unverified:
		return "Unverified"
	case NoPasswordRequired:
		return "NoPasswordRequired"
	case AwaitingPassword:
		return "AwaitingPassword"
	case Verified:
		return "Verified"
	case Rejected:
		return "Rejected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transitions can happen from s.
func (s State) Terminal() bool {
	return s == NoPasswordRequired || s == Verified || s == Rejected
}

// PasswordSource provides a candidate password when the caller didn't supply one, usually by prompting.
type PasswordSource interface {
	Password() (string, error)
}

// PasswordFunc adapts a function to a PasswordSource.
type PasswordFunc func() (string, error)

func (f PasswordFunc) Password() (string, error) {
	return f()
}

// FixedPassword is a PasswordSource that always answers with pass.
func FixedPassword(pass string) PasswordSource {
	return PasswordFunc(func() (string, error) {
		return pass, nil
	})
}

// Verifier checks a single candidate password against a payload's verification token.
// A Verifier is meant to be used for one decode.
type Verifier struct {
	primitive passhash.Primitive
	source    PasswordSource
	log       zerolog.Logger
	state     State
}

// NewVerifier creates a Verifier that checks candidates with primitive.
// The source may be nil, in which case protected payloads need a password passed to Verify.
func NewVerifier(primitive passhash.Primitive, source PasswordSource, log zerolog.Logger) *Verifier {
	return &Verifier{
		primitive: primitive,
		source:    source,
		log:       log,
	}
}

func (v *Verifier) State() State {
	return v.state
}

// Verify decides whether the secret in p may be exposed.
// The given password is used as the candidate if it's not empty, otherwise the PasswordSource is asked once.
func (v *Verifier) Verify(p container.Payload, password string) error {
	if !p.HasPassword {
		v.state = NoPasswordRequired
		return nil
	}
	v.state = AwaitingPassword
	v.log.Info().Msg("The file is password-protected")

	candidate, err := v.candidate(password)
	if err != nil {
		v.state = Rejected
		return err
	}
	digest, err := passhash.Digest(candidate)
	if err != nil {
		v.state = Rejected
		return err
	}

	v.log.Info().Msg("Verifying your password...")
	ok, err := v.primitive.Verify(digest, container.TokenString(p.VerifyToken))
	if err != nil {
		v.state = Rejected
		return fmt.Errorf("%w: %v", ErrHashPrimitive, err)
	}
	if !ok {
		v.state = Rejected
		return ErrPasswordMismatch
	}
	v.state = Verified
	v.log.Info().Msg("Your password matches!")
	return nil
}

func (v *Verifier) candidate(password string) (string, error) {
	if len(password) > 0 {
		v.log.Debug().Msg("Using password from config")
		return password, nil
	}
	if v.source == nil {
		return "", ErrPasswordRequired
	}
	pass, err := v.source.Password()
	if err != nil {
		return "", fmt.Errorf("failed to get password: %w", err)
	}
	return pass, nil
}
