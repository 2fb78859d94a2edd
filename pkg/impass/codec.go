package impass

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/saylorsolutions/impass/pkg/container"
	"github.com/saylorsolutions/impass/pkg/keys"
	"github.com/saylorsolutions/impass/pkg/passhash"
	"github.com/saylorsolutions/impass/pkg/pngtail"
	"github.com/saylorsolutions/impass/pkg/scramble"
)

const (
	// MaxSecretLen is the longest secret that scrambles to at most container.MaxBlockLen bytes of base64.
	MaxSecretLen = container.MaxBlockLen / 4 * 3
)

// Codec encodes secrets into payloads and images, and decodes them again.
type Codec struct {
	keys      keys.CipherKeys
	primitive passhash.Primitive
	source    PasswordSource
	log       zerolog.Logger
}

type CodecOpt = func(*Codec) error

// WithPrimitive overrides the default bcrypt Primitive.
func WithPrimitive(p passhash.Primitive) CodecOpt {
	return func(c *Codec) error {
		if p == nil {
			return fmt.Errorf("nil password hash primitive")
		}
		c.primitive = p
		return nil
	}
}

// WithPasswordSource sets where a password comes from when decoding a protected payload without one.
func WithPasswordSource(src PasswordSource) CodecOpt {
	return func(c *Codec) error {
		c.source = src
		return nil
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(log zerolog.Logger) CodecOpt {
	return func(c *Codec) error {
		c.log = log
		return nil
	}
}

// NewCodec creates a Codec for the given keys using the options provided as zero or more CodecOpt.
// By default, passwords are hashed with bcrypt at passhash.DefaultCost and nothing is logged.
func NewCodec(k keys.CipherKeys, opts ...CodecOpt) (*Codec, error) {
	c := &Codec{
		keys: k,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.primitive == nil {
		b, err := passhash.NewBcrypt()
		if err != nil {
			return nil, err
		}
		c.primitive = b
	}
	return c, nil
}

// EncodePayload builds the payload bytes hiding secret.
// If password isn't empty, then a verification token for it is included.
func (c *Codec) EncodePayload(secret, password string) ([]byte, error) {
	var (
		p      container.Payload
		digest string
		err    error
	)
	if len(password) > 0 {
		if digest, err = passhash.Digest(password); err != nil {
			return nil, err
		}
	}
	if len(secret) > MaxSecretLen {
		return nil, fmt.Errorf("%w: %d bytes is over the limit of %d", ErrSecretTooLong, len(secret), MaxSecretLen)
	}
	if p.Secret, err = scramble.Encode(secret, c.keys); err != nil {
		return nil, err
	}

	if len(password) > 0 {
		c.log.Debug().Msg("Hashing password")
		token, err := c.primitive.Hash(digest)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHashPrimitive, err)
		}
		if p.VerifyToken, err = container.TokenBytes(token); err != nil {
			return nil, err
		}
		p.HasPassword = true
	}
	return container.Build(p)
}

// DecodePayload parses the payload at start within data, verifies the password if required, and returns the secret.
func (c *Codec) DecodePayload(data []byte, start int, password string) (string, error) {
	p, _, err := container.Parse(data, start)
	if err != nil {
		return "", err
	}
	v := NewVerifier(c.primitive, c.source, c.log)
	if err := v.Verify(p, password); err != nil {
		return "", err
	}
	return scramble.Decode(p.Secret, c.keys)
}

// EncodeImage returns a copy of image with a payload hiding secret appended after its terminal marker.
// A payload already present in image is replaced.
func (c *Codec) EncodeImage(image []byte, secret, password string) ([]byte, error) {
	if err := pngtail.CheckSignature(image); err != nil {
		return nil, err
	}
	if _, err := pngtail.FindTerminal(image); err != nil {
		return nil, err
	}
	payload, err := c.EncodePayload(secret, password)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Int("payload_len", len(payload)).Msg("Splicing payload")
	return pngtail.Splice(image, payload)
}

// DecodeImage extracts the secret hidden in image.
func (c *Codec) DecodeImage(image []byte, password string) (string, error) {
	if err := pngtail.CheckSignature(image); err != nil {
		return "", err
	}
	offset, err := pngtail.PayloadOffset(image)
	if err != nil {
		return "", err
	}
	if offset >= len(image) {
		return "", ErrNoPayload
	}
	c.log.Debug().Int("offset", offset).Msg("Reading payload")
	return c.DecodePayload(image, offset, password)
}
