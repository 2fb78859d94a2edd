package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
)

const (
	flagNoPassword  byte = 0
	flagHasPassword byte = 1
)

var (
	ErrTruncatedPayload      = errors.New("truncated payload")
	ErrEncodedLengthOverflow = errors.New("encoded block exceeds 255 bytes")
	ErrInvalidFlag           = errors.New("invalid password flag")
	ErrTokenAlphabet         = errors.New("verification token is not representable as single bytes")
)

// Payload is the structure appended after an image's terminal marker.
type Payload struct {
	// HasPassword indicates that VerifyToken must be checked before Secret is exposed.
	HasPassword bool
	// VerifyToken is the password verification token, only framed when HasPassword is set.
	VerifyToken []byte
	// Secret is the encoded secret.
	Secret []byte
}

type wirePayload struct {
	flag   byte
	token  []byte
	secret []byte
}

func (p *wirePayload) hasPassword() bool {
	return p.flag == flagHasPassword
}

func (p *wirePayload) checkFlag() error {
	if p.flag != flagNoPassword && p.flag != flagHasPassword {
		return fmt.Errorf("%w: %d", ErrInvalidFlag, p.flag)
	}
	return nil
}

func (p *wirePayload) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&p.flag),
		validate(p.checkFlag),
		when(p.hasPassword, block(&p.token)),
		block(&p.secret),
	)
}

// Build serializes p.
// Nothing is returned if either block is longer than MaxBlockLen.
func Build(p Payload) ([]byte, error) {
	w := &wirePayload{
		flag:   flagNoPassword,
		secret: p.Secret,
	}
	if p.HasPassword {
		w.flag = flagHasPassword
		w.token = p.VerifyToken
		if len(w.token) > MaxBlockLen {
			return nil, fmt.Errorf("%w: verification token is %d bytes", ErrEncodedLengthOverflow, len(w.token))
		}
	}
	if len(w.secret) > MaxBlockLen {
		return nil, fmt.Errorf("%w: encoded secret is %d bytes", ErrEncodedLengthOverflow, len(w.secret))
	}

	var buf bytes.Buffer
	if err := w.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse reads a Payload from data beginning at start.
// The number of bytes consumed is returned along with the Payload.
func Parse(data []byte, start int) (Payload, int, error) {
	if start < 0 || start >= len(data) {
		return Payload{}, 0, fmt.Errorf("%w: no payload at offset %d", ErrTruncatedPayload, start)
	}
	var (
		w = new(wirePayload)
		r = bytes.NewReader(data[start:])
	)
	if err := w.mapper().Read(r, binary.BigEndian); err != nil {
		switch {
		case w.checkFlag() != nil:
			return Payload{}, 0, w.checkFlag()
		case errors.Is(err, ErrTruncatedPayload):
			return Payload{}, 0, err
		default:
			return Payload{}, 0, fmt.Errorf("%w: %v", ErrTruncatedPayload, err)
		}
	}
	p := Payload{
		HasPassword: w.hasPassword(),
		VerifyToken: w.token,
		Secret:      w.secret,
	}
	return p, len(data) - start - r.Len(), nil
}

// TokenBytes converts a textual verification token into one byte per character.
// Characters above 255 can't be framed without corrupting the token, so they're rejected.
func TokenBytes(token string) ([]byte, error) {
	out := make([]byte, 0, len(token))
	for i, r := range token {
		if r > 0xff {
			return nil, fmt.Errorf("%w: character %q at %d", ErrTokenAlphabet, r, i)
		}
		out = append(out, byte(r))
	}
	return out, nil
}

// TokenString converts framed token bytes back to text, one character per byte.
func TokenString(token []byte) string {
	runes := make([]rune, len(token))
	for i, b := range token {
		runes[i] = rune(b)
	}
	return string(runes)
}
