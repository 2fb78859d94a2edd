package scramble

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/saylorsolutions/impass/pkg/keys"
)

var (
	ErrInvalidEncoding = errors.New("encoded secret is not valid base64")
)

// Encode reverses secret, applies the keyed transform, and returns the base64 encoding of the result.
func Encode(secret string, k keys.CipherKeys) ([]byte, error) {
	var out bytes.Buffer
	enc := base64.NewEncoder(base64.StdEncoding, &out)
	w, err := NewWriter(enc, k)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(reverse([]byte(secret))); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decode reverses Encode given the same keys.
func Decode(encoded []byte, k keys.CipherKeys) (string, error) {
	r, err := NewReader(base64.NewDecoder(base64.StdEncoding, bytes.NewReader(encoded)), k)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return string(reverse(data)), nil
}

func reverse(data []byte) []byte {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
	return data
}
