// Package pngtail locates the end of PNG image data so that payloads can be appended after it.
package pngtail

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

var (
	// Signature is the 8 byte header every PNG file starts with.
	Signature = []byte{137, 80, 78, 71, 13, 10, 26, 10}
	// TerminalMarker is the empty IEND chunk (length, type, and CRC) that ends PNG image data.
	TerminalMarker = []byte{0, 0, 0, 0, 73, 69, 78, 68, 174, 66, 96, 130}
)

var (
	ErrNotPNG      = errors.New("image provided is not a PNG")
	ErrNoTerminal  = errors.New("file is not a valid PNG, no IEND marker found")
	ErrEmptyOutput = errors.New("output path is empty")
)

// CheckSignature returns ErrNotPNG if data doesn't start with the PNG Signature.
func CheckSignature(data []byte) error {
	if !bytes.HasPrefix(data, Signature) {
		return ErrNotPNG
	}
	return nil
}

// FindTerminal returns the index of the first TerminalMarker in data.
func FindTerminal(data []byte) (int, error) {
	idx := bytes.Index(data, TerminalMarker)
	if idx < 0 {
		return 0, ErrNoTerminal
	}
	return idx, nil
}

// PayloadOffset returns the offset immediately following the TerminalMarker, which is where a payload starts.
func PayloadOffset(data []byte) (int, error) {
	idx, err := FindTerminal(data)
	if err != nil {
		return 0, err
	}
	return idx + len(TerminalMarker), nil
}

// Splice returns a new buffer holding the image data in image up to and including its TerminalMarker, followed by payload.
// Anything previously appended to image is dropped.
func Splice(image, payload []byte) ([]byte, error) {
	offset, err := PayloadOffset(image)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, offset+len(payload))
	out = append(out, image[:offset]...)
	return append(out, payload...), nil
}

// ReadFile reads the file at path and ensures that it's a PNG with a TerminalMarker.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := CheckSignature(data); err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	if _, err := FindTerminal(data); err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	return data, nil
}

// WriteFile writes data to path, creating or truncating it.
func WriteFile(path string, data []byte) error {
	if len(path) == 0 {
		return ErrEmptyOutput
	}
	return os.WriteFile(path, data, 0644)
}
