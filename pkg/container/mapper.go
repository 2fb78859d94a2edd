package container

import (
	"encoding/binary"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
)

const (
	MaxBlockLen = 255
)

var _ bin.Mapper = (*lenBlock)(nil)

// lenBlock maps a byte slice prefixed with its length as a single byte.
type lenBlock struct {
	target *[]byte
}

func block(target *[]byte) bin.Mapper {
	return &lenBlock{target: target}
}

func (b *lenBlock) Read(r io.Reader, _ binary.ByteOrder) error {
	var size [1]byte
	if _, err := io.ReadFull(r, size[:]); err != nil {
		return fmt.Errorf("%w: missing block length", ErrTruncatedPayload)
	}
	if size[0] == 0 {
		*b.target = nil
		return nil
	}
	data := make([]byte, int(size[0]))
	if n, err := io.ReadFull(r, data); err != nil {
		return fmt.Errorf("%w: block declares %d bytes, only %d remain", ErrTruncatedPayload, len(data), n)
	}
	*b.target = data
	return nil
}

func (b *lenBlock) Write(w io.Writer, _ binary.ByteOrder) error {
	data := *b.target
	if len(data) > MaxBlockLen {
		return fmt.Errorf("%w: block is %d bytes", ErrEncodedLengthOverflow, len(data))
	}
	if _, err := w.Write([]byte{byte(len(data))}); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

var _ bin.Mapper = (*condMapper)(nil)

// condMapper only maps when cond is true.
// The condition is evaluated lazily, so it may depend on fields mapped earlier in the same sequence.
type condMapper struct {
	cond   func() bool
	mapper bin.Mapper
}

func when(cond func() bool, mapper bin.Mapper) bin.Mapper {
	return &condMapper{cond: cond, mapper: mapper}
}

func (c *condMapper) Read(r io.Reader, endian binary.ByteOrder) error {
	if !c.cond() {
		return nil
	}
	return c.mapper.Read(r, endian)
}

func (c *condMapper) Write(w io.Writer, endian binary.ByteOrder) error {
	if !c.cond() {
		return nil
	}
	return c.mapper.Write(w, endian)
}

var _ bin.Mapper = (*checkMapper)(nil)

// checkMapper runs a validation step between other mappers without reading or writing anything.
type checkMapper struct {
	check func() error
}

func validate(check func() error) bin.Mapper {
	return &checkMapper{check: check}
}

func (c *checkMapper) Read(io.Reader, binary.ByteOrder) error {
	return c.check()
}

func (c *checkMapper) Write(io.Writer, binary.ByteOrder) error {
	return c.check()
}
