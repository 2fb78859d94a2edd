package main

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/saylorsolutions/impass/pkg/passhash"
)

var _ passhash.Primitive = (*spinningPrimitive)(nil)

// spinningPrimitive shows a spinner while the wrapped Primitive works, since bcrypt at the default cost takes a few seconds.
type spinningPrimitive struct {
	passhash.Primitive
	out io.Writer
}

func withSpinner(p passhash.Primitive, out io.Writer) passhash.Primitive {
	return &spinningPrimitive{Primitive: p, out: out}
}

func (s *spinningPrimitive) start(suffix string) *spinner.Spinner {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(s.out),
		spinner.WithSuffix(suffix),
	)
	sp.Start()
	return sp
}

func (s *spinningPrimitive) Hash(text string) (string, error) {
	sp := s.start(" Hashing password...")
	defer sp.Stop()
	return s.Primitive.Hash(text)
}

func (s *spinningPrimitive) Verify(candidate, token string) (bool, error) {
	sp := s.start(" Verifying password...")
	defer sp.Stop()
	return s.Primitive.Verify(candidate, token)
}
