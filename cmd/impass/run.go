package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/saylorsolutions/impass/cmd/impass/internal/config"
	"github.com/saylorsolutions/impass/pkg/impass"
	"github.com/saylorsolutions/impass/pkg/keys"
	"github.com/saylorsolutions/impass/pkg/passhash"
	"github.com/saylorsolutions/impass/pkg/pngtail"
	"github.com/saylorsolutions/impass/pkg/scramble"
)

func newCodec(cfg *config.Config, log zerolog.Logger, src impass.PasswordSource, spin bool) (*impass.Codec, error) {
	b, err := passhash.NewBcrypt(passhash.SetCost(cfg.BcryptCost))
	if err != nil {
		return nil, err
	}
	var prim passhash.Primitive = b
	if spin {
		prim = withSpinner(b, os.Stderr)
	}
	return impass.NewCodec(cfg.Keys,
		impass.WithPrimitive(prim),
		impass.WithPasswordSource(src),
		impass.WithLogger(log),
	)
}

// encodeFile hides secret in the PNG at src and writes the result to dst.
func encodeFile(codec *impass.Codec, src, dst, secret, password string) error {
	image, err := pngtail.ReadFile(src)
	if err != nil {
		return err
	}
	out, err := codec.EncodeImage(image, secret, password)
	if err != nil {
		return err
	}
	return pngtail.WriteFile(dst, out)
}

// decodeFile returns the secret hidden in the PNG at path.
func decodeFile(codec *impass.Codec, path, password string) (string, error) {
	image, err := pngtail.ReadFile(path)
	if err != nil {
		return "", err
	}
	return codec.DecodeImage(image, password)
}

// generateEnv writes a new .env file with random cipher keys to path.
func generateEnv(path string) (keys.CipherKeys, error) {
	k, err := scramble.GenerateKeys()
	if err != nil {
		return keys.CipherKeys{}, err
	}
	if err := keys.WriteEnvFile(path, k); err != nil {
		return keys.CipherKeys{}, fmt.Errorf("failed to write '%s': %w", path, err)
	}
	return k, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
