package main

import (
	"bufio"
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/saylorsolutions/impass/cmd/impass/internal/config"
	"github.com/saylorsolutions/impass/pkg/impass"
	"github.com/saylorsolutions/impass/pkg/keys"
	"github.com/saylorsolutions/impass/pkg/passhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load([]string{
		"IMPASS_ENV_FILE=" + filepath.Join(t.TempDir(), ".env"),
		"IMPASS_BCRYPT_COST=4",
	})
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cfg.BcryptCost)
	return cfg
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))
	path := filepath.Join(t.TempDir(), "image.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestEncodeDecodeFile(t *testing.T) {
	cfg := testConfig(t)
	codec, err := newCodec(cfg, zerolog.Nop(), impass.FixedPassword(""), false)
	require.NoError(t, err)

	src := writeTestImage(t)
	dst := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, encodeFile(codec, src, dst, "hello world!", ""))

	secret, err := decodeFile(codec, dst, "")
	require.NoError(t, err)
	assert.Equal(t, "hello world!", secret)

	_, err = decodeFile(codec, src, "")
	assert.ErrorIs(t, err, impass.ErrNoPayload, "Source image should be untouched")
}

func TestEncodeDecodeFile_InPlace(t *testing.T) {
	cfg := testConfig(t)
	codec, err := newCodec(cfg, zerolog.Nop(), impass.FixedPassword("wrongpass"), false)
	require.NoError(t, err)

	path := writeTestImage(t)
	require.NoError(t, encodeFile(codec, path, path, "first", "Pa$_swOrd"))
	require.NoError(t, encodeFile(codec, path, path, "second", "Pa$_swOrd"))

	secret, err := decodeFile(codec, path, "Pa$_swOrd")
	require.NoError(t, err)
	assert.Equal(t, "second", secret)

	_, err = decodeFile(codec, path, "")
	assert.ErrorIs(t, err, impass.ErrPasswordMismatch, "Prompted password is wrong")
}

func TestDecodeFile_Missing(t *testing.T) {
	cfg := testConfig(t)
	codec, err := newCodec(cfg, zerolog.Nop(), nil, false)
	require.NoError(t, err)
	_, err = decodeFile(codec, filepath.Join(t.TempDir(), "nope.png"), "")
	assert.Error(t, err)
}

func TestGenerateEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	assert.False(t, exists(path))
	k, err := generateEnv(path)
	require.NoError(t, err)
	assert.True(t, exists(path))

	env, err := keys.LoadEnvFile(path)
	require.NoError(t, err)
	loaded, err := keys.Derive(env)
	require.NoError(t, err)
	assert.Equal(t, k, loaded)

	cfg, err := config.Load([]string{"IMPASS_ENV_FILE=" + path})
	require.NoError(t, err)
	assert.Equal(t, k, cfg.Keys)
}

func TestPrompter(t *testing.T) {
	var out bytes.Buffer
	p := &prompter{
		in:  bufio.NewReader(strings.NewReader("  my secret \nYES\nnope\nlast")),
		out: &out,
		fd:  -1,
	}
	line, err := p.Line("Enter your secret")
	require.NoError(t, err)
	assert.Equal(t, "my secret", line)
	assert.Equal(t, "Enter your secret: ", out.String())

	accept := func(s string) bool { return strings.EqualFold(s, "yes") }
	ok, err := p.Confirm("Overwrite?", accept)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = p.Confirm("Overwrite?", accept)
	require.NoError(t, err)
	assert.False(t, ok)

	pass, err := p.Password()
	require.NoError(t, err)
	assert.Equal(t, "last", pass, "Input without a trailing newline is still accepted")

	_, err = p.Line("Anything else")
	assert.ErrorIs(t, err, io.EOF)
}

func TestSpinningPrimitive(t *testing.T) {
	b, err := passhash.NewBcrypt(passhash.SetCost(bcrypt.MinCost))
	require.NoError(t, err)
	p := withSpinner(b, io.Discard)

	token, err := p.Hash("asdasd")
	require.NoError(t, err)
	ok, err := p.Verify("asdasd", token)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = p.Verify("wrongpass", token)
	require.NoError(t, err)
	assert.False(t, ok)
}
