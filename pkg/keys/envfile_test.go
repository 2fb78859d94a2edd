package keys

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadEnv(t *testing.T) {
	var buf bytes.Buffer
	k := CipherKeys{Shift: 9, Constant: 14, Mask: 30}
	require.NoError(t, WriteEnv(&buf, k))
	assert.Equal(t, "ANSWERS=\"y,yes\"\nGODNUM=14\nSHIFT=9\nXOR=30\n", buf.String())

	env, err := ReadEnv(&buf)
	require.NoError(t, err)
	assert.Equal(t, "y,yes", env["ANSWERS"])
	got, err := Derive(env)
	require.NoError(t, err)
	assert.Equal(t, k, got)
}

func TestReadEnv_Syntax(t *testing.T) {
	input := `
# generated keys
export SHIFT=12
GODNUM = '100'
XOR=""
`
	env, err := ReadEnv(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"SHIFT":  "12",
		"GODNUM": "100",
		"XOR":    "",
	}, env)

	_, err = ReadEnv(strings.NewReader("SHIFT"))
	assert.ErrorIs(t, err, ErrInvalidEnvLine)
	_, err = ReadEnv(strings.NewReader("=12"))
	assert.ErrorIs(t, err, ErrInvalidEnvLine)
	_, err = ReadEnv(strings.NewReader("GODNUM=\"12\nXOR=4"))
	assert.ErrorIs(t, err, ErrInvalidEnvLine, "Unterminated quote")
}

func TestReadEnv_CommentsAndEscapes(t *testing.T) {
	input := "SHIFT=12 # rotated 2026-10\nGODNUM=\"4\\\"2\"\nXOR=30#not a comment\n"
	env, err := ReadEnv(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "12", env["SHIFT"])
	assert.Equal(t, `4"2`, env["GODNUM"])
	assert.Equal(t, "30#not a comment", env["XOR"])

	k, err := Derive(map[string]string{"SHIFT": env["SHIFT"]})
	require.NoError(t, err)
	assert.Equal(t, uint32(12), k.Shift)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	env, err := LoadEnvFile(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, env)

	path := filepath.Join(dir, ".env")
	k := CipherKeys{Shift: 16, Constant: 8, Mask: 31}
	require.NoError(t, WriteEnvFile(path, k))
	env, err = LoadEnvFile(path)
	require.NoError(t, err)
	got, err := Derive(env)
	require.NoError(t, err)
	assert.Equal(t, k, got)
}
