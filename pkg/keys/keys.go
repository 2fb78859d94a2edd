package keys

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	ShiftName    = "SHIFT"
	ConstantName = "GODNUM"
	MaskName     = "XOR"

	ShiftAlias    = "shift"
	ConstantAlias = "godnum"
	MaskAlias     = "xor"

	DefaultShift    uint32 = 11
	DefaultConstant uint32 = 42
	DefaultMask     uint32 = 69
)

var (
	ErrConfig = errors.New("invalid cipher key configuration")
)

// ConfigError reports a cipher parameter override that isn't a non-negative whole number.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("number provided for %s must be a positive whole number, got '%s'", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrConfig, e.Err}
}

// CipherKeys is the resolved set of parameters used by the byte cipher.
type CipherKeys struct {
	Shift    uint32
	Constant uint32
	Mask     uint32
}

// Default returns the keys used when no overrides are given.
func Default() CipherKeys {
	return CipherKeys{
		Shift:    DefaultShift,
		Constant: DefaultConstant,
		Mask:     DefaultMask,
	}
}

// Derive produces CipherKeys from the named values in env.
// A name that is present must parse as a non-negative integer that fits in 32 bits, otherwise a *ConfigError naming the field is returned.
// A single leading '+' is accepted.
func Derive(env map[string]string) (CipherKeys, error) {
	k := Default()
	fields := []struct {
		name   string
		target *uint32
	}{
		{ShiftName, &k.Shift},
		{ConstantName, &k.Constant},
		{MaskName, &k.Mask},
	}
	for _, f := range fields {
		raw, ok := env[f.name]
		if !ok {
			continue
		}
		val, err := strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, 32)
		if err != nil {
			return CipherKeys{}, &ConfigError{Field: f.name, Value: raw, Err: err}
		}
		*f.target = uint32(val)
	}
	return k, nil
}

// Resolve derives keys from env and copies the resolved values back into env under their lowercase aliases.
// A nil env is treated as empty and left untouched.
func Resolve(env map[string]string) (CipherKeys, error) {
	k, err := Derive(env)
	if err != nil {
		return CipherKeys{}, err
	}
	if env != nil {
		for name, val := range k.Aliases() {
			env[name] = val
		}
	}
	return k, nil
}

// Aliases returns the keys as decimal strings under their lowercase alias names.
func (k CipherKeys) Aliases() map[string]string {
	return map[string]string{
		ShiftAlias:    decimal(k.Shift),
		ConstantAlias: decimal(k.Constant),
		MaskAlias:     decimal(k.Mask),
	}
}

func (k CipherKeys) values() map[string]string {
	return map[string]string{
		ShiftName:    decimal(k.Shift),
		ConstantName: decimal(k.Constant),
		MaskName:     decimal(k.Mask),
	}
}

func decimal(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func (k CipherKeys) String() string {
	return fmt.Sprintf("%s=%d %s=%d %s=%d", ShiftName, k.Shift, ConstantName, k.Constant, MaskName, k.Mask)
}
