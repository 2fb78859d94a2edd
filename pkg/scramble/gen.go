package scramble

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/saylorsolutions/impass/pkg/keys"
)

const (
	selfCheckSecret = "this is my test secret"
	maxGenAttempts  = 8
)

// GenerateKeys will generate random CipherKeys with the OS entropy pool.
// Generated keys are checked by round-tripping a test secret, and regenerated if that fails.
func GenerateKeys() (keys.CipherKeys, error) {
	for i := 0; i < maxGenAttempts; i++ {
		buf := make([]byte, 3)
		n, err := rand.Read(buf)
		if n < len(buf) {
			return keys.CipherKeys{}, fmt.Errorf("failed to read random bytes: %v", err)
		}
		k := keys.CipherKeys{
			Shift:    uint32(WithinRange(buf[0], 8, 16)),
			Constant: uint32(WithinRange(buf[1], 8, 16)),
			Mask:     uint32(WithinRange(buf[2], 8, 31)),
		}
		if selfCheck(k) {
			return k, nil
		}
	}
	return keys.CipherKeys{}, errors.New("unable to generate invertible cipher keys")
}

func selfCheck(k keys.CipherKeys) bool {
	encoded, err := Encode(selfCheckSecret, k)
	if err != nil {
		return false
	}
	decoded, err := Decode(encoded, k)
	return err == nil && decoded == selfCheckSecret
}
