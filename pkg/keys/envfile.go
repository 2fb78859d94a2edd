package keys

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	AnswersName    = "ANSWERS"
	DefaultAnswers = "y,yes"
)

var (
	ErrInvalidEnvLine = errors.New("invalid .env line")
)

// WriteEnv writes k to w in .env format, along with the default accepted confirmation answers.
// Lines are sorted by name.
func WriteEnv(w io.Writer, k CipherKeys) error {
	env := map[string]string{
		AnswersName: DefaultAnswers,
	}
	for name, val := range k.values() {
		env[name] = val
	}
	content, err := godotenv.Marshal(env)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, content+"\n")
	return err
}

// WriteEnvFile creates (or truncates) the file at path and writes k to it with WriteEnv.
// The file is only readable by the current user, since the keys are all that's needed to reveal a secret.
func WriteEnvFile(path string, k CipherKeys) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if err := WriteEnv(f, k); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadEnv parses dotenv formatted KEY=VALUE lines from r.
func ReadEnv(r io.Reader) (map[string]string, error) {
	env, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvLine, err)
	}
	if val, ok := env[""]; ok {
		return nil, fmt.Errorf("%w: missing name for value '%s'", ErrInvalidEnvLine, val)
	}
	return env, nil
}

// LoadEnvFile reads the .env file at path.
// A missing file isn't an error, an empty map is returned instead.
func LoadEnvFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return ReadEnv(f)
}
