package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/saylorsolutions/impass/cmd/impass/internal/config"
	"github.com/saylorsolutions/impass/cmd/internal"
	"github.com/saylorsolutions/impass/pkg/impass"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
)

var version = "dev"

var errNoArgs = errors.New("no arguments given")

type options struct {
	help     bool
	verbose  bool
	generate bool
	input    string
	output   string
	file     string
	password string
	secret   string
	// passwordSet is true when --password was given, even if empty.
	passwordSet bool
}

// parseArgs parses command line arguments, excluding the program name.
// The returned FlagSet is usable for printing usage even when an error is returned.
func parseArgs(args []string, usageOut io.Writer) (*options, *flag.FlagSet, error) {
	opts := new(options)
	flags := flag.NewFlagSet("impass", flag.ContinueOnError)
	flags.SetOutput(usageOut)
	flags.BoolVarP(&opts.help, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enables debug logging.")
	flags.BoolVarP(&opts.generate, "generate-env", "g", false, "Writes a .env file with randomly generated cipher keys.")
	flags.StringVarP(&opts.input, "input", "i", "", "PNG image to decode a secret from.")
	flags.StringVarP(&opts.output, "output", "o", "", "PNG image to write with an encoded secret. The source image is taken from --file.")
	flags.StringVarP(&opts.file, "file", "f", "", "PNG image to read when encoding. Updated in place when --output is not given.")
	flags.StringVarP(&opts.password, "password", "p", "", "Password protecting the secret, at most 11 ASCII characters. Overrides IMPASS_PASSWORD.")
	flags.StringVarP(&opts.secret, "secret", "s", "", "Secret to encode. Prompted for when missing.")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(usageOut, `
impass (%s) hides a short secret after the end of a PNG image, optionally protected by a password.
The image still displays normally, since viewers stop reading at the IEND chunk.

USAGE:  impass -f FILE [-o OUTPUT] [-s SECRET] [-p PASSWORD]
        impass -i FILE [-p PASSWORD]
        impass -g

FLAGS:
%s
ENVIRONMENT:
    SHIFT, GODNUM, XOR    Cipher keys. These are also read from the .env file, but the process environment wins.
    IMPASS_ENV_FILE       The .env file to read keys from and to write with --generate-env. Defaults to .env
    IMPASS_PASSWORD       Default password.
    IMPASS_BCRYPT_COST    bcrypt work factor used for new passwords. Defaults to 15.
    ANSWERS               Comma separated answers accepted as "yes" for confirmations. Defaults to y,yes

SECURITY:
    The secret is obfuscated, not encrypted. Anyone with the cipher keys can read it, password or not.
The password only gates the reveal in this tool, so keep your .env file private.
`, version, flags.FlagUsages())
	}
	if len(args) == 0 {
		return nil, flags, errNoArgs
	}
	if err := flags.Parse(args); err != nil {
		return nil, flags, err
	}
	opts.passwordSet = flags.Changed("password")
	return opts, flags, nil
}

func main() {
	opts, flags, err := parseArgs(os.Args[1:], os.Stdout)
	if err != nil {
		flags.Usage()
		if errors.Is(err, errNoArgs) {
			internal.Fatal("An argument for image must be provided!")
		}
		internal.Fatal("Error parsing flags: %v", err)
	}
	if opts.help {
		flags.Usage()
		return
	}

	log := newLogger(opts.verbose)
	cfg, err := config.Load(os.Environ())
	if err != nil {
		internal.Fatal("Failed to load configuration: %v", err)
	}
	if opts.passwordSet {
		cfg.Password = opts.password
	}
	log.Debug().Str("keys", cfg.Keys.String()).Str("env_file", cfg.EnvFile).Msg("Configuration loaded")

	ask := newPrompter()
	if opts.generate {
		runGenerate(cfg, ask)
		return
	}

	codec, err := newCodec(cfg, log, ask, term.IsTerminal(int(os.Stderr.Fd())))
	if err != nil {
		internal.Fatal("Failed to set up: %v", err)
	}
	switch {
	case len(opts.input) > 0:
		secret, err := decodeFile(codec, opts.input, cfg.Password)
		if err != nil {
			fatalFor(err)
		}
		internal.Result("Secret", secret)
	case len(opts.file) > 0 || len(opts.output) > 0:
		src, dst := opts.file, opts.output
		if len(src) == 0 {
			src = dst
		}
		if len(dst) == 0 {
			dst = src
		}
		if dst != src && exists(dst) {
			ok, err := ask.Confirm(fmt.Sprintf("'%s' already exists, overwrite it?", dst), cfg.IsAffirmative)
			if err != nil {
				internal.Fatal("Failed to confirm: %v", err)
			}
			if !ok {
				internal.Echo("Leaving '%s' as it is", dst)
				return
			}
		}
		secret := opts.secret
		if len(secret) == 0 {
			secret, err = ask.Line("Enter your secret")
			if err != nil {
				internal.Fatal("Failed to read secret: %v", err)
			}
		}
		if err := encodeFile(codec, src, dst, secret, cfg.Password); err != nil {
			fatalFor(err)
		}
		internal.Echo("Secret written to '%s'", dst)
	default:
		internal.Fatal("No input or output file provided.")
	}
}

func runGenerate(cfg *config.Config, ask *prompter) {
	if exists(cfg.EnvFile) {
		ok, err := ask.Confirm(fmt.Sprintf("'%s' already exists, replace its keys?", cfg.EnvFile), cfg.IsAffirmative)
		if err != nil {
			internal.Fatal("Failed to confirm: %v", err)
		}
		if !ok {
			internal.Echo("Leaving '%s' as it is", cfg.EnvFile)
			return
		}
	}
	k, err := generateEnv(cfg.EnvFile)
	if err != nil {
		internal.Fatal("Failed to generate keys: %v", err)
	}
	internal.Echo("Wrote new keys to '%s' (%s)", cfg.EnvFile, k)
	internal.Echo("Images encoded with the previous keys can't be decoded with these.")
}

func fatalFor(err error) {
	switch {
	case errors.Is(err, impass.ErrPasswordMismatch):
		internal.Fatal("Passwords do not match")
	case errors.Is(err, impass.ErrHashPrimitive):
		internal.Fatal("Unable to verify password: %v", err)
	default:
		internal.Fatal("%v", err)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().
		Logger()
}
