package internal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Stdout receives results that may be piped to other programs.
	Stdout io.Writer = os.Stdout
	// Stderr receives everything else.
	Stderr io.Writer = os.Stderr
)

// Fatal will Echo the message with an error prefix and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(color.RedString("[ERROR]: ")+msg, args...)
	os.Exit(1)
}

// Echo will emit the given message to Stderr without any logging formatting.
func Echo(msg string, args ...any) {
	_, _ = fmt.Fprintf(Stderr, withNewline(msg), args...)
}

// Result will emit a labeled value to Stdout.
// The value is printed verbatim, so it's never interpreted as a format string.
func Result(label, value string) {
	_, _ = fmt.Fprint(Stdout, color.GreenString(label+": "), withNewline(value))
}

func withNewline(msg string) string {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	return msg
}
