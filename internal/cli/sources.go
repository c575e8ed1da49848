package cli

import (
	"fmt"
	"io"
	"os"
)

// stdinName is the display name used for statements read from stdin.
const stdinName = "<stdin>"

// Source is one SQL script to process, from a file or stdin.
type Source struct {
	Name  string
	Text  string
	Stdin bool
}

// ReadSources resolves command arguments into script sources. No
// arguments or a single "-" reads stdin; stdin may only be read once.
// Unreadable files are returned as errors so callers can keep
// processing the remaining sources.
func ReadSources(stdin io.Reader, args []string) ([]Source, []error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var (
		sources   []Source
		errs      []error
		stdinSeen bool
	)
	for _, arg := range args {
		if arg == "-" {
			if stdinSeen {
				errs = append(errs, fmt.Errorf("stdin may only be read once"))
				continue
			}
			stdinSeen = true
			text, err := io.ReadAll(stdin)
			if err != nil {
				errs = append(errs, fmt.Errorf("failed to read stdin: %w", err))
				continue
			}
			sources = append(sources, Source{Name: stdinName, Text: string(text), Stdin: true})
			continue
		}

		text, err := os.ReadFile(arg)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to read %s: %w", arg, err))
			continue
		}
		sources = append(sources, Source{Name: arg, Text: string(text)})
	}
	return sources, errs
}
