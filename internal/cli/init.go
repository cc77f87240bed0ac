package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/mael/internal/templates"
)

// InitOptions contains all the configuration for the init command.
type InitOptions struct {
	Dir      string
	Template string
	// Interactive enables the template prompt when Template is empty.
	Interactive bool
	In          io.Reader
	Out         io.Writer
}

// RunInit writes a project template into opts.Dir and returns the written files.
func RunInit(opts InitOptions) ([]string, error) {
	name := opts.Template
	if name == "" {
		name = templates.Normal
		if opts.Interactive {
			chosen, err := promptTemplate(opts.In, opts.Out)
			if err != nil {
				return nil, err
			}
			name = chosen
		}
	}

	written, err := templates.Copy(name, opts.Dir)
	if err != nil {
		return nil, err
	}
	printSystemMessage(opts.Out, "Initialized %s project in %s (%d files)", name, opts.Dir, len(written))
	return written, nil
}

// promptTemplate asks for a template by number or name. An empty answer picks the first one.
func promptTemplate(in io.Reader, out io.Writer) (string, error) {
	names := templates.Names()
	fmt.Fprintln(out, "Select a template:")
	for i, name := range names {
		fmt.Fprintf(out, "  %d) %s\n", i+1, name)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return names[0], nil
		}

		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			return names[0], nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(names) {
			return names[n-1], nil
		}
		for _, name := range names {
			if strings.EqualFold(answer, name) {
				return name, nil
			}
		}
		fmt.Fprintf(out, "Invalid choice: %s\n", answer)
	}
}
