package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/mael"
	"github.com/aretw0/mael/internal/presentation/tui"
	"github.com/aretw0/mael/pkg/adapters/memory"
)

// InspectOptions contains all the configuration for the inspect command.
type InspectOptions struct {
	RepoPath    string
	Environment string
	Strict      bool
	Debug       bool
	In          io.Reader
	Out         io.Writer
}

// Inspector is a line-oriented REPL over the rendered documents of a project.
type Inspector struct {
	conv   *mael.Converter
	render func(string) (string, error)
	out    io.Writer
	sheets []memory.RenderedSheet
}

// NewInspector creates an inspector for conv. A nil render prints markdown as is.
func NewInspector(conv *mael.Converter, render func(string) (string, error), out io.Writer) *Inspector {
	if render == nil {
		render = func(s string) (string, error) { return s, nil }
	}
	return &Inspector{conv: conv, render: render, out: out}
}

// RunInspect starts the REPL until the input ends, a quit command is read or
// the process is interrupted.
func RunInspect(ctx context.Context, opts InspectOptions) error {
	logger := createLogger(opts.Debug)

	conv, err := mael.New(opts.RepoPath,
		mael.WithLogger(logger),
		mael.WithEnvironment(opts.Environment),
		mael.WithStrict(opts.Strict),
	)
	if err != nil {
		return fmt.Errorf("error initializing mael: %w", err)
	}

	tui.PrintBanner(opts.Out)
	inspector := NewInspector(conv, tui.NewRenderer(), opts.Out)
	if err := inspector.Load(ctx); err != nil {
		fmt.Fprintf(opts.Out, "Error: %v\n", err)
	}

	in := NewInterruptibleReader(opts.In, ctx.Done())
	return handleExecutionError(inspector.Run(ctx, in))
}

// Run reads commands from in until quit or end of input.
func (i *Inspector) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(i.out, "(mael) ")
		if !scanner.Scan() {
			fmt.Fprintln(i.out)
			if err := scanner.Err(); err != nil {
				return err
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if !i.Execute(ctx, fields[0], fields[1:]) {
			return nil
		}
	}
}

// Execute runs one command and reports whether the REPL should continue.
func (i *Inspector) Execute(ctx context.Context, cmd string, args []string) bool {
	switch strings.ToLower(cmd) {
	case "help", "h", "?":
		i.help()
	case "load", "l":
		if err := i.Load(ctx); err != nil {
			fmt.Fprintf(i.out, "Error: %v\n", err)
		}
	case "show", "s":
		if err := i.show(args); err != nil {
			fmt.Fprintf(i.out, "Error: %v\n", err)
		}
	case "quit", "exit", "q", "bye":
		printSystemMessage(i.out, "Bye.")
		return false
	default:
		fmt.Fprintf(i.out, "Unknown command: %s\n", cmd)
	}
	return true
}

// Load re-reads the project and lists its documents.
func (i *Inspector) Load(ctx context.Context) error {
	sheets, err := i.conv.Render(ctx)
	if err != nil {
		return err
	}
	i.sheets = sheets

	printSystemMessage(i.out, "Loaded %d document(s)", len(sheets))
	for n, sheet := range sheets {
		fmt.Fprintf(i.out, "  %d) %s (%s, %d rows)\n", n+1, sheet.Title, sheet.Source, len(sheet.Rows))
	}
	return nil
}

// Sheets returns the documents of the last load.
func (i *Inspector) Sheets() []memory.RenderedSheet {
	return i.sheets
}

func (i *Inspector) show(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: show <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(i.sheets) {
		return fmt.Errorf("no document %q (loaded: %d)", args[0], len(i.sheets))
	}
	sheet := i.sheets[n-1]

	md := fmt.Sprintf("# %s\n\n%s\n", sheet.Title, strings.Join(sheet.Summary, "\n"))
	out, err := i.render(md)
	if err != nil {
		return err
	}
	fmt.Fprint(i.out, out)
	fmt.Fprintln(i.out, tui.RenderTable(sheet.Columns, sheet.Rows))
	return nil
}

func (i *Inspector) help() {
	fmt.Fprintln(i.out, `Commands:
  help, h, ?             show this help
  load, l                reload the project and list documents
  show, s <n>            show the summary and rows of document n
  quit, exit, q, bye     leave the inspector`)
}
