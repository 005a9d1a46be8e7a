// Package cli implements the kmerasm command line.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Globals are the flags shared by every command, plus the process wiring the
// commands report through.
type Globals struct {
	Version kong.VersionFlag `help:"Show version information"`
	Verbose bool             `short:"v" help:"Report progress while searching"`
	NoColor bool             `name:"no-color" env:"KMERASM_NO_COLOR" help:"Disable colored output"`

	Out io.Writer       `kong:"-"`
	Ctx context.Context `kong:"-"`
}

// CLI is the kmerasm command tree.
type CLI struct {
	Globals

	Kmers    KmersCmd    `cmd:"" help:"Split a sequence into k-mers"`
	Graph    GraphCmd    `cmd:"" help:"Print the overlap graph of a fragment set"`
	Paths    PathsCmd    `cmd:"" help:"List every Hamiltonian path of the overlap graph"`
	Check    CheckCmd    `cmd:"" help:"Validate a path and reconstruct its sequence"`
	Assemble AssembleCmd `cmd:"" help:"Print every distinct sequence consistent with the fragments"`
}

// Execute parses args, runs the selected command and writes its report to out.
// SIGINT and SIGTERM cancel a running path search.
func Execute(args []string, out io.Writer) error {
	var c CLI
	parser, err := kong.New(&c,
		kong.Name("kmerasm"),
		kong.Description("Reconstruct sequences from k-mer fragments by Hamiltonian path search"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": Version,
		},
		kong.Writers(out, os.Stderr),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c.Out = out
	c.Ctx = ctx

	return kctx.Run(&c.Globals)
}

func (g *Globals) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}

	return g.Out
}

func (g *Globals) context() context.Context {
	if g.Ctx == nil {
		return context.Background()
	}

	return g.Ctx
}

// paint returns a color honoring --no-color.
func (g *Globals) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if g.NoColor {
		c.DisableColor()
	}

	return c
}

func (g *Globals) success(format string, a ...any) {
	_, _ = g.paint(color.FgGreen).Fprintf(g.out(), format+"\n", a...)
}

func (g *Globals) warn(format string, a ...any) {
	_, _ = g.paint(color.FgYellow).Fprintf(g.out(), format+"\n", a...)
}

func (g *Globals) detail(format string, a ...any) {
	_, _ = g.paint(color.Faint).Fprintf(g.out(), format+"\n", a...)
}
