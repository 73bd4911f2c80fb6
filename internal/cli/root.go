// Package cli is the sbbctl command tree: batch rendering and management of
// the stored embed settings.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/loganlanou/shopify-buy-button/storage/db"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Dependencies wires runtime services.
type Dependencies struct {
	Queries     *db.Queries
	ScriptURL   string
	Concurrency int
	Version     string
}

type globalFlags struct {
	Format  string
	NoColor bool
}

func newGlobalFlagSet(flags *globalFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.StringVar(&flags.Format, "format", "yaml", "Output format for settings: yaml or json.")
	fs.BoolVar(&flags.NoColor, "no-color", false, "Disable ANSI color codes.")
	return fs
}

// NewRootCommand builds the complete command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "sbbctl",
		Short:         "Render Shopify Buy Button embeds and manage their settings.",
		Version:       resolvedVersion(deps.Version),
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.NoColor {
				color.NoColor = true
			}
			_, err := parseFormat(flags.Format)
			return err
		},
	}
	root.PersistentFlags().AddFlagSet(newGlobalFlagSet(flags))

	root.AddCommand(newRenderCommand(deps))
	root.AddCommand(newAppearanceCommand(deps, flags))
	root.AddCommand(newShopCommand(deps))
	root.AddCommand(newKeysCommand(deps))

	return root
}

// Execute runs the CLI with injected dependencies and returns the exit code.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout io.Writer, stderr io.Writer) int {
	cmd := NewRootCommand(deps)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		var validation *validationError
		if errors.As(err, &validation) {
			printError(stderr, validation.err)
			return 2
		}
		printError(stderr, err)
		return 1
	}
	return 0
}

func resolvedVersion(v string) string {
	if v == "" {
		return "dev"
	}
	return v
}

// validationError marks input the user has to fix, as opposed to a failure.
type validationError struct {
	err error
}

func (e *validationError) Error() string { return e.err.Error() }

func (e *validationError) Unwrap() error { return e.err }

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

func printError(w io.Writer, err error) {
	_, _ = errorColor.Fprint(w, "Error: ")
	_, _ = fmt.Fprintln(w, err)
}

func printSuccess(w io.Writer, format string, args ...any) {
	_, _ = successColor.Fprintf(w, format+"\n", args...)
}

func printWarning(w io.Writer, format string, args ...any) {
	_, _ = warnColor.Fprintf(w, format+"\n", args...)
}
