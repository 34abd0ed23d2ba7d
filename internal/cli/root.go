// Package cli implements the openrocket command-line interface: document
// validation and inspection plus motor catalog maintenance.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	MotorDB string // path to the motor catalog database, optional
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the openrocket CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "openrocket",
		Short: "OpenRocket design document tools",
		Long:  "Load, validate and inspect OpenRocket rocket design documents.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.MotorDB, "motordb", "", "motor catalog database path")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewMotorsCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
