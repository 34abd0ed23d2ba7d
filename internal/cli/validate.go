package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MatthewFletcher/openrocket/internal/loader"
	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// ValidationResult holds the outcome of validating one document.
type ValidationResult struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <file.ork>",
		Short: "Load a design document and report problems",
		Long: `Load an OpenRocket design document and report every warning the
loader recorded. The document is considered valid whenever it parses;
with --strict any warning fails the command.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], strict, cmd)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")

	return cmd
}

func runValidate(opts *RootOptions, path string, strict bool, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	finder, closeFinder, err := openFinder(opts)
	if err != nil {
		return err
	}
	defer closeFinder()

	doc, err := loader.LoadFile(path, finder)
	if err != nil {
		formatter.Error("E001", err.Error())
		return WrapExitError(ExitCommandError, "load document", err)
	}

	formatter.VerboseLog("Loaded %s: %d simulation(s), %d warning(s)",
		path, len(doc.Simulations), doc.Warnings.Len())

	result := ValidationResult{
		File:     path,
		Valid:    true,
		Warnings: warningStrings(&doc.Warnings),
	}

	if strict && doc.Warnings.Len() > 0 {
		result.Valid = false
		if err := formatter.SuccessText(renderValidation(result), result); err != nil {
			return err
		}
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d warning(s) in strict mode", doc.Warnings.Len()))
	}

	return formatter.SuccessText(renderValidation(result), result)
}

func renderValidation(r ValidationResult) string {
	var b strings.Builder
	if r.Valid && len(r.Warnings) == 0 {
		fmt.Fprintf(&b, "✓ %s loads cleanly\n", r.File)
		return b.String()
	}
	if r.Valid {
		fmt.Fprintf(&b, "✓ %s loads with %d warning(s):\n", r.File, len(r.Warnings))
	} else {
		fmt.Fprintf(&b, "✗ %s failed strict validation with %d warning(s):\n",
			r.File, len(r.Warnings))
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "  - %s\n", w)
	}
	return b.String()
}

func warningStrings(set *warnset.Set) []string {
	var out []string
	for _, w := range set.Warnings() {
		out = append(out, w.Message)
	}
	return out
}
