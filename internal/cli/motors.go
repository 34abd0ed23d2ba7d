package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MatthewFletcher/openrocket/internal/motordb"
	"github.com/MatthewFletcher/openrocket/internal/rocket"
)

// MotorResult is one catalog entry in the search output.
type MotorResult struct {
	Type         string  `json:"type"`
	Manufacturer string  `json:"manufacturer"`
	Designation  string  `json:"designation"`
	Diameter     float64 `json:"diameter"`
	Length       float64 `json:"length"`
	TotalImpulse float64 `json:"total_impulse,omitempty"`
}

// ImportResult reports an import run.
type ImportResult struct {
	File     string `json:"file"`
	Imported int    `json:"imported"`
	Total    int    `json:"total"`
}

// NewMotorsCommand creates the motors command group.
func NewMotorsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "motors",
		Short: "Manage the motor catalog",
	}
	cmd.AddCommand(newMotorsImportCommand(rootOpts))
	cmd.AddCommand(newMotorsSearchCommand(rootOpts))
	return cmd
}

func newMotorsImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "import <catalog.yaml>",
		Short:         "Import a YAML motor catalog into the database",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMotorsImport(rootOpts, args[0], cmd)
		},
	}
}

func runMotorsImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.MotorDB == "" {
		formatter.Error("E002", "no motor database specified, use --motordb")
		return NewExitError(ExitCommandError, "no motor database specified")
	}

	db, err := motordb.Open(opts.MotorDB)
	if err != nil {
		formatter.Error("E002", err.Error())
		return WrapExitError(ExitCommandError, "open motor database", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	n, err := db.ImportFile(ctx, path)
	if err != nil {
		formatter.Error("E003", err.Error())
		return WrapExitError(ExitCommandError, "import catalog", err)
	}
	total, err := db.Count(ctx)
	if err != nil {
		formatter.Error("E003", err.Error())
		return WrapExitError(ExitCommandError, "count motors", err)
	}

	result := ImportResult{File: path, Imported: n, Total: total}
	text := fmt.Sprintf("imported %d motor(s) from %s, catalog now holds %d\n",
		result.Imported, result.File, result.Total)
	return formatter.SuccessText(text, result)
}

func newMotorsSearchCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		manufacturer string
		motorType    string
		diameter     float64
		length       float64
	)
	cmd := &cobra.Command{
		Use:           "search <designation>",
		Short:         "Search the motor catalog by designation",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMotorsSearch(rootOpts, args[0], manufacturer, motorType,
				diameter, length, cmd)
		},
	}
	cmd.Flags().StringVar(&manufacturer, "manufacturer", "", "filter by manufacturer")
	cmd.Flags().StringVar(&motorType, "type", "", "filter by motor type (single, reload, hybrid)")
	cmd.Flags().Float64Var(&diameter, "diameter", math.NaN(), "filter by diameter in meters")
	cmd.Flags().Float64Var(&length, "length", math.NaN(), "filter by length in meters")
	return cmd
}

func runMotorsSearch(opts *RootOptions, designation, manufacturer, motorType string,
	diameter, length float64, cmd *cobra.Command) error {

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.MotorDB == "" {
		formatter.Error("E002", "no motor database specified, use --motordb")
		return NewExitError(ExitCommandError, "no motor database specified")
	}

	var typ *rocket.MotorType
	if motorType != "" {
		t, ok := rocket.MotorTypeFromName(motorType)
		if !ok {
			formatter.Error("E004", fmt.Sprintf("unknown motor type %q", motorType))
			return NewExitError(ExitCommandError, "unknown motor type")
		}
		typ = &t
	}

	db, err := motordb.Open(opts.MotorDB)
	if err != nil {
		formatter.Error("E002", err.Error())
		return WrapExitError(ExitCommandError, "open motor database", err)
	}
	defer db.Close()

	motors, err := db.FindMotors(typ, manufacturer, designation, diameter, length)
	if err != nil {
		formatter.Error("E003", err.Error())
		return WrapExitError(ExitCommandError, "search motors", err)
	}

	results := make([]MotorResult, 0, len(motors))
	for _, m := range motors {
		results = append(results, MotorResult{
			Type:         m.Type.String(),
			Manufacturer: m.Manufacturer,
			Designation:  m.Designation,
			Diameter:     m.Diameter,
			Length:       m.Length,
			TotalImpulse: m.TotalImpulse,
		})
	}
	return formatter.SuccessText(renderMotors(results), results)
}

func renderMotors(results []MotorResult) string {
	if len(results) == 0 {
		return "no motors found\n"
	}
	var b strings.Builder
	for _, m := range results {
		fmt.Fprintf(&b, "%s %s  type=%s  diameter=%g  length=%g",
			m.Manufacturer, m.Designation, m.Type, m.Diameter, m.Length)
		if m.TotalImpulse > 0 {
			fmt.Fprintf(&b, "  impulse=%gNs", m.TotalImpulse)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
