package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MatthewFletcher/openrocket/internal/document"
	"github.com/MatthewFletcher/openrocket/internal/loader"
	"github.com/MatthewFletcher/openrocket/internal/rocket"
)

// ComponentInfo is one node of the design tree in the info output.
type ComponentInfo struct {
	Kind     string          `json:"kind"`
	Name     string          `json:"name"`
	Children []ComponentInfo `json:"children,omitempty"`
}

// SimulationInfo summarizes one stored simulation.
type SimulationInfo struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Branches int    `json:"branches"`
}

// DocumentInfo is the JSON payload of the info command.
type DocumentInfo struct {
	File           string           `json:"file"`
	Designer       string           `json:"designer,omitempty"`
	Revision       string           `json:"revision,omitempty"`
	Rocket         ComponentInfo    `json:"rocket"`
	Configurations []string         `json:"configurations,omitempty"`
	Simulations    []SimulationInfo `json:"simulations,omitempty"`
	Warnings       []string         `json:"warnings,omitempty"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "info <file.ork>",
		Short:         "Show the structure of a design document",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runInfo(opts *RootOptions, path string, cmd *cobra.Command) error {
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

	info := buildInfo(path, doc)
	return formatter.SuccessText(renderInfo(info), info)
}

func buildInfo(path string, doc *document.Document) DocumentInfo {
	info := DocumentInfo{
		File:   path,
		Rocket: componentInfo(doc.Rocket),
	}

	attrs := doc.Rocket.Rocket
	if attrs != nil {
		info.Designer = attrs.Designer
		info.Revision = attrs.Revision
		for _, cfg := range attrs.Configurations {
			label := cfg.ID
			if cfg.Name != "" {
				label += " " + cfg.Name
			}
			if cfg.ID == attrs.DefaultConfigID {
				label += " (default)"
			}
			info.Configurations = append(info.Configurations, label)
		}
	}

	for _, sim := range doc.Simulations {
		branches := 0
		if sim.Data != nil {
			branches = sim.Data.BranchCount()
		}
		info.Simulations = append(info.Simulations, SimulationInfo{
			Name:     sim.Name,
			Status:   sim.Status.String(),
			Branches: branches,
		})
	}

	for _, w := range doc.Warnings.Warnings() {
		info.Warnings = append(info.Warnings, w.Message)
	}
	return info
}

func componentInfo(c *rocket.Component) ComponentInfo {
	info := ComponentInfo{Kind: string(c.Kind), Name: c.Name}
	for _, child := range c.Children {
		info.Children = append(info.Children, componentInfo(child))
	}
	return info
}

func renderInfo(info DocumentInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", info.File)
	if info.Designer != "" {
		fmt.Fprintf(&b, "designer: %s\n", info.Designer)
	}
	if info.Revision != "" {
		fmt.Fprintf(&b, "revision: %s\n", info.Revision)
	}

	renderTree(&b, info.Rocket, 0)

	for _, cfg := range info.Configurations {
		fmt.Fprintf(&b, "configuration: %s\n", cfg)
	}
	for _, sim := range info.Simulations {
		fmt.Fprintf(&b, "simulation: %s [%s] %d branch(es)\n",
			sim.Name, sim.Status, sim.Branches)
	}
	if len(info.Warnings) > 0 {
		fmt.Fprintf(&b, "%d warning(s):\n", len(info.Warnings))
		for _, w := range info.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}
	return b.String()
}

func renderTree(b *strings.Builder, node ComponentInfo, depth int) {
	fmt.Fprintf(b, "%s%s (%s)\n", strings.Repeat("  ", depth), node.Name, node.Kind)
	for _, child := range node.Children {
		renderTree(b, child, depth+1)
	}
}
