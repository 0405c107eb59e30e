package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/velplot/pkg/parser"
	"github.com/ccollicutt/velplot/pkg/source"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Output string
}

// InspectResult describes one inspected source.
type InspectResult struct {
	File      string            `json:"file"`
	Format    string            `json:"format"`
	Supported bool              `json:"supported"`
	Inventory *parser.Inventory `json:"inventory,omitempty"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <src>...",
		Short: "Show the format and keys of simulation outputs",
		Long: `Report which format a source file is read as and, for raw text logs,
which keys it contains and how often.

Unlike plot and summary, inspect does not stop at malformed lines;
it counts them and lists the first few line numbers.

Example:
  velplot inspect nvt.log
  velplot inspect -o json 'runs/*.log'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	ctx := commandContext(cmd)

	if opts.Output != "text" && opts.Output != "json" {
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding sources: %w", err)
	}

	results := make([]InspectResult, 0, len(files))
	for _, path := range files {
		format := source.Select(path)
		result := InspectResult{File: path, Format: format.Name()}

		switch format.(type) {
		case source.RawText:
			lines, err := parser.ReadLines(ctx, path)
			if err != nil {
				return err
			}
			result.Supported = true
			result.Inventory = parser.TakeInventory(lines)
		case source.StructuredArchive:
			result.Supported = false
		}
		results = append(results, result)
	}

	if opts.Output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}
	outputInspectText(cmd.OutOrStdout(), results)
	return nil
}

func outputInspectText(w io.Writer, results []InspectResult) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "File:   %s\n", r.File)
		fmt.Fprintf(w, "Format: %s\n", r.Format)

		if !r.Supported {
			fmt.Fprintln(w, "Reading this format is not implemented yet.")
			continue
		}

		inv := r.Inventory
		fmt.Fprintf(w, "Lines:  %d\n", inv.Lines)
		if len(inv.Keys) > 0 {
			fmt.Fprintln(w, "Keys:")
			for _, k := range inv.Keys {
				marker := ""
				if !k.Known {
					marker = " (ignored)"
				}
				fmt.Fprintf(w, "  %-20s %d%s\n", k.Key, k.Count, marker)
			}
		}
		if inv.Malformed > 0 {
			fmt.Fprintf(w, "Malformed lines: %d (first at %v)\n", inv.Malformed, inv.MalformedLines)
		}
	}
}
