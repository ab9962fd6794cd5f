package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/paulitower/pkg/pipeline"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output  string
	format  string
	frame   bool
	noCache bool
}

// graphCommand creates the graph command for writing Pauli graphs.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: pipeline.FormatDOT}

	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Lower a circuit into a Pauli graph and write it out",
		Long: `Lower a circuit into a Pauli graph and write it out.

Each vertex of the graph is a non-Clifford rotation gadget, labelled with
its Pauli tensor and angle; an edge joins two gadgets that do not commute.
Clifford gates are absorbed into the frame, which --frame adds to the
output.

Formats: dot (default), json, svg. SVG is rendered in process.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(pipeline.GraphFormats, ", "))
	cmd.Flags().BoolVar(&opts.frame, "frame", false, "include the Clifford frame")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, cmd *cobra.Command, input string, opts graphOpts) error {
	src, name, err := readSource(input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spinner *Spinner
	if opts.format == pipeline.FormatSVG {
		spinner = newSpinner(ctx, c.Err, "Rendering graph...")
		spinner.Start()
	}
	res, err := runner.Graph(ctx, pipeline.GraphOptions{
		Source:     src,
		SourceName: name,
		Format:     opts.format,
		Frame:      opts.frame,
		Logger:     c.Logger,
	})
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Rendering failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	wrote, err := writeOutput(c.Out, opts.output, res.Data)
	if err != nil {
		return err
	}
	if wrote {
		printSuccess(c.Err, "Wrote %s graph of %s", opts.format, name)
		printFile(c.Err, opts.output)
		printGraphStats(c.Err, res.Stats.Vertices, res.Stats.Edges, res.Stats.Depth, res.CacheInfo.RenderHit)
	}
	return nil
}
