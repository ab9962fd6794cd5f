package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pio "github.com/matzehuels/paulitower/pkg/io"
	"github.com/matzehuels/paulitower/pkg/pipeline"
)

// tableauCommand creates the tableau command for printing Clifford frames.
func (c *CLI) tableauCommand() *cobra.Command {
	var jsonOut, raw bool

	cmd := &cobra.Command{
		Use:   "tableau FILE",
		Short: "Print the Clifford frame of a circuit",
		Long: `Print the Clifford frame left over after lowering a circuit.

For every qubit q the frame maps X_q and Z_q at its output back to a Pauli
tensor at its input. --json writes these rows as JSON; --raw writes the
underlying stabiliser tableau in the format read by pkg/io.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTableau(cmd.Context(), cmd, args[0], jsonOut, raw)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "write frame rows as JSON")
	cmd.Flags().BoolVar(&raw, "raw", false, "write the raw tableau as JSON")
	cmd.MarkFlagsMutuallyExclusive("json", "raw")

	return cmd
}

func (c *CLI) runTableau(ctx context.Context, cmd *cobra.Command, input string, jsonOut, raw bool) error {
	src, name, err := readSource(input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	circ, err := pipeline.Parse(ctx, src, name)
	if err != nil {
		return err
	}
	pg, err := pipeline.Lower(circ)
	if err != nil {
		return err
	}
	frame := pg.Frame()
	loggerFromContext(ctx).Debug("lowered circuit", "source", name, "gadgets", pg.NumVertices(), "identity", frame.IsIdentity())

	switch {
	case jsonOut:
		return pio.WriteFrameJSON(frame, c.Out)
	case raw:
		return pio.WriteTableauJSON(frame.Tableau(), c.Out)
	default:
		_, err := fmt.Fprint(c.Out, frame.String())
		return err
	}
}
