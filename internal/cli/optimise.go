package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	perrors "github.com/matzehuels/paulitower/pkg/errors"
	"github.com/matzehuels/paulitower/pkg/pipeline"
)

// optimisedSuffix names output files written next to their inputs.
const optimisedSuffix = ".opt.qasm"

// optimiseOpts holds the command-line flags for the optimise command.
type optimiseOpts struct {
	output  string // output file (one input) or directory (several)
	noCache bool   // bypass the compile cache entirely
	refresh bool   // recompile and overwrite cached results
	jobs    int    // files compiled at once
}

// optimiseCommand creates the optimise command.
func (c *CLI) optimiseCommand() *cobra.Command {
	opts := optimiseOpts{jobs: runtime.NumCPU()}

	cmd := &cobra.Command{
		Use:     "optimise FILE...",
		Aliases: []string{"optimize"},
		Short:   "Optimise QASM circuits with the configured pass pipeline",
		Long: `Optimise OpenQASM 2.0 circuits with the configured pass pipeline.

With one input and no -o, the optimised circuit is written to stdout ("-"
reads stdin). With several inputs, each result is written next to its
input as <name>.opt.qasm, or into the directory given by -o. Files are
compiled concurrently and a summary table is printed to stderr.

Results are cached; --refresh recompiles and --no-cache skips the cache.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jobs < 1 {
				return perrors.New(perrors.ErrCodeInvalidInput, "--jobs must be at least 1")
			}
			return c.runOptimise(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (one input) or directory (several)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompile even when a cached result exists")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "number of files compiled at once")

	return cmd
}

// runOptimise compiles every file and prints the summary. A failing file
// does not stop the others; all failures are returned together.
func (c *CLI) runOptimise(ctx context.Context, cmd *cobra.Command, files []string, opts optimiseOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	results := make([]fileResult, len(files))

	var g errgroup.Group
	g.SetLimit(opts.jobs)
	for i, path := range files {
		g.Go(func() error {
			res, err := c.optimiseFile(ctx, cmd, runner, path, len(files) > 1, opts)
			results[i] = fileResult{name: path, result: res, err: err}
			return err
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.name, r.err))
		}
	}

	printSummary(c.Err, results)
	prog.done(fmt.Sprintf("Optimised %d of %d circuits", len(files)-len(errs), len(files)))
	return errors.Join(errs...)
}

func (c *CLI) optimiseFile(ctx context.Context, cmd *cobra.Command, runner *pipeline.Runner, path string, batch bool, opts optimiseOpts) (*pipeline.Result, error) {
	src, name, err := readSource(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	res, err := runner.Execute(ctx, pipeline.Options{
		Source:     src,
		SourceName: name,
		Pipeline:   c.cfg.Pipeline,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	})
	if err != nil {
		return nil, err
	}

	dst := opts.output
	if batch {
		dst = derivedPath(path, opts.output, optimisedSuffix)
	}
	wrote, err := writeOutput(c.Out, dst, res.QASM)
	if err != nil {
		return nil, err
	}
	if wrote {
		printFile(c.Err, dst)
	}
	return res, nil
}
