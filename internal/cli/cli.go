// Package cli implements the paulitower command-line interface.
//
// # Commands
//
//   - optimise: run the configured pass pipeline over QASM files
//   - graph: lower a circuit into a Pauli graph and write it as DOT, JSON or SVG
//   - tableau: print the Clifford frame left over after lowering
//   - inspect: browse the gadgets of a Pauli graph interactively
//   - cache: show or clear the compile cache
//   - version, completion
//
// # Configuration
//
// Settings come from the TOML file named by --config, else
// $XDG_CONFIG_HOME/paulitower/config.toml when it exists, else built-in
// defaults. See package config for the format.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log at the configured level;
// --verbose (-v) switches to debug, which also logs every pass
// application. Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/paulitower/pkg/buildinfo"
	"github.com/matzehuels/paulitower/pkg/cache"
	"github.com/matzehuels/paulitower/pkg/config"
	perrors "github.com/matzehuels/paulitower/pkg/errors"
	"github.com/matzehuels/paulitower/pkg/observability"
	"github.com/matzehuels/paulitower/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "paulitower"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output such as QASM and graphs.
	Out io.Writer

	// Err receives status lines, summaries and spinners.
	Err io.Writer

	configPath  string
	metricsFile string
	verbose     bool

	cfg     config.Config
	metrics *prometheus.Registry
}

// New creates a CLI writing output to out and logs to errw.
func New(out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		Out:    out,
		Err:    errw,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Paulitower optimises quantum circuits through Pauli graphs",
		Long: `Paulitower reads OpenQASM 2.0 circuits, lowers them into Pauli graphs of
commuting rotation gadgets, and runs configurable optimisation passes over
them. Results are cached between runs.`,
		Version:           buildinfo.Resolved(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.setup(cmd) },
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.flushMetrics()
		},
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/paulitower/config.toml)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(c.optimiseCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.tableauCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, applies the log level and installs metric
// hooks before any subcommand runs.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "log_level")
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	if c.metricsFile != "" {
		c.metrics = prometheus.NewRegistry()
		hooks := observability.NewPrometheusHooks(c.metrics)
		observability.SetPipelineHooks(hooks)
		observability.SetPassHooks(hooks)
		observability.SetCacheHooks(hooks)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

func (c *CLI) flushMetrics() error {
	if c.metrics == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(c.metricsFile, c.metrics); err != nil {
		return perrors.Wrap(perrors.ErrCodeInternal, err, "write metrics")
	}
	c.Logger.Debug("wrote metrics", "path", c.metricsFile)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Resolved()+":")
	r := pipeline.NewRunner(store, keyer, c.Logger)
	if ttl := c.cfg.Cache.TTL.Duration; ttl > 0 {
		r.TTL = ttl
	}
	return r, nil
}

func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cc := c.cfg.Cache
	backend := cc.Backend
	if noCache {
		backend = cache.BackendNone
	}
	store, err := cache.Open(ctx, cache.Config{
		Backend:       backend,
		Dir:           cc.Dir,
		RedisURL:      cc.RedisURL,
		MemoryEntries: cc.MemoryEntries,
	})
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeCache, err, "open %s cache", backend)
	}
	return store, nil
}
