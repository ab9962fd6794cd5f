package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/paulitower/pkg/errors"
)

// Config is the top-level settings file.
type Config struct {
	LogLevel string   `toml:"log_level"`
	Cache    Cache    `toml:"cache"`
	Pipeline Pipeline `toml:"pipeline"`
}

// Cache configures the compile cache.
type Cache struct {
	Backend       string   `toml:"backend"`
	Dir           string   `toml:"dir"`
	RedisURL      string   `toml:"redis_url"`
	TTL           Duration `toml:"ttl"`
	MemoryEntries int      `toml:"memory_entries"`
}

// Pipeline is a named list of steps run as a sequence.
type Pipeline struct {
	Name  string `toml:"name"`
	Steps []Step `toml:"steps"`
}

// Step kinds.
const (
	KindPass             = "pass"
	KindSequence         = "sequence"
	KindRepeat           = "repeat"
	KindRepeatWithMetric = "repeat_with_metric"
	KindRepeatWhile      = "repeat_while"
)

// Step is one node of a pipeline tree. Pass is read by pass steps, Metric by
// repeat_with_metric and Condition by repeat_while; Steps holds the children
// of every kind except pass.
type Step struct {
	Kind      string `toml:"kind"`
	Pass      string `toml:"pass,omitempty"`
	Metric    string `toml:"metric,omitempty"`
	Condition string `toml:"condition,omitempty"`
	Steps     []Step `toml:"steps,omitempty"`
}

// Duration is a time.Duration read from a string such as "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		LogLevel: "info",
		Cache: Cache{
			Backend:       "file",
			TTL:           Duration{24 * time.Hour},
			MemoryEntries: 256,
		},
		Pipeline: DefaultPipeline(),
	}
}

// DefaultPipeline tidies the circuit at the gate level until it stops
// changing, resynthesises it through a Pauli graph while that keeps
// shrinking it, and tidies once more.
func DefaultPipeline() Pipeline {
	tidy := Step{Kind: KindRepeat, Steps: []Step{
		{Kind: KindPass, Pass: "remove_redundancies"},
		{Kind: KindPass, Pass: "commute_rotations"},
		{Kind: KindPass, Pass: "clifford_rotations_to_gates"},
	}}
	return Pipeline{
		Name: "default",
		Steps: []Step{
			tidy,
			{Kind: KindRepeatWithMetric, Metric: "gate_count", Steps: []Step{
				{Kind: KindPass, Pass: "pauli_simp"},
			}},
			tidy,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/paulitower/config.toml, falling back
// to the user config directory.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "paulitower", "config.toml"), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "paulitower", "config.toml"), nil
}

// Load reads settings from path. An empty path reads [DefaultPath] if it
// exists and returns [Default] otherwise; an explicit path must exist.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML settings over [Default]. A file that declares pipeline
// steps replaces the default steps entirely.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	cfg.Pipeline.Steps = nil
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, err
	}
	if len(cfg.Pipeline.Steps) == 0 {
		cfg.Pipeline.Steps = DefaultPipeline().Steps
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, perrors.New(perrors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Validate checks the settings that are not resolved by [Build].
func (c Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return perrors.New(perrors.ErrCodeInvalidConfig, "unknown log_level %q", c.LogLevel)
	}
	switch c.Cache.Backend {
	case "", "file", "memory", "redis", "none":
	default:
		return perrors.New(perrors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Cache.RedisURL == "" {
		return perrors.New(perrors.ErrCodeInvalidConfig, "cache backend redis needs redis_url")
	}
	if c.Cache.TTL.Duration < 0 {
		return perrors.New(perrors.ErrCodeInvalidConfig, "cache ttl cannot be negative")
	}
	return nil
}

// Fingerprint returns a canonical encoding of the pipeline, used to key
// cached results.
func (p Pipeline) Fingerprint() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		panic(err)
	}
	return buf.String()
}
