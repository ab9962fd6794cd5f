// Package config loads paulitower settings from TOML and builds optimisation
// pipelines from them.
//
// # File Format
//
//	log_level = "info"
//
//	[cache]
//	backend = "file"       # file | memory | redis | none
//	ttl = "24h"
//
//	[pipeline]
//	name = "default"
//
//	[[pipeline.steps]]
//	kind = "repeat"
//	  [[pipeline.steps.steps]]
//	  kind = "pass"
//	  pass = "remove_redundancies"
//
// # Steps
//
// A step is one of:
//
//   - pass: a named pass from the registry
//   - sequence: its child steps in order, changed if any child changed
//   - repeat: its child steps as a sequence, until nothing changes
//   - repeat_with_metric: its child steps as a sequence, while metric strictly
//     decreases
//   - repeat_while: its child steps as a sequence, while the named condition
//     pass would change the circuit
//
// The top-level steps of a pipeline form an implicit sequence. [Build]
// resolves names against a [passes.Registry] and reports unknown ones as
// INVALID_CONFIG errors.
package config
