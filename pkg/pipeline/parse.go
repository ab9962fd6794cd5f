package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/paulitower/pkg/circuit"
	perrors "github.com/matzehuels/paulitower/pkg/errors"
	"github.com/matzehuels/paulitower/pkg/observability"
)

// Parse reads OpenQASM 2.0 source. Syntax errors carry the
// [perrors.ErrCodeInvalidQASM] code and the source name.
func Parse(ctx context.Context, source []byte, name string) (*circuit.Circuit, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, name)
	start := time.Now()

	c, err := circuit.ParseQASM(bytes.NewReader(source))
	if err != nil {
		hooks.OnParseComplete(ctx, name, 0, time.Since(start), err)
		return nil, perrors.Wrap(perrors.ErrCodeInvalidQASM, err, "parse %s", name)
	}
	hooks.OnParseComplete(ctx, name, c.GateCount(), time.Since(start), nil)
	return c, nil
}
