package config

import (
	"fmt"

	"github.com/matzehuels/paulitower/pkg/circuit"
	perrors "github.com/matzehuels/paulitower/pkg/errors"
	"github.com/matzehuels/paulitower/pkg/transform"
	"github.com/matzehuels/paulitower/pkg/transform/passes"
)

// WrapFunc decorates a named pass, for example to time it. It is applied to
// every pass step.
type WrapFunc func(name string, p passes.Pass) passes.Pass

// Build turns a pipeline into a single transform. Names are resolved against
// reg; wrap may be nil.
func Build(p Pipeline, reg *passes.Registry, wrap WrapFunc) (passes.Pass, error) {
	b := builder{reg: reg, wrap: wrap}
	steps, err := b.steps(p.Steps, "pipeline")
	if err != nil {
		return nil, err
	}
	return transform.Sequence(steps...), nil
}

type builder struct {
	reg  *passes.Registry
	wrap WrapFunc
}

func (b builder) steps(steps []Step, where string) ([]passes.Pass, error) {
	out := make([]passes.Pass, 0, len(steps))
	for i, s := range steps {
		p, err := b.step(s, where, i)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (b builder) step(s Step, parent string, i int) (passes.Pass, error) {
	where := fmt.Sprintf("%s.steps[%d]", parent, i)

	if s.Kind == KindPass {
		if len(s.Steps) > 0 {
			return nil, perrors.New(perrors.ErrCodeInvalidConfig, "%s: pass step cannot have child steps", where)
		}
		return b.pass(s.Pass, where)
	}

	if len(s.Steps) == 0 {
		switch s.Kind {
		case KindSequence, KindRepeat, KindRepeatWithMetric, KindRepeatWhile:
			return nil, perrors.New(perrors.ErrCodeInvalidConfig, "%s: %s step needs child steps", where, s.Kind)
		}
	}
	children, err := b.steps(s.Steps, where)
	if err != nil {
		return nil, err
	}
	body := transform.Sequence(children...)

	switch s.Kind {
	case KindSequence:
		return body, nil
	case KindRepeat:
		return transform.Repeat(body), nil
	case KindRepeatWithMetric:
		if err := perrors.ValidateIdentifier("metric", s.Metric); err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "%s", where)
		}
		m, err := b.reg.Metric(s.Metric)
		if err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "%s", where)
		}
		return transform.RepeatWithMetric(body, m), nil
	case KindRepeatWhile:
		cond, err := b.pass(s.Condition, where)
		if err != nil {
			return nil, err
		}
		return transform.RepeatWhile[*circuit.Circuit](passes.WouldChange(cond), body), nil
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidConfig, "%s: unknown step kind %q", where, s.Kind)
	}
}

func (b builder) pass(name, where string) (passes.Pass, error) {
	if err := perrors.ValidateIdentifier("pass", name); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "%s", where)
	}
	p, err := b.reg.Pass(name)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "%s", where)
	}
	if b.wrap != nil {
		p = b.wrap(name, p)
	}
	return p, nil
}
